package service

import (
	"context"

	"consogab-me/models"
)

// ImportServiceInterface defines the contract for Drive media imports
type ImportServiceInterface interface {
	ImportFolder(ctx context.Context, businessID int64, folderID string) (*models.ImportStatsResponse, error)
}
