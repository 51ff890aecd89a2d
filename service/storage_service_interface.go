package service

import (
	"context"

	"consogab-me/models"
)

// StorageServiceInterface defines the contract for file storage operations
type StorageServiceInterface interface {
	Upload(ctx context.Context, fileName string, data []byte, cfg models.UploadConfig) (*models.UploadResult, error)
	Root() string
}
