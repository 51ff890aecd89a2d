package service

import "consogab-me/models"

// DriveServiceInterface defines the contract for Google Drive operations
type DriveServiceInterface interface {
	ListImages(folderID string) ([]models.DriveImage, error)
	DownloadImage(fileID string) ([]byte, error)
}
