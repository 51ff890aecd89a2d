package service

import (
	"context"
	"fmt"
	"log"

	"consogab-me/models"
	"consogab-me/repository"
)

// ImportService pulls images from a business's Google Drive folder into the
// media library, deduplicating by drive file id.
type ImportService struct {
	driveService DriveServiceInterface
	mediaRepo    repository.MediaRepositoryInterface
	storage      StorageServiceInterface
}

// NewImportService creates a new ImportService
func NewImportService(driveService DriveServiceInterface, mediaRepo repository.MediaRepositoryInterface, storage StorageServiceInterface) *ImportService {
	return &ImportService{
		driveService: driveService,
		mediaRepo:    mediaRepo,
		storage:      storage,
	}
}

// Ensure ImportService implements ImportServiceInterface
var _ ImportServiceInterface = (*ImportService)(nil)

// ImportFolder scans a Drive folder and imports its images sequentially.
// Already-imported files are skipped; one file's failure does not abort the
// run. Returns inserted/skipped/total counts.
func (s *ImportService) ImportFolder(ctx context.Context, businessID int64, folderID string) (*models.ImportStatsResponse, error) {
	log.Printf("🔄 ImportFolder: starting import for business=%d folder=%s", businessID, folderID)

	images, err := s.driveService.ListImages(folderID)
	if err != nil {
		return nil, fmt.Errorf("failed to list images from Drive: %w", err)
	}

	stats := &models.ImportStatsResponse{Total: len(images)}
	log.Printf("📦 ImportFolder: %d images found in Drive folder", len(images))

	for _, img := range images {
		exists, err := s.mediaRepo.ExistsByDriveFileID(ctx, img.DriveFileID)
		if err != nil {
			log.Printf("❌ ImportFolder: error checking drive_file_id %s: %v", img.DriveFileID, err)
			continue
		}
		if exists {
			log.Printf("⏭️  ImportFolder: skipping %s (already imported)", img.DriveFileID)
			stats.Skipped++
			continue
		}

		data, err := s.driveService.DownloadImage(img.DriveFileID)
		if err != nil {
			log.Printf("❌ ImportFolder: failed to download %s: %v", img.DriveFileID, err)
			continue
		}

		result, err := s.storage.Upload(ctx, img.FileName, data, models.UploadConfig{
			Bucket: "library",
			Folder: fmt.Sprintf("business_%d", businessID),
		})
		if err != nil {
			log.Printf("❌ ImportFolder: failed to store %s: %v", img.FileName, err)
			continue
		}

		asset := &models.MediaAsset{
			BusinessID:  businessID,
			DriveFileID: img.DriveFileID,
			FileName:    img.FileName,
			URL:         result.URL,
			Path:        result.Path,
			Status:      "imported",
		}
		if err := s.mediaRepo.Insert(ctx, asset); err != nil {
			log.Printf("❌ ImportFolder: failed to insert asset %s: %v", img.DriveFileID, err)
			continue
		}

		log.Printf("✅ ImportFolder: imported %s as %s", img.FileName, result.Path)
		stats.Inserted++
	}

	log.Printf("🎉 ImportFolder: completed, %d inserted, %d skipped, %d total", stats.Inserted, stats.Skipped, stats.Total)
	return stats, nil
}
