package repository

import (
	"context"
	"fmt"
	"log"

	"consogab-me/db"
	"consogab-me/models"
)

// MediaRepository handles database operations for the media library
type MediaRepository struct{}

// NewMediaRepository creates a new MediaRepository
func NewMediaRepository() *MediaRepository {
	return &MediaRepository{}
}

// Ensure MediaRepository implements MediaRepositoryInterface
var _ MediaRepositoryInterface = (*MediaRepository)(nil)

// ExistsByDriveFileID checks whether a Drive file was already imported
func (r *MediaRepository) ExistsByDriveFileID(ctx context.Context, driveFileID string) (bool, error) {
	var exists bool
	err := db.DB.QueryRowContext(ctx, `
		SELECT EXISTS(SELECT 1 FROM media_assets WHERE drive_file_id = $1)
	`, driveFileID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check media asset existence: %w", err)
	}
	return exists, nil
}

// Insert adds a media asset to the library
func (r *MediaRepository) Insert(ctx context.Context, asset *models.MediaAsset) error {
	err := db.DB.QueryRowContext(ctx, `
		INSERT INTO media_assets (business_id, drive_file_id, file_name, url, path, status, created_at)
		VALUES ($1, NULLIF($2, ''), $3, $4, $5, $6, NOW())
		RETURNING id
	`, asset.BusinessID, asset.DriveFileID, asset.FileName, asset.URL, asset.Path, asset.Status).Scan(&asset.ID)
	if err != nil {
		return fmt.Errorf("failed to insert media asset: %w", err)
	}
	return nil
}

// GetByID retrieves one media asset
func (r *MediaRepository) GetByID(ctx context.Context, id int64) (*models.MediaAsset, error) {
	var a models.MediaAsset
	err := db.DB.QueryRowContext(ctx, `
		SELECT id, business_id, COALESCE(drive_file_id, ''), COALESCE(file_name, ''),
		       url, COALESCE(path, ''), status, created_at
		FROM media_assets
		WHERE id = $1
	`, id).Scan(&a.ID, &a.BusinessID, &a.DriveFileID, &a.FileName, &a.URL, &a.Path, &a.Status, &a.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("media asset %d does not exist: %w", id, err)
	}
	return &a, nil
}

// ListByBusiness retrieves the media library of a business
func (r *MediaRepository) ListByBusiness(ctx context.Context, businessID int64) ([]models.MediaAsset, error) {
	rows, err := db.DB.QueryContext(ctx, `
		SELECT id, business_id, COALESCE(drive_file_id, ''), COALESCE(file_name, ''),
		       url, COALESCE(path, ''), status, created_at
		FROM media_assets
		WHERE business_id = $1
		ORDER BY created_at DESC
	`, businessID)
	if err != nil {
		return nil, fmt.Errorf("failed to query media assets: %w", err)
	}
	defer rows.Close()

	var assets []models.MediaAsset
	for rows.Next() {
		var a models.MediaAsset
		if err := rows.Scan(&a.ID, &a.BusinessID, &a.DriveFileID, &a.FileName, &a.URL, &a.Path, &a.Status, &a.CreatedAt); err != nil {
			log.Printf("❌ ListByBusiness: error scanning media asset: %v", err)
			continue
		}
		assets = append(assets, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate media assets: %w", err)
	}

	return assets, nil
}
