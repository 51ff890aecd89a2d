package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"consogab-me/db"
	"consogab-me/models"
	"consogab-me/utils"
)

// CatalogRepository handles database operations for catalogs
type CatalogRepository struct{}

// NewCatalogRepository creates a new CatalogRepository
func NewCatalogRepository() *CatalogRepository {
	return &CatalogRepository{}
}

// Ensure CatalogRepository implements CatalogRepositoryInterface
var _ CatalogRepositoryInterface = (*CatalogRepository)(nil)

// Create inserts a catalog with its images in one transaction
func (r *CatalogRepository) Create(ctx context.Context, req *models.CatalogCreateRequest) (*models.Catalog, error) {
	tx, err := db.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	coverURL := ""
	if len(req.Images) > 0 {
		coverURL = req.Images[0].URL
	}

	var catalogID int64
	err = tx.QueryRowContext(ctx, `
		INSERT INTO catalogs (business_id, name, description, category, keywords, cover_url, is_public, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		RETURNING id
	`, req.BusinessID, req.Name, req.Description, req.Category, joinList(req.Keywords), coverURL, req.IsPublic).Scan(&catalogID)
	if err != nil {
		return nil, fmt.Errorf("failed to insert catalog: %w", err)
	}

	for position, img := range req.Images {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO catalog_images (catalog_id, position, image_id, url, path)
			VALUES ($1, $2, $3, $4, $5)
		`, catalogID, position, img.ID, img.URL, img.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to insert catalog image: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	log.Printf("✅ CatalogRepository.Create: catalog %d created (business=%d, images=%d)",
		catalogID, req.BusinessID, len(req.Images))

	return r.GetByID(ctx, catalogID)
}

func scanCatalog(row interface{ Scan(...any) error }) (*models.Catalog, error) {
	var c models.Catalog
	var keywords string
	err := row.Scan(&c.ID, &c.BusinessID, &c.Name, &c.Description, &c.Category,
		&keywords, &c.CoverURL, &c.IsPublic, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	c.Keywords = splitList(keywords)
	return &c, nil
}

const catalogColumns = `
	id, business_id, name, COALESCE(description, ''), COALESCE(category, ''),
	COALESCE(keywords, ''), COALESCE(cover_url, ''), is_public, created_at`

// GetByID retrieves a catalog with its images
func (r *CatalogRepository) GetByID(ctx context.Context, id int64) (*models.Catalog, error) {
	row := db.DB.QueryRowContext(ctx, `SELECT `+catalogColumns+` FROM catalogs WHERE id = $1`, id)
	catalog, err := scanCatalog(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("catalog %d does not exist", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get catalog: %w", err)
	}

	rows, err := db.DB.QueryContext(ctx, `
		SELECT image_id, url, path
		FROM catalog_images
		WHERE catalog_id = $1
		ORDER BY position ASC
	`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query catalog images: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var img models.ImageRef
		if err := rows.Scan(&img.ID, &img.URL, &img.Path); err != nil {
			return nil, fmt.Errorf("failed to scan catalog image: %w", err)
		}
		catalog.Images = append(catalog.Images, img)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate catalog images: %w", err)
	}

	return catalog, nil
}

// ListByBusiness retrieves the catalogs of a business, optionally only the
// public ones
func (r *CatalogRepository) ListByBusiness(ctx context.Context, businessID int64, onlyPublic bool) ([]models.Catalog, error) {
	query := `SELECT ` + catalogColumns + ` FROM catalogs WHERE business_id = $1`
	if onlyPublic {
		query += ` AND is_public = true`
	}
	query += ` ORDER BY created_at DESC`

	rows, err := db.DB.QueryContext(ctx, query, businessID)
	if err != nil {
		return nil, fmt.Errorf("failed to query catalogs: %w", err)
	}
	defer rows.Close()

	var catalogs []models.Catalog
	for rows.Next() {
		c, err := scanCatalog(rows)
		if err != nil {
			log.Printf("❌ ListByBusiness: error scanning catalog: %v", err)
			continue
		}
		catalogs = append(catalogs, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate catalogs: %w", err)
	}

	return catalogs, nil
}

// GetExportItems retrieves the published products of a catalog shaped for the
// export template. Only products with available stock appear.
func (r *CatalogRepository) GetExportItems(ctx context.Context, catalogID int64) ([]models.CatalogExportItem, error) {
	log.Printf("🔍 GetExportItems: fetching items for catalog=%d", catalogID)

	rows, err := db.DB.QueryContext(ctx, `
		SELECT p.id, p.title, p.price, p.main_color, p.condition, COALESCE(p.cover_url, '')
		FROM products p
		WHERE p.catalog_id = $1
		  AND p.is_published = true
		  AND (p.stock_total - p.stock_reserved) > 0
		ORDER BY p.title ASC
	`, catalogID)
	if err != nil {
		return nil, fmt.Errorf("failed to query export items: %w", err)
	}
	defer rows.Close()

	var items []models.CatalogExportItem
	for rows.Next() {
		var item models.CatalogExportItem
		var price int64
		var mainColor string
		if err := rows.Scan(&item.ID, &item.Title, &price, &mainColor, &item.Condition, &item.ImageURL); err != nil {
			log.Printf("❌ GetExportItems: error scanning item: %v", err)
			continue
		}
		item.PriceLabel = utils.FormatFCFA(price)
		item.ColorName = utils.CapitalizeWords(utils.MapColorToName(mainColor))
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate export items: %w", err)
	}

	log.Printf("✓ GetExportItems: %d items for catalog=%d", len(items), catalogID)
	return items, nil
}
