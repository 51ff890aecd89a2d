package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"consogab-me/db"
	"consogab-me/models"
)

// listSeparator joins multi-value text columns (tags, secondary colors)
const listSeparator = ","

func joinList(values []string) string {
	return strings.Join(values, listSeparator)
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, listSeparator)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// ProductRepository handles database operations for products
type ProductRepository struct{}

// NewProductRepository creates a new ProductRepository
func NewProductRepository() *ProductRepository {
	return &ProductRepository{}
}

// Ensure ProductRepository implements ProductRepositoryInterface
var _ ProductRepositoryInterface = (*ProductRepository)(nil)

// Create inserts a product with its images and variants in one transaction
func (r *ProductRepository) Create(ctx context.Context, req *models.ProductCreateRequest) (*models.Product, error) {
	tx, err := db.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	coverURL := ""
	if len(req.Images) > 0 {
		// Index 0 is the cover image by contract.
		coverURL = req.Images[0].URL
	}

	var productID int64
	var createdAt string
	err = tx.QueryRowContext(ctx, `
		INSERT INTO products (
			business_id, catalog_id, title, description, category, subcategory,
			condition, main_color, secondary_colors, brand, manufacturer, tags,
			price, stock_total, stock_reserved, cover_url, quality_score,
			is_published, availability, delivery_zone, city, district, address,
			dim_length, dim_width, dim_height, dim_weight, created_at
		) VALUES ($1, NULLIF($2, 0), $3, $4, $5, $6, $7, $8, $9, $10, $11, $12,
		          $13, $14, 0, $15, $16, $17, $18, $19, $20, $21, $22,
		          $23, $24, $25, $26, NOW())
		RETURNING id, created_at
	`,
		req.BusinessID, req.CatalogID, req.Title, req.Description, req.Category, req.Subcategory,
		req.Condition, req.MainColor, joinList(req.SecondaryColors), req.Brand, req.Manufacturer, joinList(req.Tags),
		req.Price, req.StockTotal, coverURL, req.QualityScore,
		req.IsPublished, req.Availability, req.DeliveryZone, req.City, req.District, req.Address,
		req.Dimensions.Length, req.Dimensions.Width, req.Dimensions.Height, req.Dimensions.Weight,
	).Scan(&productID, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert product: %w", err)
	}

	for position, img := range req.Images {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO product_images (product_id, position, image_id, url, path)
			VALUES ($1, $2, $3, $4, $5)
		`, productID, position, img.ID, img.URL, img.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to insert product image: %w", err)
		}
	}

	for _, v := range req.Variants {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO product_variants (product_id, color_code, size_code, price, stock, sku)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, productID, v.ColorCode, v.SizeCode, v.Price, v.Stock, v.SKU)
		if err != nil {
			return nil, fmt.Errorf("failed to insert product variant: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	log.Printf("✅ ProductRepository.Create: product %d created (business=%d, variants=%d, images=%d)",
		productID, req.BusinessID, len(req.Variants), len(req.Images))

	return r.GetByID(ctx, productID)
}

const productColumns = `
	p.id, p.business_id, COALESCE(p.catalog_id, 0), p.title, p.description,
	p.category, COALESCE(p.subcategory, ''), p.condition, p.main_color,
	COALESCE(p.secondary_colors, ''), COALESCE(p.brand, ''),
	COALESCE(p.manufacturer, ''), COALESCE(p.tags, ''), p.price,
	p.stock_total, p.stock_reserved, COALESCE(p.cover_url, ''),
	p.quality_score, p.is_published, COALESCE(p.availability, ''),
	COALESCE(p.delivery_zone, ''), COALESCE(p.city, ''),
	COALESCE(p.district, ''), COALESCE(p.address, ''),
	COALESCE(p.dim_length, ''), COALESCE(p.dim_width, ''),
	COALESCE(p.dim_height, ''), COALESCE(p.dim_weight, ''), p.created_at`

func scanProduct(row interface{ Scan(...any) error }) (*models.Product, error) {
	var p models.Product
	var secondaryColors, tags string
	err := row.Scan(
		&p.ID, &p.BusinessID, &p.CatalogID, &p.Title, &p.Description,
		&p.Category, &p.Subcategory, &p.Condition, &p.MainColor,
		&secondaryColors, &p.Brand, &p.Manufacturer, &tags, &p.Price,
		&p.StockTotal, &p.StockReserved, &p.CoverURL,
		&p.QualityScore, &p.IsPublished, &p.Availability,
		&p.DeliveryZone, &p.City, &p.District, &p.Address,
		&p.Dimensions.Length, &p.Dimensions.Width,
		&p.Dimensions.Height, &p.Dimensions.Weight, &p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	p.SecondaryColors = splitList(secondaryColors)
	p.Tags = splitList(tags)
	return &p, nil
}

// GetByID retrieves a product with its images and variants
func (r *ProductRepository) GetByID(ctx context.Context, id int64) (*models.Product, error) {
	row := db.DB.QueryRowContext(ctx, `SELECT `+productColumns+` FROM products p WHERE p.id = $1`, id)
	product, err := scanProduct(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("product %d does not exist", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	rows, err := db.DB.QueryContext(ctx, `
		SELECT image_id, url, path
		FROM product_images
		WHERE product_id = $1
		ORDER BY position ASC
	`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query product images: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var img models.ImageRef
		if err := rows.Scan(&img.ID, &img.URL, &img.Path); err != nil {
			return nil, fmt.Errorf("failed to scan product image: %w", err)
		}
		product.Images = append(product.Images, img)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate product images: %w", err)
	}

	variantRows, err := db.DB.QueryContext(ctx, `
		SELECT color_code, size_code, price, stock, COALESCE(sku, '')
		FROM product_variants
		WHERE product_id = $1
		ORDER BY id ASC
	`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query product variants: %w", err)
	}
	defer variantRows.Close()
	for variantRows.Next() {
		var v models.Variant
		if err := variantRows.Scan(&v.ColorCode, &v.SizeCode, &v.Price, &v.Stock, &v.SKU); err != nil {
			return nil, fmt.Errorf("failed to scan product variant: %w", err)
		}
		product.Variants = append(product.Variants, v)
	}
	if err := variantRows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate product variants: %w", err)
	}

	return product, nil
}

// ListByBusiness retrieves the products of a business, optionally only the
// published ones
func (r *ProductRepository) ListByBusiness(ctx context.Context, businessID int64, onlyPublished bool) ([]models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products p WHERE p.business_id = $1`
	if onlyPublished {
		query += ` AND p.is_published = true`
	}
	query += ` ORDER BY p.created_at DESC`

	rows, err := db.DB.QueryContext(ctx, query, businessID)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			log.Printf("❌ ListByBusiness: error scanning product: %v", err)
			continue
		}
		products = append(products, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate products: %w", err)
	}

	return products, nil
}

// SetPublished toggles the published flag of a product owned by the business
func (r *ProductRepository) SetPublished(ctx context.Context, id int64, businessID int64, published bool) error {
	result, err := db.DB.ExecContext(ctx, `
		UPDATE products SET is_published = $1 WHERE id = $2 AND business_id = $3
	`, published, id, businessID)
	if err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("product %d does not exist for business %d", id, businessID)
	}
	return nil
}

// Delete removes a product and its dependent rows
func (r *ProductRepository) Delete(ctx context.Context, id int64, businessID int64) error {
	tx, err := db.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM product_images WHERE product_id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete product images: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM product_variants WHERE product_id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete product variants: %w", err)
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM products WHERE id = $1 AND business_id = $2`, id, businessID)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("product %d does not exist for business %d", id, businessID)
	}

	return tx.Commit()
}
