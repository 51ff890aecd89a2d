package repository

import (
	"context"

	"consogab-me/models"
)

// ProductRepositoryInterface defines the contract for product persistence
type ProductRepositoryInterface interface {
	Create(ctx context.Context, req *models.ProductCreateRequest) (*models.Product, error)
	GetByID(ctx context.Context, id int64) (*models.Product, error)
	ListByBusiness(ctx context.Context, businessID int64, onlyPublished bool) ([]models.Product, error)
	SetPublished(ctx context.Context, id int64, businessID int64, published bool) error
	Delete(ctx context.Context, id int64, businessID int64) error
}

// CatalogRepositoryInterface defines the contract for catalog persistence
type CatalogRepositoryInterface interface {
	Create(ctx context.Context, req *models.CatalogCreateRequest) (*models.Catalog, error)
	GetByID(ctx context.Context, id int64) (*models.Catalog, error)
	ListByBusiness(ctx context.Context, businessID int64, onlyPublic bool) ([]models.Catalog, error)
	GetExportItems(ctx context.Context, catalogID int64) ([]models.CatalogExportItem, error)
}

// OrderRepositoryInterface defines the contract for order persistence
type OrderRepositoryInterface interface {
	Create(ctx context.Context, businessID int64, req *models.CreateOrderRequest) (*models.Order, error)
	GetByID(ctx context.Context, id int64, businessID int64) (*models.Order, error)
	ListByBusiness(ctx context.Context, businessID int64, status string) ([]models.Order, error)
	Confirm(ctx context.Context, id int64, businessID int64) (*models.Order, error)
	Cancel(ctx context.Context, id int64, businessID int64) (*models.Order, error)
	Deliver(ctx context.Context, id int64, businessID int64) (*models.Order, error)
}

// MediaRepositoryInterface defines the contract for media asset persistence
type MediaRepositoryInterface interface {
	ExistsByDriveFileID(ctx context.Context, driveFileID string) (bool, error)
	Insert(ctx context.Context, asset *models.MediaAsset) error
	GetByID(ctx context.Context, id int64) (*models.MediaAsset, error)
	ListByBusiness(ctx context.Context, businessID int64) ([]models.MediaAsset, error)
}
