package repositories

import (
	"context"

	"storeadmin/internal/models"
)

// CatalogRepository defines data access for the store-scoped reference
// entities offered as product form options: billboards, categories, sizes
// and colors. The product workflow only reads them; the Create methods
// exist for seeding and administration.
type CatalogRepository interface {
	CreateBillboard(ctx context.Context, billboard *models.Billboard) error
	GetBillboard(ctx context.Context, id string) (*models.Billboard, error)
	ListBillboards(ctx context.Context, storeID string) ([]models.Billboard, error)

	CreateCategory(ctx context.Context, category *models.Category) error
	GetCategory(ctx context.Context, id string) (*models.Category, error)
	ListCategories(ctx context.Context, storeID string) ([]models.Category, error)

	CreateSize(ctx context.Context, size *models.Size) error
	GetSize(ctx context.Context, id string) (*models.Size, error)
	ListSizes(ctx context.Context, storeID string) ([]models.Size, error)

	CreateColor(ctx context.Context, color *models.Color) error
	GetColor(ctx context.Context, id string) (*models.Color, error)
	ListColors(ctx context.Context, storeID string) ([]models.Color, error)
}
