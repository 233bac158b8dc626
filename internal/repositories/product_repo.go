package repositories

import (
	"context"

	"storeadmin/internal/models"
)

// ProductRepository defines the interface for product data access.
// Lookups return (nil, nil) when the record is absent; Delete reports the
// number of rows removed and treats zero as a successful no-op.
type ProductRepository interface {
	// GetByID loads a product with its images, category, size and color.
	GetByID(ctx context.Context, id string) (*models.Product, error)
	ListByStore(ctx context.Context, storeID string) ([]models.Product, error)
	Create(ctx context.Context, product *models.Product) error
	// Update replaces all scalar fields and the whole image set of the
	// product in a single transaction.
	Update(ctx context.Context, product *models.Product) (*models.Product, error)
	Delete(ctx context.Context, id string) (int64, error)
}
