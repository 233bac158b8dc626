package repositories

import (
	"context"

	"storeadmin/internal/models"
)

// StoreRepository defines the interface for store data access.
// GetByIDAndUser is the ownership lookup that gates every catalog mutation:
// it returns (nil, nil) when no store matches both the id and the user.
type StoreRepository interface {
	Create(ctx context.Context, store *models.Store) error
	GetByID(ctx context.Context, id string) (*models.Store, error)
	GetByIDAndUser(ctx context.Context, id, userID string) (*models.Store, error)
	ListByUser(ctx context.Context, userID string) ([]models.Store, error)
}
