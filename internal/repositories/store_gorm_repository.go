package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"storeadmin/internal/models"
)

// GORMStoreRepository is a GORM implementation of StoreRepository.
type GORMStoreRepository struct {
	db *gorm.DB
}

// NewGORMStoreRepository creates a new instance of GORMStoreRepository.
func NewGORMStoreRepository(db *gorm.DB) *GORMStoreRepository {
	return &GORMStoreRepository{db: db}
}

// Create creates a new store in the database.
func (r *GORMStoreRepository) Create(ctx context.Context, store *models.Store) error {
	if store.ID == "" {
		store.ID = uuid.New().String()
	}
	if err := r.db.WithContext(ctx).Create(store).Error; err != nil {
		return fmt.Errorf("failed to create store: %w", err)
	}
	return nil
}

// GetByID retrieves a store by its ID, or (nil, nil) when absent.
func (r *GORMStoreRepository) GetByID(ctx context.Context, id string) (*models.Store, error) {
	var store models.Store
	if err := r.db.WithContext(ctx).First(&store, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get store by ID %s: %w", id, err)
	}
	return &store, nil
}

// GetByIDAndUser retrieves a store only when it is owned by the given user.
// The (nil, nil) result is what callers translate into Unauthorized.
func (r *GORMStoreRepository) GetByIDAndUser(ctx context.Context, id, userID string) (*models.Store, error) {
	var store models.Store
	err := r.db.WithContext(ctx).First(&store, "id = ? AND user_id = ?", id, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get store %s for user %s: %w", id, userID, err)
	}
	return &store, nil
}

// ListByUser retrieves all stores owned by a user.
func (r *GORMStoreRepository) ListByUser(ctx context.Context, userID string) ([]models.Store, error) {
	var stores []models.Store
	if err := r.db.WithContext(ctx).Find(&stores, "user_id = ?", userID).Error; err != nil {
		return nil, fmt.Errorf("failed to list stores for user %s: %w", userID, err)
	}
	return stores, nil
}
