package repositories

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"storeadmin/internal/models"
)

// MockStoreRepository is an in-memory implementation of StoreRepository.
type MockStoreRepository struct {
	stores map[string]models.Store
	mu     sync.RWMutex
}

// NewMockStoreRepository creates a new instance of MockStoreRepository.
func NewMockStoreRepository() *MockStoreRepository {
	return &MockStoreRepository{
		stores: make(map[string]models.Store),
	}
}

// Create adds a new store.
func (r *MockStoreRepository) Create(_ context.Context, store *models.Store) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if store.ID == "" {
		store.ID = uuid.New().String()
	}
	r.stores[store.ID] = *store
	return nil
}

// GetByID returns a store by its ID, or (nil, nil) when absent.
func (r *MockStoreRepository) GetByID(_ context.Context, id string) (*models.Store, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	store, ok := r.stores[id]
	if !ok {
		return nil, nil
	}
	return &store, nil
}

// GetByIDAndUser returns a store only when the user owns it.
func (r *MockStoreRepository) GetByIDAndUser(_ context.Context, id, userID string) (*models.Store, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	store, ok := r.stores[id]
	if !ok || store.UserID != userID {
		return nil, nil
	}
	return &store, nil
}

// ListByUser returns all stores owned by a user.
func (r *MockStoreRepository) ListByUser(_ context.Context, userID string) ([]models.Store, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	storeList := make([]models.Store, 0)
	for _, s := range r.stores {
		if s.UserID == userID {
			storeList = append(storeList, s)
		}
	}
	return storeList, nil
}
