package services

import (
	"context"
	"fmt"

	"storeadmin/internal/models"
	"storeadmin/internal/repositories"
)

// StoreService handles store creation and listing for the owning user.
type StoreService struct {
	storeRepo repositories.StoreRepository
}

// NewStoreService creates a new StoreService.
func NewStoreService(storeRepo repositories.StoreRepository) *StoreService {
	return &StoreService{storeRepo: storeRepo}
}

// CreateStore creates a store owned by the calling user.
func (s *StoreService) CreateStore(ctx context.Context, userID, name string) (*models.Store, error) {
	if userID == "" {
		return nil, models.ErrUnauthenticated
	}
	if name == "" {
		return nil, models.RequiredFieldError("Name")
	}
	store := &models.Store{Name: name, UserID: userID}
	if err := s.storeRepo.Create(ctx, store); err != nil {
		return nil, fmt.Errorf("failed to create store: %w", err)
	}
	return store, nil
}

// ListStores returns all stores owned by the calling user.
func (s *StoreService) ListStores(ctx context.Context, userID string) ([]models.Store, error) {
	if userID == "" {
		return nil, models.ErrUnauthenticated
	}
	return s.storeRepo.ListByUser(ctx, userID)
}
