package services

import (
	"context"

	"storeadmin/internal/models"
	"storeadmin/internal/repositories"
)

// CatalogService serves the read-only reference entities the product form
// offers as selectable options.
type CatalogService struct {
	repo repositories.CatalogRepository
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(repo repositories.CatalogRepository) *CatalogService {
	return &CatalogService{repo: repo}
}

func (s *CatalogService) ListBillboards(ctx context.Context, storeID string) ([]models.Billboard, error) {
	return s.repo.ListBillboards(ctx, storeID)
}

func (s *CatalogService) GetBillboard(ctx context.Context, id string) (*models.Billboard, error) {
	if id == "" {
		return nil, models.RequiredFieldError("Billboard id")
	}
	return s.repo.GetBillboard(ctx, id)
}

func (s *CatalogService) ListCategories(ctx context.Context, storeID string) ([]models.Category, error) {
	return s.repo.ListCategories(ctx, storeID)
}

func (s *CatalogService) GetCategory(ctx context.Context, id string) (*models.Category, error) {
	if id == "" {
		return nil, models.RequiredFieldError("Category id")
	}
	return s.repo.GetCategory(ctx, id)
}

func (s *CatalogService) ListSizes(ctx context.Context, storeID string) ([]models.Size, error) {
	return s.repo.ListSizes(ctx, storeID)
}

func (s *CatalogService) GetSize(ctx context.Context, id string) (*models.Size, error) {
	if id == "" {
		return nil, models.RequiredFieldError("Size id")
	}
	return s.repo.GetSize(ctx, id)
}

func (s *CatalogService) ListColors(ctx context.Context, storeID string) ([]models.Color, error) {
	return s.repo.ListColors(ctx, storeID)
}

func (s *CatalogService) GetColor(ctx context.Context, id string) (*models.Color, error) {
	if id == "" {
		return nil, models.RequiredFieldError("Color id")
	}
	return s.repo.GetColor(ctx, id)
}
