package repositories

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"storeadmin/internal/models"
)

// MockCatalogRepository is an in-memory implementation of CatalogRepository.
type MockCatalogRepository struct {
	billboards map[string]models.Billboard
	categories map[string]models.Category
	sizes      map[string]models.Size
	colors     map[string]models.Color
	mu         sync.RWMutex
}

// NewMockCatalogRepository creates a new instance of MockCatalogRepository.
func NewMockCatalogRepository() *MockCatalogRepository {
	return &MockCatalogRepository{
		billboards: make(map[string]models.Billboard),
		categories: make(map[string]models.Category),
		sizes:      make(map[string]models.Size),
		colors:     make(map[string]models.Color),
	}
}

func (r *MockCatalogRepository) CreateBillboard(_ context.Context, billboard *models.Billboard) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if billboard.ID == "" {
		billboard.ID = uuid.New().String()
	}
	r.billboards[billboard.ID] = *billboard
	return nil
}

func (r *MockCatalogRepository) GetBillboard(_ context.Context, id string) (*models.Billboard, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	billboard, ok := r.billboards[id]
	if !ok {
		return nil, nil
	}
	return &billboard, nil
}

func (r *MockCatalogRepository) ListBillboards(_ context.Context, storeID string) ([]models.Billboard, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]models.Billboard, 0)
	for _, b := range r.billboards {
		if b.StoreID == storeID {
			list = append(list, b)
		}
	}
	return list, nil
}

func (r *MockCatalogRepository) CreateCategory(_ context.Context, category *models.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if category.ID == "" {
		category.ID = uuid.New().String()
	}
	r.categories[category.ID] = *category
	return nil
}

func (r *MockCatalogRepository) GetCategory(_ context.Context, id string) (*models.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	category, ok := r.categories[id]
	if !ok {
		return nil, nil
	}
	return &category, nil
}

func (r *MockCatalogRepository) ListCategories(_ context.Context, storeID string) ([]models.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]models.Category, 0)
	for _, c := range r.categories {
		if c.StoreID == storeID {
			list = append(list, c)
		}
	}
	return list, nil
}

func (r *MockCatalogRepository) CreateSize(_ context.Context, size *models.Size) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if size.ID == "" {
		size.ID = uuid.New().String()
	}
	r.sizes[size.ID] = *size
	return nil
}

func (r *MockCatalogRepository) GetSize(_ context.Context, id string) (*models.Size, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	size, ok := r.sizes[id]
	if !ok {
		return nil, nil
	}
	return &size, nil
}

func (r *MockCatalogRepository) ListSizes(_ context.Context, storeID string) ([]models.Size, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]models.Size, 0)
	for _, s := range r.sizes {
		if s.StoreID == storeID {
			list = append(list, s)
		}
	}
	return list, nil
}

func (r *MockCatalogRepository) CreateColor(_ context.Context, color *models.Color) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if color.ID == "" {
		color.ID = uuid.New().String()
	}
	r.colors[color.ID] = *color
	return nil
}

func (r *MockCatalogRepository) GetColor(_ context.Context, id string) (*models.Color, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	color, ok := r.colors[id]
	if !ok {
		return nil, nil
	}
	return &color, nil
}

func (r *MockCatalogRepository) ListColors(_ context.Context, storeID string) ([]models.Color, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]models.Color, 0)
	for _, c := range r.colors {
		if c.StoreID == storeID {
			list = append(list, c)
		}
	}
	return list, nil
}
