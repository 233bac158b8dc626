package repositories

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"storeadmin/internal/models"
)

// MockProductRepository is an in-memory implementation of ProductRepository.
type MockProductRepository struct {
	products map[string]models.Product
	mu       sync.RWMutex
}

// NewMockProductRepository creates a new instance of MockProductRepository.
func NewMockProductRepository() *MockProductRepository {
	return &MockProductRepository{
		products: make(map[string]models.Product),
	}
}

// GetByID returns a product by its ID, or (nil, nil) when absent.
func (r *MockProductRepository) GetByID(_ context.Context, id string) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	return cloneProduct(product), nil
}

// ListByStore returns all products of a store.
func (r *MockProductRepository) ListByStore(_ context.Context, storeID string) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	productList := make([]models.Product, 0)
	for _, p := range r.products {
		if p.StoreID == storeID {
			productList = append(productList, *cloneProduct(p))
		}
	}
	return productList, nil
}

// Create adds a new product.
func (r *MockProductRepository) Create(_ context.Context, product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	for i := range product.Images {
		if product.Images[i].ID == "" {
			product.Images[i].ID = uuid.New().String()
		}
		product.Images[i].ProductID = product.ID
		product.Images[i].Position = i
	}
	r.products[product.ID] = *cloneProduct(*product)
	return nil
}

// Update replaces the scalar fields and the image set of a product.
func (r *MockProductRepository) Update(_ context.Context, product *models.Product) (*models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.products[product.ID]
	if !ok {
		return nil, fmt.Errorf("product with ID %s not found for update", product.ID)
	}

	existing.Name = product.Name
	existing.Price = product.Price
	existing.CategoryID = product.CategoryID
	existing.SizeID = product.SizeID
	existing.ColorID = product.ColorID
	existing.IsFeatured = product.IsFeatured
	existing.IsArchived = product.IsArchived
	existing.Images = nil
	for i, img := range product.Images {
		img.ID = uuid.New().String()
		img.ProductID = product.ID
		img.Position = i
		existing.Images = append(existing.Images, img)
	}
	r.products[product.ID] = existing
	return cloneProduct(existing), nil
}

// Delete removes a product by its ID, reporting the matched row count.
func (r *MockProductRepository) Delete(_ context.Context, id string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[id]; !ok {
		return 0, nil
	}
	delete(r.products, id)
	return 1, nil
}

func cloneProduct(p models.Product) *models.Product {
	cp := p
	cp.Images = append([]models.Image(nil), p.Images...)
	return &cp
}
