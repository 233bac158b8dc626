package services_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"storeadmin/internal/models"
	"storeadmin/internal/services"
	"storeadmin/internal/validation"
)

// MockProductRepository is a mock implementation of repositories.ProductRepository.
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) ListByStore(ctx context.Context, storeID string) ([]models.Product, error) {
	args := m.Called(ctx, storeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) Create(ctx context.Context, product *models.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) Update(ctx context.Context, product *models.Product) (*models.Product, error) {
	args := m.Called(ctx, product)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) Delete(ctx context.Context, id string) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

// MockStoreRepository is a mock implementation of repositories.StoreRepository.
type MockStoreRepository struct {
	mock.Mock
}

func (m *MockStoreRepository) Create(ctx context.Context, store *models.Store) error {
	args := m.Called(ctx, store)
	return args.Error(0)
}

func (m *MockStoreRepository) GetByID(ctx context.Context, id string) (*models.Store, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Store), args.Error(1)
}

func (m *MockStoreRepository) GetByIDAndUser(ctx context.Context, id, userID string) (*models.Store, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Store), args.Error(1)
}

func (m *MockStoreRepository) ListByUser(ctx context.Context, userID string) ([]models.Store, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Store), args.Error(1)
}

// MockEventPublisher is a mock implementation of services.EventPublisher.
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) PublishCatalogEvent(event string, payload map[string]interface{}) error {
	args := m.Called(event, payload)
	return args.Error(0)
}

func newProductService(productRepo *MockProductRepository, storeRepo *MockStoreRepository, publisher services.EventPublisher) *services.ProductService {
	return services.NewProductService(productRepo, storeRepo, publisher, zerolog.Nop())
}

func validProductPayload() validation.ProductPayload {
	return validation.ProductPayload{
		Name:       "Linen Shirt",
		Images:     []validation.ImageValue{{URL: "u1"}, {URL: "u2"}},
		Price:      decimal.NewFromFloat(29.99),
		CategoryID: "cat-1",
		SizeID:     "size-1",
		ColorID:    "color-1",
	}
}

func assertDomainError(t *testing.T, err error, code, message string) {
	t.Helper()
	var domainErr *models.DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, code, domainErr.Code)
	assert.Equal(t, message, domainErr.Message)
}

func TestProductService_UpdateUnauthenticated(t *testing.T) {
	productRepo := new(MockProductRepository)
	storeRepo := new(MockStoreRepository)
	service := newProductService(productRepo, storeRepo, nil)

	_, err := service.UpdateProduct(context.Background(), "", "store-1", "prod-1", validProductPayload())

	assertDomainError(t, err, models.ErrCodeUnauthenticated, "Unauthenticated")
	storeRepo.AssertNotCalled(t, "GetByIDAndUser", mock.Anything, mock.Anything, mock.Anything)
	productRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestProductService_UpdateMissingFields(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*validation.ProductPayload)
		message string
	}{
		{"name", func(p *validation.ProductPayload) { p.Name = "" }, "Name is required"},
		{"images", func(p *validation.ProductPayload) { p.Images = nil }, "Images are required"},
		{"price", func(p *validation.ProductPayload) { p.Price = decimal.Zero }, "Price is required"},
		{"category", func(p *validation.ProductPayload) { p.CategoryID = "" }, "Category id is required"},
		{"color", func(p *validation.ProductPayload) { p.ColorID = "" }, "Color id is required"},
		{"size", func(p *validation.ProductPayload) { p.SizeID = "" }, "Size id is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			productRepo := new(MockProductRepository)
			storeRepo := new(MockStoreRepository)
			service := newProductService(productRepo, storeRepo, nil)

			payload := validProductPayload()
			tt.mutate(&payload)

			_, err := service.UpdateProduct(context.Background(), "user-1", "store-1", "prod-1", payload)

			assertDomainError(t, err, models.ErrCodeValidation, tt.message)
			// Nothing reaches storage on a validation failure.
			storeRepo.AssertNotCalled(t, "GetByIDAndUser", mock.Anything, mock.Anything, mock.Anything)
			productRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		})
	}
}

func TestProductService_UpdateUnauthorized(t *testing.T) {
	productRepo := new(MockProductRepository)
	storeRepo := new(MockStoreRepository)
	service := newProductService(productRepo, storeRepo, nil)

	// No store matches the id+user pair: caller does not own the store.
	storeRepo.On("GetByIDAndUser", mock.Anything, "store-1", "intruder").Return(nil, nil).Once()

	_, err := service.UpdateProduct(context.Background(), "intruder", "store-1", "prod-1", validProductPayload())

	assertDomainError(t, err, models.ErrCodeUnauthorized, "Unauthorized")
	productRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	storeRepo.AssertExpectations(t)
}

func TestProductService_UpdateSuccess(t *testing.T) {
	productRepo := new(MockProductRepository)
	storeRepo := new(MockStoreRepository)
	publisher := new(MockEventPublisher)
	service := newProductService(productRepo, storeRepo, publisher)

	storeRepo.On("GetByIDAndUser", mock.Anything, "store-1", "user-1").
		Return(&models.Store{ID: "store-1", UserID: "user-1"}, nil).Once()

	var captured *models.Product
	productRepo.On("Update", mock.Anything, mock.AnythingOfType("*models.Product")).
		Run(func(args mock.Arguments) {
			captured = args.Get(1).(*models.Product)
		}).
		Return(&models.Product{ID: "prod-1", StoreID: "store-1"}, nil).Once()
	publisher.On("PublishCatalogEvent", "product.updated", mock.Anything).Return(nil).Once()

	updated, err := service.UpdateProduct(context.Background(), "user-1", "store-1", "prod-1", validProductPayload())

	assert.NoError(t, err)
	assert.Equal(t, "prod-1", updated.ID)
	assert.Equal(t, "prod-1", captured.ID)
	assert.Equal(t, "Linen Shirt", captured.Name)
	assert.Len(t, captured.Images, 2)
	assert.Equal(t, "u1", captured.Images[0].URL)
	productRepo.AssertExpectations(t)
	storeRepo.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestProductService_UpdatePublishFailureDoesNotFailMutation(t *testing.T) {
	productRepo := new(MockProductRepository)
	storeRepo := new(MockStoreRepository)
	publisher := new(MockEventPublisher)
	service := newProductService(productRepo, storeRepo, publisher)

	storeRepo.On("GetByIDAndUser", mock.Anything, "store-1", "user-1").
		Return(&models.Store{ID: "store-1", UserID: "user-1"}, nil).Once()
	productRepo.On("Update", mock.Anything, mock.Anything).
		Return(&models.Product{ID: "prod-1"}, nil).Once()
	publisher.On("PublishCatalogEvent", "product.updated", mock.Anything).
		Return(fmt.Errorf("broker down")).Once()

	_, err := service.UpdateProduct(context.Background(), "user-1", "store-1", "prod-1", validProductPayload())

	assert.NoError(t, err)
	publisher.AssertExpectations(t)
}

func TestProductService_CreateSuccess(t *testing.T) {
	productRepo := new(MockProductRepository)
	storeRepo := new(MockStoreRepository)
	service := newProductService(productRepo, storeRepo, nil)

	storeRepo.On("GetByIDAndUser", mock.Anything, "store-1", "user-1").
		Return(&models.Store{ID: "store-1", UserID: "user-1"}, nil).Once()
	productRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.Product")).Return(nil).Once()

	product, err := service.CreateProduct(context.Background(), "user-1", "store-1", validProductPayload())

	assert.NoError(t, err)
	assert.Equal(t, "store-1", product.StoreID)
	assert.False(t, product.IsFeatured)
	productRepo.AssertExpectations(t)
}

func TestProductService_DeleteUnauthenticated(t *testing.T) {
	productRepo := new(MockProductRepository)
	storeRepo := new(MockStoreRepository)
	service := newProductService(productRepo, storeRepo, nil)

	_, err := service.DeleteProduct(context.Background(), "", "store-1", "prod-1")

	assertDomainError(t, err, models.ErrCodeUnauthenticated, "Unauthenticated")
	productRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestProductService_DeleteUnauthorized(t *testing.T) {
	productRepo := new(MockProductRepository)
	storeRepo := new(MockStoreRepository)
	service := newProductService(productRepo, storeRepo, nil)

	storeRepo.On("GetByIDAndUser", mock.Anything, "store-1", "intruder").Return(nil, nil).Once()

	_, err := service.DeleteProduct(context.Background(), "intruder", "store-1", "prod-1")

	assertDomainError(t, err, models.ErrCodeUnauthorized, "Unauthorized")
	productRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestProductService_DeleteAbsentIsZeroCountSuccess(t *testing.T) {
	productRepo := new(MockProductRepository)
	storeRepo := new(MockStoreRepository)
	publisher := new(MockEventPublisher)
	service := newProductService(productRepo, storeRepo, publisher)

	storeRepo.On("GetByIDAndUser", mock.Anything, "store-1", "user-1").
		Return(&models.Store{ID: "store-1", UserID: "user-1"}, nil).Once()
	productRepo.On("Delete", mock.Anything, "ghost").Return(int64(0), nil).Once()

	result, err := service.DeleteProduct(context.Background(), "user-1", "store-1", "ghost")

	assert.NoError(t, err)
	assert.Equal(t, int64(0), result.Count)
	// No event for a no-op delete.
	publisher.AssertNotCalled(t, "PublishCatalogEvent", mock.Anything, mock.Anything)
}

func TestProductService_DeleteSuccess(t *testing.T) {
	productRepo := new(MockProductRepository)
	storeRepo := new(MockStoreRepository)
	publisher := new(MockEventPublisher)
	service := newProductService(productRepo, storeRepo, publisher)

	storeRepo.On("GetByIDAndUser", mock.Anything, "store-1", "user-1").
		Return(&models.Store{ID: "store-1", UserID: "user-1"}, nil).Once()
	productRepo.On("Delete", mock.Anything, "prod-1").Return(int64(1), nil).Once()
	publisher.On("PublishCatalogEvent", "product.deleted", mock.Anything).Return(nil).Once()

	result, err := service.DeleteProduct(context.Background(), "user-1", "store-1", "prod-1")

	assert.NoError(t, err)
	assert.Equal(t, int64(1), result.Count)
	publisher.AssertExpectations(t)
}

func TestProductService_GetProduct(t *testing.T) {
	productRepo := new(MockProductRepository)
	storeRepo := new(MockStoreRepository)
	service := newProductService(productRepo, storeRepo, nil)

	expected := &models.Product{ID: "prod-1", Name: "Shirt"}
	productRepo.On("GetByID", mock.Anything, "prod-1").Return(expected, nil).Once()

	product, err := service.GetProduct(context.Background(), "prod-1")
	assert.NoError(t, err)
	assert.Equal(t, expected, product)

	// Absent products are nil, not an error.
	productRepo.On("GetByID", mock.Anything, "ghost").Return(nil, nil).Once()
	product, err = service.GetProduct(context.Background(), "ghost")
	assert.NoError(t, err)
	assert.Nil(t, product)

	// Blank id is a validation error before any repository call.
	_, err = service.GetProduct(context.Background(), "")
	assertDomainError(t, err, models.ErrCodeValidation, "Product id is required")
	productRepo.AssertExpectations(t)
}
