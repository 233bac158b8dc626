package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"storeadmin/internal/models"
	"storeadmin/internal/repositories"
	"storeadmin/internal/validation"
)

// EventPublisher publishes catalog change events. The production
// implementation is the RabbitMQ client; a nil publisher disables events.
type EventPublisher interface {
	PublishCatalogEvent(event string, payload map[string]interface{}) error
}

// ProductService implements the product mutation workflow: required-field
// validation, the store ownership gate, and the repository operation.
type ProductService struct {
	productRepo repositories.ProductRepository
	storeRepo   repositories.StoreRepository
	publisher   EventPublisher
	logger      zerolog.Logger
}

// NewProductService creates a new ProductService.
func NewProductService(productRepo repositories.ProductRepository, storeRepo repositories.StoreRepository, publisher EventPublisher, logger zerolog.Logger) *ProductService {
	return &ProductService{
		productRepo: productRepo,
		storeRepo:   storeRepo,
		publisher:   publisher,
		logger:      logger,
	}
}

// GetProduct retrieves a product with its associations. Absence is not an
// error: the result is nil and the handler responds with a null body, the
// same non-distinguishing contract the delete path has.
func (s *ProductService) GetProduct(ctx context.Context, productID string) (*models.Product, error) {
	if productID == "" {
		return nil, models.RequiredFieldError("Product id")
	}
	return s.productRepo.GetByID(ctx, productID)
}

// ListProducts retrieves all products of a store.
func (s *ProductService) ListProducts(ctx context.Context, storeID string) ([]models.Product, error) {
	return s.productRepo.ListByStore(ctx, storeID)
}

// CreateProduct creates a product under a store the caller owns.
func (s *ProductService) CreateProduct(ctx context.Context, userID, storeID string, payload validation.ProductPayload) (*models.Product, error) {
	if userID == "" {
		return nil, models.ErrUnauthenticated
	}
	if err := requiredProductFields(payload); err != nil {
		return nil, err
	}
	if storeID == "" {
		return nil, models.RequiredFieldError("Store id")
	}
	if err := s.authorize(ctx, userID, storeID); err != nil {
		return nil, err
	}

	product := productFromPayload(storeID, payload)
	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to create product in repository: %w", err)
	}
	s.publish("product.created", product)
	return product, nil
}

// UpdateProduct replaces all scalar fields of a product and its whole image
// set. Check order mirrors the API contract: identity, required fields,
// path ids, then ownership; nothing is written before the last check passes.
func (s *ProductService) UpdateProduct(ctx context.Context, userID, storeID, productID string, payload validation.ProductPayload) (*models.Product, error) {
	if userID == "" {
		return nil, models.ErrUnauthenticated
	}
	if err := requiredProductFields(payload); err != nil {
		return nil, err
	}
	if productID == "" {
		return nil, models.RequiredFieldError("Product id")
	}
	if err := s.authorize(ctx, userID, storeID); err != nil {
		return nil, err
	}

	product := productFromPayload(storeID, payload)
	product.ID = productID
	updated, err := s.productRepo.Update(ctx, product)
	if err != nil {
		return nil, fmt.Errorf("failed to update product %s: %w", productID, err)
	}
	s.publish("product.updated", updated)
	return updated, nil
}

// DeleteProduct removes a product under a store the caller owns. Deleting
// an id with no matching row is a zero-count success.
func (s *ProductService) DeleteProduct(ctx context.Context, userID, storeID, productID string) (*models.DeleteResult, error) {
	if userID == "" {
		return nil, models.ErrUnauthenticated
	}
	if productID == "" {
		return nil, models.RequiredFieldError("Product id")
	}
	if err := s.authorize(ctx, userID, storeID); err != nil {
		return nil, err
	}

	count, err := s.productRepo.Delete(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to delete product %s: %w", productID, err)
	}
	if count > 0 {
		s.publish("product.deleted", &models.Product{ID: productID, StoreID: storeID})
	}
	return &models.DeleteResult{Count: count}, nil
}

// authorize is the ownership gate: the caller must own the store named in
// the request path before any mutation proceeds.
func (s *ProductService) authorize(ctx context.Context, userID, storeID string) error {
	store, err := s.storeRepo.GetByIDAndUser(ctx, storeID, userID)
	if err != nil {
		return fmt.Errorf("failed to check store ownership: %w", err)
	}
	if store == nil {
		return models.ErrUnauthorized
	}
	return nil
}

// requiredProductFields rejects the first missing or falsy field with its
// contractual message. A zero price counts as missing. Order: name, images,
// price, category, color, size.
func requiredProductFields(p validation.ProductPayload) error {
	if p.Name == "" {
		return models.RequiredFieldError("Name")
	}
	if len(p.Images) == 0 {
		return models.NewDomainError(models.ErrCodeValidation, "Images are required")
	}
	if p.Price.IsZero() {
		return models.RequiredFieldError("Price")
	}
	if p.CategoryID == "" {
		return models.RequiredFieldError("Category id")
	}
	if p.ColorID == "" {
		return models.RequiredFieldError("Color id")
	}
	if p.SizeID == "" {
		return models.RequiredFieldError("Size id")
	}
	return nil
}

func productFromPayload(storeID string, p validation.ProductPayload) *models.Product {
	product := &models.Product{
		StoreID:    storeID,
		Name:       p.Name,
		Price:      p.Price,
		CategoryID: p.CategoryID,
		SizeID:     p.SizeID,
		ColorID:    p.ColorID,
	}
	if p.IsFeatured != nil {
		product.IsFeatured = *p.IsFeatured
	}
	if p.IsArchived != nil {
		product.IsArchived = *p.IsArchived
	}
	for _, img := range p.Images {
		product.Images = append(product.Images, models.Image{URL: img.URL})
	}
	return product
}

// publish sends a best-effort catalog event. Failures are logged, never
// propagated: event delivery must not fail the mutation that succeeded.
func (s *ProductService) publish(event string, product *models.Product) {
	if s.publisher == nil {
		return
	}
	err := s.publisher.PublishCatalogEvent(event, map[string]interface{}{
		"productId": product.ID,
		"storeId":   product.StoreID,
	})
	if err != nil {
		s.logger.Warn().Err(err).Str("event", event).Str("productId", product.ID).
			Msg("failed to publish catalog event")
	}
}
