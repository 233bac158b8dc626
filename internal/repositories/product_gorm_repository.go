package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"storeadmin/internal/models"
)

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{db: db}
}

// orderedImages preloads image rows sorted by their position ordinal.
// Unordered preloads follow physical row order, which the database is free
// to change after the delete+re-insert cycle of an update.
func orderedImages(db *gorm.DB) *gorm.DB {
	return db.Order("position")
}

// GetByID retrieves a product together with its images, category, size and
// color. It returns (nil, nil) when no product matches.
func (r *GORMProductRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	var product models.Product
	err := r.db.WithContext(ctx).
		Preload("Images", orderedImages).
		Preload("Category").
		Preload("Size").
		Preload("Color").
		First(&product, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get product by ID %s: %w", id, err)
	}
	return &product, nil
}

// ListByStore retrieves all products of a store with their images.
func (r *GORMProductRepository) ListByStore(ctx context.Context, storeID string) ([]models.Product, error) {
	var products []models.Product
	err := r.db.WithContext(ctx).
		Preload("Images", orderedImages).
		Order("created_at DESC").
		Find(&products, "store_id = ?", storeID).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list products for store %s: %w", storeID, err)
	}
	return products, nil
}

// Create inserts a new product with its image rows.
func (r *GORMProductRepository) Create(ctx context.Context, product *models.Product) error {
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
	if err := r.db.WithContext(ctx).Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// Update replaces all scalar fields of the product and its whole image set.
// The scalar update, the image delete and the image insert run in one
// transaction, so a reader never observes a product with zero images.
func (r *GORMProductRepository) Update(ctx context.Context, product *models.Product) (*models.Product, error) {
	images := product.Images
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Map form includes zero values, so false flags overwrite true ones.
		res := tx.Model(&models.Product{}).Where("id = ?", product.ID).Updates(map[string]interface{}{
			"name":        product.Name,
			"price":       product.Price,
			"category_id": product.CategoryID,
			"size_id":     product.SizeID,
			"color_id":    product.ColorID,
			"is_featured": product.IsFeatured,
			"is_archived": product.IsArchived,
		})
		if res.Error != nil {
			return fmt.Errorf("failed to update product: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("product with ID %s not found for update", product.ID)
		}

		if err := tx.Where("product_id = ?", product.ID).Delete(&models.Image{}).Error; err != nil {
			return fmt.Errorf("failed to clear product images: %w", err)
		}

		for i := range images {
			images[i].ID = uuid.New().String()
			images[i].ProductID = product.ID
			images[i].Position = i
		}
		if len(images) > 0 {
			if err := tx.Create(&images).Error; err != nil {
				return fmt.Errorf("failed to insert product images: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	var updated models.Product
	if err := r.db.WithContext(ctx).Preload("Images", orderedImages).First(&updated, "id = ?", product.ID).Error; err != nil {
		return nil, fmt.Errorf("failed to reload product %s: %w", product.ID, err)
	}
	return &updated, nil
}

// Delete removes a product by id, cascading to its image rows. A zero
// match is not an error; the caller receives the affected row count.
func (r *GORMProductRepository) Delete(ctx context.Context, id string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// SQLite test databases have no FK cascade enabled by default, so
		// the image rows are removed explicitly.
		if err := tx.Where("product_id = ?", id).Delete(&models.Image{}).Error; err != nil {
			return fmt.Errorf("failed to delete product images: %w", err)
		}
		res := tx.Delete(&models.Product{}, "id = ?", id)
		if res.Error != nil {
			return fmt.Errorf("failed to delete product: %w", res.Error)
		}
		count = res.RowsAffected
		return nil
	})
	return count, err
}
