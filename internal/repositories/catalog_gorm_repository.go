package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"storeadmin/internal/models"
)

// GORMCatalogRepository is a GORM implementation of CatalogRepository.
type GORMCatalogRepository struct {
	db *gorm.DB
}

// NewGORMCatalogRepository creates a new instance of GORMCatalogRepository.
func NewGORMCatalogRepository(db *gorm.DB) *GORMCatalogRepository {
	return &GORMCatalogRepository{db: db}
}

func (r *GORMCatalogRepository) CreateBillboard(ctx context.Context, billboard *models.Billboard) error {
	if billboard.ID == "" {
		billboard.ID = uuid.New().String()
	}
	if err := r.db.WithContext(ctx).Create(billboard).Error; err != nil {
		return fmt.Errorf("failed to create billboard: %w", err)
	}
	return nil
}

func (r *GORMCatalogRepository) GetBillboard(ctx context.Context, id string) (*models.Billboard, error) {
	var billboard models.Billboard
	if err := r.db.WithContext(ctx).First(&billboard, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get billboard by ID %s: %w", id, err)
	}
	return &billboard, nil
}

func (r *GORMCatalogRepository) ListBillboards(ctx context.Context, storeID string) ([]models.Billboard, error) {
	var billboards []models.Billboard
	if err := r.db.WithContext(ctx).Find(&billboards, "store_id = ?", storeID).Error; err != nil {
		return nil, fmt.Errorf("failed to list billboards for store %s: %w", storeID, err)
	}
	return billboards, nil
}

func (r *GORMCatalogRepository) CreateCategory(ctx context.Context, category *models.Category) error {
	if category.ID == "" {
		category.ID = uuid.New().String()
	}
	if err := r.db.WithContext(ctx).Create(category).Error; err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}
	return nil
}

func (r *GORMCatalogRepository) GetCategory(ctx context.Context, id string) (*models.Category, error) {
	var category models.Category
	if err := r.db.WithContext(ctx).First(&category, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get category by ID %s: %w", id, err)
	}
	return &category, nil
}

func (r *GORMCatalogRepository) ListCategories(ctx context.Context, storeID string) ([]models.Category, error) {
	var categories []models.Category
	if err := r.db.WithContext(ctx).Find(&categories, "store_id = ?", storeID).Error; err != nil {
		return nil, fmt.Errorf("failed to list categories for store %s: %w", storeID, err)
	}
	return categories, nil
}

func (r *GORMCatalogRepository) CreateSize(ctx context.Context, size *models.Size) error {
	if size.ID == "" {
		size.ID = uuid.New().String()
	}
	if err := r.db.WithContext(ctx).Create(size).Error; err != nil {
		return fmt.Errorf("failed to create size: %w", err)
	}
	return nil
}

func (r *GORMCatalogRepository) GetSize(ctx context.Context, id string) (*models.Size, error) {
	var size models.Size
	if err := r.db.WithContext(ctx).First(&size, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get size by ID %s: %w", id, err)
	}
	return &size, nil
}

func (r *GORMCatalogRepository) ListSizes(ctx context.Context, storeID string) ([]models.Size, error) {
	var sizes []models.Size
	if err := r.db.WithContext(ctx).Find(&sizes, "store_id = ?", storeID).Error; err != nil {
		return nil, fmt.Errorf("failed to list sizes for store %s: %w", storeID, err)
	}
	return sizes, nil
}

func (r *GORMCatalogRepository) CreateColor(ctx context.Context, color *models.Color) error {
	if color.ID == "" {
		color.ID = uuid.New().String()
	}
	if err := r.db.WithContext(ctx).Create(color).Error; err != nil {
		return fmt.Errorf("failed to create color: %w", err)
	}
	return nil
}

func (r *GORMCatalogRepository) GetColor(ctx context.Context, id string) (*models.Color, error) {
	var color models.Color
	if err := r.db.WithContext(ctx).First(&color, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get color by ID %s: %w", id, err)
	}
	return &color, nil
}

func (r *GORMCatalogRepository) ListColors(ctx context.Context, storeID string) ([]models.Color, error) {
	var colors []models.Color
	if err := r.db.WithContext(ctx).Find(&colors, "store_id = ?", storeID).Error; err != nil {
		return nil, fmt.Errorf("failed to list colors for store %s: %w", storeID, err)
	}
	return colors, nil
}
