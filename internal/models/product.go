package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product represents a sellable catalog item belonging to a store.
// Category, Size and Color are preloaded only on single-product reads.
type Product struct {
	ID         string          `json:"id" gorm:"primaryKey;type:varchar(36)"`
	StoreID    string          `json:"storeId" gorm:"index;type:varchar(36)"`
	CategoryID string          `json:"categoryId" gorm:"index;type:varchar(36)"`
	SizeID     string          `json:"sizeId" gorm:"type:varchar(36)"`
	ColorID    string          `json:"colorId" gorm:"type:varchar(36)"`
	Name       string          `json:"name" gorm:"type:varchar(255)"`
	Price      decimal.Decimal `json:"price" gorm:"type:decimal(12,2)"`
	IsFeatured bool            `json:"isFeatured"`
	IsArchived bool            `json:"isArchived"`
	Images     []Image         `json:"image" gorm:"constraint:OnDelete:CASCADE"`
	Category   *Category       `json:"category,omitempty"`
	Size       *Size           `json:"size,omitempty"`
	Color      *Color          `json:"color,omitempty"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}

// Image is a product photo. Images have no lifecycle of their own: they are
// created and destroyed only as part of a product mutation. Position is the
// zero-based slot within the product's image list; payload order is the only
// order, so reads must sort by it rather than rely on row order.
type Image struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	ProductID string    `json:"productId" gorm:"index;type:varchar(36)"`
	URL       string    `json:"url" gorm:"type:varchar(2048)"`
	Position  int       `json:"-" gorm:"index"`
	CreatedAt time.Time `json:"createdAt"`
}

// DeleteResult reports the outcome of a delete-by-id operation. Deleting an
// id that does not exist is a zero-count success, not an error.
type DeleteResult struct {
	Count int64 `json:"count"`
}
