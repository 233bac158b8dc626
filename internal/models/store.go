package models

import "time"

// Store is a tenant-scoped catalog owned by exactly one user. Every catalog
// mutation must first confirm the caller owns the store named in the path.
type Store struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name      string    `json:"name" gorm:"type:varchar(255)" validate:"required,min=1,max=255"`
	UserID    string    `json:"userId" gorm:"index;type:varchar(36)"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Billboard is a promotional banner scoped to a store.
type Billboard struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	StoreID   string    `json:"storeId" gorm:"index;type:varchar(36)"`
	Label     string    `json:"label" gorm:"type:varchar(255)"`
	ImageURL  string    `json:"imageUrl" gorm:"type:varchar(2048)"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Category groups products within a store. It may be attached to a billboard.
type Category struct {
	ID          string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	StoreID     string    `json:"storeId" gorm:"index;type:varchar(36)"`
	BillboardID string    `json:"billboardId,omitempty" gorm:"type:varchar(36)"`
	Name        string    `json:"name" gorm:"type:varchar(255)"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Size is a store-scoped size option (e.g. "Large" / "L").
type Size struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	StoreID   string    `json:"storeId" gorm:"index;type:varchar(36)"`
	Name      string    `json:"name" gorm:"type:varchar(255)"`
	Value     string    `json:"value" gorm:"type:varchar(255)"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Color is a store-scoped color option (e.g. "Red" / "#FF0000").
type Color struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	StoreID   string    `json:"storeId" gorm:"index;type:varchar(36)"`
	Name      string    `json:"name" gorm:"type:varchar(255)"`
	Value     string    `json:"value" gorm:"type:varchar(255)"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
