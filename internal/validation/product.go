// Package validation holds the declarative product form schema: it turns an
// arbitrary payload into either a normalized value object or a set of
// field-level errors. No business rule (store ownership, referential
// integrity) is checked here.
package validation

import (
	"github.com/shopspring/decimal"
)

// ImageValue is a single image entry in a product payload.
type ImageValue struct {
	URL string `json:"url"`
}

// ProductPayload is the wire shape of a product create/update request.
// Price unmarshals from a JSON number or a numeric string (decimal handles
// both), matching the coerce-then-check rule of the form schema.
type ProductPayload struct {
	Name       string          `json:"name"`
	Images     []ImageValue    `json:"image"`
	Price      decimal.Decimal `json:"price"`
	CategoryID string          `json:"categoryId"`
	SizeID     string          `json:"sizeId"`
	ColorID    string          `json:"colorId"`
	IsFeatured *bool           `json:"isFeatured,omitempty"`
	IsArchived *bool           `json:"isArchived,omitempty"`
}

// ProductFormValues is the normalized result of a successful validation.
// Absent boolean flags default to false.
type ProductFormValues struct {
	Name       string
	Images     []ImageValue
	Price      decimal.Decimal
	CategoryID string
	SizeID     string
	ColorID    string
	IsFeatured bool
	IsArchived bool
}

// FieldErrors maps payload field names to a human-readable error.
type FieldErrors map[string]string

var one = decimal.NewFromInt(1)

// Validate checks the whole payload atomically and returns either the
// normalized values or every field error at once. A zero price is reported
// as missing, not as below-minimum: falsy zero collapses into "required".
func Validate(p ProductPayload) (*ProductFormValues, FieldErrors) {
	errs := FieldErrors{}

	if p.Name == "" {
		errs["name"] = "Name is required"
	}
	if len(p.Images) == 0 {
		errs["image"] = "Images are required"
	}
	if p.Price.IsZero() {
		errs["price"] = "Price is required"
	} else if p.Price.LessThan(one) {
		errs["price"] = "Price must be at least 1"
	}
	if p.CategoryID == "" {
		errs["categoryId"] = "Category id is required"
	}
	if p.SizeID == "" {
		errs["sizeId"] = "Size id is required"
	}
	if p.ColorID == "" {
		errs["colorId"] = "Color id is required"
	}

	if len(errs) > 0 {
		return nil, errs
	}

	values := &ProductFormValues{
		Name:       p.Name,
		Images:     p.Images,
		Price:      p.Price,
		CategoryID: p.CategoryID,
		SizeID:     p.SizeID,
		ColorID:    p.ColorID,
	}
	if p.IsFeatured != nil {
		values.IsFeatured = *p.IsFeatured
	}
	if p.IsArchived != nil {
		values.IsArchived = *p.IsArchived
	}
	return values, nil
}
