// Package form holds the product form state machine: field values bound to
// the validation schema, a loading flag that suppresses re-entry while a
// request is in flight, and a confirm-guarded delete. It has no UI of its
// own; notification and navigation are injected collaborators.
package form

import (
	"context"

	"github.com/shopspring/decimal"

	"storeadmin/internal/models"
	"storeadmin/internal/validation"
)

// Notification copy, distinct for create vs. edit.
const (
	msgCreated = "Product created."
	msgUpdated = "Product updated."
	msgDeleted = "Product deleted."
	msgFailed  = "Something went wrong."
)

// Mutator is the subset of the product client the form drives.
type Mutator interface {
	Create(ctx context.Context, storeID string, values validation.ProductFormValues) (*models.Product, error)
	Update(ctx context.Context, storeID, productID string, values validation.ProductFormValues) (*models.Product, error)
	Delete(ctx context.Context, storeID, productID string) (*models.DeleteResult, error)
}

// Notifier receives the user-facing outcome of a submit or delete.
type Notifier interface {
	Success(message string)
	Error(message string)
}

// Navigator triggers a product-list refresh and navigation after success.
type Navigator interface {
	Refresh()
	Push(path string)
}

// ProductForm mediates between field edits and the validation schema.
type ProductForm struct {
	storeID   string
	productID string // empty in create mode

	payload     validation.ProductPayload
	fieldErrors validation.FieldErrors
	loading     bool
	confirmOpen bool

	client    Mutator
	notifier  Notifier
	navigator Navigator
}

// NewProductForm builds a form either from an existing product (edit mode,
// price normalized through a float the way the form field carries it) or
// from all-default empty values (create mode).
func NewProductForm(storeID string, initial *models.Product, client Mutator, notifier Notifier, navigator Navigator) *ProductForm {
	f := &ProductForm{
		storeID:   storeID,
		client:    client,
		notifier:  notifier,
		navigator: navigator,
	}
	if initial != nil {
		f.productID = initial.ID
		featured := initial.IsFeatured
		archived := initial.IsArchived
		f.payload = validation.ProductPayload{
			Name:       initial.Name,
			Price:      decimal.NewFromFloat(initial.Price.InexactFloat64()),
			CategoryID: initial.CategoryID,
			SizeID:     initial.SizeID,
			ColorID:    initial.ColorID,
			IsFeatured: &featured,
			IsArchived: &archived,
		}
		for _, img := range initial.Images {
			f.payload.Images = append(f.payload.Images, validation.ImageValue{URL: img.URL})
		}
	}
	return f
}

// Values returns the current field values.
func (f *ProductForm) Values() validation.ProductPayload {
	return f.payload
}

// FieldErrors returns the per-field errors from the last submit attempt.
func (f *ProductForm) FieldErrors() validation.FieldErrors {
	return f.fieldErrors
}

// Loading reports whether a request is in flight; edits and submissions
// are ignored while true.
func (f *ProductForm) Loading() bool {
	return f.loading
}

// ConfirmOpen reports whether the delete confirmation is showing.
func (f *ProductForm) ConfirmOpen() bool {
	return f.confirmOpen
}

// EditMode reports whether the form edits an existing product.
func (f *ProductForm) EditMode() bool {
	return f.productID != ""
}

func (f *ProductForm) SetName(name string) {
	if f.loading {
		return
	}
	f.payload.Name = name
}

// SetPrice coerces numeric-looking input; anything unparsable leaves a zero
// price that validation reports as missing.
func (f *ProductForm) SetPrice(raw string) {
	if f.loading {
		return
	}
	price, err := decimal.NewFromString(raw)
	if err != nil {
		f.payload.Price = decimal.Zero
		return
	}
	f.payload.Price = price
}

func (f *ProductForm) SetCategory(id string) {
	if f.loading {
		return
	}
	f.payload.CategoryID = id
}

func (f *ProductForm) SetSize(id string) {
	if f.loading {
		return
	}
	f.payload.SizeID = id
}

func (f *ProductForm) SetColor(id string) {
	if f.loading {
		return
	}
	f.payload.ColorID = id
}

func (f *ProductForm) SetFeatured(v bool) {
	if f.loading {
		return
	}
	f.payload.IsFeatured = &v
}

func (f *ProductForm) SetArchived(v bool) {
	if f.loading {
		return
	}
	f.payload.IsArchived = &v
}

// AddImage appends a URL to the image list, preserving insertion order.
func (f *ProductForm) AddImage(url string) {
	if f.loading {
		return
	}
	f.payload.Images = append(f.payload.Images, validation.ImageValue{URL: url})
}

// RemoveImage drops every entry matching the URL exactly; the relative
// order of the remaining images is preserved.
func (f *ProductForm) RemoveImage(url string) {
	if f.loading {
		return
	}
	kept := f.payload.Images[:0]
	for _, img := range f.payload.Images {
		if img.URL != url {
			kept = append(kept, img)
		}
	}
	f.payload.Images = kept
}

// Submit validates the form and performs the create-or-update mutation.
// On success it refreshes the listing, navigates to it and emits the
// mode-specific success message; any failure emits the generic one. The
// loading flag is cleared on every path.
func (f *ProductForm) Submit(ctx context.Context) bool {
	if f.loading {
		return false
	}

	values, errs := validation.Validate(f.payload)
	f.fieldErrors = errs
	if errs != nil {
		return false
	}

	f.loading = true
	defer func() { f.loading = false }()

	var err error
	if f.EditMode() {
		_, err = f.client.Update(ctx, f.storeID, f.productID, *values)
	} else {
		_, err = f.client.Create(ctx, f.storeID, *values)
	}
	if err != nil {
		f.notifier.Error(msgFailed)
		return false
	}

	f.navigator.Refresh()
	f.navigator.Push("/" + f.storeID + "/products")
	if f.EditMode() {
		f.notifier.Success(msgUpdated)
	} else {
		f.notifier.Success(msgCreated)
	}
	return true
}

// RequestDelete opens the delete confirmation. Deleting is a guarded
// two-step interaction: nothing happens until ConfirmDelete.
func (f *ProductForm) RequestDelete() {
	if f.loading || !f.EditMode() {
		return
	}
	f.confirmOpen = true
}

// CancelDelete closes the confirmation without deleting.
func (f *ProductForm) CancelDelete() {
	f.confirmOpen = false
}

// ConfirmDelete performs the delete. In all outcomes the confirmation is
// closed and loading cleared; success refreshes, navigates away and
// notifies, failure emits the generic message.
func (f *ProductForm) ConfirmDelete(ctx context.Context) bool {
	if f.loading || !f.confirmOpen {
		return false
	}

	f.loading = true
	defer func() {
		f.loading = false
		f.confirmOpen = false
	}()

	if _, err := f.client.Delete(ctx, f.storeID, f.productID); err != nil {
		f.notifier.Error(msgFailed)
		return false
	}

	f.navigator.Refresh()
	f.navigator.Push("/" + f.storeID + "/products")
	f.notifier.Success(msgDeleted)
	return true
}
