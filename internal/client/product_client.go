// Package client is the thin HTTP client the product form drives: one
// round trip per mutation, no retries, and every failure collapsed into a
// uniform signal the form can turn into a generic notification.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"storeadmin/internal/models"
	"storeadmin/internal/validation"
)

var (
	// ErrRequestFailed covers network errors and every non-2xx response.
	ErrRequestFailed = errors.New("product request failed")
	// ErrRequestTimeout is returned when the per-request deadline expires.
	ErrRequestTimeout = errors.New("product request timed out")
)

// DefaultTimeout bounds each mutation round trip.
const DefaultTimeout = 10 * time.Second

// ProductClient performs product mutations against the admin API.
type ProductClient struct {
	baseURL    string
	token      string
	timeout    time.Duration
	httpClient *http.Client
}

// NewProductClient creates a client rooted at baseURL (e.g. "http://host/api").
func NewProductClient(baseURL string) *ProductClient {
	return &ProductClient{
		baseURL:    baseURL,
		timeout:    DefaultTimeout,
		httpClient: &http.Client{},
	}
}

// SetToken sets the bearer token attached to every request.
func (c *ProductClient) SetToken(token string) {
	c.token = token
}

// SetTimeout overrides the per-request deadline.
func (c *ProductClient) SetTimeout(d time.Duration) {
	c.timeout = d
}

// Create creates a product under a store.
func (c *ProductClient) Create(ctx context.Context, storeID string, values validation.ProductFormValues) (*models.Product, error) {
	var product models.Product
	path := fmt.Sprintf("%s/%s/products", c.baseURL, storeID)
	if err := c.do(ctx, http.MethodPost, path, payloadFromValues(values), &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// Update replaces a product's fields and image set.
func (c *ProductClient) Update(ctx context.Context, storeID, productID string, values validation.ProductFormValues) (*models.Product, error) {
	var product models.Product
	path := fmt.Sprintf("%s/%s/products/%s", c.baseURL, storeID, productID)
	if err := c.do(ctx, http.MethodPatch, path, payloadFromValues(values), &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// Delete removes a product.
func (c *ProductClient) Delete(ctx context.Context, storeID, productID string) (*models.DeleteResult, error) {
	var result models.DeleteResult
	path := fmt.Sprintf("%s/%s/products/%s", c.baseURL, storeID, productID)
	if err := c.do(ctx, http.MethodDelete, path, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *ProductClient) do(ctx context.Context, method, url string, body interface{}, out interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return ErrRequestFailed
		}
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return ErrRequestFailed
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || ctx.Err() != nil {
			return ErrRequestTimeout
		}
		return ErrRequestFailed
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return ErrRequestFailed
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return ErrRequestFailed
		}
	}
	return nil
}

func payloadFromValues(v validation.ProductFormValues) validation.ProductPayload {
	featured := v.IsFeatured
	archived := v.IsArchived
	return validation.ProductPayload{
		Name:       v.Name,
		Images:     v.Images,
		Price:      v.Price,
		CategoryID: v.CategoryID,
		SizeID:     v.SizeID,
		ColorID:    v.ColorID,
		IsFeatured: &featured,
		IsArchived: &archived,
	}
}
