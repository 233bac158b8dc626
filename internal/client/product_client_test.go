package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storeadmin/internal/client"
	"storeadmin/internal/validation"
)

func formValues() validation.ProductFormValues {
	return validation.ProductFormValues{
		Name:       "Linen Shirt",
		Images:     []validation.ImageValue{{URL: "u1"}},
		Price:      decimal.NewFromFloat(29.99),
		CategoryID: "cat-1",
		SizeID:     "size-1",
		ColorID:    "color-1",
	}
}

func TestProductClient_Update(t *testing.T) {
	var gotMethod, gotPath, gotAuth string
	var gotBody map[string]interface{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"prod-1","name":"Linen Shirt"}`))
	}))
	defer server.Close()

	c := client.NewProductClient(server.URL + "/api")
	c.SetToken("tok-123")

	product, err := c.Update(context.Background(), "store-1", "prod-1", formValues())
	require.NoError(t, err)

	assert.Equal(t, http.MethodPatch, gotMethod)
	assert.Equal(t, "/api/store-1/products/prod-1", gotPath)
	assert.Equal(t, "Bearer tok-123", gotAuth)
	assert.Equal(t, "Linen Shirt", gotBody["name"])
	assert.Equal(t, "prod-1", product.ID)
}

func TestProductClient_Create(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/store-1/products", r.URL.Path)
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":"prod-9"}`))
	}))
	defer server.Close()

	c := client.NewProductClient(server.URL + "/api")
	product, err := c.Create(context.Background(), "store-1", formValues())
	require.NoError(t, err)
	assert.Equal(t, "prod-9", product.ID)
}

func TestProductClient_Delete(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		w.Write([]byte(`{"count":1}`))
	}))
	defer server.Close()

	c := client.NewProductClient(server.URL + "/api")
	result, err := c.Delete(context.Background(), "store-1", "prod-1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.Count)
}

func TestProductClient_FailuresAreUniform(t *testing.T) {
	statuses := []int{http.StatusBadRequest, http.StatusUnauthorized, http.StatusForbidden, http.StatusInternalServerError}
	for _, status := range statuses {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
			w.Write([]byte(`{"message":"whatever"}`))
		}))

		c := client.NewProductClient(server.URL + "/api")
		_, err := c.Update(context.Background(), "store-1", "prod-1", formValues())
		assert.ErrorIs(t, err, client.ErrRequestFailed, "status %d", status)
		server.Close()
	}

	// Connection failures collapse to the same signal.
	c := client.NewProductClient("http://127.0.0.1:1/api")
	_, err := c.Delete(context.Background(), "store-1", "prod-1")
	assert.ErrorIs(t, err, client.ErrRequestFailed)
}

func TestProductClient_Timeout(t *testing.T) {
	block := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-block
	}))
	defer server.Close()
	defer close(block)

	c := client.NewProductClient(server.URL + "/api")
	c.SetTimeout(50 * time.Millisecond)

	_, err := c.Update(context.Background(), "store-1", "prod-1", formValues())
	assert.ErrorIs(t, err, client.ErrRequestTimeout)
}
