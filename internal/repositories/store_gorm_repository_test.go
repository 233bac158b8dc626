package repositories_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storeadmin/internal/models"
	"storeadmin/internal/repositories"
)

func TestGORMStoreRepository_OwnershipLookup(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewGORMStoreRepository(db)
	ctx := context.Background()

	store := &models.Store{Name: "Main", UserID: "user-1"}
	require.NoError(t, repo.Create(ctx, store))
	assert.NotEmpty(t, store.ID)

	// The owner resolves the store.
	got, err := repo.GetByIDAndUser(ctx, store.ID, "user-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, store.ID, got.ID)

	// Anyone else does not, even with the right store id.
	got, err = repo.GetByIDAndUser(ctx, store.ID, "intruder")
	assert.NoError(t, err)
	assert.Nil(t, got)

	// Unknown store id resolves nothing for anyone.
	got, err = repo.GetByIDAndUser(ctx, "ghost", "user-1")
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestGORMStoreRepository_ListByUser(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewGORMStoreRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.Store{Name: "One", UserID: "user-1"}))
	require.NoError(t, repo.Create(ctx, &models.Store{Name: "Two", UserID: "user-1"}))
	require.NoError(t, repo.Create(ctx, &models.Store{Name: "Other", UserID: "user-2"}))

	stores, err := repo.ListByUser(ctx, "user-1")
	require.NoError(t, err)
	assert.Len(t, stores, 2)
}

func TestGORMCatalogRepository_ReferenceEntities(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewGORMCatalogRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.CreateBillboard(ctx, &models.Billboard{StoreID: "store-1", Label: "Summer"}))
	require.NoError(t, repo.CreateCategory(ctx, &models.Category{StoreID: "store-1", Name: "Shirts"}))
	require.NoError(t, repo.CreateSize(ctx, &models.Size{StoreID: "store-1", Name: "Large", Value: "L"}))
	color := &models.Color{StoreID: "store-1", Name: "Red", Value: "#FF0000"}
	require.NoError(t, repo.CreateColor(ctx, color))

	billboards, err := repo.ListBillboards(ctx, "store-1")
	require.NoError(t, err)
	assert.Len(t, billboards, 1)

	categories, err := repo.ListCategories(ctx, "store-1")
	require.NoError(t, err)
	require.Len(t, categories, 1)
	assert.Equal(t, "Shirts", categories[0].Name)

	sizes, err := repo.ListSizes(ctx, "store-1")
	require.NoError(t, err)
	assert.Len(t, sizes, 1)

	got, err := repo.GetColor(ctx, color.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "#FF0000", got.Value)

	// Another store sees none of them.
	categories, err = repo.ListCategories(ctx, "store-2")
	require.NoError(t, err)
	assert.Empty(t, categories)
}
