package gormrepo_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/JustinArce/MicroservicioAlmacen/internal/models"
	"github.com/JustinArce/MicroservicioAlmacen/internal/repository"
	"github.com/JustinArce/MicroservicioAlmacen/internal/repository/gormrepo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupRepo opens a private in-memory SQLite database for the running test.
func setupRepo(t *testing.T) *gormrepo.ProductRepository {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := gormrepo.OpenSQLite(fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	repo := gormrepo.NewProductRepository(db)
	require.NoError(t, repo.InitializeSchema(context.Background()))
	return repo
}

func newProduct(name string) models.NewProduct {
	category := "Electronics"
	return models.NewProduct{
		Name:        name,
		Description: "4K display",
		Price:       399.99,
		Stock:       75,
		Category:    &category,
	}
}

func TestInitializeSchema_Idempotent(t *testing.T) {
	repo := setupRepo(t)
	assert.NoError(t, repo.InitializeSchema(context.Background()))
}

func TestInsert_AssignsSequentialIDs(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	first, err := repo.Insert(ctx, newProduct("Monitor"))
	require.NoError(t, err)
	second, err := repo.Insert(ctx, newProduct("Keyboard"))
	require.NoError(t, err)

	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, int64(2), second.ID)
	assert.Equal(t, "Keyboard", second.Name)
	assert.Equal(t, 399.99, second.Price)
	require.NotNil(t, second.Category)
	assert.Equal(t, "Electronics", *second.Category)
}

func TestInsert_WithoutCategory(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	p := newProduct("Cable")
	p.Category = nil
	created, err := repo.Insert(ctx, p)
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, got.Category)
}

func TestGetByID(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	created, err := repo.Insert(ctx, newProduct("Monitor"))
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	_, err = repo.GetByID(ctx, 42)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestListAll(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	products, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.NotNil(t, products)
	assert.Empty(t, products)

	for _, name := range []string{"A", "B", "C", "D"} {
		_, err := repo.Insert(ctx, newProduct(name))
		require.NoError(t, err)
	}

	products, err = repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, products, 4)
	for i, p := range products {
		assert.Equal(t, int64(i+1), p.ID)
	}
}

func TestUpdateFields_PartialUpdate(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	created, err := repo.Insert(ctx, newProduct("Monitor"))
	require.NoError(t, err)

	updated, err := repo.UpdateFields(ctx, created.ID, models.ProductPatch{Stock: models.Some(10)})
	require.NoError(t, err)
	assert.Equal(t, 10, updated.Stock)
	assert.Equal(t, created.Name, updated.Name)
	assert.Equal(t, created.Description, updated.Description)
	assert.Equal(t, created.Price, updated.Price)
	assert.Equal(t, created.Category, updated.Category)

	stored, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, updated, stored)
}

func TestUpdateFields_ZeroStockAndClearedCategory(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	created, err := repo.Insert(ctx, newProduct("Monitor"))
	require.NoError(t, err)

	_, err = repo.UpdateFields(ctx, created.ID, models.ProductPatch{
		Stock:    models.Some(0),
		Category: models.Null[string](),
	})
	require.NoError(t, err)

	stored, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, stored.Stock)
	assert.Nil(t, stored.Category)
}

func TestUpdateFields_NotFound(t *testing.T) {
	repo := setupRepo(t)

	_, err := repo.UpdateFields(context.Background(), 7, models.ProductPatch{Stock: models.Some(1)})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestDeleteByID(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	created, err := repo.Insert(ctx, newProduct("Monitor"))
	require.NoError(t, err)

	deleted, err := repo.DeleteByID(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.DeleteByID(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, deleted)

	_, err = repo.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
