package postgres

import (
	"context"
	"sync"
	"testing"

	"haatbazar/internal/domain/entity"
	"haatbazar/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductRepository_CreateAndFind(t *testing.T) {
	db := newTestDB(t)
	seller := seedSeller(t, db)
	product := seedProduct(t, db, seller.ID, 5)
	repo := NewProductRepository(db)

	assert.NotEqual(t, uuid.Nil, product.ID)
	assert.False(t, product.CreatedAt.IsZero())

	found, err := repo.FindByID(context.Background(), product.ID)
	require.NoError(t, err)
	assert.Equal(t, "Rice", found.Name)
	assert.Equal(t, 5, found.Stock)
	assert.True(t, found.PricePerUnit.Equal(product.PricePerUnit))

	_, err = repo.FindByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, repository.ErrProductNotFound)
}

func TestProductRepository_ListFilters(t *testing.T) {
	db := newTestDB(t)
	sellerA := seedSeller(t, db)
	sellerB := seedSeller(t, db)
	seedProduct(t, db, sellerA.ID, 1)
	seedProduct(t, db, sellerA.ID, 1)
	seedProduct(t, db, sellerB.ID, 1)
	repo := NewProductRepository(db)

	all, err := repo.List(context.Background(), entity.ProductFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	bySeller, err := repo.List(context.Background(), entity.ProductFilter{SellerID: sellerA.ID})
	require.NoError(t, err)
	assert.Len(t, bySeller, 2)

	limited, err := repo.List(context.Background(), entity.ProductFilter{Limit: 1})
	require.NoError(t, err)
	assert.Len(t, limited, 1)

	none, err := repo.List(context.Background(), entity.ProductFilter{Category: "Fish"})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestProductRepository_DecrementStock(t *testing.T) {
	db := newTestDB(t)
	seller := seedSeller(t, db)
	product := seedProduct(t, db, seller.ID, 5)
	repo := NewProductRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.DecrementStock(ctx, product.ID, 2))

	found, err := repo.FindByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, found.Stock)

	err = repo.DecrementStock(ctx, product.ID, 4)
	assert.ErrorIs(t, err, repository.ErrInsufficientStock)

	found, err = repo.FindByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, found.Stock)

	err = repo.DecrementStock(ctx, uuid.New(), 1)
	assert.ErrorIs(t, err, repository.ErrProductNotFound)
}

func TestProductRepository_ConcurrentDecrementForLastUnit(t *testing.T) {
	db := newTestDB(t)
	seller := seedSeller(t, db)
	product := seedProduct(t, db, seller.ID, 1)
	txManager := NewTransactionManager(db)

	var wg sync.WaitGroup
	results := make([]error, 2)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = txManager.Execute(context.Background(), func(factory repository.RepositoryFactory) error {
				return factory.NewProductRepository().DecrementStock(context.Background(), product.ID, 1)
			})
		}(i)
	}
	wg.Wait()

	var succeeded, rejected int
	for _, err := range results {
		switch {
		case err == nil:
			succeeded++
		case assert.ErrorIs(t, err, repository.ErrInsufficientStock):
			rejected++
		}
	}
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, 1, rejected)

	found, err := NewProductRepository(db).FindByID(context.Background(), product.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, found.Stock)
}

func TestProductRepository_UpdateAndDelete(t *testing.T) {
	db := newTestDB(t)
	seller := seedSeller(t, db)
	product := seedProduct(t, db, seller.ID, 5)
	repo := NewProductRepository(db)
	ctx := context.Background()

	product.Description = "Fresh harvest"
	product.Stock = 9
	require.NoError(t, repo.Update(ctx, product, []string{"Description", "Stock"}))

	found, err := repo.FindByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, "Fresh harvest", found.Description)
	assert.Equal(t, 9, found.Stock)

	require.NoError(t, repo.Delete(ctx, product.ID))
	assert.ErrorIs(t, repo.Delete(ctx, product.ID), repository.ErrProductNotFound)

	missing := &entity.Product{ID: uuid.New(), SellerID: seller.ID, Image: "x"}
	assert.ErrorIs(t, repo.Update(ctx, missing, []string{"Stock"}), repository.ErrProductNotFound)
}

func TestProductRepository_UpdateKeepsConcurrentStockDecrement(t *testing.T) {
	db := newTestDB(t)
	seller := seedSeller(t, db)
	product := seedProduct(t, db, seller.ID, 5)
	repo := NewProductRepository(db)
	ctx := context.Background()

	loaded, err := repo.FindByID(ctx, product.ID)
	require.NoError(t, err)

	// An order commits between the edit's read and its write.
	require.NoError(t, repo.DecrementStock(ctx, product.ID, 2))

	loaded.Description = "Now with free delivery"
	require.NoError(t, repo.Update(ctx, loaded, []string{"Description"}))

	found, err := repo.FindByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, found.Stock)
	assert.Equal(t, "Now with free delivery", found.Description)
}
