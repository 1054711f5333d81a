package postgres

import (
	"context"
	"testing"

	"haatbazar/internal/domain/entity"
	"haatbazar/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderRepository_CreateKeepsLineItemOrder(t *testing.T) {
	db := newTestDB(t)
	seller := seedSeller(t, db)
	buyer := seedBuyer(t, db)
	p1 := seedProduct(t, db, seller.ID, 5)
	p2 := seedProduct(t, db, seller.ID, 5)
	repo := NewOrderRepository(db)
	ctx := context.Background()

	order := &entity.Order{
		BuyerID:         buyer.ID,
		SellerID:        seller.ID,
		TotalPrice:      decimal.NewFromInt(50),
		ShippingAddress: "Mirpur",
		OrderedProducts: []entity.LineItem{
			{ProductID: p2.ID, Quantity: 3, Subtotal: decimal.NewFromInt(30)},
			{ProductID: p1.ID, Quantity: 2, Subtotal: decimal.NewFromInt(20)},
		},
	}
	require.NoError(t, repo.Create(ctx, order))
	assert.Equal(t, entity.OrderStatusPlaced, order.Status)

	found, err := repo.FindByID(ctx, order.ID)
	require.NoError(t, err)
	require.Len(t, found.OrderedProducts, 2)
	assert.Equal(t, p2.ID, found.OrderedProducts[0].ProductID)
	assert.Equal(t, p1.ID, found.OrderedProducts[1].ProductID)
	assert.True(t, found.TotalPrice.Equal(decimal.NewFromInt(50)))

	byBuyer, err := repo.FindByBuyer(ctx, buyer.ID)
	require.NoError(t, err)
	assert.Len(t, byBuyer, 1)

	bySeller, err := repo.FindBySeller(ctx, uuid.New())
	require.NoError(t, err)
	assert.Empty(t, bySeller)
}

func TestOrderRepository_UpdateStatus(t *testing.T) {
	db := newTestDB(t)
	seller := seedSeller(t, db)
	buyer := seedBuyer(t, db)
	repo := NewOrderRepository(db)
	ctx := context.Background()

	order := &entity.Order{BuyerID: buyer.ID, SellerID: seller.ID, TotalPrice: decimal.Zero}
	require.NoError(t, repo.Create(ctx, order))

	require.NoError(t, repo.UpdateStatus(ctx, order.ID, entity.OrderStatusDelivered))
	// Any status may follow any other.
	require.NoError(t, repo.UpdateStatus(ctx, order.ID, entity.OrderStatusPlaced))

	found, err := repo.FindByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusPlaced, found.Status)

	assert.ErrorIs(t, repo.UpdateStatus(ctx, uuid.New(), entity.OrderStatusCancelled), repository.ErrOrderNotFound)
}

func TestTransactionManager_RollsBackOnError(t *testing.T) {
	db := newTestDB(t)
	seller := seedSeller(t, db)
	buyer := seedBuyer(t, db)
	product := seedProduct(t, db, seller.ID, 1)
	txManager := NewTransactionManager(db)
	ctx := context.Background()

	order := &entity.Order{
		BuyerID:         buyer.ID,
		SellerID:        seller.ID,
		TotalPrice:      decimal.NewFromInt(30),
		OrderedProducts: []entity.LineItem{{ProductID: product.ID, Quantity: 1, Subtotal: decimal.NewFromInt(10)}},
	}

	err := txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		if err := factory.NewProductRepository().DecrementStock(ctx, product.ID, 1); err != nil {
			return err
		}
		if err := factory.NewOrderRepository().Create(ctx, order); err != nil {
			return err
		}

		return factory.NewProductRepository().DecrementStock(ctx, product.ID, 1)
	})
	require.ErrorIs(t, err, repository.ErrInsufficientStock)

	found, err := NewProductRepository(db).FindByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, found.Stock)

	_, err = NewOrderRepository(db).FindByID(ctx, order.ID)
	assert.ErrorIs(t, err, repository.ErrOrderNotFound)
}

func TestPaymentRepository(t *testing.T) {
	db := newTestDB(t)
	repo := NewPaymentRepository(db)
	ctx := context.Background()
	orderID := uuid.New()

	tx := &entity.Transaction{OrderID: orderID, Amount: decimal.NewFromInt(20)}
	require.NoError(t, repo.Create(ctx, tx))
	assert.Equal(t, entity.PaymentTypeCard, tx.PaymentType)
	assert.Equal(t, entity.TransactionStatusPending, tx.Status)

	require.NoError(t, repo.UpdateStatus(ctx, tx.ID, entity.TransactionStatusSuccess))

	found, err := repo.FindByOrderIDs(ctx, []uuid.UUID{orderID, uuid.New()})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, entity.TransactionStatusSuccess, found[0].Status)

	empty, err := repo.FindByOrderIDs(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, empty)

	_, err = repo.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrTransactionNotFound)
}
