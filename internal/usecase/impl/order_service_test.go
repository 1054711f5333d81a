package impl

import (
	"context"
	"testing"

	"haatbazar/internal/domain/entity"
	domainerrors "haatbazar/internal/domain/errors"
	"haatbazar/internal/domain/repository"
	"haatbazar/internal/domain/service"
	mockRepo "haatbazar/internal/mocks/repository"
	mockSvc "haatbazar/internal/mocks/service"
	"haatbazar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type orderServiceFixtures struct {
	service       usecase.OrderUsecase
	txManager     *mockRepo.MockTransactionManager
	factory       *mockRepo.MockRepositoryFactory
	orderRepo     *mockRepo.MockOrderRepository
	txProductRepo *mockRepo.MockProductRepository
	txOrderRepo   *mockRepo.MockOrderRepository
	buyerRepo     *mockRepo.MockBuyerRepository
	sellerRepo    *mockRepo.MockSellerRepository
	publisher     *mockSvc.MockEventPublisher
	qrCode        *mockSvc.MockQRCodeService
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	f := orderServiceFixtures{
		txManager:     mockRepo.NewMockTransactionManager(t),
		factory:       mockRepo.NewMockRepositoryFactory(t),
		orderRepo:     mockRepo.NewMockOrderRepository(t),
		txProductRepo: mockRepo.NewMockProductRepository(t),
		txOrderRepo:   mockRepo.NewMockOrderRepository(t),
		buyerRepo:     mockRepo.NewMockBuyerRepository(t),
		sellerRepo:    mockRepo.NewMockSellerRepository(t),
		publisher:     mockSvc.NewMockEventPublisher(t),
		qrCode:        mockSvc.NewMockQRCodeService(t),
	}

	f.service = NewOrderService(OrderServiceParams{
		TxManager:  f.txManager,
		OrderRepo:  f.orderRepo,
		BuyerRepo:  f.buyerRepo,
		SellerRepo: f.sellerRepo,
		Publisher:  f.publisher,
		QRCode:     f.qrCode,
		Logger:     newDiscardLogger(),
	})

	return f
}

// expectParties stubs the buyer/seller existence checks.
func (f orderServiceFixtures) expectParties(buyerID, sellerID uuid.UUID) {
	f.buyerRepo.EXPECT().FindByID(mock.Anything, buyerID).Return(&entity.Buyer{ID: buyerID}, nil)
	f.sellerRepo.EXPECT().FindByID(mock.Anything, sellerID).Return(&entity.Seller{ID: sellerID}, nil)
}

func (f orderServiceFixtures) expectTx() {
	runInTx(f.txManager, f.factory)
	f.factory.EXPECT().NewProductRepository().Return(f.txProductRepo)
	f.factory.EXPECT().NewOrderRepository().Return(f.txOrderRepo)
}

func TestOrderService_PlaceOrder_DecrementsStockAndPublishes(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	buyerID, sellerID, productID := uuid.New(), uuid.New(), uuid.New()

	input := &usecase.PlaceOrderInput{
		BuyerID:    buyerID,
		SellerID:   sellerID,
		TotalPrice: decimal.NewFromInt(100),
		Items: []entity.LineItem{
			{ProductID: productID, Quantity: 2, Subtotal: decimal.NewFromInt(100)},
		},
	}

	fx.expectParties(buyerID, sellerID)
	fx.expectTx()
	fx.txProductRepo.EXPECT().
		FindByIDs(ctx, []uuid.UUID{productID}).
		Return([]*entity.Product{{ID: productID, SellerID: sellerID, Stock: 5}}, nil)
	fx.txProductRepo.EXPECT().DecrementStock(ctx, productID, 2).Return(nil)
	fx.txOrderRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Order")).
		Run(func(_ context.Context, order *entity.Order) { order.ID = uuid.New() }).
		Return(nil)
	fx.publisher.EXPECT().
		Publish(ctx, mock.MatchedBy(func(e *service.MarketEvent) bool {
			return e.Type == service.EventOrderPlaced && e.BuyerID == buyerID.String() && e.Amount.Equal(decimal.NewFromInt(100))
		})).
		Return(nil)

	order, err := fx.service.PlaceOrder(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusPlaced, order.Status)
	assert.NotEqual(t, uuid.Nil, order.ID)
	assert.Len(t, order.OrderedProducts, 1)
}

func TestOrderService_PlaceOrder_PublishFailureIsNotFatal(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	buyerID, sellerID, productID := uuid.New(), uuid.New(), uuid.New()

	fx.expectParties(buyerID, sellerID)
	fx.expectTx()
	fx.txProductRepo.EXPECT().FindByIDs(ctx, mock.Anything).Return([]*entity.Product{{ID: productID, SellerID: sellerID}}, nil)
	fx.txProductRepo.EXPECT().DecrementStock(ctx, productID, 1).Return(nil)
	fx.txOrderRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
	fx.publisher.EXPECT().Publish(ctx, mock.Anything).Return(errors.New("broker down"))

	_, err := fx.service.PlaceOrder(ctx, &usecase.PlaceOrderInput{
		BuyerID:    buyerID,
		SellerID:   sellerID,
		TotalPrice: decimal.RequireFromString("12.50"),
		Items:      []entity.LineItem{{ProductID: productID, Quantity: 1, Subtotal: decimal.RequireFromString("12.5")}},
	})
	require.NoError(t, err)
}

func TestOrderService_PlaceOrder_InsufficientStockRollsBack(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	buyerID, sellerID := uuid.New(), uuid.New()
	p1, p2 := uuid.New(), uuid.New()

	fx.expectParties(buyerID, sellerID)
	fx.expectTx()
	fx.txProductRepo.EXPECT().FindByIDs(ctx, []uuid.UUID{p1, p2}).Return([]*entity.Product{
		{ID: p1, SellerID: sellerID},
		{ID: p2, SellerID: sellerID},
	}, nil)
	fx.txProductRepo.EXPECT().DecrementStock(ctx, p1, 1).Return(nil)
	fx.txProductRepo.EXPECT().DecrementStock(ctx, p2, 9).Return(repository.ErrInsufficientStock)

	_, err := fx.service.PlaceOrder(ctx, &usecase.PlaceOrderInput{
		BuyerID:    buyerID,
		SellerID:   sellerID,
		TotalPrice: decimal.NewFromInt(30),
		Items: []entity.LineItem{
			{ProductID: p1, Quantity: 1, Subtotal: decimal.NewFromInt(10)},
			{ProductID: p2, Quantity: 9, Subtotal: decimal.NewFromInt(20)},
		},
	})
	assert.ErrorIs(t, err, domainerrors.ErrInsufficientStock)
	fx.txOrderRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	fx.publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestOrderService_PlaceOrder_ProductFromAnotherSeller(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	buyerID, sellerID, productID := uuid.New(), uuid.New(), uuid.New()

	fx.expectParties(buyerID, sellerID)
	runInTx(fx.txManager, fx.factory)
	fx.factory.EXPECT().NewProductRepository().Return(fx.txProductRepo)
	fx.factory.EXPECT().NewOrderRepository().Return(fx.txOrderRepo)
	fx.txProductRepo.EXPECT().FindByIDs(ctx, mock.Anything).Return([]*entity.Product{{ID: productID, SellerID: uuid.New()}}, nil)

	_, err := fx.service.PlaceOrder(ctx, &usecase.PlaceOrderInput{
		BuyerID:    buyerID,
		SellerID:   sellerID,
		TotalPrice: decimal.NewFromInt(5),
		Items:      []entity.LineItem{{ProductID: productID, Quantity: 1, Subtotal: decimal.NewFromInt(5)}},
	})
	assert.ErrorIs(t, err, domainerrors.ErrProductSellerMismatch)
}

func TestOrderService_PlaceOrder_UnknownProduct(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	buyerID, sellerID := uuid.New(), uuid.New()

	fx.expectParties(buyerID, sellerID)
	fx.expectTx()
	fx.txProductRepo.EXPECT().FindByIDs(ctx, mock.Anything).Return(nil, nil)

	_, err := fx.service.PlaceOrder(ctx, &usecase.PlaceOrderInput{
		BuyerID:    buyerID,
		SellerID:   sellerID,
		TotalPrice: decimal.NewFromInt(5),
		Items:      []entity.LineItem{{ProductID: uuid.New(), Quantity: 1, Subtotal: decimal.NewFromInt(5)}},
	})
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestOrderService_PlaceOrder_RejectsInvalidLineItems(t *testing.T) {
	productID := uuid.New()

	tests := []struct {
		name    string
		input   usecase.PlaceOrderInput
		wantErr error
	}{
		{
			name:    "no items",
			input:   usecase.PlaceOrderInput{TotalPrice: decimal.Zero},
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name: "zero quantity",
			input: usecase.PlaceOrderInput{
				TotalPrice: decimal.NewFromInt(10),
				Items:      []entity.LineItem{{ProductID: productID, Quantity: 0, Subtotal: decimal.NewFromInt(10)}},
			},
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name: "subtotals do not match total",
			input: usecase.PlaceOrderInput{
				TotalPrice: decimal.NewFromInt(99),
				Items: []entity.LineItem{
					{ProductID: productID, Quantity: 1, Subtotal: decimal.NewFromInt(40)},
					{ProductID: uuid.New(), Quantity: 1, Subtotal: decimal.NewFromInt(50)},
				},
			},
			wantErr: domainerrors.ErrOrderTotalMismatch,
		},
		{
			name: "sub-cent subtotals",
			input: usecase.PlaceOrderInput{
				TotalPrice: decimal.RequireFromString("0.01"),
				Items: []entity.LineItem{
					{ProductID: productID, Quantity: 1, Subtotal: decimal.RequireFromString("0.005")},
					{ProductID: uuid.New(), Quantity: 1, Subtotal: decimal.RequireFromString("0.005")},
				},
			},
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name: "sub-cent total",
			input: usecase.PlaceOrderInput{
				TotalPrice: decimal.RequireFromString("10.001"),
				Items:      []entity.LineItem{{ProductID: productID, Quantity: 1, Subtotal: decimal.RequireFromString("10.001")}},
			},
			wantErr: domainerrors.ErrValidationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestOrderService(t)

			_, err := fx.service.PlaceOrder(context.Background(), &tt.input)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestOrderService_PlaceOrder_UnknownBuyer(t *testing.T) {
	fx := createTestOrderService(t)
	buyerID := uuid.New()

	fx.buyerRepo.EXPECT().FindByID(mock.Anything, buyerID).Return(nil, repository.ErrBuyerNotFound)

	_, err := fx.service.PlaceOrder(context.Background(), &usecase.PlaceOrderInput{
		BuyerID:    buyerID,
		SellerID:   uuid.New(),
		TotalPrice: decimal.NewFromInt(1),
		Items:      []entity.LineItem{{ProductID: uuid.New(), Quantity: 1, Subtotal: decimal.NewFromInt(1)}},
	})
	assert.ErrorIs(t, err, domainerrors.ErrBuyerNotFound)
}

func TestOrderService_UpdateOrderStatus(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.orderRepo.EXPECT().UpdateStatus(ctx, id, entity.OrderStatusCancelled).Return(nil)
	fx.orderRepo.EXPECT().FindByID(ctx, id).Return(&entity.Order{ID: id, Status: entity.OrderStatusCancelled}, nil)

	order, err := fx.service.UpdateOrderStatus(ctx, id, entity.OrderStatusCancelled)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusCancelled, order.Status)
}

func TestOrderService_UpdateOrderStatus_Invalid(t *testing.T) {
	fx := createTestOrderService(t)

	_, err := fx.service.UpdateOrderStatus(context.Background(), uuid.New(), entity.OrderStatus("SHIPPED"))
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestOrderService_UpdateOrderStatus_NotFound(t *testing.T) {
	fx := createTestOrderService(t)
	id := uuid.New()

	fx.orderRepo.EXPECT().UpdateStatus(mock.Anything, id, entity.OrderStatusDelivered).Return(repository.ErrOrderNotFound)

	_, err := fx.service.UpdateOrderStatus(context.Background(), id, entity.OrderStatusDelivered)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestOrderService_OrderReceiptQR(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.orderRepo.EXPECT().FindByID(ctx, id).Return(&entity.Order{ID: id}, nil)
	fx.qrCode.EXPECT().GenerateOrderQR(id).Return([]byte("png"), nil)

	png, err := fx.service.OrderReceiptQR(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, []byte("png"), png)
}
