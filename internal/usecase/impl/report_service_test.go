package impl

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"haatbazar/internal/domain/entity"
	mockRepo "haatbazar/internal/mocks/repository"
	"haatbazar/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type reportServiceFixtures struct {
	service     usecase.ReportUsecase
	orderRepo   *mockRepo.MockOrderRepository
	paymentRepo *mockRepo.MockPaymentRepository
	productRepo *mockRepo.MockProductRepository
	buyerRepo   *mockRepo.MockBuyerRepository
}

func createTestReportService(t *testing.T) reportServiceFixtures {
	f := reportServiceFixtures{
		orderRepo:   mockRepo.NewMockOrderRepository(t),
		paymentRepo: mockRepo.NewMockPaymentRepository(t),
		productRepo: mockRepo.NewMockProductRepository(t),
		buyerRepo:   mockRepo.NewMockBuyerRepository(t),
	}

	f.service = NewReportService(ReportServiceParams{
		OrderRepo:   f.orderRepo,
		PaymentRepo: f.paymentRepo,
		ProductRepo: f.productRepo,
		BuyerRepo:   f.buyerRepo,
		Logger:      newDiscardLogger(),
	})

	return f
}

var reportBase = time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

func newReportTx(orderID uuid.UUID, amount int64, status entity.TransactionStatus, paymentType entity.PaymentType, offset time.Duration) *entity.Transaction {
	return &entity.Transaction{
		ID:          uuid.New(),
		OrderID:     orderID,
		Amount:      decimal.NewFromInt(amount),
		PaymentType: paymentType,
		Status:      status,
		CreatedAt:   reportBase.Add(offset),
	}
}

func TestReportService_BuyerReport(t *testing.T) {
	fx := createTestReportService(t)
	ctx := context.Background()
	buyerID, sellerID := uuid.New(), uuid.New()
	rice, dal := uuid.New(), uuid.New()

	o1 := &entity.Order{
		ID: uuid.New(), BuyerID: buyerID, SellerID: sellerID, Status: entity.OrderStatusDelivered,
		ShippingAddress: "Mirpur", CreatedAt: reportBase,
		OrderedProducts: []entity.LineItem{
			{ProductID: rice, Quantity: 2, Subtotal: decimal.NewFromInt(140)},
			{ProductID: dal, Quantity: 1, Subtotal: decimal.NewFromInt(60)},
		},
	}
	o2 := &entity.Order{
		ID: uuid.New(), BuyerID: buyerID, SellerID: sellerID, Status: entity.OrderStatusPlaced,
		CreatedAt:       reportBase.Add(time.Hour),
		OrderedProducts: []entity.LineItem{{ProductID: rice, Quantity: 1, Subtotal: decimal.NewFromInt(70)}},
	}

	t1 := newReportTx(o1.ID, 200, entity.TransactionStatusSuccess, entity.PaymentTypeCard, 0)
	t2 := newReportTx(o2.ID, 70, entity.TransactionStatusPending, entity.PaymentTypeCash, 2*time.Hour)
	t3 := newReportTx(o1.ID, 200, entity.TransactionStatusFailed, entity.PaymentTypeCard, time.Hour)

	fx.orderRepo.EXPECT().FindByBuyer(ctx, buyerID).Return([]*entity.Order{o2, o1}, nil)
	fx.paymentRepo.EXPECT().FindByOrderIDs(ctx, []uuid.UUID{o2.ID, o1.ID}).Return([]*entity.Transaction{t1, t2, t3}, nil)
	fx.productRepo.EXPECT().FindByIDs(ctx, []uuid.UUID{rice, dal}).Return([]*entity.Product{
		{ID: rice, Name: "Miniket rice", Category: "Grain", Unit: "kg", SellerID: sellerID, PricePerUnit: decimal.NewFromInt(70)},
		{ID: dal, Name: "Masoor dal", Category: "Lentil", Unit: "kg", SellerID: sellerID},
	}, nil)

	report, err := fx.service.BuyerReport(ctx, buyerID)
	require.NoError(t, err)

	require.Len(t, report.Transactions, 3)
	assert.Equal(t, t2.ID, report.Transactions[0].TransactionID)
	assert.Equal(t, t3.ID, report.Transactions[1].TransactionID)
	assert.Equal(t, t1.ID, report.Transactions[2].TransactionID)

	first := report.Transactions[2]
	assert.Equal(t, entity.OrderStatusDelivered, first.OrderStatus)
	assert.Equal(t, "Mirpur", first.ShippingAddress)
	require.Len(t, first.Products, 2)
	assert.Equal(t, "Miniket rice", first.Products[0].Name)
	assert.Equal(t, "Grain", first.Products[0].Category)
	assert.Equal(t, sellerID, first.Products[0].SellerID)
	assert.True(t, first.Products[0].PricePerUnit.Equal(decimal.NewFromInt(70)))
	assert.Equal(t, 2, first.Products[0].Quantity)
	assert.True(t, first.Products[0].Subtotal.Equal(decimal.NewFromInt(140)))
	assert.Equal(t, "Masoor dal", first.Products[1].Name)

	s := report.Summary
	assert.Equal(t, 3, s.TotalTransactions)
	assert.True(t, s.TotalAmount.Equal(decimal.NewFromInt(470)))
	assert.Equal(t, 1, s.SuccessfulTransactions)
	assert.Equal(t, 1, s.PendingTransactions)
	assert.Equal(t, 1, s.FailedTransactions)
	assert.Equal(t, s.TotalTransactions, s.SuccessfulTransactions+s.PendingTransactions+s.FailedTransactions)
}

func TestReportService_BuyerReport_DeletedProductLeftOut(t *testing.T) {
	fx := createTestReportService(t)
	ctx := context.Background()
	buyerID := uuid.New()
	kept, deleted := uuid.New(), uuid.New()

	order := &entity.Order{
		ID: uuid.New(), BuyerID: buyerID, SellerID: uuid.New(), CreatedAt: reportBase,
		OrderedProducts: []entity.LineItem{
			{ProductID: deleted, Quantity: 3, Subtotal: decimal.NewFromInt(90)},
			{ProductID: kept, Quantity: 1, Subtotal: decimal.NewFromInt(45)},
		},
	}
	tx := newReportTx(order.ID, 135, entity.TransactionStatusSuccess, entity.PaymentTypeCard, 0)

	fx.orderRepo.EXPECT().FindByBuyer(ctx, buyerID).Return([]*entity.Order{order}, nil)
	fx.paymentRepo.EXPECT().FindByOrderIDs(ctx, []uuid.UUID{order.ID}).Return([]*entity.Transaction{tx}, nil)
	fx.productRepo.EXPECT().FindByIDs(ctx, []uuid.UUID{deleted, kept}).Return([]*entity.Product{
		{ID: kept, Name: "Hilsa", Category: "Fish"},
	}, nil)

	report, err := fx.service.BuyerReport(ctx, buyerID)
	require.NoError(t, err)

	require.Len(t, report.Transactions, 1)
	row := report.Transactions[0]
	require.Len(t, row.Products, 1)
	assert.Equal(t, kept, row.Products[0].ID)
	assert.Equal(t, "Hilsa", row.Products[0].Name)
	assert.True(t, row.Amount.Equal(decimal.NewFromInt(135)))

	body, err := json.Marshal(row.Products[0])
	require.NoError(t, err)
	assert.Contains(t, string(body), `"category":"Fish"`)
	assert.Contains(t, string(body), `"quantity":1`)
}

func TestReportService_BuyerReport_NoOrders(t *testing.T) {
	fx := createTestReportService(t)
	buyerID := uuid.New()

	fx.orderRepo.EXPECT().FindByBuyer(mock.Anything, buyerID).Return(nil, nil)

	report, err := fx.service.BuyerReport(context.Background(), buyerID)
	require.NoError(t, err)
	assert.NotNil(t, report.Transactions)
	assert.Empty(t, report.Transactions)
	assert.Equal(t, 0, report.Summary.TotalTransactions)
	assert.True(t, report.Summary.TotalAmount.IsZero())
}

func TestReportService_SellerReport(t *testing.T) {
	fx := createTestReportService(t)
	ctx := context.Background()
	sellerID := uuid.New()
	karim := &entity.Buyer{ID: uuid.New(), Name: "Karim", Phone: "01711111111"}
	nila := &entity.Buyer{ID: uuid.New(), Name: "Nila", Phone: "01922222222"}

	o1 := &entity.Order{ID: uuid.New(), BuyerID: karim.ID, SellerID: sellerID, ShippingAddress: "Uttara", CreatedAt: reportBase}
	o2 := &entity.Order{ID: uuid.New(), BuyerID: nila.ID, SellerID: sellerID, ShippingAddress: "Dhanmondi", CreatedAt: reportBase}

	txs := []*entity.Transaction{
		newReportTx(o1.ID, 100, entity.TransactionStatusSuccess, entity.PaymentTypeCash, time.Minute),
		newReportTx(o2.ID, 250, entity.TransactionStatusSuccess, entity.PaymentTypeCard, 3*time.Minute),
		newReportTx(o2.ID, 250, entity.TransactionStatusFailed, entity.PaymentTypeCard, 2*time.Minute),
		newReportTx(o1.ID, 40, entity.TransactionStatusPending, entity.PaymentTypeCard, 4*time.Minute),
	}

	fx.orderRepo.EXPECT().FindBySeller(ctx, sellerID).Return([]*entity.Order{o1, o2}, nil)
	fx.paymentRepo.EXPECT().FindByOrderIDs(ctx, []uuid.UUID{o1.ID, o2.ID}).Return(txs, nil)
	fx.buyerRepo.EXPECT().FindByIDs(ctx, []uuid.UUID{karim.ID, nila.ID}).Return([]*entity.Buyer{nila, karim}, nil)

	report, err := fx.service.SellerReport(ctx, sellerID)
	require.NoError(t, err)

	require.Len(t, report.Transactions, 4)
	for i := 1; i < len(report.Transactions); i++ {
		assert.False(t, report.Transactions[i].CreatedAt.After(report.Transactions[i-1].CreatedAt))
	}
	assert.Equal(t, "Karim", report.Transactions[0].BuyerName)
	assert.Equal(t, "01711111111", report.Transactions[0].BuyerPhone)
	assert.Equal(t, "Dhanmondi", report.Transactions[1].ShippingAddress)

	s := report.Summary
	assert.Equal(t, 4, s.TotalTransactions)
	assert.True(t, s.TotalAmount.Equal(decimal.NewFromInt(640)))
	assert.Equal(t, usecase.StatusBreakdown{Successful: 2, Pending: 1, Failed: 1}, s.ByStatus)
	assert.Equal(t, usecase.PaymentTypeBreakdown{Cash: 1, Card: 3}, s.ByPaymentType)
	assert.Equal(t, s.TotalTransactions, s.ByStatus.Successful+s.ByStatus.Pending+s.ByStatus.Failed)
	assert.Equal(t, s.TotalTransactions, s.ByPaymentType.Cash+s.ByPaymentType.Card)
}

func TestReportService_SellerReport_SkipsRowsWithoutBuyer(t *testing.T) {
	fx := createTestReportService(t)
	ctx := context.Background()
	sellerID, goneBuyer := uuid.New(), uuid.New()
	order := &entity.Order{ID: uuid.New(), BuyerID: goneBuyer, SellerID: sellerID}

	fx.orderRepo.EXPECT().FindBySeller(ctx, sellerID).Return([]*entity.Order{order}, nil)
	fx.paymentRepo.EXPECT().FindByOrderIDs(ctx, mock.Anything).Return([]*entity.Transaction{
		newReportTx(order.ID, 10, entity.TransactionStatusSuccess, entity.PaymentTypeCash, 0),
	}, nil)
	fx.buyerRepo.EXPECT().FindByIDs(ctx, []uuid.UUID{goneBuyer}).Return(nil, nil)

	report, err := fx.service.SellerReport(ctx, sellerID)
	require.NoError(t, err)
	assert.Empty(t, report.Transactions)
	assert.Equal(t, 0, report.Summary.TotalTransactions)
}
