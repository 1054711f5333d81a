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
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type transactionServiceFixtures struct {
	service     usecase.TransactionUsecase
	paymentRepo *mockRepo.MockPaymentRepository
	orderRepo   *mockRepo.MockOrderRepository
	publisher   *mockSvc.MockEventPublisher
}

func createTestTransactionService(t *testing.T) transactionServiceFixtures {
	f := transactionServiceFixtures{
		paymentRepo: mockRepo.NewMockPaymentRepository(t),
		orderRepo:   mockRepo.NewMockOrderRepository(t),
		publisher:   mockSvc.NewMockEventPublisher(t),
	}
	f.service = NewTransactionService(f.paymentRepo, f.orderRepo, f.publisher, newDiscardLogger())

	return f
}

func TestTransactionService_CreateTransaction_Defaults(t *testing.T) {
	fx := createTestTransactionService(t)
	ctx := context.Background()
	order := &entity.Order{ID: uuid.New(), BuyerID: uuid.New(), SellerID: uuid.New()}

	fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
	fx.paymentRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Transaction")).Return(nil)
	fx.publisher.EXPECT().
		Publish(ctx, mock.MatchedBy(func(e *service.MarketEvent) bool {
			return e.Type == service.EventTransactionRecorded && e.SellerID == order.SellerID.String()
		})).
		Return(nil)

	tx, err := fx.service.CreateTransaction(ctx, &usecase.CreateTransactionInput{
		OrderID: order.ID,
		Amount:  decimal.NewFromInt(250),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentTypeCard, tx.PaymentType)
	assert.Equal(t, entity.TransactionStatusPending, tx.Status)
}

func TestTransactionService_CreateTransaction_UnknownOrder(t *testing.T) {
	fx := createTestTransactionService(t)
	orderID := uuid.New()

	fx.orderRepo.EXPECT().FindByID(mock.Anything, orderID).Return(nil, repository.ErrOrderNotFound)

	_, err := fx.service.CreateTransaction(context.Background(), &usecase.CreateTransactionInput{OrderID: orderID})
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestTransactionService_CreateTransaction_InvalidPaymentType(t *testing.T) {
	fx := createTestTransactionService(t)

	_, err := fx.service.CreateTransaction(context.Background(), &usecase.CreateTransactionInput{
		OrderID:     uuid.New(),
		PaymentType: "BKASH",
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestTransactionService_UpdateTransactionStatus(t *testing.T) {
	fx := createTestTransactionService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.paymentRepo.EXPECT().UpdateStatus(ctx, id, entity.TransactionStatusSuccess).Return(nil)
	fx.paymentRepo.EXPECT().FindByID(ctx, id).Return(&entity.Transaction{ID: id, Status: entity.TransactionStatusSuccess}, nil)

	tx, err := fx.service.UpdateTransactionStatus(ctx, id, entity.TransactionStatusSuccess)
	require.NoError(t, err)
	assert.Equal(t, entity.TransactionStatusSuccess, tx.Status)
}

func TestTransactionService_UpdateTransactionStatus_NotFound(t *testing.T) {
	fx := createTestTransactionService(t)
	id := uuid.New()

	fx.paymentRepo.EXPECT().UpdateStatus(mock.Anything, id, entity.TransactionStatusFailed).Return(repository.ErrTransactionNotFound)

	_, err := fx.service.UpdateTransactionStatus(context.Background(), id, entity.TransactionStatusFailed)
	assert.ErrorIs(t, err, domainerrors.ErrTransactionNotFound)
}

func TestTransactionService_CreateTransaction_SubCentAmount(t *testing.T) {
	fx := createTestTransactionService(t)

	_, err := fx.service.CreateTransaction(context.Background(), &usecase.CreateTransactionInput{
		OrderID: uuid.New(),
		Amount:  decimal.RequireFromString("99.999"),
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}
