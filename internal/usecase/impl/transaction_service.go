package impl

import (
	"context"
	"log/slog"

	deliverycontext "haatbazar/internal/delivery/context"
	"haatbazar/internal/domain/entity"
	domainerrors "haatbazar/internal/domain/errors"
	"haatbazar/internal/domain/repository"
	"haatbazar/internal/domain/service"
	"haatbazar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type transactionService struct {
	paymentRepo repository.PaymentRepository
	orderRepo   repository.OrderRepository
	publisher   service.EventPublisher
	logger      *slog.Logger
}

// NewTransactionService is the constructor for transactionService.
func NewTransactionService(
	paymentRepo repository.PaymentRepository,
	orderRepo repository.OrderRepository,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.TransactionUsecase {
	return &transactionService{
		paymentRepo: paymentRepo,
		orderRepo:   orderRepo,
		publisher:   publisher,
		logger:      logger,
	}
}

func (srv *transactionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateTransaction records a payment for an existing order. Payment type defaults to CARD and status to PENDING.
func (srv *transactionService) CreateTransaction(ctx context.Context, input *usecase.CreateTransactionInput) (*entity.Transaction, error) {
	tx := &entity.Transaction{
		OrderID:     input.OrderID,
		Amount:      input.Amount,
		PaymentType: input.PaymentType,
		Status:      input.Status,
	}
	if tx.PaymentType == "" {
		tx.PaymentType = entity.PaymentTypeCard
	}
	if tx.Status == "" {
		tx.Status = entity.TransactionStatusPending
	}

	switch {
	case !tx.PaymentType.IsValid():
		return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "invalid payment type %q", tx.PaymentType)
	case !tx.Status.IsValid():
		return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "invalid transaction status %q", tx.Status)
	case tx.Amount.IsNegative():
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "amount must not be negative")
	case !entity.IsMoney(tx.Amount):
		return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "amount has more than %d decimal places", entity.MoneyScale)
	}

	order, err := srv.orderRepo.FindByID(ctx, tx.OrderID)
	if err != nil {
		return nil, mapOrderError(err)
	}

	if err := srv.paymentRepo.Create(ctx, tx); err != nil {
		return nil, errors.Wrap(err, "failed to create transaction")
	}

	srv.log(ctx).Info("Transaction recorded", slog.Any("transaction_id", tx.ID), slog.Any("order_id", tx.OrderID))

	event := &service.MarketEvent{
		RequestID:     deliverycontext.GetRequestIDFromContext(ctx),
		Type:          service.EventTransactionRecorded,
		OrderID:       order.ID.String(),
		BuyerID:       order.BuyerID.String(),
		SellerID:      order.SellerID.String(),
		TransactionID: tx.ID.String(),
		Amount:        tx.Amount,
		Status:        string(tx.Status),
	}
	if err := srv.publisher.Publish(ctx, event); err != nil {
		srv.log(ctx).Error("Failed to publish event", slog.String("type", event.Type), slog.Any("error", err))
	}

	return tx, nil
}

// UpdateTransactionStatus overwrites the status with any enumerated value.
func (srv *transactionService) UpdateTransactionStatus(ctx context.Context, id uuid.UUID, status entity.TransactionStatus) (*entity.Transaction, error) {
	if !status.IsValid() {
		return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "invalid transaction status %q", status)
	}

	if err := srv.paymentRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, mapTransactionError(err)
	}

	tx, err := srv.paymentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapTransactionError(err)
	}

	return tx, nil
}

func mapTransactionError(err error) error {
	if errors.Is(err, repository.ErrTransactionNotFound) {
		return errors.Wrap(domainerrors.ErrTransactionNotFound, "transaction not found")
	}

	return errors.Wrap(err, "transaction repository failure")
}
