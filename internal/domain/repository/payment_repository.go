package repository

import (
	"context"
	"errors"

	"haatbazar/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrTransactionNotFound is returned when a payment transaction is not found.
var ErrTransactionNotFound = errors.New("transaction not found")

// PaymentRepository persists payment transactions. It is named apart from TransactionManager,
// which deals with database transactions.
type PaymentRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)

	// FindByOrderIDs returns every transaction referencing one of the orders.
	FindByOrderIDs(ctx context.Context, orderIDs []uuid.UUID) ([]*entity.Transaction, error)

	Create(ctx context.Context, tx *entity.Transaction) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.TransactionStatus) error
}
