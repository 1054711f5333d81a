package repository

import (
	"context"
	"errors"

	"haatbazar/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrOrderNotFound is returned when an order is not found.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines the persistence operations for orders and their line items.
type OrderRepository interface {
	// FindByID retrieves an order with its line items.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// FindByBuyer returns a buyer's orders, newest first.
	FindByBuyer(ctx context.Context, buyerID uuid.UUID) ([]*entity.Order, error)

	// FindBySeller returns orders placed with a seller, newest first.
	FindBySeller(ctx context.Context, sellerID uuid.UUID) ([]*entity.Order, error)

	// Create persists the order together with its line items.
	Create(ctx context.Context, order *entity.Order) error

	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) error
}
