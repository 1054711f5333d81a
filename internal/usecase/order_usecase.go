package usecase

import (
	"context"

	"haatbazar/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PlaceOrderInput defines an order with its line items.
type PlaceOrderInput struct {
	BuyerID         uuid.UUID
	SellerID        uuid.UUID
	TotalPrice      decimal.Decimal
	ShippingAddress string
	BillingAddress  string
	Items           []entity.LineItem
}

// CreateTransactionInput records a payment against an order.
type CreateTransactionInput struct {
	OrderID     uuid.UUID
	Amount      decimal.Decimal
	PaymentType entity.PaymentType
	Status      entity.TransactionStatus
}

// OrderUsecase defines order placement and tracking.
type OrderUsecase interface {
	// PlaceOrder validates the line items, decrements stock and persists the order atomically.
	PlaceOrder(ctx context.Context, input *PlaceOrderInput) (*entity.Order, error)
	GetOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	ListBuyerOrders(ctx context.Context, buyerID uuid.UUID) ([]*entity.Order, error)
	ListSellerOrders(ctx context.Context, sellerID uuid.UUID) ([]*entity.Order, error)
	UpdateOrderStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) (*entity.Order, error)
	// OrderReceiptQR renders a PNG QR code identifying the order.
	OrderReceiptQR(ctx context.Context, id uuid.UUID) ([]byte, error)
}

// TransactionUsecase defines payment bookkeeping.
type TransactionUsecase interface {
	CreateTransaction(ctx context.Context, input *CreateTransactionInput) (*entity.Transaction, error)
	UpdateTransactionStatus(ctx context.Context, id uuid.UUID, status entity.TransactionStatus) (*entity.Transaction, error)
}
