package service

import (
	"context"

	"github.com/shopspring/decimal"
)

// Event types published after a successful commit.
const (
	EventOrderPlaced         = "order.placed"
	EventTransactionRecorded = "transaction.recorded"
)

// MarketEvent is a domain event emitted for downstream consumers (fulfilment, notifications).
type MarketEvent struct {
	RequestID     string          `json:"request_id,omitempty"` // For distributed tracing
	Type          string          `json:"type"`
	OrderID       string          `json:"order_id"`
	BuyerID       string          `json:"buyer_id,omitempty"`
	SellerID      string          `json:"seller_id,omitempty"`
	TransactionID string          `json:"transaction_id,omitempty"`
	Amount        decimal.Decimal `json:"amount"`
	Status        string          `json:"status"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// Publish sends an event. Callers treat failures as non-fatal.
	Publish(ctx context.Context, event *MarketEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
