package usecase

import (
	"context"
	"time"

	"haatbazar/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ReportProduct is the joined product record of an ordered line together with the ordered quantity.
type ReportProduct struct {
	*entity.Product
	Quantity int             `json:"quantity"`
	Subtotal decimal.Decimal `json:"subtotal"`
}

// BuyerReportRow is one transaction in a buyer's report.
type BuyerReportRow struct {
	TransactionID   uuid.UUID                `json:"transaction_id"`
	OrderID         uuid.UUID                `json:"order_id"`
	Amount          decimal.Decimal          `json:"amount"`
	PaymentType     entity.PaymentType       `json:"payment_type"`
	Status          entity.TransactionStatus `json:"status"`
	OrderStatus     entity.OrderStatus       `json:"order_status"`
	OrderDate       time.Time                `json:"order_date"`
	Products        []ReportProduct          `json:"products"`
	ShippingAddress string                   `json:"shipping_address"`
	BillingAddress  string                   `json:"billing_address"`
	CreatedAt       time.Time                `json:"created_at"`
}

// BuyerReportSummary totals a buyer's transactions.
type BuyerReportSummary struct {
	TotalTransactions      int             `json:"total_transactions"`
	TotalAmount            decimal.Decimal `json:"total_amount"`
	SuccessfulTransactions int             `json:"successful_transactions"`
	PendingTransactions    int             `json:"pending_transactions"`
	FailedTransactions     int             `json:"failed_transactions"`
}

// BuyerReport lists a buyer's transactions, newest first.
type BuyerReport struct {
	Transactions []BuyerReportRow   `json:"transactions"`
	Summary      BuyerReportSummary `json:"summary"`
}

// SellerReportRow is one transaction in a seller's report.
type SellerReportRow struct {
	TransactionID   uuid.UUID                `json:"transaction_id"`
	OrderID         uuid.UUID                `json:"order_id"`
	Amount          decimal.Decimal          `json:"amount"`
	PaymentType     entity.PaymentType       `json:"payment_type"`
	Status          entity.TransactionStatus `json:"status"`
	OrderStatus     entity.OrderStatus       `json:"order_status"`
	OrderDate       time.Time                `json:"order_date"`
	BuyerName       string                   `json:"buyer_name"`
	BuyerPhone      string                   `json:"buyer_phone"`
	ShippingAddress string                   `json:"shipping_address"`
	CreatedAt       time.Time                `json:"created_at"`
}

// StatusBreakdown counts transactions per status.
type StatusBreakdown struct {
	Successful int `json:"successful"`
	Pending    int `json:"pending"`
	Failed     int `json:"failed"`
}

// PaymentTypeBreakdown counts transactions per payment type.
type PaymentTypeBreakdown struct {
	Cash int `json:"cash"`
	Card int `json:"card"`
}

// SellerReportSummary totals a seller's transactions.
type SellerReportSummary struct {
	TotalTransactions int                  `json:"total_transactions"`
	TotalAmount       decimal.Decimal      `json:"total_amount"`
	ByStatus          StatusBreakdown      `json:"by_status"`
	ByPaymentType     PaymentTypeBreakdown `json:"by_payment_type"`
}

// SellerReport lists the transactions on a seller's orders, newest first.
type SellerReport struct {
	Transactions []SellerReportRow   `json:"transactions"`
	Summary      SellerReportSummary `json:"summary"`
}

// ReportUsecase builds transaction reports.
type ReportUsecase interface {
	BuyerReport(ctx context.Context, buyerID uuid.UUID) (*BuyerReport, error)
	SellerReport(ctx context.Context, sellerID uuid.UUID) (*SellerReport, error)
}
