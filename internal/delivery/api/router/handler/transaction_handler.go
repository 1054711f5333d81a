package handler

import (
	"log/slog"

	"haatbazar/internal/delivery/api/response"
	"haatbazar/internal/domain/entity"
	"haatbazar/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// TransactionHandlerParams holds dependencies for TransactionHandler, injected by Fx.
type TransactionHandlerParams struct {
	fx.In

	TransactionUC usecase.TransactionUsecase
	ReportUC      usecase.ReportUsecase
	Logger        *slog.Logger
}

// TransactionHandler serves payments and the transaction reports built from them.
type TransactionHandler struct {
	transactionUC usecase.TransactionUsecase
	reportUC      usecase.ReportUsecase
	logger        *slog.Logger
}

// NewTransactionHandler is the constructor for TransactionHandler
func NewTransactionHandler(params TransactionHandlerParams) *TransactionHandler {
	return &TransactionHandler{
		transactionUC: params.TransactionUC,
		reportUC:      params.ReportUC,
		logger:        params.Logger,
	}
}

// CreateTransactionRequest represents the body of POST /api/transactions
type CreateTransactionRequest struct {
	OrderID     uuid.UUID                `json:"order_id" validate:"required"`
	Amount      decimal.Decimal          `json:"amount"`
	PaymentType entity.PaymentType       `json:"payment_type" validate:"omitempty,oneof=CASH CARD"`
	Status      entity.TransactionStatus `json:"status" validate:"omitempty,oneof=PENDING SUCCESS FAILED"`
}

// UpdateTransactionStatusRequest represents the body of PUT /api/transactions/:id/status
type UpdateTransactionStatusRequest struct {
	Status entity.TransactionStatus `json:"status" validate:"required,oneof=PENDING SUCCESS FAILED"`
}

// CreateTransaction handles POST /api/transactions
func (h *TransactionHandler) CreateTransaction(c echo.Context) error {
	var req CreateTransactionRequest
	if err := bindRequest(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	tx, err := h.transactionUC.CreateTransaction(c.Request().Context(), &usecase.CreateTransactionInput{
		OrderID:     req.OrderID,
		Amount:      req.Amount,
		PaymentType: req.PaymentType,
		Status:      req.Status,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, tx)
}

// UpdateTransactionStatus handles PUT /api/transactions/:id/status
func (h *TransactionHandler) UpdateTransactionStatus(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateTransactionStatusRequest
	if err := bindRequest(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	tx, err := h.transactionUC.UpdateTransactionStatus(c.Request().Context(), id, req.Status)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, tx)
}

// BuyerReport handles GET /api/transactions/buyer/:buyerId
func (h *TransactionHandler) BuyerReport(c echo.Context) error {
	buyerID, err := pathID(c, "buyerId")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	report, err := h.reportUC.BuyerReport(c.Request().Context(), buyerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, report)
}

// SellerReport handles GET /api/transactions/seller/:sellerId
func (h *TransactionHandler) SellerReport(c echo.Context) error {
	sellerID, err := pathID(c, "sellerId")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	report, err := h.reportUC.SellerReport(c.Request().Context(), sellerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, report)
}
