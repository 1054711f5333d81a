package handler

import (
	"log/slog"
	"net/http"

	"haatbazar/internal/delivery/api/response"
	"haatbazar/internal/domain/entity"
	"haatbazar/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
	Logger  *slog.Logger
}

// OrderHandler holds dependencies for order handlers
type OrderHandler struct {
	orderUC usecase.OrderUsecase
	logger  *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{
		orderUC: params.OrderUC,
		logger:  params.Logger,
	}
}

// LineItemRequest is one ordered product.
type LineItemRequest struct {
	ProductID uuid.UUID       `json:"product_id" validate:"required"`
	Quantity  int             `json:"quantity" validate:"gt=0"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// PlaceOrderRequest represents the body of POST /api/orders
type PlaceOrderRequest struct {
	BuyerID         uuid.UUID         `json:"buyer_id" validate:"required"`
	SellerID        uuid.UUID         `json:"seller_id" validate:"required"`
	TotalPrice      decimal.Decimal   `json:"total_price"`
	ShippingAddress string            `json:"shipping_address"`
	BillingAddress  string            `json:"billing_address"`
	OrderedProducts []LineItemRequest `json:"ordered_products" validate:"required,min=1,dive"`
}

// UpdateOrderStatusRequest represents the body of PUT /api/orders/:id/status
type UpdateOrderStatusRequest struct {
	Status entity.OrderStatus `json:"status" validate:"required,oneof=ORDER_PLACED PROCESSING DELIVERED CANCELLED"`
}

// PlaceOrder handles POST /api/orders
func (h *OrderHandler) PlaceOrder(c echo.Context) error {
	var req PlaceOrderRequest
	if err := bindRequest(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	items := make([]entity.LineItem, 0, len(req.OrderedProducts))
	for _, item := range req.OrderedProducts {
		items = append(items, entity.LineItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Subtotal:  item.Subtotal,
		})
	}

	order, err := h.orderUC.PlaceOrder(c.Request().Context(), &usecase.PlaceOrderInput{
		BuyerID:         req.BuyerID,
		SellerID:        req.SellerID,
		TotalPrice:      req.TotalPrice,
		ShippingAddress: req.ShippingAddress,
		BillingAddress:  req.BillingAddress,
		Items:           items,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, order)
}

// GetOrder handles GET /api/orders/:id
func (h *OrderHandler) GetOrder(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	order, err := h.orderUC.GetOrder(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, order)
}

// UpdateOrderStatus handles PUT /api/orders/:id/status
func (h *OrderHandler) UpdateOrderStatus(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateOrderStatusRequest
	if err := bindRequest(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	order, err := h.orderUC.UpdateOrderStatus(c.Request().Context(), id, req.Status)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, order)
}

// GetReceiptQR handles GET /api/orders/:id/qr and returns a PNG.
func (h *OrderHandler) GetReceiptQR(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	png, err := h.orderUC.OrderReceiptQR(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
