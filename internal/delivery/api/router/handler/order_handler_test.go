package handler

import (
	"context"
	"log/slog"
	"net/http"
	"testing"

	"haatbazar/internal/domain/entity"
	domainerrors "haatbazar/internal/domain/errors"
	"haatbazar/internal/errors"
	mockusecase "haatbazar/internal/mocks/usecase"
	"haatbazar/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newOrderTestServer(t *testing.T) (*echo.Echo, *mockusecase.MockOrderUsecase) {
	orderUC := mockusecase.NewMockOrderUsecase(t)
	h := NewOrderHandler(OrderHandlerParams{OrderUC: orderUC, Logger: slog.New(slog.DiscardHandler)})

	e := newTestEcho()
	e.POST("/api/orders", h.PlaceOrder)
	e.GET("/api/orders/:id", h.GetOrder)
	e.GET("/api/orders/:id/qr", h.GetReceiptQR)
	e.PUT("/api/orders/:id/status", h.UpdateOrderStatus)

	return e, orderUC
}

func TestOrderHandler_PlaceOrder(t *testing.T) {
	e, orderUC := newOrderTestServer(t)
	buyerID, sellerID, productID := uuid.New(), uuid.New(), uuid.New()

	var got *usecase.PlaceOrderInput
	orderUC.EXPECT().PlaceOrder(mock.Anything, mock.AnythingOfType("*usecase.PlaceOrderInput")).
		Run(func(_ context.Context, in *usecase.PlaceOrderInput) { got = in }).
		Return(&entity.Order{ID: uuid.New(), BuyerID: buyerID, SellerID: sellerID, Status: entity.OrderStatusPlaced}, nil)

	body := `{
		"buyer_id": "` + buyerID.String() + `",
		"seller_id": "` + sellerID.String() + `",
		"total_price": 100,
		"shipping_address": "Dhaka",
		"ordered_products": [{"product_id": "` + productID.String() + `", "quantity": 2, "subtotal": 100}]
	}`
	rec := serve(e, jsonRequest(http.MethodPost, "/api/orders", body))

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ORDER_PLACED"`)

	require.NotNil(t, got)
	assert.Equal(t, buyerID, got.BuyerID)
	assert.True(t, got.TotalPrice.Equal(decimal.NewFromInt(100)))
	require.Len(t, got.Items, 1)
	assert.Equal(t, productID, got.Items[0].ProductID)
	assert.Equal(t, 2, got.Items[0].Quantity)
}

func TestOrderHandler_PlaceOrder_InsufficientStock(t *testing.T) {
	e, orderUC := newOrderTestServer(t)

	orderUC.EXPECT().PlaceOrder(mock.Anything, mock.Anything).
		Return(nil, errors.Wrap(domainerrors.ErrInsufficientStock, "stock decrement failed"))

	body := `{"buyer_id":"` + uuid.NewString() + `","seller_id":"` + uuid.NewString() + `","total_price":10,
		"ordered_products":[{"product_id":"` + uuid.NewString() + `","quantity":1,"subtotal":10}]}`
	rec := serve(e, jsonRequest(http.MethodPost, "/api/orders", body))

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "INSUFFICIENT_STOCK", decodeError(t, rec).Code)
}

func TestOrderHandler_PlaceOrder_RejectsBadItems(t *testing.T) {
	tests := []struct {
		name  string
		items string
	}{
		{name: "no items", items: `[]`},
		{name: "zero quantity", items: `[{"product_id":"` + uuid.NewString() + `","quantity":0,"subtotal":0}]`},
		{name: "missing product", items: `[{"quantity":1,"subtotal":10}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := newOrderTestServer(t)

			body := `{"buyer_id":"` + uuid.NewString() + `","seller_id":"` + uuid.NewString() + `","total_price":10,"ordered_products":` + tt.items + `}`
			rec := serve(e, jsonRequest(http.MethodPost, "/api/orders", body))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, "VALIDATION_FAILED", decodeError(t, rec).Code)
		})
	}
}

func TestOrderHandler_UpdateOrderStatus(t *testing.T) {
	e, orderUC := newOrderTestServer(t)
	id := uuid.New()

	orderUC.EXPECT().UpdateOrderStatus(mock.Anything, id, entity.OrderStatusDelivered).
		Return(&entity.Order{ID: id, Status: entity.OrderStatusDelivered}, nil)

	rec := serve(e, jsonRequest(http.MethodPut, "/api/orders/"+id.String()+"/status", `{"status":"DELIVERED"}`))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"DELIVERED"`)
}

func TestOrderHandler_UpdateOrderStatus_UnknownStatus(t *testing.T) {
	e, _ := newOrderTestServer(t)

	rec := serve(e, jsonRequest(http.MethodPut, "/api/orders/"+uuid.NewString()+"/status", `{"status":"SHIPPED"}`))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", decodeError(t, rec).Code)
}

func TestOrderHandler_GetReceiptQR(t *testing.T) {
	e, orderUC := newOrderTestServer(t)
	id := uuid.New()

	orderUC.EXPECT().OrderReceiptQR(mock.Anything, id).Return(pngHeader, nil)

	rec := serve(e, jsonRequest(http.MethodGet, "/api/orders/"+id.String()+"/qr", ""))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, pngHeader, rec.Body.Bytes())
}

func TestOrderHandler_GetOrder_NotFound(t *testing.T) {
	e, orderUC := newOrderTestServer(t)
	id := uuid.New()

	orderUC.EXPECT().GetOrder(mock.Anything, id).Return(nil, errors.Wrap(domainerrors.ErrOrderNotFound, "order not found"))

	rec := serve(e, jsonRequest(http.MethodGet, "/api/orders/"+id.String(), ""))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "ORDER_NOT_FOUND", decodeError(t, rec).Code)
}
