package handler

import (
	"log/slog"

	"haatbazar/internal/delivery/api/response"
	"haatbazar/internal/domain/constants"
	"haatbazar/internal/domain/entity"
	"haatbazar/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// BuyerHandlerParams holds dependencies for BuyerHandler, injected by Fx.
type BuyerHandlerParams struct {
	fx.In

	BuyerUC  usecase.BuyerUsecase
	OrderUC  usecase.OrderUsecase
	ReviewUC usecase.ReviewUsecase
	Uploads  *UploadReader
	Logger   *slog.Logger
}

// BuyerHandler serves buyer profiles and the buyer's order and review history.
type BuyerHandler struct {
	buyerUC  usecase.BuyerUsecase
	orderUC  usecase.OrderUsecase
	reviewUC usecase.ReviewUsecase
	uploads  *UploadReader
	logger   *slog.Logger
}

// NewBuyerHandler is the constructor for BuyerHandler
func NewBuyerHandler(params BuyerHandlerParams) *BuyerHandler {
	return &BuyerHandler{
		buyerUC:  params.BuyerUC,
		orderUC:  params.OrderUC,
		reviewUC: params.ReviewUC,
		uploads:  params.Uploads,
		logger:   params.Logger,
	}
}

// UpdateBuyerRequest is a partial profile update. Omitted fields are left untouched.
type UpdateBuyerRequest struct {
	Name            *string               `json:"name" form:"name"`
	Phone           *string               `json:"phone" form:"phone"`
	BillingAddress  *string               `json:"billing_address" form:"billing_address"`
	ShippingAddress *string               `json:"shipping_address" form:"shipping_address"`
	NID             *string               `json:"nid" form:"nid"`
	Image           *string               `json:"image" form:"image"`
	Status          *entity.AccountStatus `json:"status" form:"status" validate:"omitempty,oneof=ACTIVE SUSPENDED BANNED"`
}

// ListBuyers handles GET /api/buyers
func (h *BuyerHandler) ListBuyers(c echo.Context) error {
	limit, err := queryLimit(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	buyers, err := h.buyerUC.ListBuyers(c.Request().Context(), limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, buyers)
}

// GetBuyer handles GET /api/buyers/:id
func (h *BuyerHandler) GetBuyer(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	buyer, err := h.buyerUC.GetBuyer(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, buyer)
}

// UpdateBuyer handles PUT /api/buyers/:id
func (h *BuyerHandler) UpdateBuyer(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateBuyerRequest
	if err := bindRequest(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	image, err := h.uploads.Image(c, constants.FormFieldImage)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	buyer, err := h.buyerUC.UpdateBuyer(c.Request().Context(), id, &usecase.UpdateBuyerInput{
		Name:            req.Name,
		Phone:           req.Phone,
		BillingAddress:  req.BillingAddress,
		ShippingAddress: req.ShippingAddress,
		NID:             req.NID,
		ImageURL:        req.Image,
		Image:           image,
		Status:          req.Status,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, buyer)
}

// ListOrders handles GET /api/buyers/:buyerId/orders
func (h *BuyerHandler) ListOrders(c echo.Context) error {
	buyerID, err := pathID(c, "buyerId")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	orders, err := h.orderUC.ListBuyerOrders(c.Request().Context(), buyerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, orders)
}

// ListReviews handles GET /api/buyers/:buyerId/reviews
func (h *BuyerHandler) ListReviews(c echo.Context) error {
	buyerID, err := pathID(c, "buyerId")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	reviews, err := h.reviewUC.BuyerReviews(c.Request().Context(), buyerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, reviews)
}
