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

// SellerHandlerParams holds dependencies for SellerHandler, injected by Fx.
type SellerHandlerParams struct {
	fx.In

	SellerUC  usecase.SellerUsecase
	ProductUC usecase.ProductUsecase
	OrderUC   usecase.OrderUsecase
	Uploads   *UploadReader
	Logger    *slog.Logger
}

// SellerHandler serves seller profiles and the seller's storefront and order book.
type SellerHandler struct {
	sellerUC  usecase.SellerUsecase
	productUC usecase.ProductUsecase
	orderUC   usecase.OrderUsecase
	uploads   *UploadReader
	logger    *slog.Logger
}

// NewSellerHandler is the constructor for SellerHandler
func NewSellerHandler(params SellerHandlerParams) *SellerHandler {
	return &SellerHandler{
		sellerUC:  params.SellerUC,
		productUC: params.ProductUC,
		orderUC:   params.OrderUC,
		uploads:   params.Uploads,
		logger:    params.Logger,
	}
}

// UpdateSellerRequest is a partial profile update. Omitted fields are left untouched.
type UpdateSellerRequest struct {
	BusinessName *string               `json:"business_name" form:"business_name"`
	Division     *string               `json:"division" form:"division"`
	Phone        *string               `json:"phone" form:"phone"`
	Address      *string               `json:"address" form:"address"`
	NID          *string               `json:"nid" form:"nid"`
	TinID        *string               `json:"tin_id" form:"tin_id"`
	Image        *string               `json:"image" form:"image"`
	Status       *entity.AccountStatus `json:"status" form:"status" validate:"omitempty,oneof=ACTIVE SUSPENDED BANNED"`
}

// ListSellers handles GET /api/sellers
func (h *SellerHandler) ListSellers(c echo.Context) error {
	limit, err := queryLimit(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	sellers, err := h.sellerUC.ListSellers(c.Request().Context(), limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, sellers)
}

// GetSeller handles GET /api/sellers/:id
func (h *SellerHandler) GetSeller(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	seller, err := h.sellerUC.GetSeller(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, seller)
}

// UpdateSeller handles PUT /api/sellers/:id
func (h *SellerHandler) UpdateSeller(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateSellerRequest
	if err := bindRequest(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	image, err := h.uploads.Image(c, constants.FormFieldImage)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	tinDoc, err := h.uploads.Document(c, constants.FormFieldTinDoc)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	seller, err := h.sellerUC.UpdateSeller(c.Request().Context(), id, &usecase.UpdateSellerInput{
		BusinessName: req.BusinessName,
		Division:     req.Division,
		Phone:        req.Phone,
		Address:      req.Address,
		NID:          req.NID,
		TinID:        req.TinID,
		ImageURL:     req.Image,
		Image:        image,
		TinDoc:       tinDoc,
		Status:       req.Status,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, seller)
}

// ListProducts handles GET /api/sellers/:sellerId/products
func (h *SellerHandler) ListProducts(c echo.Context) error {
	sellerID, err := pathID(c, "sellerId")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	products, err := h.productUC.ListProducts(c.Request().Context(), entity.ProductFilter{SellerID: sellerID})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, products)
}

// ListOrders handles GET /api/sellers/:sellerId/orders
func (h *SellerHandler) ListOrders(c echo.Context) error {
	sellerID, err := pathID(c, "sellerId")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	orders, err := h.orderUC.ListSellerOrders(c.Request().Context(), sellerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, orders)
}
