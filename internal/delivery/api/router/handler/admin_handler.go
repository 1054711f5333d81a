package handler

import (
	"log/slog"

	"haatbazar/internal/delivery/api/response"
	"haatbazar/internal/domain/entity"
	"haatbazar/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	BuyerUC      usecase.BuyerUsecase
	SellerUC     usecase.SellerUsecase
	StatisticsUC usecase.StatisticsUsecase
	Logger       *slog.Logger
}

// AdminHandler serves the moderation endpoints behind the admin role.
type AdminHandler struct {
	buyerUC      usecase.BuyerUsecase
	sellerUC     usecase.SellerUsecase
	statisticsUC usecase.StatisticsUsecase
	logger       *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler
func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{
		buyerUC:      params.BuyerUC,
		sellerUC:     params.SellerUC,
		statisticsUC: params.StatisticsUC,
		logger:       params.Logger,
	}
}

// UpdateAccountStatusRequest overwrites a buyer's or seller's moderation status.
type UpdateAccountStatusRequest struct {
	Status entity.AccountStatus `json:"status" validate:"required,oneof=ACTIVE SUSPENDED BANNED"`
}

// Dashboard handles GET /api/admin/dashboard
func (h *AdminHandler) Dashboard(c echo.Context) error {
	counts, err := h.statisticsUC.Dashboard(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, counts)
}

// UpdateBuyerStatus handles PUT /api/admin/buyers/:buyerId/status
func (h *AdminHandler) UpdateBuyerStatus(c echo.Context) error {
	buyerID, err := pathID(c, "buyerId")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateAccountStatusRequest
	if err := bindRequest(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	buyer, err := h.buyerUC.UpdateBuyerStatus(c.Request().Context(), buyerID, req.Status)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, buyer)
}

// UpdateSellerStatus handles PUT /api/admin/sellers/:sellerId/status
func (h *AdminHandler) UpdateSellerStatus(c echo.Context) error {
	sellerID, err := pathID(c, "sellerId")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateAccountStatusRequest
	if err := bindRequest(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	seller, err := h.sellerUC.UpdateSellerStatus(c.Request().Context(), sellerID, req.Status)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, seller)
}
