package handler

import (
	"context"
	"log/slog"

	"haatbazar/internal/delivery/api/response"
	"haatbazar/internal/domain/constants"
	"haatbazar/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC  usecase.AuthUsecase
	Uploads *UploadReader
	Logger  *slog.Logger
}

// AuthHandler holds dependencies for registration and login handlers
type AuthHandler struct {
	authUC  usecase.AuthUsecase
	uploads *UploadReader
	logger  *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC:  params.AuthUC,
		uploads: params.Uploads,
		logger:  params.Logger,
	}
}

// RegisterBuyerRequest represents the buyer registration body (JSON or multipart).
type RegisterBuyerRequest struct {
	Name            string `json:"name" form:"name" validate:"required"`
	Email           string `json:"email" form:"email" validate:"required,email"`
	Password        string `json:"password" form:"password" validate:"required"`
	Phone           string `json:"phone" form:"phone" validate:"required"`
	BillingAddress  string `json:"billing_address" form:"billing_address"`
	ShippingAddress string `json:"shipping_address" form:"shipping_address"`
	NID             string `json:"nid" form:"nid"`
	Image           string `json:"image" form:"image"`
}

// RegisterSellerRequest represents the seller registration body. tinDoc is a multipart file.
type RegisterSellerRequest struct {
	Email        string `json:"email" form:"email" validate:"required,email"`
	Password     string `json:"password" form:"password" validate:"required"`
	BusinessName string `json:"business_name" form:"business_name" validate:"required"`
	Division     string `json:"division" form:"division" validate:"required"`
	Phone        string `json:"phone" form:"phone" validate:"required"`
	Address      string `json:"address" form:"address"`
	NID          string `json:"nid" form:"nid"`
	TinID        string `json:"tin_id" form:"tin_id"`
}

// LoginRequest represents the login body shared by every account kind.
type LoginRequest struct {
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required"`
}

// RegisterBuyer handles buyer registration
func (h *AuthHandler) RegisterBuyer(c echo.Context) error {
	var req RegisterBuyerRequest
	if err := bindRequest(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	image, err := h.uploads.Image(c, constants.FormFieldImage)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	buyer, err := h.authUC.RegisterBuyer(c.Request().Context(), &usecase.RegisterBuyerInput{
		Name:            req.Name,
		Email:           req.Email,
		Password:        req.Password,
		Phone:           req.Phone,
		BillingAddress:  req.BillingAddress,
		ShippingAddress: req.ShippingAddress,
		NID:             req.NID,
		ImageURL:        req.Image,
		Image:           image,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, buyer)
}

// RegisterSeller handles seller registration
func (h *AuthHandler) RegisterSeller(c echo.Context) error {
	var req RegisterSellerRequest
	if err := bindRequest(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	tinDoc, err := h.uploads.Document(c, constants.FormFieldTinDoc)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	seller, err := h.authUC.RegisterSeller(c.Request().Context(), &usecase.RegisterSellerInput{
		Email:        req.Email,
		Password:     req.Password,
		BusinessName: req.BusinessName,
		Division:     req.Division,
		Phone:        req.Phone,
		Address:      req.Address,
		NID:          req.NID,
		TinID:        req.TinID,
		TinDoc:       tinDoc,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, seller)
}

// LoginBuyer handles buyer login
func (h *AuthHandler) LoginBuyer(c echo.Context) error {
	return h.login(c, h.authUC.LoginBuyer)
}

// LoginSeller handles seller login
func (h *AuthHandler) LoginSeller(c echo.Context) error {
	return h.login(c, h.authUC.LoginSeller)
}

// LoginAdmin handles admin login
func (h *AuthHandler) LoginAdmin(c echo.Context) error {
	return h.login(c, h.authUC.LoginAdmin)
}

type loginFunc func(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error)

func (h *AuthHandler) login(c echo.Context, fn loginFunc) error {
	var req LoginRequest
	if err := bindRequest(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	output, err := fn(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, output)
}
