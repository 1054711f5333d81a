package handler

import (
	"log/slog"
	"net/http"

	"haatbazar/internal/delivery/api/response"
	"haatbazar/internal/domain/constants"
	"haatbazar/internal/domain/entity"
	"haatbazar/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// ProductHandlerParams holds dependencies for ProductHandler, injected by Fx.
type ProductHandlerParams struct {
	fx.In

	ProductUC usecase.ProductUsecase
	ReviewUC  usecase.ReviewUsecase
	Uploads   *UploadReader
	Logger    *slog.Logger
}

// ProductHandler holds dependencies for catalogue handlers
type ProductHandler struct {
	productUC usecase.ProductUsecase
	reviewUC  usecase.ReviewUsecase
	uploads   *UploadReader
	logger    *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler
func NewProductHandler(params ProductHandlerParams) *ProductHandler {
	return &ProductHandler{
		productUC: params.ProductUC,
		reviewUC:  params.ReviewUC,
		uploads:   params.Uploads,
		logger:    params.Logger,
	}
}

// CreateProductRequest represents a new listing. The image is either a multipart file or a URL.
type CreateProductRequest struct {
	Name         string          `json:"name" form:"name" validate:"required"`
	Category     string          `json:"category" form:"category" validate:"required"`
	Subcategory  string          `json:"subcategory" form:"subcategory"`
	SellerID     uuid.UUID       `json:"seller_id" form:"seller_id" validate:"required"`
	Division     string          `json:"division" form:"division"`
	Unit         string          `json:"unit" form:"unit"`
	PricePerUnit decimal.Decimal `json:"price_per_unit" form:"price_per_unit"`
	Stock        int             `json:"stock" form:"stock" validate:"gte=0"`
	Description  string          `json:"description" form:"description"`
	Image        string          `json:"image" form:"image"`
}

// UpdateProductRequest is a partial update. Omitted fields are left untouched.
type UpdateProductRequest struct {
	Name         *string          `json:"name" form:"name"`
	Category     *string          `json:"category" form:"category"`
	Subcategory  *string          `json:"subcategory" form:"subcategory"`
	Division     *string          `json:"division" form:"division"`
	Unit         *string          `json:"unit" form:"unit"`
	PricePerUnit *decimal.Decimal `json:"price_per_unit" form:"price_per_unit"`
	Stock        *int             `json:"stock" form:"stock" validate:"omitempty,gte=0"`
	Description  *string          `json:"description" form:"description"`
	Image        *string          `json:"image" form:"image"`
}

// ListProducts handles GET /api/products?limit&category&seller_id
func (h *ProductHandler) ListProducts(c echo.Context) error {
	limit, err := queryLimit(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	sellerID, err := queryID(c, "seller_id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	products, err := h.productUC.ListProducts(c.Request().Context(), entity.ProductFilter{
		SellerID: sellerID,
		Category: c.QueryParam("category"),
		Limit:    limit,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, products)
}

// CreateProduct handles POST /api/products
func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var req CreateProductRequest
	if err := bindRequest(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	image, err := h.uploads.Image(c, constants.FormFieldImage)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	product, err := h.productUC.CreateProduct(c.Request().Context(), &usecase.CreateProductInput{
		Name:         req.Name,
		Category:     req.Category,
		Subcategory:  req.Subcategory,
		SellerID:     req.SellerID,
		Division:     req.Division,
		Unit:         req.Unit,
		PricePerUnit: req.PricePerUnit,
		Stock:        req.Stock,
		Description:  req.Description,
		ImageURL:     req.Image,
		Image:        image,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, product)
}

// GetProduct handles GET /api/products/:id
func (h *ProductHandler) GetProduct(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	product, err := h.productUC.GetProduct(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, product)
}

// UpdateProduct handles PUT /api/products/:id
func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateProductRequest
	if err := bindRequest(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	image, err := h.uploads.Image(c, constants.FormFieldImage)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	product, err := h.productUC.UpdateProduct(c.Request().Context(), id, &usecase.UpdateProductInput{
		Name:         req.Name,
		Category:     req.Category,
		Subcategory:  req.Subcategory,
		Division:     req.Division,
		Unit:         req.Unit,
		PricePerUnit: req.PricePerUnit,
		Stock:        req.Stock,
		Description:  req.Description,
		ImageURL:     req.Image,
		Image:        image,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, product)
}

// DeleteProduct handles DELETE /api/products/:id
func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.productUC.DeleteProduct(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, map[string]string{"message": "Product deleted successfully"})
}

// ListReviews handles GET /api/products/:productId/reviews
func (h *ProductHandler) ListReviews(c echo.Context) error {
	productID, err := pathID(c, "productId")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	reviews, err := h.reviewUC.ProductReviews(c.Request().Context(), productID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, reviews)
}
