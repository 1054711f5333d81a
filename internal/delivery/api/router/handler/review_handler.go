package handler

import (
	"log/slog"

	"haatbazar/internal/delivery/api/response"
	"haatbazar/internal/domain/constants"
	domainerrors "haatbazar/internal/domain/errors"
	"haatbazar/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ReviewHandlerParams holds dependencies for ReviewHandler, injected by Fx.
type ReviewHandlerParams struct {
	fx.In

	ReviewUC usecase.ReviewUsecase
	Uploads  *UploadReader
	Logger   *slog.Logger
}

// ReviewHandler holds dependencies for review handlers
type ReviewHandler struct {
	reviewUC usecase.ReviewUsecase
	uploads  *UploadReader
	logger   *slog.Logger
}

// NewReviewHandler is the constructor for ReviewHandler
func NewReviewHandler(params ReviewHandlerParams) *ReviewHandler {
	return &ReviewHandler{
		reviewUC: params.ReviewUC,
		uploads:  params.Uploads,
		logger:   params.Logger,
	}
}

// CreateReviewRequest represents the body of POST /api/reviews
type CreateReviewRequest struct {
	BuyerID   uuid.UUID `json:"buyer_id" form:"buyer_id" validate:"required"`
	ProductID uuid.UUID `json:"product_id" form:"product_id" validate:"required"`
	OrderID   uuid.UUID `json:"order_id" form:"order_id"`
	Rating    *int      `json:"rating" form:"rating" validate:"omitempty,min=1,max=5"`
	Comment   string    `json:"comment" form:"comment"`
	Image     string    `json:"image" form:"image"`
}

// CreateReview handles POST /api/reviews
func (h *ReviewHandler) CreateReview(c echo.Context) error {
	var req CreateReviewRequest
	if err := bindRequest(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	image, err := h.uploads.Image(c, constants.FormFieldImage)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	review, err := h.reviewUC.CreateReview(c.Request().Context(), &usecase.CreateReviewInput{
		BuyerID:   req.BuyerID,
		ProductID: req.ProductID,
		OrderID:   req.OrderID,
		Rating:    req.Rating,
		Comment:   req.Comment,
		ImageURL:  req.Image,
		Image:     image,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, review)
}

// CheckReview handles GET /api/reviews/check?buyer_id&product_id
func (h *ReviewHandler) CheckReview(c echo.Context) error {
	buyerID, err := queryID(c, "buyer_id")
	if err != nil {
		return response.HandleAppError(c, err)
	}
	productID, err := queryID(c, "product_id")
	if err != nil {
		return response.HandleAppError(c, err)
	}
	if buyerID == uuid.Nil || productID == uuid.Nil {
		return response.AppError(c, domainerrors.ErrValidationFailed.WithDetails("buyer_id and product_id are required"))
	}

	reviewed, err := h.reviewUC.HasReviewed(c.Request().Context(), buyerID, productID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, map[string]bool{"hasReviewed": reviewed})
}
