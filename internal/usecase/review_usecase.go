package usecase

import (
	"context"

	"haatbazar/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateReviewInput defines a buyer's review of a product.
type CreateReviewInput struct {
	BuyerID   uuid.UUID
	ProductID uuid.UUID
	OrderID   uuid.UUID
	Rating    *int
	Comment   string
	ImageURL  string
	Image     *Upload
}

// ProductReviews is a product's reviews with their average rating.
type ProductReviews struct {
	Reviews       []*entity.Review `json:"reviews"`
	AverageRating float64          `json:"averageRating"`
}

// ReviewUsecase defines review operations.
type ReviewUsecase interface {
	CreateReview(ctx context.Context, input *CreateReviewInput) (*entity.Review, error)
	HasReviewed(ctx context.Context, buyerID, productID uuid.UUID) (bool, error)
	ProductReviews(ctx context.Context, productID uuid.UUID) (*ProductReviews, error)
	BuyerReviews(ctx context.Context, buyerID uuid.UUID) ([]*entity.Review, error)
}
