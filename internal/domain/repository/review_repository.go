package repository

import (
	"context"
	"errors"

	"haatbazar/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrReviewNotFound is returned when a review is not found.
	ErrReviewNotFound = errors.New("review not found")
	// ErrReviewAlreadyExists is returned when the buyer already reviewed the product.
	ErrReviewAlreadyExists = errors.New("review already exists")
)

// ReviewRepository defines the persistence operations for reviews.
type ReviewRepository interface {
	// Create persists a review. Returns ErrReviewAlreadyExists on a (buyer, product) duplicate.
	Create(ctx context.Context, review *entity.Review) error

	// Exists reports whether the buyer has reviewed the product.
	Exists(ctx context.Context, buyerID, productID uuid.UUID) (bool, error)

	// FindByProduct returns a product's reviews with the reviewing buyer loaded, newest first.
	FindByProduct(ctx context.Context, productID uuid.UUID) ([]*entity.Review, error)

	// FindByBuyer returns a buyer's reviews with the product loaded, newest first.
	FindByBuyer(ctx context.Context, buyerID uuid.UUID) ([]*entity.Review, error)
}
