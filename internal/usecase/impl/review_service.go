package impl

import (
	"context"
	"log/slog"

	deliverycontext "haatbazar/internal/delivery/context"
	"haatbazar/internal/domain/entity"
	domainerrors "haatbazar/internal/domain/errors"
	"haatbazar/internal/domain/repository"
	"haatbazar/internal/domain/service"
	"haatbazar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	minRating = 1
	maxRating = 5
)

type reviewService struct {
	reviewRepo  repository.ReviewRepository
	productRepo repository.ProductRepository
	blobs       service.BlobStore
	logger      *slog.Logger
}

// NewReviewService is the constructor for reviewService.
func NewReviewService(
	reviewRepo repository.ReviewRepository,
	productRepo repository.ProductRepository,
	blobs service.BlobStore,
	logger *slog.Logger,
) usecase.ReviewUsecase {
	return &reviewService{
		reviewRepo:  reviewRepo,
		productRepo: productRepo,
		blobs:       blobs,
		logger:      logger,
	}
}

func (srv *reviewService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateReview stores a buyer's only review of a product.
func (srv *reviewService) CreateReview(ctx context.Context, input *usecase.CreateReviewInput) (*entity.Review, error) {
	if input.Rating != nil && (*input.Rating < minRating || *input.Rating > maxRating) {
		return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "rating must be between %d and %d", minRating, maxRating)
	}

	if _, err := srv.productRepo.FindByID(ctx, input.ProductID); err != nil {
		return nil, mapProductError(err)
	}

	reviewed, err := srv.reviewRepo.Exists(ctx, input.BuyerID, input.ProductID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check existing review")
	}
	if reviewed {
		return nil, errors.Wrap(domainerrors.ErrAlreadyReviewed, "buyer already reviewed this product")
	}

	image, err := resolveImage(ctx, srv.blobs, input.Image, input.ImageURL)
	if err != nil {
		return nil, err
	}

	review := &entity.Review{
		BuyerID:   input.BuyerID,
		ProductID: input.ProductID,
		OrderID:   input.OrderID,
		Rating:    input.Rating,
		Comment:   input.Comment,
		Image:     image,
	}

	if err := srv.reviewRepo.Create(ctx, review); err != nil {
		discardUpload(ctx, srv.blobs, srv.log(ctx), input.Image, image)

		if errors.Is(err, repository.ErrReviewAlreadyExists) {
			return nil, errors.Wrap(domainerrors.ErrAlreadyReviewed, "buyer already reviewed this product")
		}

		return nil, errors.Wrap(err, "failed to create review")
	}

	srv.log(ctx).Info("Review created", slog.Any("review_id", review.ID), slog.Any("product_id", review.ProductID))

	return review, nil
}

func (srv *reviewService) HasReviewed(ctx context.Context, buyerID, productID uuid.UUID) (bool, error) {
	reviewed, err := srv.reviewRepo.Exists(ctx, buyerID, productID)
	if err != nil {
		return false, errors.Wrap(err, "failed to check existing review")
	}

	return reviewed, nil
}

// ProductReviews returns the product's reviews and their average rating (0 when none are rated).
func (srv *reviewService) ProductReviews(ctx context.Context, productID uuid.UUID) (*usecase.ProductReviews, error) {
	reviews, err := srv.reviewRepo.FindByProduct(ctx, productID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list product reviews")
	}
	if reviews == nil {
		reviews = []*entity.Review{}
	}

	return &usecase.ProductReviews{
		Reviews:       reviews,
		AverageRating: entity.AverageRating(reviews),
	}, nil
}

func (srv *reviewService) BuyerReviews(ctx context.Context, buyerID uuid.UUID) ([]*entity.Review, error) {
	reviews, err := srv.reviewRepo.FindByBuyer(ctx, buyerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list buyer reviews")
	}

	return reviews, nil
}
