package impl

import (
	"context"
	"strings"
	"testing"

	"haatbazar/internal/domain/entity"
	domainerrors "haatbazar/internal/domain/errors"
	"haatbazar/internal/domain/repository"
	mockRepo "haatbazar/internal/mocks/repository"
	mockSvc "haatbazar/internal/mocks/service"
	"haatbazar/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type reviewServiceFixtures struct {
	service     usecase.ReviewUsecase
	reviewRepo  *mockRepo.MockReviewRepository
	productRepo *mockRepo.MockProductRepository
	blobs       *mockSvc.MockBlobStore
}

func createTestReviewService(t *testing.T) reviewServiceFixtures {
	reviewRepo := mockRepo.NewMockReviewRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	blobs := mockSvc.NewMockBlobStore(t)

	return reviewServiceFixtures{
		service:     NewReviewService(reviewRepo, productRepo, blobs, newDiscardLogger()),
		reviewRepo:  reviewRepo,
		productRepo: productRepo,
		blobs:       blobs,
	}
}

func intPtr(v int) *int { return &v }

func TestReviewService_CreateReview(t *testing.T) {
	fx := createTestReviewService(t)
	ctx := context.Background()
	buyerID, productID := uuid.New(), uuid.New()

	fx.productRepo.EXPECT().FindByID(ctx, productID).Return(&entity.Product{ID: productID}, nil)
	fx.reviewRepo.EXPECT().Exists(ctx, buyerID, productID).Return(false, nil)
	fx.reviewRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Review")).Return(nil)

	review, err := fx.service.CreateReview(ctx, &usecase.CreateReviewInput{
		BuyerID:   buyerID,
		ProductID: productID,
		Rating:    intPtr(4),
		Comment:   "fresh mangoes",
	})
	require.NoError(t, err)
	assert.Equal(t, 4, *review.Rating)
	assert.Empty(t, review.Image)
}

func TestReviewService_CreateReview_AlreadyReviewed(t *testing.T) {
	fx := createTestReviewService(t)
	ctx := context.Background()
	buyerID, productID := uuid.New(), uuid.New()

	fx.productRepo.EXPECT().FindByID(ctx, productID).Return(&entity.Product{ID: productID}, nil)
	fx.reviewRepo.EXPECT().Exists(ctx, buyerID, productID).Return(true, nil)

	_, err := fx.service.CreateReview(ctx, &usecase.CreateReviewInput{BuyerID: buyerID, ProductID: productID})
	assert.ErrorIs(t, err, domainerrors.ErrAlreadyReviewed)
}

func TestReviewService_CreateReview_ConcurrentDuplicate(t *testing.T) {
	fx := createTestReviewService(t)
	ctx := context.Background()
	buyerID, productID := uuid.New(), uuid.New()

	fx.productRepo.EXPECT().FindByID(ctx, productID).Return(&entity.Product{ID: productID}, nil)
	fx.reviewRepo.EXPECT().Exists(ctx, buyerID, productID).Return(false, nil)
	fx.reviewRepo.EXPECT().Create(ctx, mock.Anything).Return(repository.ErrReviewAlreadyExists)

	_, err := fx.service.CreateReview(ctx, &usecase.CreateReviewInput{BuyerID: buyerID, ProductID: productID})
	assert.ErrorIs(t, err, domainerrors.ErrAlreadyReviewed)
}

func TestReviewService_CreateReview_DuplicateRemovesSavedImage(t *testing.T) {
	fx := createTestReviewService(t)
	ctx := context.Background()
	buyerID, productID := uuid.New(), uuid.New()
	upload := &usecase.Upload{Filename: "mango.jpg", ContentType: "image/jpeg", Content: strings.NewReader("jpg")}

	fx.productRepo.EXPECT().FindByID(ctx, productID).Return(&entity.Product{ID: productID}, nil)
	fx.reviewRepo.EXPECT().Exists(ctx, buyerID, productID).Return(false, nil)
	fx.blobs.EXPECT().Save(ctx, "mango.jpg", "image/jpeg", upload.Content).Return("/uploads/mango.jpg", nil)
	fx.reviewRepo.EXPECT().Create(ctx, mock.Anything).Return(repository.ErrReviewAlreadyExists)
	fx.blobs.EXPECT().Delete(mock.Anything, "/uploads/mango.jpg").Return(nil)

	_, err := fx.service.CreateReview(ctx, &usecase.CreateReviewInput{BuyerID: buyerID, ProductID: productID, Image: upload})
	assert.ErrorIs(t, err, domainerrors.ErrAlreadyReviewed)
}

func TestReviewService_CreateReview_RatingOutOfRange(t *testing.T) {
	fx := createTestReviewService(t)

	_, err := fx.service.CreateReview(context.Background(), &usecase.CreateReviewInput{
		BuyerID:   uuid.New(),
		ProductID: uuid.New(),
		Rating:    intPtr(6),
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestReviewService_CreateReview_UnknownProduct(t *testing.T) {
	fx := createTestReviewService(t)
	productID := uuid.New()

	fx.productRepo.EXPECT().FindByID(mock.Anything, productID).Return(nil, repository.ErrProductNotFound)

	_, err := fx.service.CreateReview(context.Background(), &usecase.CreateReviewInput{BuyerID: uuid.New(), ProductID: productID})
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestReviewService_ProductReviews(t *testing.T) {
	productID := uuid.New()

	tests := []struct {
		name    string
		reviews []*entity.Review
		want    float64
	}{
		{name: "no reviews", reviews: nil, want: 0},
		{
			name: "unrated reviews are ignored",
			reviews: []*entity.Review{
				{Rating: intPtr(5)},
				{Rating: intPtr(2)},
				{Comment: "no stars"},
			},
			want: 3.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestReviewService(t)
			fx.reviewRepo.EXPECT().FindByProduct(mock.Anything, productID).Return(tt.reviews, nil)

			out, err := fx.service.ProductReviews(context.Background(), productID)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, out.AverageRating, 1e-9)
			assert.NotNil(t, out.Reviews)
			assert.Len(t, out.Reviews, len(tt.reviews))
		})
	}
}

func TestReviewService_HasReviewed(t *testing.T) {
	fx := createTestReviewService(t)
	buyerID, productID := uuid.New(), uuid.New()

	fx.reviewRepo.EXPECT().Exists(mock.Anything, buyerID, productID).Return(true, nil)

	reviewed, err := fx.service.HasReviewed(context.Background(), buyerID, productID)
	require.NoError(t, err)
	assert.True(t, reviewed)
}
