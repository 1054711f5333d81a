package postgres

import (
	"context"

	"haatbazar/internal/domain/entity"
	domainerrors "haatbazar/internal/domain/errors"
	"haatbazar/internal/domain/repository"
	"haatbazar/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// reviewRepository implements the repository.ReviewRepository interface.
type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository is the constructor for reviewRepository.
func NewReviewRepository(db *gorm.DB) repository.ReviewRepository {
	return &reviewRepository{
		db: db,
	}
}

// Create persists a review. The (buyer_id, product_id) unique index catches concurrent duplicates.
func (repo *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	id, err := ensureID(review.ID)
	if err != nil {
		return err
	}
	review.ID = id
	reviewM := fromReviewDomain(review)

	if err := repo.db.WithContext(ctx).Omit("Buyer", "Product").Create(reviewM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrReviewAlreadyExists
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("rating must be between 1 and 5")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid buyer or product reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create review")
	}

	review.CreatedAt = reviewM.CreatedAt
	review.UpdatedAt = reviewM.UpdatedAt

	return nil
}

// Exists checks the primary for a review by the buyer on the product.
func (repo *reviewRepository) Exists(ctx context.Context, buyerID, productID uuid.UUID) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Model(&model.ReviewModel{}).
		Where("buyer_id = ? AND product_id = ?", buyerID, productID).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check existing review")
	}

	return count > 0, nil
}

// FindByProduct returns a product's reviews with their buyers, newest first.
func (repo *reviewRepository) FindByProduct(ctx context.Context, productID uuid.UUID) ([]*entity.Review, error) {
	var reviewModels []*model.ReviewModel

	if err := repo.db.WithContext(ctx).
		Preload("Buyer").
		Where("product_id = ?", productID).
		Order("created_at DESC").
		Find(&reviewModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find reviews by product")
	}

	return toReviewDomains(reviewModels), nil
}

// FindByBuyer returns a buyer's reviews with their products, newest first.
func (repo *reviewRepository) FindByBuyer(ctx context.Context, buyerID uuid.UUID) ([]*entity.Review, error) {
	var reviewModels []*model.ReviewModel

	if err := repo.db.WithContext(ctx).
		Preload("Product").
		Where("buyer_id = ?", buyerID).
		Order("created_at DESC").
		Find(&reviewModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find reviews by buyer")
	}

	return toReviewDomains(reviewModels), nil
}

// --- Mapper Functions ---

func toReviewDomain(data *model.ReviewModel) *entity.Review {
	if data == nil {
		return nil
	}

	return &entity.Review{
		ID:        data.ID,
		BuyerID:   data.BuyerID,
		ProductID: data.ProductID,
		OrderID:   data.OrderID,
		Rating:    data.Rating,
		Comment:   data.Comment,
		Image:     data.Image,
		Buyer:     toBuyerDomain(data.Buyer),
		Product:   toProductDomain(data.Product),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func toReviewDomains(data []*model.ReviewModel) []*entity.Review {
	reviews := make([]*entity.Review, 0, len(data))
	for _, reviewM := range data {
		reviews = append(reviews, toReviewDomain(reviewM))
	}

	return reviews
}

func fromReviewDomain(data *entity.Review) *model.ReviewModel {
	if data == nil {
		return nil
	}

	return &model.ReviewModel{
		ID:        data.ID,
		BuyerID:   data.BuyerID,
		ProductID: data.ProductID,
		OrderID:   data.OrderID,
		Rating:    data.Rating,
		Comment:   data.Comment,
		Image:     data.Image,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
