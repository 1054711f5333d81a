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

// sellerRepository implements the repository.SellerRepository interface.
type sellerRepository struct {
	db *gorm.DB
}

// NewSellerRepository is the constructor for sellerRepository.
func NewSellerRepository(db *gorm.DB) repository.SellerRepository {
	return &sellerRepository{
		db: db,
	}
}

// FindByID retrieves a seller by id.
func (repo *sellerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Seller, error) {
	var sellerM model.SellerModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&sellerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSellerNotFound
		}

		return nil, errors.Wrap(err, "failed to find seller by id")
	}

	return toSellerDomain(&sellerM), nil
}

// FindByEmail retrieves a seller by login email from the primary.
func (repo *sellerRepository) FindByEmail(ctx context.Context, email string) (*entity.Seller, error) {
	var sellerM model.SellerModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("email = ?", email).
		First(&sellerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSellerNotFound
		}

		return nil, errors.Wrap(err, "failed to find seller by email")
	}

	return toSellerDomain(&sellerM), nil
}

// List returns sellers, newest first.
func (repo *sellerRepository) List(ctx context.Context, limit int) ([]*entity.Seller, error) {
	var sellerModels []*model.SellerModel

	if err := applyLimit(repo.db.WithContext(ctx), limit).
		Order("created_at DESC").
		Find(&sellerModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list sellers")
	}

	sellers := make([]*entity.Seller, 0, len(sellerModels))
	for _, sellerM := range sellerModels {
		sellers = append(sellers, toSellerDomain(sellerM))
	}

	return sellers, nil
}

// Create persists a new seller.
func (repo *sellerRepository) Create(ctx context.Context, seller *entity.Seller) error {
	id, err := ensureID(seller.ID)
	if err != nil {
		return err
	}
	seller.ID = id
	sellerM := fromSellerDomain(seller)

	if err := repo.db.WithContext(ctx).Create(sellerM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrEmailAlreadyExists
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required seller information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create seller")
	}

	seller.CreatedAt = sellerM.CreatedAt
	seller.UpdatedAt = sellerM.UpdatedAt

	return nil
}

// Update writes the named fields of an existing seller.
func (repo *sellerRepository) Update(ctx context.Context, seller *entity.Seller, fields []string) error {
	sellerM := fromSellerDomain(seller)

	result := repo.db.WithContext(ctx).
		Model(sellerM).
		Select(updateColumns(fields)).
		Updates(sellerM)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrEmailAlreadyExists
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update seller")
	}

	if result.RowsAffected == 0 {
		return repository.ErrSellerNotFound
	}

	seller.UpdatedAt = sellerM.UpdatedAt

	return nil
}

// --- Mapper Functions ---

func toSellerDomain(data *model.SellerModel) *entity.Seller {
	if data == nil {
		return nil
	}

	return &entity.Seller{
		ID:           data.ID,
		Email:        data.Email,
		BusinessName: data.BusinessName,
		Division:     data.Division,
		Phone:        data.Phone,
		Status:       entity.AccountStatus(data.Status),
		Address:      data.Address,
		NID:          data.NID,
		TinID:        data.TinID,
		TinDoc:       data.TinDoc,
		Image:        data.Image,
		PasswordHash: data.PasswordHash,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromSellerDomain(data *entity.Seller) *model.SellerModel {
	if data == nil {
		return nil
	}

	status := data.Status
	if status == "" {
		status = entity.AccountStatusActive
	}

	return &model.SellerModel{
		ID:           data.ID,
		Email:        data.Email,
		BusinessName: data.BusinessName,
		Division:     data.Division,
		Phone:        data.Phone,
		Status:       string(status),
		Address:      data.Address,
		NID:          data.NID,
		TinID:        data.TinID,
		TinDoc:       data.TinDoc,
		Image:        data.Image,
		PasswordHash: data.PasswordHash,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
