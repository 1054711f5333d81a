// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
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

// buyerRepository implements the repository.BuyerRepository interface.
type buyerRepository struct {
	db *gorm.DB
}

// NewBuyerRepository is the constructor for buyerRepository.
func NewBuyerRepository(db *gorm.DB) repository.BuyerRepository {
	return &buyerRepository{
		db: db,
	}
}

// FindByID retrieves a buyer by id.
func (repo *buyerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Buyer, error) {
	var buyerM model.BuyerModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&buyerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBuyerNotFound
		}

		return nil, errors.Wrap(err, "failed to find buyer by id")
	}

	return toBuyerDomain(&buyerM), nil
}

// FindByEmail reads from the primary so a login right after registration sees the new row.
func (repo *buyerRepository) FindByEmail(ctx context.Context, email string) (*entity.Buyer, error) {
	var buyerM model.BuyerModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("email = ?", email).
		First(&buyerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBuyerNotFound
		}

		return nil, errors.Wrap(err, "failed to find buyer by email")
	}

	return toBuyerDomain(&buyerM), nil
}

// FindByIDs retrieves every buyer whose id is listed.
func (repo *buyerRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Buyer, error) {
	if len(ids) == 0 {
		return []*entity.Buyer{}, nil
	}

	var buyerModels []*model.BuyerModel
	if err := repo.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&buyerModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find buyers by ids")
	}

	return toBuyerDomains(buyerModels), nil
}

// List returns buyers, newest first.
func (repo *buyerRepository) List(ctx context.Context, limit int) ([]*entity.Buyer, error) {
	var buyerModels []*model.BuyerModel

	if err := applyLimit(repo.db.WithContext(ctx), limit).
		Order("created_at DESC").
		Find(&buyerModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list buyers")
	}

	return toBuyerDomains(buyerModels), nil
}

// Create persists a new buyer.
func (repo *buyerRepository) Create(ctx context.Context, buyer *entity.Buyer) error {
	id, err := ensureID(buyer.ID)
	if err != nil {
		return err
	}
	buyer.ID = id
	buyerM := fromBuyerDomain(buyer)

	if err := repo.db.WithContext(ctx).Create(buyerM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrEmailAlreadyExists
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required buyer information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create buyer")
	}

	buyer.CreatedAt = buyerM.CreatedAt
	buyer.UpdatedAt = buyerM.UpdatedAt

	return nil
}

// Update writes the named fields of an existing buyer.
func (repo *buyerRepository) Update(ctx context.Context, buyer *entity.Buyer, fields []string) error {
	buyerM := fromBuyerDomain(buyer)

	result := repo.db.WithContext(ctx).
		Model(buyerM).
		Select(updateColumns(fields)).
		Updates(buyerM)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrEmailAlreadyExists
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update buyer")
	}

	if result.RowsAffected == 0 {
		return repository.ErrBuyerNotFound
	}

	buyer.UpdatedAt = buyerM.UpdatedAt

	return nil
}

// --- Mapper Functions ---

func toBuyerDomain(data *model.BuyerModel) *entity.Buyer {
	if data == nil {
		return nil
	}

	return &entity.Buyer{
		ID:              data.ID,
		Name:            data.Name,
		Email:           data.Email,
		Phone:           data.Phone,
		BillingAddress:  data.BillingAddress,
		ShippingAddress: data.ShippingAddress,
		NID:             data.NID,
		Image:           data.Image,
		Status:          entity.AccountStatus(data.Status),
		PasswordHash:    data.PasswordHash,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

func toBuyerDomains(data []*model.BuyerModel) []*entity.Buyer {
	buyers := make([]*entity.Buyer, 0, len(data))
	for _, buyerM := range data {
		buyers = append(buyers, toBuyerDomain(buyerM))
	}

	return buyers
}

func fromBuyerDomain(data *entity.Buyer) *model.BuyerModel {
	if data == nil {
		return nil
	}

	status := data.Status
	if status == "" {
		status = entity.AccountStatusActive
	}

	return &model.BuyerModel{
		ID:              data.ID,
		Name:            data.Name,
		Email:           data.Email,
		Phone:           data.Phone,
		BillingAddress:  data.BillingAddress,
		ShippingAddress: data.ShippingAddress,
		NID:             data.NID,
		Image:           data.Image,
		Status:          string(status),
		PasswordHash:    data.PasswordHash,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}
