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
)

// paymentRepository implements the repository.PaymentRepository interface over the 'transactions' table.
type paymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository is the constructor for paymentRepository.
func NewPaymentRepository(db *gorm.DB) repository.PaymentRepository {
	return &paymentRepository{
		db: db,
	}
}

// FindByID retrieves a transaction by id.
func (repo *paymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	var txM model.TransactionModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&txM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTransactionNotFound
		}

		return nil, errors.Wrap(err, "failed to find transaction by id")
	}

	return toTransactionDomain(&txM), nil
}

// FindByOrderIDs retrieves every transaction referencing one of the orders.
func (repo *paymentRepository) FindByOrderIDs(ctx context.Context, orderIDs []uuid.UUID) ([]*entity.Transaction, error) {
	if len(orderIDs) == 0 {
		return []*entity.Transaction{}, nil
	}

	var txModels []*model.TransactionModel
	if err := repo.db.WithContext(ctx).
		Where("order_id IN ?", orderIDs).
		Find(&txModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find transactions by orders")
	}

	txs := make([]*entity.Transaction, 0, len(txModels))
	for _, txM := range txModels {
		txs = append(txs, toTransactionDomain(txM))
	}

	return txs, nil
}

// Create persists a new transaction.
func (repo *paymentRepository) Create(ctx context.Context, tx *entity.Transaction) error {
	id, err := ensureID(tx.ID)
	if err != nil {
		return err
	}
	tx.ID = id
	if tx.PaymentType == "" {
		tx.PaymentType = entity.PaymentTypeCard
	}
	if tx.Status == "" {
		tx.Status = entity.TransactionStatusPending
	}
	txM := fromTransactionDomain(tx)

	if err := repo.db.WithContext(ctx).Create(txM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrOrderNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create transaction")
	}

	tx.CreatedAt = txM.CreatedAt
	tx.UpdatedAt = txM.UpdatedAt

	return nil
}

// UpdateStatus overwrites the transaction status.
func (repo *paymentRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.TransactionStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Where("id = ?", id).
		Update("status", string(status))

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update transaction status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrTransactionNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toTransactionDomain(data *model.TransactionModel) *entity.Transaction {
	if data == nil {
		return nil
	}

	return &entity.Transaction{
		ID:          data.ID,
		OrderID:     data.OrderID,
		Amount:      data.Amount,
		PaymentType: entity.PaymentType(data.PaymentType),
		Status:      entity.TransactionStatus(data.Status),
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromTransactionDomain(data *entity.Transaction) *model.TransactionModel {
	if data == nil {
		return nil
	}

	return &model.TransactionModel{
		ID:          data.ID,
		OrderID:     data.OrderID,
		Amount:      data.Amount,
		PaymentType: string(data.PaymentType),
		Status:      string(data.Status),
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
