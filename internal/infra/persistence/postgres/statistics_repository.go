package postgres

import (
	"context"

	"haatbazar/internal/domain/entity"
	"haatbazar/internal/domain/repository"
	"haatbazar/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// statisticsRepository implements the repository.StatisticsRepository interface.
type statisticsRepository struct {
	db *gorm.DB
}

// NewStatisticsRepository is the constructor for statisticsRepository.
func NewStatisticsRepository(db *gorm.DB) repository.StatisticsRepository {
	return &statisticsRepository{
		db: db,
	}
}

// Counts returns the row count of every marketplace table.
func (repo *statisticsRepository) Counts(ctx context.Context) (*entity.MarketplaceCounts, error) {
	counts := &entity.MarketplaceCounts{}

	targets := []struct {
		table string
		dest  *int64
	}{
		{table: model.ProductModel{}.TableName(), dest: &counts.Products},
		{table: model.SellerModel{}.TableName(), dest: &counts.Sellers},
		{table: model.BuyerModel{}.TableName(), dest: &counts.Buyers},
		{table: model.OrderModel{}.TableName(), dest: &counts.Orders},
		{table: model.TransactionModel{}.TableName(), dest: &counts.Transactions},
		{table: model.BuyerComplaintTable, dest: &counts.BuyerComplaints},
		{table: model.SellerComplaintTable, dest: &counts.SellerComplaints},
	}

	for _, target := range targets {
		if err := repo.db.WithContext(ctx).Table(target.table).Count(target.dest).Error; err != nil {
			return nil, errors.Wrapf(err, "failed to count %s", target.table)
		}
	}

	return counts, nil
}
