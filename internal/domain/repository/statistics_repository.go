package repository

import (
	"context"

	"haatbazar/internal/domain/entity"
)

// StatisticsRepository reports record counts across the marketplace tables.
type StatisticsRepository interface {
	Counts(ctx context.Context) (*entity.MarketplaceCounts, error)
}
