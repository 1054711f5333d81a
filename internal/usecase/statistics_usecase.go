package usecase

import (
	"context"

	"haatbazar/internal/domain/entity"
)

// PublicStatistics is the storefront subset of the marketplace counts.
type PublicStatistics struct {
	TotalProducts int64 `json:"totalProducts"`
	TotalSellers  int64 `json:"totalSellers"`
	TotalBuyers   int64 `json:"totalBuyers"`
}

// StatisticsUsecase reports marketplace counts.
type StatisticsUsecase interface {
	PublicStatistics(ctx context.Context) (*PublicStatistics, error)
	// Dashboard returns every count, for admins.
	Dashboard(ctx context.Context) (*entity.MarketplaceCounts, error)
}
