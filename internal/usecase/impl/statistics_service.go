package impl

import (
	"context"

	"haatbazar/internal/domain/entity"
	"haatbazar/internal/domain/repository"
	"haatbazar/internal/usecase"

	"github.com/pkg/errors"
)

type statisticsService struct {
	statsRepo repository.StatisticsRepository
}

// NewStatisticsService is the constructor for statisticsService.
func NewStatisticsService(statsRepo repository.StatisticsRepository) usecase.StatisticsUsecase {
	return &statisticsService{statsRepo: statsRepo}
}

func (srv *statisticsService) PublicStatistics(ctx context.Context) (*usecase.PublicStatistics, error) {
	counts, err := srv.Dashboard(ctx)
	if err != nil {
		return nil, err
	}

	return &usecase.PublicStatistics{
		TotalProducts: counts.Products,
		TotalSellers:  counts.Sellers,
		TotalBuyers:   counts.Buyers,
	}, nil
}

func (srv *statisticsService) Dashboard(ctx context.Context) (*entity.MarketplaceCounts, error) {
	counts, err := srv.statsRepo.Counts(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count marketplace records")
	}

	return counts, nil
}
