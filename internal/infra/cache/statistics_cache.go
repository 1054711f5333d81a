package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"haatbazar/internal/domain/entity"
	"haatbazar/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const statisticsKey = "haatbazar:statistics:counts"

type cachedStatisticsRepository struct {
	realRepo repository.StatisticsRepository
	redis    *redis.Client
	ttl      time.Duration
	logger   *slog.Logger
}

// NewCachedStatisticsRepository serves counts from Redis for ttl before hitting the store again.
// Redis failures fall through to the store.
func NewCachedStatisticsRepository(realRepo repository.StatisticsRepository, rdb *redis.Client, ttl time.Duration, logger *slog.Logger) repository.StatisticsRepository {
	return &cachedStatisticsRepository{
		realRepo: realRepo,
		redis:    rdb,
		ttl:      ttl,
		logger:   logger,
	}
}

func (c *cachedStatisticsRepository) Counts(ctx context.Context) (*entity.MarketplaceCounts, error) {
	data, err := c.redis.Get(ctx, statisticsKey).Bytes()

	switch {
	case err == nil:
		var counts entity.MarketplaceCounts
		if err := json.Unmarshal(data, &counts); err != nil {
			c.logger.WarnContext(ctx, "Failed to unmarshal cached statistics, continuing with DB", slog.Any("error", err))

			break
		}

		return &counts, nil

	case errors.Is(err, redis.Nil):

	default:
		c.logger.WarnContext(ctx, "Redis error, continuing with DB", slog.Any("error", err))
	}

	counts, err := c.realRepo.Counts(ctx)
	if err != nil {
		return nil, err
	}

	jsonData, err := json.Marshal(counts)
	if err != nil {
		c.logger.WarnContext(ctx, "Failed to marshal statistics", slog.Any("error", err))

		return counts, nil
	}

	if err := c.redis.Set(ctx, statisticsKey, jsonData, c.ttl).Err(); err != nil {
		c.logger.WarnContext(ctx, "Failed to cache statistics", slog.Any("error", err))
	}

	return counts, nil
}
