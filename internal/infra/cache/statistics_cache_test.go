package cache

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"haatbazar/internal/domain/entity"

	"github.com/alicebob/miniredis/v2"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingRepo struct {
	calls  int
	counts *entity.MarketplaceCounts
	err    error
}

func (r *countingRepo) Counts(context.Context) (*entity.MarketplaceCounts, error) {
	r.calls++

	return r.counts, r.err
}

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	return mr, rdb
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestCachedStatisticsRepository_ServesFromCacheUntilExpiry(t *testing.T) {
	mr, rdb := newTestRedis(t)
	real := &countingRepo{counts: &entity.MarketplaceCounts{Products: 3, Sellers: 1, Buyers: 2}}
	repo := NewCachedStatisticsRepository(real, rdb, 30*time.Second, discardLogger())
	ctx := context.Background()

	first, err := repo.Counts(ctx)
	require.NoError(t, err)
	second, err := repo.Counts(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, real.calls)
	assert.Equal(t, first, second)
	assert.True(t, mr.Exists(statisticsKey))

	mr.FastForward(31 * time.Second)
	_, err = repo.Counts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, real.calls)
}

func TestCachedStatisticsRepository_FallsBackWhenRedisDown(t *testing.T) {
	mr, rdb := newTestRedis(t)
	real := &countingRepo{counts: &entity.MarketplaceCounts{Buyers: 7}}
	repo := NewCachedStatisticsRepository(real, rdb, time.Minute, discardLogger())
	mr.Close()

	counts, err := repo.Counts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(7), counts.Buyers)
}

func TestCachedStatisticsRepository_IgnoresCorruptEntry(t *testing.T) {
	mr, rdb := newTestRedis(t)
	require.NoError(t, mr.Set(statisticsKey, "{not json"))
	real := &countingRepo{counts: &entity.MarketplaceCounts{Orders: 4}}
	repo := NewCachedStatisticsRepository(real, rdb, time.Minute, discardLogger())

	counts, err := repo.Counts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(4), counts.Orders)
	assert.Equal(t, 1, real.calls)
}

func TestCachedStatisticsRepository_PropagatesStoreErrors(t *testing.T) {
	_, rdb := newTestRedis(t)
	real := &countingRepo{err: errors.New("db down")}
	repo := NewCachedStatisticsRepository(real, rdb, time.Minute, discardLogger())

	_, err := repo.Counts(context.Background())
	assert.EqualError(t, err, "db down")
}
