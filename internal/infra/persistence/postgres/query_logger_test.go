package postgres

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"haatbazar/config"
	deliverycontext "haatbazar/internal/delivery/context"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newQueryLoggerForTest(threshold time.Duration) (*queryLogger, *bytes.Buffer) {
	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	cfg := &config.Config{Database: &config.DatabaseConfig{SlowQueryThreshold: threshold}}

	return newQueryLogger(base, cfg).(*queryLogger), &buf
}

func selectProducts() (string, int64) {
	return `SELECT * FROM "products" WHERE category = 'Fish'`, 3
}

func TestQueryLogger_Trace(t *testing.T) {
	tests := []struct {
		name      string
		threshold time.Duration
		elapsed   time.Duration
		err       error
		want      string
	}{
		{name: "slow query", threshold: 50 * time.Millisecond, elapsed: time.Second, want: "Slow query"},
		{name: "failed query", threshold: time.Minute, err: errors.New("connection reset"), want: "Query failed"},
		{name: "fast query is quiet", threshold: time.Minute},
		{name: "missing record is quiet", threshold: time.Minute, err: gorm.ErrRecordNotFound},
		{name: "disabled threshold", threshold: -1, elapsed: time.Hour},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, buf := newQueryLoggerForTest(tt.threshold)

			l.Trace(context.Background(), time.Now().Add(-tt.elapsed), selectProducts, tt.err)

			if tt.want == "" {
				assert.Empty(t, buf.String())

				return
			}
			assert.Contains(t, buf.String(), tt.want)
			assert.Contains(t, buf.String(), `"rows":3`)
		})
	}
}

func TestQueryLogger_UsesRequestLogger(t *testing.T) {
	l, _ := newQueryLoggerForTest(10 * time.Millisecond)

	var reqBuf bytes.Buffer
	reqLogger := slog.New(slog.NewJSONHandler(&reqBuf, nil)).With(slog.String("request_id", "req-42"))
	ctx := deliverycontext.WithLogger(context.Background(), reqLogger)

	l.Trace(ctx, time.Now().Add(-time.Second), selectProducts, nil)

	assert.Contains(t, reqBuf.String(), "Slow query")
	assert.Contains(t, reqBuf.String(), `"request_id":"req-42"`)
}

func TestNewQueryLogger_DefaultsWithoutDatabaseConfig(t *testing.T) {
	l := newQueryLogger(slog.Default(), &config.Config{}).(*queryLogger)

	assert.Zero(t, l.slowThreshold)
	assert.Equal(t, gormlogger.Warn, l.level)
	assert.Equal(t, gormlogger.Silent, l.LogMode(gormlogger.Silent).(*queryLogger).level)
}
