package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"haatbazar/config"
	deliverycontext "haatbazar/internal/delivery/context"
	"haatbazar/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware_Process(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
		keep     bool
	}{
		{name: "reuses well-formed id", incoming: "req-123.abc_DEF", keep: true},
		{name: "replaces empty id", incoming: ""},
		{name: "replaces id with spaces", incoming: "bad id"},
		{name: "replaces overlong id", incoming: strings.Repeat("a", 65)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.incoming != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.incoming)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var seenInCtx string
			var loggerInCtx *slog.Logger
			handler := NewRequestIDMiddleware(slog.New(slog.DiscardHandler)).Process(func(c echo.Context) error {
				seenInCtx = deliverycontext.GetRequestIDFromContext(c.Request().Context())
				loggerInCtx = deliverycontext.GetLogger(c.Request().Context())

				return c.NoContent(http.StatusNoContent)
			})

			require.NoError(t, handler(c))

			got := rec.Header().Get(deliverycontext.HeaderXRequestID)
			if tt.keep {
				assert.Equal(t, tt.incoming, got)
			} else {
				_, err := uuid.Parse(got)
				assert.NoError(t, err)
			}
			assert.Equal(t, got, seenInCtx)
			assert.Equal(t, got, deliverycontext.GetRequestID(c))
			assert.NotNil(t, loggerInCtx)
		})
	}
}

func TestLoggerMiddleware_LogsFailuresWithAccount(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	cfg := &config.Config{}

	e := echo.New()
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		_ = c.JSON(http.StatusTeapot, map[string]string{"error": err.Error()})
	}
	accountID := uuid.New()

	handler := NewLoggerMiddleware(logger, cfg).Handle(func(c echo.Context) error {
		deliverycontext.SetClaims(c, &service.Claims{AccountID: accountID})

		return echo.NewHTTPError(http.StatusTeapot, "short and stout")
	})

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/pot", nil), rec)

	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusTeapot, rec.Code)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "WARN", entry["level"])
	assert.EqualValues(t, http.StatusTeapot, entry["status"])
	assert.Equal(t, accountID.String(), entry["account_id"])
	assert.Contains(t, entry["error"], "short and stout")
}

func TestLoggerMiddleware_SkipsSuccessOutsideDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	e := echo.New()
	handler := NewLoggerMiddleware(logger, &config.Config{}).Handle(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/health", nil), httptest.NewRecorder())
	require.NoError(t, handler(c))

	assert.Empty(t, buf.String())
}
