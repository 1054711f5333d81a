package middleware

import (
	"log/slog"
	"net/http"

	"haatbazar/internal/delivery/api/response"
	deliverycontext "haatbazar/internal/delivery/context"
	domainerrors "haatbazar/internal/domain/errors"
	"haatbazar/internal/errors"

	"github.com/labstack/echo/v4"
)

// ErrorMiddleware handles errors in the HTTP pipeline
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	log := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			log.Error("Request failed", slog.Any("error", err), slog.String("path", c.Request().URL.Path))
		}
		_ = response.AppError(c, appErr)

		return
	}

	// Store and context deadlines surface as plain errors from deep inside the stack.
	if errors.IsTimeout(err) {
		log.Warn("Request timed out", slog.Any("error", err), slog.String("path", c.Request().URL.Path))
		_ = response.AppError(c, domainerrors.ErrServiceUnavailable)

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		m.handleEchoError(c, httpErr)

		return
	}

	log.Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	_ = response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error, please try again later", nil)
}

func (m *ErrorMiddleware) handleEchoError(c echo.Context, httpErr *echo.HTTPError) {
	switch httpErr.Code {
	case http.StatusRequestEntityTooLarge:
		_ = response.AppError(c, domainerrors.ErrUploadTooLarge)

		return
	case http.StatusServiceUnavailable:
		_ = response.AppError(c, domainerrors.ErrServiceUnavailable)

		return
	}

	message := http.StatusText(httpErr.Code)
	if msg, ok := httpErr.Message.(string); ok {
		message = msg
	}

	_ = response.Error(c, httpErr.Code, "HTTP_ERROR", message, nil)
}
