package handler

import (
	"strconv"

	domainerrors "haatbazar/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const maxListLimit = 500

// bindRequest binds the JSON or multipart body into req and runs its validate tags.
func bindRequest(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("malformed request body")
	}

	return c.Validate(req)
}

// pathID parses a UUID path parameter.
func pathID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails("invalid " + name)
	}

	return id, nil
}

// queryID parses an optional UUID query parameter. Absent means uuid.Nil.
func queryID(c echo.Context, name string) (uuid.UUID, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return uuid.Nil, nil
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails("invalid " + name)
	}

	return id, nil
}

// queryLimit reads ?limit. Absent or zero means no limit.
func queryLimit(c echo.Context) (int, error) {
	raw := c.QueryParam("limit")
	if raw == "" {
		return 0, nil
	}

	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		return 0, domainerrors.ErrValidationFailed.WithDetails("limit must be a non-negative integer")
	}

	return min(limit, maxListLimit), nil
}
