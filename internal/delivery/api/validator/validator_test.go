package validator

import (
	"net/http"
	"testing"

	domainerrors "haatbazar/internal/domain/errors"
	"haatbazar/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Quantity int    `form:"quantity" validate:"gt=0"`
	Note     string `validate:"max=3"`
}

func TestValidator_Validate(t *testing.T) {
	v := New()

	require.NoError(t, v.Validate(&sampleRequest{Email: "a@example.com", Quantity: 1}))

	err := v.Validate(&sampleRequest{Email: "nope", Quantity: 0, Note: "toolong"})
	require.Error(t, err)

	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, []FieldError{
		{Field: "email", Rule: "email"},
		{Field: "quantity", Rule: "gt", Param: "0"},
		{Field: "Note", Rule: "max", Param: "3"},
	}, validationErr.Fields)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
	assert.Contains(t, appErr.Details(), "quantity failed on gt")
}
