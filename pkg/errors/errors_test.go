package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	assert.Equal(t, "VALIDATION_ERROR: region is required", NewValidationError("region is required").Error())

	cause := stderrors.New("connection refused")
	err := NewExternalAPIError("psi request failed", cause)
	assert.Equal(t, "EXTERNAL_API_ERROR: psi request failed (caused by: connection refused)", err.Error())
	assert.ErrorIs(t, err, cause)
}

func TestTypeOf(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected ErrorType
		check    func(error) bool
	}{
		{"validation", NewValidationError("bad"), ErrorTypeValidation, IsValidationError},
		{"not found", NewNotFoundError("missing"), ErrorTypeNotFound, IsNotFoundError},
		{"external", NewExternalAPIError("down", nil), ErrorTypeExternalAPI, IsExternalAPIError},
		{"malformed", NewMalformedResponseError("bad json", nil), ErrorTypeMalformedResponse, IsMalformedResponseError},
		{"configuration", NewConfigurationError("no path", nil), ErrorTypeConfiguration, IsConfigurationError},
		{"wrapped", fmt.Errorf("fetch: %w", NewMalformedResponseError("bad json", nil)), ErrorTypeMalformedResponse, IsMalformedResponseError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, TypeOf(tt.err))
			assert.True(t, tt.check(tt.err))
		})
	}
}

func TestTypeOf_PlainError(t *testing.T) {
	err := stderrors.New("boom")

	assert.Equal(t, ErrorTypeUnknown, TypeOf(err))
	assert.Equal(t, "UNKNOWN_ERROR", TypeOf(err).String())
	assert.False(t, IsExternalAPIError(err))
}
