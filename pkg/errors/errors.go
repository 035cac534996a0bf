package errors

import (
	stderrors "errors"
	"fmt"
)

// Application error types organized by category for better error handling

type ErrorType int

// Domain errors - input and lookup problems
const (
	ErrorTypeUnknown ErrorType = iota
	ErrorTypeValidation
	ErrorTypeNotFound

	// Infrastructure errors - upstream providers and their payloads
	ErrorTypeExternalAPI
	ErrorTypeMalformedResponse

	// System/Configuration errors
	ErrorTypeConfiguration
)

// String returns the string representation of error type
func (e ErrorType) String() string {
	switch e {
	case ErrorTypeValidation:
		return "VALIDATION_ERROR"
	case ErrorTypeNotFound:
		return "NOT_FOUND_ERROR"
	case ErrorTypeExternalAPI:
		return "EXTERNAL_API_ERROR"
	case ErrorTypeMalformedResponse:
		return "MALFORMED_RESPONSE_ERROR"
	case ErrorTypeConfiguration:
		return "CONFIGURATION_ERROR"
	default:
		return "UNKNOWN_ERROR"
	}
}

type AppError struct {
	Type    ErrorType
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type.String(), e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type.String(), e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func New(errorType ErrorType, message string) *AppError {
	return &AppError{
		Type:    errorType,
		Message: message,
	}
}

func Wrap(errorType ErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:    errorType,
		Message: message,
		Cause:   cause,
	}
}

func NewValidationError(message string) *AppError {
	return New(ErrorTypeValidation, message)
}

func NewNotFoundError(message string) *AppError {
	return New(ErrorTypeNotFound, message)
}

// NewExternalAPIError covers transport failures, timeouts and non-2xx answers.
func NewExternalAPIError(message string, cause error) *AppError {
	return Wrap(ErrorTypeExternalAPI, message, cause)
}

// NewMalformedResponseError covers bodies that arrived but could not be decoded.
func NewMalformedResponseError(message string, cause error) *AppError {
	return Wrap(ErrorTypeMalformedResponse, message, cause)
}

func NewConfigurationError(message string, cause error) *AppError {
	return Wrap(ErrorTypeConfiguration, message, cause)
}

// TypeOf returns the type of the first AppError in err's chain.
func TypeOf(err error) ErrorType {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Type
	}
	return ErrorTypeUnknown
}

func IsValidationError(err error) bool {
	return TypeOf(err) == ErrorTypeValidation
}

func IsNotFoundError(err error) bool {
	return TypeOf(err) == ErrorTypeNotFound
}

func IsExternalAPIError(err error) bool {
	return TypeOf(err) == ErrorTypeExternalAPI
}

func IsMalformedResponseError(err error) bool {
	return TypeOf(err) == ErrorTypeMalformedResponse
}

func IsConfigurationError(err error) bool {
	return TypeOf(err) == ErrorTypeConfiguration
}
