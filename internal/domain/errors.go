package domain

import (
	"errors"
	"fmt"
)

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// It is wrapped by ValidationError with the offending field.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidID is returned when an identifier is malformed or not positive.
	ErrInvalidID = errors.New("invalid ID")

	// ErrInvalidDifficulty is returned for an unknown trail difficulty.
	ErrInvalidDifficulty = errors.New("invalid difficulty")
)

// ValidationError describes a single field that failed validation.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError creates a ValidationError for field. When err is nil the
// error wraps ErrValidation.
func NewValidationError(field, message string, err error) *ValidationError {
	if err == nil {
		err = ErrValidation
	}
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// IsValidationError reports whether err is, or wraps, a domain validation failure.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve) || errors.Is(err, ErrValidation)
}
