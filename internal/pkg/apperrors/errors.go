package apperrors

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// Validation errors — rejected before any store access.
	ErrValidationFailed = errors.New("validation failed")
	ErrEmptyBatch       = errors.New("import batch is empty")

	// Not-found errors — input well-formed but refers to nothing.
	ErrClassNotFound = errors.New("class not found")

	// Reconciliation failures — the whole import transaction rolled back.
	ErrReconciliationFailed = errors.New("import reconciliation failed")
)

// CustomError carries a caller-facing message alongside the sentinel it
// wraps, so HTTP mapping can rely on errors.Is while the message stays
// specific to the request that failed.
type CustomError struct {
	Err     error
	Message string
}

// Error implements the error interface.
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap.
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a validation failure with a message.
func NewValidationError(message string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
	}
}

// NewClassNotFoundError creates a not-found failure for a class code.
func NewClassNotFoundError(code string) error {
	return &CustomError{
		Err:     ErrClassNotFound,
		Message: fmt.Sprintf("Class with code '%s' not found", code),
	}
}
