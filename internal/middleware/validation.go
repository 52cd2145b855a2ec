package middleware

import (
	"errors"

	"github.com/go-playground/validator/v10"

	"schooladmin/internal/pkg/apperrors"
)

var validate = validator.New()

// ValidateStruct checks a bound request body against its `validate` tags
// and converts the first failure into a caller-facing validation error.
func ValidateStruct(obj interface{}) error {
	err := validate.Struct(obj)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if errors.As(err, &fieldErrors) && len(fieldErrors) > 0 {
		return apperrors.NewValidationError(formatValidationError(fieldErrors[0]))
	}

	return apperrors.NewValidationError("request validation failed")
}

// formatValidationError creates a human-readable validation error message
func formatValidationError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "min":
		return e.Field() + " must be at least " + e.Param()
	case "max":
		return e.Field() + " must be at most " + e.Param()
	case "email":
		return e.Field() + " must be a valid email address"
	default:
		return e.Field() + " validation failed: " + e.Tag()
	}
}
