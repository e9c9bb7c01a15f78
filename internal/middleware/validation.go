package middleware

import (
	"errors"

	"github.com/go-playground/validator/v10"

	"github.com/ahatanar/StudentSpace/internal/app/models/dto"
)

var validate = validator.New()

// ValidateQueryStruct runs validator tags over an already-bound query struct
// and returns the first failure as an ErrorDetail, nil when valid.
func ValidateQueryStruct(obj interface{}) *dto.ErrorDetail {
	if err := validate.Struct(obj); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
			first := validationErrors[0]
			return dto.NewErrorDetail(dto.ErrorCodeValidationFailed, formatValidationError(first)).
				WithField(first.Field())
		}
		return dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Validation failed")
	}
	return nil
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
	case "oneof":
		return e.Field() + " must be one of: " + e.Param()
	default:
		return e.Field() + " validation failed: " + e.Tag()
	}
}
