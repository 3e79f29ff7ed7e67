package validator

import (
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Validate checks struct-level validation tags on transport DTOs.
func Validate(s interface{}) error {
	return validate.Struct(s)
}

// GetValidator exposes the underlying validator for custom configuration.
func GetValidator() *validator.Validate {
	return validate
}
