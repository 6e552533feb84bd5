package http

import (
	"github.com/go-playground/validator/v10"
)

// BodyValidator is the echo.Validator for decoded request bodies.
type BodyValidator struct {
	validate *validator.Validate
}

func NewBodyValidator() *BodyValidator {
	return &BodyValidator{validate: validator.New(validator.WithRequiredStructEnabled())}
}

func (v *BodyValidator) Validate(i any) error {
	return v.validate.Struct(i)
}
