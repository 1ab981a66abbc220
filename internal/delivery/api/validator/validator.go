// Package validator adapts go-playground/validator to echo.
package validator

import (
	domainerrors "foodsafe/internal/domain/errors"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// CustomValidator implements echo.Validator.
type CustomValidator struct {
	validate *validator.Validate
}

// New wraps validate for use as echo's request validator.
func New(validate *validator.Validate) *CustomValidator {
	return &CustomValidator{validate: validate}
}

// Validate reports the first failing field as a validation error.
func (cv *CustomValidator) Validate(i any) error {
	err := cv.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]

		return domainerrors.ErrValidationFailed.WithDetails(fe.Field() + " failed on " + fe.Tag())
	}

	return domainerrors.ErrValidationFailed.WithDetails(err.Error())
}
