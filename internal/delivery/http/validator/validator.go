// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	"unicode"

	domainerrors "agenda/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the validator instance used for request DTOs.
type Validator struct {
	validate *validator.Validate
}

// New builds the validator and registers the custom tags.
func New() *Validator {
	validate := validator.New()

	// "password" mirrors the registration form's pattern: minimum length
	// plus at least one uppercase letter, one digit and one special rune.
	// The full, configurable policy lives in the auth service; this tag is
	// the first line of defense at the binding boundary.
	_ = validate.RegisterValidation("password", func(fl validator.FieldLevel) bool {
		password := fl.Field().String()
		if len([]rune(password)) < 8 {
			return false
		}

		var hasUpper, hasDigit, hasSpecial bool
		for _, r := range password {
			switch {
			case unicode.IsUpper(r):
				hasUpper = true
			case unicode.IsDigit(r):
				hasDigit = true
			case !unicode.IsLetter(r) && !unicode.IsDigit(r):
				hasSpecial = true
			}
		}

		return hasUpper && hasDigit && hasSpecial
	})

	return &Validator{validate: validate}
}

// Validate implements echo.Validator. Failures surface as the uniform
// validation error so the error handler renders them like any other.
func (v *Validator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
