// Package validator adapts go-playground/validator to echo's Validator hook.
package validator

import (
	validation "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Validator wraps a validator instance so echo's c.Validate works on
// request structs carrying `validate` tags.
type Validator struct {
	validate *validation.Validate
}

// New creates the echo validator adapter.
func New() echo.Validator {
	return &Validator{validate: validation.New()}
}

// Validate implements echo.Validator.
func (v *Validator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return errors.Wrap(err, "request validation failed")
	}

	return nil
}
