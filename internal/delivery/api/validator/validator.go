// Package validator plugs go-playground/validator into echo.
package validator

import (
	"library/internal/domain/entity"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// CustomValidator adapts validator.Validate to echo.Validator.
type CustomValidator struct {
	validator *validator.Validate
}

// New returns the request validator with the library's custom tags registered.
func New() echo.Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("genre", validateGenre)

	return &CustomValidator{validator: v}
}

// Validate checks struct tags on i.
func (cv *CustomValidator) Validate(i any) error {
	return cv.validator.Struct(i)
}

// validateGenre accepts any spelling of a known genre.
func validateGenre(fl validator.FieldLevel) bool {
	_, ok := entity.ParseGenre(fl.Field().String())

	return ok
}
