// Package validator adapts go-playground/validator to echo.
package validator

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// CustomValidator implements echo.Validator.
type CustomValidator struct {
	validate *validator.Validate
}

// New creates a validator with the coordinate rules registered.
func New() *CustomValidator {
	validate := validator.New()
	_ = validate.RegisterValidation("lat", validateLat)
	_ = validate.RegisterValidation("lng", validateLng)

	return &CustomValidator{validate: validate}
}

// Validate checks the struct tags of i.
func (cv *CustomValidator) Validate(i any) error {
	return cv.validate.Struct(i)
}

// FieldErrors flattens validation errors into field -> rule pairs for the
// error envelope. Other errors yield nil.
func FieldErrors(err error) map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[strings.ToLower(fe.Field()[:1])+fe.Field()[1:]] = fe.Tag()
	}

	return fields
}

func validateLat(fl validator.FieldLevel) bool {
	lat := fl.Field().Float()

	return lat >= -90 && lat <= 90
}

func validateLng(fl validator.FieldLevel) bool {
	lng := fl.Field().Float()

	return lng >= -180 && lng <= 180
}
