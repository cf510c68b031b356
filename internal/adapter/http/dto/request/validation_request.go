package request

import (
	"reflect"
	"regexp"
	"strings"

	"checkout_core/internal/usecase"

	"github.com/go-playground/validator/v10"
)

var digitsOnly = regexp.MustCompile(`^[0-9]+$`)

// NITRequest asks whether a NIT carries a valid check digit.
type NITRequest struct {
	NIT string `json:"nit" binding:"required"`
}

// RegisterValidators adds the "nit" and "digits" tags to v and makes validation errors
// report JSON field names.
func RegisterValidators(v *validator.Validate) error {
	v.RegisterTagNameFunc(jsonFieldName)
	if err := v.RegisterValidation("nit", func(fl validator.FieldLevel) bool {
		return usecase.ValidateNIT(fl.Field().String())
	}); err != nil {
		return err
	}
	return v.RegisterValidation("digits", func(fl validator.FieldLevel) bool {
		return digitsOnly.MatchString(fl.Field().String())
	})
}

func jsonFieldName(f reflect.StructField) string {
	name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	switch name {
	case "-":
		return ""
	case "":
		return f.Name
	}
	return name
}
