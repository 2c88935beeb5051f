// Package validators holds the struct validation shared by the request
// validator middlewares.
package validators

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// report fields by their json names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Struct validates s and flattens failures into a field -> message map.
// The map is empty when s is valid.
func Struct(s interface{}) map[string]string {
	errs := make(map[string]string)
	err := validate.Struct(s)
	if err == nil {
		return errs
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		errs["body"] = err.Error()
		return errs
	}
	for _, fe := range fieldErrs {
		errs[fe.Field()] = message(fe)
	}
	return errs
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required!", fe.Field())
	case "email":
		return "Invalid email!"
	case "min":
		return fmt.Sprintf("%s must be at least %s!", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s!", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s!", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid!", fe.Field())
	}
}
