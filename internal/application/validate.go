package application

import (
	"errors"
	"reflect"
	"strings"

	"github.com/bnema/maxential-thinking/internal/domain"
	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return field.Name
		}
		return name
	})
	return v
}

// validateCommand reports the first failing field as a domain validation error.
func validateCommand(command any) error {
	err := validate.Struct(command)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return domain.Validationf("%v", err)
	}

	fieldErr := fieldErrs[0]
	return domain.Validationf("invalid %s: %s", fieldErr.Field(), describeFieldError(fieldErr))
}

func describeFieldError(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		switch fieldErr.Kind() {
		case reflect.String:
			return "must be a non-empty string"
		case reflect.Bool:
			return "must be true"
		case reflect.Int, reflect.Int64:
			return "must be a positive integer"
		default:
			return "is required"
		}
	case "min":
		return "must be at least " + fieldErr.Param()
	case "max":
		return "must be at most " + fieldErr.Param()
	case "oneof":
		return "must be one of " + strings.Join(strings.Fields(fieldErr.Param()), ", ")
	default:
		return "failed " + fieldErr.Tag() + " check"
	}
}
