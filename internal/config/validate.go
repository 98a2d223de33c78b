package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	validatorV10 "github.com/go-playground/validator/v10"
	"go.uber.org/multierr"
)

var validator *validatorV10.Validate

func init() {
	validator = validatorV10.New(validatorV10.WithRequiredStructEnabled())
	// Report fields by their flag name.
	validator.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("mapstructure"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
}

// checkTags runs the validate struct tags and returns one error per failing
// field.
func checkTags(c *Config) error {
	err := validator.Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validatorV10.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	var errs error
	for _, fe := range fieldErrs {
		errs = multierr.Append(errs, fmt.Errorf("%s: %s, got %v", fe.Field(), validationMessage(fe), fe.Value()))
	}
	return errs
}

func validationMessage(fe validatorV10.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	default:
		return fmt.Sprintf("failed validation for tag '%s'", fe.Tag())
	}
}
