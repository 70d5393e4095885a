package utils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the struct tags of value, including nested structs and slices marked with `dive`.
func Validate[T any](value T) (T, error) {
	if err := validate.Struct(value); err != nil {
		return value, ValidationErrorToString(value, err)
	}

	return value, nil
}

func ValidateValue(value any, tag string) error {
	err := validate.Var(value, tag)
	if err != nil {
		return ValidationErrorToString(value, err)
	}
	return nil
}

func ValidationErrorToString(input any, err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%T: field '%s' failed rule '%s'%s, got '%v'", input, fe.Namespace(), fe.Tag(), param(fe), fe.Value()))
	}
	return errors.New(strings.Join(msgs, "; "))
}

func param(fe validator.FieldError) string {
	if fe.Param() == "" {
		return ""
	}
	return fmt.Sprintf(" (%s)", fe.Param())
}
