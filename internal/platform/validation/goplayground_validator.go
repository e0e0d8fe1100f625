package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

type goPlaygroundValidator struct {
	v *validator.Validate
}

var _ Validator = (*goPlaygroundValidator)(nil)

// NewGoPlaygroundValidator returns a Validator that reports field errors keyed by json name.
func NewGoPlaygroundValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &goPlaygroundValidator{
		v: v,
	}
}

func (va *goPlaygroundValidator) ValidateStruct(s any) FieldErrors {
	err := va.v.Struct(s)
	if err == nil {
		return nil
	}

	var valErrs validator.ValidationErrors
	if !errors.As(err, &valErrs) {
		return FieldErrors{"payload": err.Error()}
	}

	errMap := make(FieldErrors, len(valErrs))
	for _, e := range valErrs {
		errMap[e.Field()] = validationMessage(e)
	}

	return errMap
}

func validationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", e.Field())
	case "min":
		if e.Param() == "1" {
			return fmt.Sprintf("%s must not be empty", e.Field())
		}
		return fmt.Sprintf("%s must be at least %s characters long", e.Field(), e.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters long", e.Field(), e.Param())
	case "len":
		return fmt.Sprintf("%s must be exactly %s characters long", e.Field(), e.Param())
	case "hexadecimal":
		return fmt.Sprintf("%s must be hexadecimal", e.Field())
	default:
		return fmt.Sprintf("%s is invalid", e.Field())
	}
}
