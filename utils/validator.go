package utils

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"logistics-requests/errs"
	"logistics-requests/models/shipment"

	"github.com/go-playground/validator/v10"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

// Validator returns the shared instance with the kzphone, category and
// status tags registered.
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return fld.Name
			}
			return name
		})
		mustRegister(v, "kzphone", func(fl validator.FieldLevel) bool {
			return ValidatePhoneNumber(fl.Field().String())
		})
		mustRegister(v, "category", func(fl validator.FieldLevel) bool {
			_, ok := shipment.ParseCategory(fl.Field().String())
			return ok
		})
		mustRegister(v, "status", func(fl validator.FieldLevel) bool {
			_, ok := shipment.ParseStatus(fl.Field().String())
			return ok
		})
		validate = v
	})
	return validate
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register %s validation: %v", tag, err))
	}
}

// ValidateStruct runs the shared validator and turns the first failure
// into an errs.ErrValidation with a readable message.
func ValidateStruct(s any) error {
	err := Validator().Struct(s)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return errs.Validation("invalid request")
	}
	return errs.Validation("%s", describe(fieldErrs[0]))
}

func describe(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required", "required_without":
		return field + " is required"
	case "kzphone":
		return field + " must be a valid phone number (+7XXXXXXXXXX)"
	case "category":
		return field + " must be astana or intercity"
	case "status":
		return field + " is not a known status"
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	case "alphanum":
		return field + " may contain only letters and digits"
	default:
		return field + " is invalid"
	}
}
