// Package validation provides input validation utilities
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"blogapp/internal/models"

	"github.com/go-playground/validator/v10"
)

// Validator checks request DTOs against their `validate` struct tags.
//
// A field may override the message of a failing rule with a `msg` tag of
// "rule=message" pairs separated by "|", e.g. `msg:"min=too short|email=bad email"`.
type Validator struct {
	validate *validator.Validate
}

// New returns a Validator that reports fields by their JSON names.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})
	return &Validator{validate: v}
}

// Struct validates s. Constraint violations come back as a field validation AppError.
func (v *Validator) Struct(s any) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return models.NewInternalError(err)
	}

	t := reflect.Indirect(reflect.ValueOf(s)).Type()
	fields := make([]models.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, models.FieldError{
			Field:   fe.Field(),
			Message: messageFor(t, fe),
		})
	}
	return models.NewFieldValidationError(fields...)
}

func messageFor(t reflect.Type, fe validator.FieldError) string {
	if sf, ok := t.FieldByName(fe.StructField()); ok {
		if msg, ok := lookupOverride(sf.Tag.Get("msg"), fe.Tag()); ok {
			return msg
		}
	}
	return defaultMessage(fe)
}

func lookupOverride(tag, rule string) (string, bool) {
	if tag == "" {
		return "", false
	}
	for _, pair := range strings.Split(tag, "|") {
		name, msg, ok := strings.Cut(pair, "=")
		if ok && name == rule {
			return msg, true
		}
	}
	return "", false
}

func defaultMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "must not be empty"
	case "email":
		return "must be a well-formed email address"
	case "min":
		return fmt.Sprintf("size must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("size must be at most %s", fe.Param())
	default:
		return fmt.Sprintf("failed on the '%s' rule", fe.Tag())
	}
}
