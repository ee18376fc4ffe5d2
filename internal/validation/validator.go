// Package validation checks decoded request bodies with go-playground/validator.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Error lists the fields that failed validation, keyed by their JSON name.
type Error struct {
	Fields map[string]string
}

func (e *Error) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name+" "+e.Fields[name])
	}
	return strings.Join(parts, "; ")
}

// Validator wraps go-playground/validator.
type Validator struct {
	v *validator.Validate
}

// New creates a validator reporting JSON field names.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		switch name {
		case "":
			return fld.Name
		case "-":
			return ""
		}
		return name
	})
	// maxbytes caps the encoded length of a string, e.g. bcrypt's 72-byte input limit.
	if err := v.RegisterValidation("maxbytes", maxBytes); err != nil {
		panic(err)
	}
	return &Validator{v: v}
}

func maxBytes(fl validator.FieldLevel) bool {
	limit, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	return len(fl.Field().String()) <= limit
}

// Validate validates s and returns *Error on failure.
func (v *Validator) Validate(s any) error {
	err := v.v.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	fields := make(map[string]string, len(validationErrs))
	for _, e := range validationErrs {
		fields[e.Field()] = friendlyMessage(e)
	}
	return &Error{Fields: fields}
}

func friendlyMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "url":
		return "must be a valid URL"
	case "maxbytes":
		return fmt.Sprintf("must not exceed %s bytes", e.Param())
	case "min":
		if e.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", e.Param())
		}
		return "must be at least " + e.Param()
	case "max":
		if e.Kind() == reflect.String {
			return fmt.Sprintf("must not exceed %s characters", e.Param())
		}
		return "must be at most " + e.Param()
	default:
		return "is invalid"
	}
}
