package settings

import (
	"errors"
	"strings"
)

// ErrNotFound is returned for a selection that names no configured value.
var ErrNotFound = errors.New("settings: not found")

// FieldError is a validation failure of one form field.
type FieldError struct {
	Field string
	Key   string
	Args  []interface{}
}

func (e FieldError) Error() string {
	return e.Field + ": " + e.Key
}

// ValidationError collects the field errors of one submitted form.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Error())
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

func (e *ValidationError) Unwrap() []error {
	errs := make([]error, 0, len(e.Fields))
	for _, f := range e.Fields {
		errs = append(errs, f)
	}
	return errs
}

func (e *ValidationError) add(field, key string, args ...interface{}) {
	e.Fields = append(e.Fields, FieldError{Field: field, Key: key, Args: args})
}

func (e *ValidationError) errOrNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}

// FormError rejects a whole form with a flash message.
type FormError struct {
	Key string
}

func (e *FormError) Error() string {
	return e.Key
}
