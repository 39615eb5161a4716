package database

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

var ErrNotFound = errors.New("Student not found")

type FieldError struct {
	Path   string
	Reason string
}

// ValidationError means the caller supplied a record or filter the store rejects.
type ValidationError struct {
	Fields []FieldError
	nested error
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields)+1)
	for _, field := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field.Path, field.Reason))
	}
	if e.nested != nil {
		parts = append(parts, e.nested.Error())
	}
	return "student validation failed: " + strings.Join(parts, ", ")
}

func (e *ValidationError) Unwrap() error {
	return e.nested
}

func IsValidation(err error) bool {
	validation := &ValidationError{}
	return errors.As(err, &validation)
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func missingFieldsError(paths []string) error {
	if len(paths) == 0 {
		return nil
	}
	fields := make([]FieldError, 0, len(paths))
	for _, path := range paths {
		fields = append(fields, FieldError{Path: path, Reason: fmt.Sprintf("Path `%s` is required.", path)})
	}
	return &ValidationError{Fields: fields}
}

func invalidFieldError(path string, err error) error {
	return &ValidationError{
		Fields: []FieldError{{Path: path, Reason: "invalid value"}},
		nested: err,
	}
}
