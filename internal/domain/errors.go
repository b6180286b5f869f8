package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvoiceNotFound is returned when a requested invoice identifier does
// not exist in the repository. The operation is aborted with no state change.
var ErrInvoiceNotFound = errors.New("invoice not found")

// ErrNoLineItems is returned when an invoice submission has no usable line
// items left after placeholder rows are filtered out.
var ErrNoLineItems = errors.New("at least one part or labor item is required")

// FieldError describes a single invalid or missing form field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError reports mandatory invoice-header fields that were empty
// at submission time. No invoice is created and no state is mutated.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	names := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		names = append(names, f.Field)
	}
	return fmt.Sprintf("missing required fields: %s", strings.Join(names, ", "))
}

// NewValidationError builds a ValidationError from field/message pairs.
func NewValidationError(fields ...FieldError) *ValidationError {
	return &ValidationError{Fields: fields}
}
