// Package changeset accumulates field-scoped validation errors for a staged
// set of record changes. Validation failures are returned as values, never
// panicked: callers inspect the full list and render per-field messages.
package changeset

import (
	"errors"
	"fmt"
	"strings"
)

const (
	MsgBlank = "can't be blank"
	MsgTaken = "has already been taken"
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Errors is the accumulated result of a validation pipeline. A nil or empty
// Errors means the changeset is valid.
type Errors []FieldError

func (e Errors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, fe := range e {
		msgs = append(msgs, fmt.Sprintf("%s %s", fe.Field, fe.Message))
	}
	return "validation failed: " + strings.Join(msgs, ", ")
}

// Add appends a field error. Duplicate messages for the same field collapse
// into one.
func (e *Errors) Add(field, message string) {
	for _, fe := range *e {
		if fe.Field == field && fe.Message == message {
			return
		}
	}
	*e = append(*e, FieldError{Field: field, Message: message})
}

// AddBlank records a missing required field.
func (e *Errors) AddBlank(field string) {
	e.Add(field, MsgBlank)
}

// Has reports whether any error was recorded for field.
func (e Errors) Has(field string) bool {
	for _, fe := range e {
		if fe.Field == field {
			return true
		}
	}
	return false
}

// Valid reports whether the pipeline produced no errors.
func (e Errors) Valid() bool {
	return len(e) == 0
}

// OrNil returns the accumulated errors as an error, or nil when valid.
func (e Errors) OrNil() error {
	if e.Valid() {
		return nil
	}
	return e
}

// As extracts accumulated field errors from an error chain.
func As(err error) (Errors, bool) {
	var errs Errors
	if errors.As(err, &errs) {
		return errs, true
	}
	return nil, false
}
