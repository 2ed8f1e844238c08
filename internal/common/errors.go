// Package common defines shared constants and sentinel errors used across
// client and server layers of qaboard. Callers should use errors.Is to
// match these values.
package common

import (
	"errors"
	"fmt"
	"sort"
)

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors.
	ErrorInternal   = errors.New("internal error")
	ErrorForbidden  = errors.New("Action not allowed")
	ErrorValidation = errors.New("validation error")

	ErrQuestionNotFound = fmt.Errorf("Question %w", ErrorNotFound)
	ErrResponseNotFound = fmt.Errorf("Response %w", ErrorNotFound)

	// Auth errors.
	ErrMissingAuth  = errors.New("Token or authentication header do not exist")
	ErrInvalidToken = errors.New("Token is invalid")
)

// ValidationError carries a human readable message plus per-field messages.
// errors.Is(err, ErrorValidation) reports true for it.
type ValidationError struct {
	Message string
	Fields  map[string]string
}

func NewValidationError(msg string, fields map[string]string) *ValidationError {
	if fields == nil {
		fields = map[string]string{}
	}
	return &ValidationError{Message: msg, Fields: fields}
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrorValidation
}

// FirstField returns the field message that sorts first by field name, or
// the top-level message when there are no field messages.
func (e *ValidationError) FirstField() string {
	if len(e.Fields) == 0 {
		return e.Message
	}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return e.Fields[keys[0]]
}
