// Package domain holds the error types shared by value objects, entities
// and use cases. Validation failures are values, not panics: constructors
// return them so callers can map each failure to the right HTTP status
// without exception-driven control flow.
package domain

import "errors"

// ValidationError marks malformed input caught before any persistence call.
// Handlers map it to 400.
type ValidationError struct {
	msg string
}

func NewValidationError(msg string) *ValidationError {
	return &ValidationError{msg: msg}
}

func (e *ValidationError) Error() string { return e.msg }

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
