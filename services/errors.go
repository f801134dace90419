package services

import (
	"errors"
	"fmt"
)

// ErrNotFound signals that a referenced issue, user or integration does not exist.
var ErrNotFound = errors.New("not found")

// ErrGateway signals that the persistence or integration layer failed.
var ErrGateway = errors.New("gateway failure")

// ValidationError reports malformed or incomplete input to an operation.
// The record under change is left untouched when one is returned.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
