package core

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when no inquiry exists for the supplied
	// session identifier. Unknown, evicted and expired sessions are
	// indistinguishable; callers recover by starting a fresh inquiry with
	// a new problem statement.
	ErrNotFound = errors.New("inquiry session not found")
)

// ValidationError represents a malformed or protocol-violating input with
// enough detail for the caller to self-correct. It is never retried
// automatically and never mutates state before being raised.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error implements the error interface for ValidationError.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for field '%s': %s", e.Field, e.Message)
}

// NewValidationError constructs a ValidationError for the given field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
