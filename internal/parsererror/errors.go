// Package parsererror defines the error types used by the expense
// interpretation pipeline and its collaborators.
package parsererror

import "fmt"

// ValidationError represents rejected caller input. It is produced before
// any parsing work happens and is never retried.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Reason)
}

// NewValidationError creates a ValidationError for the given field.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// AIError represents a failure talking to the external semantic
// classifier. It never escapes the fallback adapter; it exists so the
// adapter can log a typed cause.
type AIError struct {
	Operation string
	Err       error
}

func (e *AIError) Error() string {
	return fmt.Sprintf("ai %s failed: %v", e.Operation, e.Err)
}

func (e *AIError) Unwrap() error {
	return e.Err
}

// StorageError represents a persistence failure.
type StorageError struct {
	Operation string
	Err       error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s failed: %v", e.Operation, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
