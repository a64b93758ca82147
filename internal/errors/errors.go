// Package errors provides a typed error system for exit code handling.
//
// Exit code conventions:
//   - 1: Runtime errors (e.g., an artifact could not be written)
//   - 2: Validation/usage errors (e.g., duplicate makefile target, invalid env name)
//
// Example usage:
//
//	if dup {
//		return errors.NewEntryError("makefile rule", target, "duplicate target", nil)
//	}
//
//	if err := os.WriteFile(path, data, 0644); err != nil {
//		return errors.NewRuntimeError("failed to write "+path, err)
//	}
//
//	exitCode := errors.GetExitCode(err)
package errors

import (
	"errors"
	"fmt"
)

// ValidationError represents malformed configuration or usage.
// Entry, when set, names the offending entry (a target, a variable, a file path).
type ValidationError struct {
	Kind    string
	Entry   string
	Message string
	Cause   error
}

// Error implements the error interface for ValidationError.
func (e *ValidationError) Error() string {
	msg := e.Message
	if e.Entry != "" {
		msg = fmt.Sprintf("%s %q: %s", e.Kind, e.Entry, e.Message)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

// Unwrap implements the error unwrapping interface for error chain inspection.
func (e *ValidationError) Unwrap() error {
	return e.Cause
}

// RuntimeError represents a failure while producing artifacts (I/O and the like).
type RuntimeError struct {
	Message string
	Cause   error
}

// Error implements the error interface for RuntimeError.
func (e *RuntimeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap implements the error unwrapping interface for error chain inspection.
func (e *RuntimeError) Unwrap() error {
	return e.Cause
}

// NewValidationError creates a new ValidationError with the given message and cause.
func NewValidationError(msg string, cause error) error {
	return &ValidationError{
		Message: msg,
		Cause:   cause,
	}
}

// NewEntryError creates a ValidationError that identifies the offending entry,
// e.g. NewEntryError("makefile rule", "unit-test", "duplicate target", nil).
func NewEntryError(kind, entry, msg string, cause error) error {
	return &ValidationError{
		Kind:    kind,
		Entry:   entry,
		Message: msg,
		Cause:   cause,
	}
}

// NewRuntimeError creates a new RuntimeError with the given message and cause.
func NewRuntimeError(msg string, cause error) error {
	return &RuntimeError{
		Message: msg,
		Cause:   cause,
	}
}

// GetExitCode extracts the appropriate exit code from an error.
// Returns:
//   - 2 for ValidationError
//   - 1 for RuntimeError
//   - 1 for unknown errors
func GetExitCode(err error) int {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return 2
	}
	return 1
}
