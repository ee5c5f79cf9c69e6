// Package errors provides sentinel errors and structured error details for rnapp.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for known conditions.
var (
	// ErrValidation indicates invalid user input (project name, bundle id, target dir).
	ErrValidation = errors.New("validation error")

	// ErrPermission indicates insufficient filesystem permissions.
	ErrPermission = errors.New("permission denied")

	// ErrNotFound indicates a template, file, or directory was not found.
	ErrNotFound = errors.New("not found")

	// ErrCopy indicates the template tree could not be copied into the target.
	// The target is left in whatever partial state the copy reached.
	ErrCopy = errors.New("copy failed")

	// ErrRewrite indicates identifier rewriting could not run at all.
	ErrRewrite = errors.New("rewrite failed")
)

// DetailError captures structured error information.
type DetailError struct {
	// Type is the error category (required).
	Type string

	// Message is the specific description (required).
	Message string

	// Location is the file or directory path involved (optional).
	Location string

	// Field is the input field name for validation errors (optional).
	Field string

	// Context contains additional key-value context (optional).
	Context map[string]string

	// Hint provides actionable guidance (optional).
	Hint string

	// Cause is the underlying error (optional).
	Cause error
}

// Error implements the error interface.
func (e *DetailError) Error() string {
	var b strings.Builder

	b.WriteString("Error: ")
	b.WriteString(e.Type)
	b.WriteString("\n")

	if e.Location != "" {
		b.WriteString("  Location: ")
		b.WriteString(e.Location)
		b.WriteString("\n")
	}
	if e.Field != "" {
		b.WriteString("  Field: ")
		b.WriteString(e.Field)
		b.WriteString("\n")
	}
	for k, v := range e.Context {
		b.WriteString("  ")
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(v)
		b.WriteString("\n")
	}

	b.WriteString("\n  ")
	b.WriteString(e.Message)
	b.WriteString("\n")

	if e.Hint != "" {
		b.WriteString("\nHint: ")
		b.WriteString(e.Hint)
		b.WriteString("\n")
	}

	return b.String()
}

// Unwrap returns the underlying error.
func (e *DetailError) Unwrap() error {
	return e.Cause
}

// NewValidationError creates a validation error with details.
func NewValidationError(message, location, field, hint string) error {
	return &DetailError{
		Type:     "validation failed",
		Message:  message,
		Location: location,
		Field:    field,
		Hint:     hint,
		Cause:    ErrValidation,
	}
}

// NewNotFoundError creates a not found error with details.
func NewNotFoundError(message, location, hint string) error {
	return &DetailError{
		Type:     "not found",
		Message:  message,
		Location: location,
		Hint:     hint,
		Cause:    ErrNotFound,
	}
}

// NewPermissionError creates a permission denied error with details.
func NewPermissionError(message string, context map[string]string, hint string) error {
	return &DetailError{
		Type:    "permission denied",
		Message: message,
		Context: context,
		Hint:    hint,
		Cause:   ErrPermission,
	}
}

// NewCopyError wraps an I/O failure from the copy phase.
// Both ErrCopy and the underlying cause remain reachable with errors.Is.
func NewCopyError(location string, cause error) error {
	return &DetailError{
		Type:     "copy failed",
		Message:  cause.Error(),
		Location: location,
		Hint:     "The target directory may be partially populated; remove it before retrying.",
		Cause:    fmt.Errorf("%w: %w", ErrCopy, cause),
	}
}

// NewRewriteError wraps a failure that prevented identifier rewriting from running.
func NewRewriteError(location string, cause error) error {
	return &DetailError{
		Type:     "rewrite failed",
		Message:  cause.Error(),
		Location: location,
		Hint:     "The template looks structurally broken; check the target directory is readable.",
		Cause:    fmt.Errorf("%w: %w", ErrRewrite, cause),
	}
}

// Wrap wraps an error with a sentinel error type.
func Wrap(sentinel error, message string) error {
	return fmt.Errorf("%s: %w", message, sentinel)
}

// ExitError carries the process exit code for a command failure.
type ExitError struct {
	Code int
	Err  error

	// Printed is true when the command already rendered the error.
	Printed bool
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

// Unwrap returns the wrapped error.
func (e *ExitError) Unwrap() error {
	return e.Err
}
