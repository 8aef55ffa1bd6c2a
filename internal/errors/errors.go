// Package errors provides centralized error definitions and error handling
// utilities for pulse. It re-exports the standard library helpers so callers
// can import a single package, and defines the semantic error types shared by
// the config validator and the CLI.
//
// Creating errors:
//
//	err := errors.NewNotFoundError("prototype", "Large Circle")
//
// Checking errors:
//
//	if errors.Is(err, errors.ErrNotFound) { ... }
//
//	var nfe *errors.NotFoundError
//	if errors.As(err, &nfe) { ... }
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Re-export standard library functions for convenience.
var (
	Is     = errors.Is
	As     = errors.As
	Unwrap = errors.Unwrap
	New    = errors.New
	Join   = errors.Join
)

// ErrNotFound is the sentinel matched by every NotFoundError.
var ErrNotFound = New("not found")

// NotFoundError represents a resource that could not be found, such as a
// registry key or a config file.
type NotFoundError struct {
	// ResourceType names the kind of resource, e.g. "prototype".
	ResourceType string
	// ResourceID identifies the missing resource, e.g. the registry key.
	ResourceID string
	// Cause is the underlying error, if any.
	Cause error
}

// NewNotFoundError creates a new NotFoundError.
func NewNotFoundError(resourceType, resourceID string) *NotFoundError {
	return &NotFoundError{
		ResourceType: resourceType,
		ResourceID:   resourceID,
	}
}

// WithCause attaches an underlying error and returns the receiver for
// chaining.
func (e *NotFoundError) WithCause(cause error) *NotFoundError {
	e.Cause = cause
	return e
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s %q not found: %v", e.ResourceType, e.ResourceID, e.Cause)
	}
	return fmt.Sprintf("%s %q not found", e.ResourceType, e.ResourceID)
}

// Unwrap returns the underlying cause.
func (e *NotFoundError) Unwrap() error {
	return e.Cause
}

// Is reports whether target is ErrNotFound, so errors.Is works against the
// sentinel without unwrapping manually.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// ValidationError represents a single invalid configuration value.
type ValidationError struct {
	// Field is the config field path, e.g. "hub.policy".
	Field string
	// Value is the invalid value.
	Value any
	// Message is a human-readable description of the failure.
	Message string
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is a collection of validation failures reported together.
type ValidationErrors []ValidationError

// Error implements the error interface.
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e)))
	for i, err := range e {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}
