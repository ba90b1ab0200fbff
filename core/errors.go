package core

import (
	"errors"
	"fmt"
)

// ErrNotFound is a sentinel error for "not found" cases
var ErrNotFound = errors.New("not found")

// MissingFieldError indicates that required identity data was absent from
// a raw interaction. Resolution aborts without producing a partial context.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing %s data", e.Field)
}

// NewMissingFieldError creates a MissingFieldError for the given field name
func NewMissingFieldError(field string) error {
	return &MissingFieldError{Field: field}
}

// IsMissingFieldError checks if an error is a MissingFieldError
func IsMissingFieldError(err error) bool {
	var target *MissingFieldError
	return errors.As(err, &target)
}

// DependencyError indicates that an external collaborator (guild config
// store, key-value store) was unreachable or returned an unexpected result.
// It is propagated to the caller unchanged - no retry is performed here.
type DependencyError struct {
	Err error
}

func (e *DependencyError) Error() string {
	return fmt.Sprintf("dependency error: %v", e.Err)
}

func (e *DependencyError) Unwrap() error {
	return e.Err
}

// NewDependencyError wraps a failure from an external collaborator
func NewDependencyError(err error) error {
	return &DependencyError{Err: err}
}

// IsDependencyError checks if an error is a DependencyError
func IsDependencyError(err error) bool {
	var target *DependencyError
	return errors.As(err, &target)
}
