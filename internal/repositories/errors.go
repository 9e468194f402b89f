package repositories

import (
	"errors"
	"fmt"
)

// Common repository errors
var (
	// ErrNotFound is returned when no record exists for a key
	ErrNotFound = errors.New("entity not found")

	// ErrUnavailable is returned when the backing store cannot be reached or
	// fails mid-operation. All transport and storage failures collapse into
	// this one sentinel; callers do not distinguish subtypes.
	ErrUnavailable = errors.New("storage unavailable")

	// ErrNotConfigured is returned when the store location is missing from
	// configuration. The store is never called in this case.
	ErrNotConfigured = errors.New("storage not configured")
)

// RepositoryError carries operation context alongside the underlying error.
// The context is for operator logs only and must never reach response bodies.
type RepositoryError struct {
	Op     string // Operation that failed
	Entity string // Entity type
	ID     string // Entity ID (if applicable)
	Err    error  // Underlying error
}

// Error implements the error interface
func (e *RepositoryError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("%s %s operation failed for ID %s: %v", e.Entity, e.Op, e.ID, e.Err)
	}
	return fmt.Sprintf("%s %s operation failed: %v", e.Entity, e.Op, e.Err)
}

// Unwrap returns the underlying error
func (e *RepositoryError) Unwrap() error {
	return e.Err
}

// NewRepositoryError creates a new repository error
func NewRepositoryError(op, entity, id string, err error) *RepositoryError {
	return &RepositoryError{
		Op:     op,
		Entity: entity,
		ID:     id,
		Err:    err,
	}
}

// NotFoundError creates a "not found" repository error
func NotFoundError(entity, id string) *RepositoryError {
	return NewRepositoryError("get", entity, id, ErrNotFound)
}

// UnavailableError wraps a storage-layer failure, preserving the cause for
// logging while keeping the sentinel checkable with errors.Is.
func UnavailableError(op, entity, id string, cause error) *RepositoryError {
	return NewRepositoryError(op, entity, id, fmt.Errorf("%w: %v", ErrUnavailable, cause))
}

// NotConfiguredError reports a missing store location.
func NotConfiguredError(entity string) *RepositoryError {
	return NewRepositoryError("configure", entity, "", ErrNotConfigured)
}

// IsNotFound checks if an error is a "not found" error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsUnavailable checks if an error is a storage availability error
func IsUnavailable(err error) bool {
	return errors.Is(err, ErrUnavailable)
}

// IsNotConfigured checks if an error is a configuration fault
func IsNotConfigured(err error) bool {
	return errors.Is(err, ErrNotConfigured)
}
