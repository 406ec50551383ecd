package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in the store,
	// including updates and deletes that affect zero rows.
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is returned when an operation would create a duplicate
	// of a unique entity (e.g., a country with the same code).
	ErrDuplicate = errors.New("entity already exists")

	// ErrInvalidEntity is returned when an entity violates a database constraint
	// such as a missing foreign key target. Check the wrapped error for details.
	ErrInvalidEntity = errors.New("invalid entity")

	// ErrBeginTransaction is returned when a transaction cannot be started,
	// typically because the connection pool is exhausted or the database is down.
	ErrBeginTransaction = errors.New("failed to begin transaction")

	// ErrCommitTransaction is returned when every statement succeeded but the
	// commit itself failed. The outcome of the transaction may be unknown.
	ErrCommitTransaction = errors.New("failed to commit transaction")

	// Entity-specific "not found" errors

	// ErrCountryNotFound indicates that the requested country does not exist.
	ErrCountryNotFound = fmt.Errorf("%w: country", ErrNotFound)

	// ErrStateNotFound indicates that the requested state does not exist.
	ErrStateNotFound = fmt.Errorf("%w: state", ErrNotFound)

	// ErrCityNotFound indicates that the requested city does not exist.
	ErrCityNotFound = fmt.Errorf("%w: city", ErrNotFound)

	// ErrUserNotFound indicates that the requested user does not exist.
	ErrUserNotFound = fmt.Errorf("%w: user", ErrNotFound)
)

// IsNotFoundError checks if the error is any kind of "not found" error.
// Entity-specific errors wrap ErrNotFound, so a single errors.Is is enough.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicateError checks if the error is any kind of "duplicate" error.
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicate)
}

// StoreError is a custom error type for store-specific errors with additional context.
type StoreError struct {
	Entity    string // The entity type (e.g., "country", "city")
	Operation string // The operation that failed (e.g., "create", "update")
	Message   string // Error message
	Err       error  // Original error
}

// Error implements the error interface for StoreError.
func (e *StoreError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf(
			"%s operation on %s failed: %s: %v",
			e.Operation,
			e.Entity,
			e.Message,
			e.Err,
		)
	}
	return fmt.Sprintf("%s operation on %s failed: %s", e.Operation, e.Entity, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError creates a new StoreError with the given entity, operation, message, and wrapped error.
func NewStoreError(entity, operation, message string, err error) *StoreError {
	return &StoreError{
		Entity:    entity,
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
