package service

import (
	"errors"
	"fmt"
)

// Common service errors. The API layer maps them to HTTP status codes:
// ErrMutationFailed and ErrCommitFailed become 500, validation errors 400.
var (
	// ErrMutationFailed covers every failure of an audited mutation other than
	// "not found" and commit failures: begin, reason recording, the statement itself.
	// Callers cannot tell a failed reason write from a failed mutation.
	ErrMutationFailed = errors.New("failed to update data")

	// ErrCommitFailed means every statement succeeded but the commit did not.
	ErrCommitFailed = errors.New("failed to commit transaction")
)

// ServiceError is a custom error type for master-data service errors.
type ServiceError struct {
	Entity    string
	Operation string
	Message   string
	Err       error
}

// Error implements the error interface for ServiceError.
func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s service %s failed: %s: %v", e.Entity, e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("%s service %s failed: %s", e.Entity, e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// NewServiceError creates a new ServiceError.
func NewServiceError(entity, operation, message string, err error) *ServiceError {
	return &ServiceError{
		Entity:    entity,
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
