package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrInvalidState indicates that the requested transition is not legal from
// the document's current status.
var ErrInvalidState = errors.New("invalid document state for operation")

// ErrInsufficientStock indicates that an outbound posting would drive a stock
// balance negative.
var ErrInsufficientStock = errors.New("insufficient stock")

// ErrConflict indicates a duplicate posting, a double reversal, or a lost
// concurrent status race. Safe to retry once after re-reading current state.
var ErrConflict = errors.New("conflicting concurrent update")

// ErrForbidden indicates the caller lacks the role required for the operation.
var ErrForbidden = errors.New("operation not permitted for caller role")

// ErrTimeout indicates the storage layer did not answer within the configured
// deadline. Callers may retry with backoff; the service never retries writes
// on its own.
var ErrTimeout = errors.New("storage operation timed out")

// ErrInternal indicates an unexpected internal failure.
var ErrInternal = errors.New("internal error")

// AppError carries a status code alongside a wrapped cause. Used by the
// repository layer for failures that have no sentinel of their own.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError wrapping the given cause.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}
