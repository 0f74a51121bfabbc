package apperrors

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates the caller is authenticated but may not perform the action.
var ErrForbidden = errors.New("forbidden")

// ErrConflict indicates the request conflicts with the current state of a resource.
var ErrConflict = errors.New("conflict")

// ErrInternal indicates an unexpected failure.
var ErrInternal = errors.New("internal error")

// Ledger admission and persistence failures.
var (
	ErrInvalidStructure = fmt.Errorf("%w: invalid transaction structure", ErrValidation)
	ErrUnknownAccount   = errors.New("unknown account")
	ErrUnbalanced       = errors.New("transaction is unbalanced")
	ErrWriteFailure     = errors.New("write failure")
)

// Kind returns the machine-readable rejection kind for err, or an empty string.
func Kind(err error) string {
	switch {
	case errors.Is(err, ErrInvalidStructure):
		return "INVALID_STRUCTURE"
	case errors.Is(err, ErrUnknownAccount):
		return "UNKNOWN_ACCOUNT"
	case errors.Is(err, ErrUnbalanced):
		return "UNBALANCED"
	case errors.Is(err, ErrWriteFailure):
		return "WRITE_FAILURE"
	case errors.Is(err, ErrNotFound):
		return "NOT_FOUND"
	case errors.Is(err, ErrDuplicate):
		return "DUPLICATE"
	case errors.Is(err, ErrValidation):
		return "VALIDATION"
	}
	return ""
}

// UnbalancedError reports both computed totals of a rejected transaction.
type UnbalancedError struct {
	Debits  decimal.Decimal
	Credits decimal.Decimal
}

func (e *UnbalancedError) Error() string {
	return fmt.Sprintf("%s: debits (%s) != credits (%s)", ErrUnbalanced, e.Debits.StringFixed(2), e.Credits.StringFixed(2))
}

func (e *UnbalancedError) Unwrap() error { return ErrUnbalanced }

// AppError wraps a lower-level failure with an HTTP-style status code and message.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError creates an AppError. err may be nil.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError creates an AppError that matches ErrNotFound.
func NewNotFoundError(resource string) *AppError {
	return &AppError{Code: 404, Message: resource + " not found", Err: ErrNotFound}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Err }
