package models

import (
	"errors"
	"fmt"
)

// ErrVoucherNotFound is returned when a voucher id does not exist
var ErrVoucherNotFound = errors.New("voucher not found")

// ValidationError indicates a field value that fails business rules
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NewValidationError creates a ValidationError for a field
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// InvalidTransitionError indicates an illegal voucher status change
type InvalidTransitionError struct {
	From VoucherStatus
	To   VoucherStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot change status from '%s' to '%s'", e.From, e.To)
}

// InvalidOperationError indicates an operation forbidden by the voucher's
// current state, such as deleting a used voucher
type InvalidOperationError struct {
	Message string
}

func (e *InvalidOperationError) Error() string {
	return e.Message
}

// BatchCommitError indicates the final transaction commit of a batch
// operation failed. All per-item results of that batch were rolled back.
type BatchCommitError struct {
	Op  string
	Err error
}

func (e *BatchCommitError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Op, e.Err)
}

func (e *BatchCommitError) Unwrap() error {
	return e.Err
}

// IsValidationError reports whether err is a ValidationError
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsInvalidTransition reports whether err is an InvalidTransitionError
func IsInvalidTransition(err error) bool {
	var te *InvalidTransitionError
	return errors.As(err, &te)
}

// IsInvalidOperation reports whether err is an InvalidOperationError
func IsInvalidOperation(err error) bool {
	var oe *InvalidOperationError
	return errors.As(err, &oe)
}

// IsBatchCommitError reports whether err is a BatchCommitError
func IsBatchCommitError(err error) bool {
	var be *BatchCommitError
	return errors.As(err, &be)
}
