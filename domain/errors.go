package domain

import "errors"

// ErrValidation is wrapped by every ValidationError.
var ErrValidation = errors.New("validation failure")

type ValidationKind string

const (
	KindNonNumeric         ValidationKind = "non_numeric"
	KindNonPositive        ValidationKind = "non_positive"
	KindCurrentExceedsBase ValidationKind = "current_exceeds_base"
	KindEmptyInstallments  ValidationKind = "empty_installment_list"
	KindInvalidInstallment ValidationKind = "invalid_installment"
	KindInstallmentsFull   ValidationKind = "installment_list_full"
)

// ValidationError reports a failed precondition. Message is meant to be
// shown to the user as is.
type ValidationError struct {
	Kind    ValidationKind
	Message string
}

func NewValidationError(kind ValidationKind, message string) *ValidationError {
	return &ValidationError{Kind: kind, Message: message}
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
