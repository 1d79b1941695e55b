// Package error defines domain-specific errors for the Household Ledger application.
package error

import "errors"

// Debt record domain errors.
var (
	// ErrDebtRecordNotFound is returned when a debt record is not found in the system.
	ErrDebtRecordNotFound = errors.New("debt record not found")

	// ErrNotAuthorizedToModifyDebt is returned when user is not authorized to modify a debt record.
	ErrNotAuthorizedToModifyDebt = errors.New("not authorized to modify debt record")

	// ErrInvalidDebtKind is returned when the debt kind is neither debt nor credit.
	ErrInvalidDebtKind = errors.New("invalid debt kind")

	// ErrInvalidDebtAmount is returned when the amount is not strictly positive.
	ErrInvalidDebtAmount = errors.New("debt amount must be positive")

	// ErrMissingPersonName is returned when the person name is empty.
	ErrMissingPersonName = errors.New("person name is required")

	// ErrMissingDebtWallet is returned when the wallet reference is missing.
	ErrMissingDebtWallet = errors.New("debt wallet is required")

	// ErrInvalidDebtTime is returned when the time of day is present but
	// not in zero-padded "HH:MM" form. Record ordering compares the time
	// lexicographically, so unpadded values would sort wrong.
	ErrInvalidDebtTime = errors.New("debt time must be in HH:MM format")

	// ErrFutureDebtDate is returned when the debt date is strictly after
	// today. Only whole dates are compared, so a same-day record is valid
	// regardless of its time of day.
	ErrFutureDebtDate = errors.New("debt date cannot be in the future")

	// ErrPersonAlreadySettled is returned when resolving a person whose
	// balance is already zero.
	ErrPersonAlreadySettled = errors.New("person balance is already settled")
)

// DebtErrorCode defines error codes for debt errors.
// Format: DBT-XXYYYY where XX is category and YYYY is specific error.
type DebtErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidDebtKind    DebtErrorCode = "DBT-010001"
	ErrCodeInvalidDebtAmount  DebtErrorCode = "DBT-010002"
	ErrCodeMissingPersonName  DebtErrorCode = "DBT-010003"
	ErrCodeMissingDebtWallet  DebtErrorCode = "DBT-010004"
	ErrCodeFutureDebtDate     DebtErrorCode = "DBT-010005"
	ErrCodeInvalidDebtTime    DebtErrorCode = "DBT-010006"

	// Lookup errors (02XXXX)
	ErrCodeDebtRecordNotFound DebtErrorCode = "DBT-020001"
	ErrCodeNotAuthorizedDebt  DebtErrorCode = "DBT-020002"

	// Person lifecycle errors (03XXXX)
	ErrCodePersonSettled DebtErrorCode = "DBT-030001"
)

// DebtError represents a debt error with code and message.
type DebtError struct {
	Code    DebtErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *DebtError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *DebtError) Unwrap() error {
	return e.Err
}

// NewDebtError creates a new DebtError with the given code and message.
func NewDebtError(code DebtErrorCode, message string, err error) *DebtError {
	return &DebtError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
