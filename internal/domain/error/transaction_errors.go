// Package error defines domain-specific errors for the Household Ledger application.
package error

import "errors"

// Transaction domain errors.
var (
	// ErrTransactionNotFound is returned when a transaction is not found in the system.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrNotAuthorizedToModifyTransaction is returned when user is not authorized to modify a transaction.
	ErrNotAuthorizedToModifyTransaction = errors.New("not authorized to modify transaction")

	// ErrInvalidTransactionKind is returned when the transaction kind is invalid.
	ErrInvalidTransactionKind = errors.New("invalid transaction kind")

	// ErrInvalidTransactionAmount is returned when the amount is not strictly positive.
	ErrInvalidTransactionAmount = errors.New("transaction amount must be positive")

	// ErrMissingTransactionCategory is returned when the category is empty.
	ErrMissingTransactionCategory = errors.New("transaction category is required")

	// ErrMissingTransactionDate is returned when the date is missing.
	ErrMissingTransactionDate = errors.New("transaction date is required")

	// ErrReservedCategory is returned when a transaction is created or edited
	// directly into the transfer category. Transfer halves are only created
	// through the transfer executor.
	ErrReservedCategory = errors.New("category is reserved for transfers")
)

// TransactionErrorCode defines error codes for transaction errors.
// Format: TXN-XXYYYY where XX is category and YYYY is specific error.
type TransactionErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidTransactionKind     TransactionErrorCode = "TXN-010001"
	ErrCodeInvalidTransactionAmount   TransactionErrorCode = "TXN-010002"
	ErrCodeMissingTransactionCategory TransactionErrorCode = "TXN-010003"
	ErrCodeMissingTransactionDate     TransactionErrorCode = "TXN-010004"
	ErrCodeReservedCategory           TransactionErrorCode = "TXN-010005"

	// Lookup errors (02XXXX)
	ErrCodeTransactionNotFound      TransactionErrorCode = "TXN-020001"
	ErrCodeNotAuthorizedTransaction TransactionErrorCode = "TXN-020002"
)

// TransactionError represents a transaction error with code and message.
type TransactionError struct {
	Code    TransactionErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *TransactionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *TransactionError) Unwrap() error {
	return e.Err
}

// NewTransactionError creates a new TransactionError with the given code and message.
func NewTransactionError(code TransactionErrorCode, message string, err error) *TransactionError {
	return &TransactionError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
