// Package error defines domain-specific errors for the Household Ledger application.
package error

import "errors"

// Transfer domain errors.
var (
	// ErrSelfTransfer is returned when source and destination wallet are the same.
	ErrSelfTransfer = errors.New("cannot transfer to the same wallet")

	// ErrTransferWalletNotFound is returned when either wallet of a transfer is unknown.
	ErrTransferWalletNotFound = errors.New("transfer wallet not found")

	// ErrInvalidTransferAmount is returned when the amount is not a finite positive number.
	ErrInvalidTransferAmount = errors.New("transfer amount must be positive")
)

// TransferErrorCode defines error codes for transfer errors.
// Format: TRF-XXYYYY where XX is category and YYYY is specific error.
type TransferErrorCode string

const (
	ErrCodeSelfTransfer           TransferErrorCode = "TRF-010001"
	ErrCodeInvalidTransferAmount  TransferErrorCode = "TRF-010002"
	ErrCodeTransferWalletNotFound TransferErrorCode = "TRF-020001"
)

// TransferError represents a transfer error with code and message.
type TransferError struct {
	Code    TransferErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *TransferError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *TransferError) Unwrap() error {
	return e.Err
}

// NewTransferError creates a new TransferError with the given code and message.
func NewTransferError(code TransferErrorCode, message string, err error) *TransferError {
	return &TransferError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
