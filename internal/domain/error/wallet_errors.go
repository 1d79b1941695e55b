// Package error defines domain-specific errors for the Household Ledger application.
package error

import "errors"

// Wallet domain errors.
var (
	// ErrWalletNotFound is returned when a wallet is not found in the system.
	ErrWalletNotFound = errors.New("wallet not found")

	// ErrNotAuthorizedToModifyWallet is returned when user is not authorized to modify a wallet.
	ErrNotAuthorizedToModifyWallet = errors.New("not authorized to modify wallet")

	// ErrDuplicateWalletName is returned when a wallet name collides with an
	// existing wallet for the same user. The comparison is case-sensitive.
	ErrDuplicateWalletName = errors.New("wallet name already exists")

	// ErrMissingWalletName is returned when the wallet name is empty.
	ErrMissingWalletName = errors.New("wallet name is required")

	// ErrMissingWalletColor is returned when the wallet color is empty.
	ErrMissingWalletColor = errors.New("wallet color is required")

	// ErrWalletHasMovements is returned when deleting a wallet that still has
	// transactions or debt records attached.
	ErrWalletHasMovements = errors.New("wallet still has movements")
)

// WalletErrorCode defines error codes for wallet errors.
// Format: WAL-XXYYYY where XX is category and YYYY is specific error.
type WalletErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeMissingWalletName  WalletErrorCode = "WAL-010001"
	ErrCodeMissingWalletColor WalletErrorCode = "WAL-010002"
	ErrCodeDuplicateWallet    WalletErrorCode = "WAL-010003"

	// Lookup errors (02XXXX)
	ErrCodeWalletNotFound      WalletErrorCode = "WAL-020001"
	ErrCodeNotAuthorizedWallet WalletErrorCode = "WAL-020002"

	// Deletion errors (03XXXX)
	ErrCodeWalletHasMovements WalletErrorCode = "WAL-030001"
)

// WalletError represents a wallet error with code and message.
type WalletError struct {
	Code    WalletErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *WalletError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *WalletError) Unwrap() error {
	return e.Err
}

// NewWalletError creates a new WalletError with the given code and message.
func NewWalletError(code WalletErrorCode, message string, err error) *WalletError {
	return &WalletError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
