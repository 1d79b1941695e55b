// Package error defines domain-specific errors for the Household Ledger application.
package error

import "errors"

// Statistics domain errors.
var (
	// ErrMissingStartDate is returned when a statistics query omits the start date.
	ErrMissingStartDate = errors.New("start date is required")

	// ErrMissingEndDate is returned when a statistics query omits the end date.
	ErrMissingEndDate = errors.New("end date is required")

	// ErrInvalidDateRange is returned when end date precedes start date.
	ErrInvalidDateRange = errors.New("end date must be after start date")
)

// StatisticsErrorCode defines error codes for statistics errors.
// Format: STA-XXYYYY where XX is category and YYYY is specific error.
type StatisticsErrorCode string

const (
	ErrCodeMissingStartDate StatisticsErrorCode = "STA-010001"
	ErrCodeMissingEndDate   StatisticsErrorCode = "STA-010002"
	ErrCodeInvalidDateRange StatisticsErrorCode = "STA-010003"
)

// StatisticsError represents a statistics error with code and message.
type StatisticsError struct {
	Code    StatisticsErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *StatisticsError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *StatisticsError) Unwrap() error {
	return e.Err
}

// NewStatisticsError creates a new StatisticsError with the given code and message.
func NewStatisticsError(code StatisticsErrorCode, message string, err error) *StatisticsError {
	return &StatisticsError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
