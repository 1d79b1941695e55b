// Package debt contains debt-record and person-ledger use cases.
package debt

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/household-ledger/backend/internal/domain/entity"
	domainerror "github.com/household-ledger/backend/internal/domain/error"
)

// timeOfDayLayout is the only accepted form for a record's time of day.
// Ordering compares times lexicographically, so unpadded values like "9:30"
// would sort after "18:00".
const timeOfDayLayout = "15:04"

// validateRecordFields checks the invariants shared by create and update.
// Future dates are rejected on whole-date comparison only: a record dated
// today is valid at any time of day.
func validateRecordFields(
	personName string,
	kind entity.DebtKind,
	amount decimal.Decimal,
	walletID uuid.UUID,
	date time.Time,
	recordTime string,
	now time.Time,
) error {
	if personName == "" {
		return domainerror.NewDebtError(
			domainerror.ErrCodeMissingPersonName,
			"person name is required",
			domainerror.ErrMissingPersonName,
		)
	}
	if kind != entity.DebtKindDebt && kind != entity.DebtKindCredit {
		return domainerror.NewDebtError(
			domainerror.ErrCodeInvalidDebtKind,
			"debt kind must be 'debt' or 'credit'",
			domainerror.ErrInvalidDebtKind,
		)
	}
	if !amount.IsPositive() {
		return domainerror.NewDebtError(
			domainerror.ErrCodeInvalidDebtAmount,
			"debt amount must be positive",
			domainerror.ErrInvalidDebtAmount,
		)
	}
	if walletID == uuid.Nil {
		return domainerror.NewDebtError(
			domainerror.ErrCodeMissingDebtWallet,
			"wallet is required",
			domainerror.ErrMissingDebtWallet,
		)
	}
	if date.IsZero() {
		return domainerror.NewDebtError(
			domainerror.ErrCodeFutureDebtDate,
			"debt date is required",
			domainerror.ErrFutureDebtDate,
		)
	}
	if isAfterToday(date, now) {
		return domainerror.NewDebtError(
			domainerror.ErrCodeFutureDebtDate,
			"debt date cannot be in the future",
			domainerror.ErrFutureDebtDate,
		)
	}
	if recordTime != "" {
		parsed, err := time.Parse(timeOfDayLayout, recordTime)
		if err != nil || parsed.Format(timeOfDayLayout) != recordTime {
			return domainerror.NewDebtError(
				domainerror.ErrCodeInvalidDebtTime,
				"debt time must be in HH:MM format",
				domainerror.ErrInvalidDebtTime,
			)
		}
	}
	return nil
}

// isAfterToday compares calendar days, ignoring time of day.
func isAfterToday(date, now time.Time) bool {
	return date.Format("2006-01-02") > now.Format("2006-01-02")
}
