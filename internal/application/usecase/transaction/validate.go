// Package transaction contains transaction-related use cases.
package transaction

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/household-ledger/backend/internal/domain/entity"
	domainerror "github.com/household-ledger/backend/internal/domain/error"
)

// validateFields rejects a transaction before it reaches the ledger. The
// transfer category is reserved: its halves are only created through the
// transfer executor, never directly.
func validateFields(kind entity.TransactionKind, amount decimal.Decimal, category string, date time.Time) error {
	if kind != entity.TransactionKindExpense && kind != entity.TransactionKindIncome {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionKind,
			"transaction kind must be expense or income",
			domainerror.ErrInvalidTransactionKind,
		)
	}
	if !amount.IsPositive() {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionAmount,
			"transaction amount must be positive",
			domainerror.ErrInvalidTransactionAmount,
		)
	}
	if category == "" {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeMissingTransactionCategory,
			"transaction category is required",
			domainerror.ErrMissingTransactionCategory,
		)
	}
	if category == entity.CategoryTransfer {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeReservedCategory,
			"category is reserved for transfers",
			domainerror.ErrReservedCategory,
		)
	}
	if date.IsZero() {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeMissingTransactionDate,
			"transaction date is required",
			domainerror.ErrMissingTransactionDate,
		)
	}
	return nil
}
