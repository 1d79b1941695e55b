// Package transaction contains transaction-related use cases.
package transaction

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/household-ledger/backend/internal/domain/entity"
	domainerror "github.com/household-ledger/backend/internal/domain/error"
)

func TestValidateFields(t *testing.T) {
	validDate := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		kind     entity.TransactionKind
		amount   string
		category string
		date     time.Time
		wantErr  error
	}{
		{
			name:     "valid expense",
			kind:     entity.TransactionKindExpense,
			amount:   "12.50",
			category: "Spesa",
			date:     validDate,
		},
		{
			name:     "valid income",
			kind:     entity.TransactionKindIncome,
			amount:   "1000",
			category: "Stipendio",
			date:     validDate,
		},
		{
			name:     "unknown kind",
			kind:     "withdrawal",
			amount:   "10",
			category: "Spesa",
			date:     validDate,
			wantErr:  domainerror.ErrInvalidTransactionKind,
		},
		{
			name:     "zero amount",
			kind:     entity.TransactionKindExpense,
			amount:   "0",
			category: "Spesa",
			date:     validDate,
			wantErr:  domainerror.ErrInvalidTransactionAmount,
		},
		{
			name:     "negative amount",
			kind:     entity.TransactionKindExpense,
			amount:   "-3",
			category: "Spesa",
			date:     validDate,
			wantErr:  domainerror.ErrInvalidTransactionAmount,
		},
		{
			name:     "empty category",
			kind:     entity.TransactionKindExpense,
			amount:   "10",
			category: "",
			date:     validDate,
			wantErr:  domainerror.ErrMissingTransactionCategory,
		},
		{
			name:     "reserved transfer category",
			kind:     entity.TransactionKindExpense,
			amount:   "10",
			category: entity.CategoryTransfer,
			date:     validDate,
			wantErr:  domainerror.ErrReservedCategory,
		},
		{
			name:     "zero date",
			kind:     entity.TransactionKindExpense,
			amount:   "10",
			category: "Spesa",
			wantErr:  domainerror.ErrMissingTransactionDate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateFields(tt.kind, decimal.RequireFromString(tt.amount), tt.category, tt.date)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}
