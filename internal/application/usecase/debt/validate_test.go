// Package debt contains debt-record and person-ledger use cases.
package debt

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/household-ledger/backend/internal/domain/entity"
	domainerror "github.com/household-ledger/backend/internal/domain/error"
)

func TestValidateRecordFields(t *testing.T) {
	walletID := uuid.New()
	now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	amount := decimal.NewFromInt(50)

	tests := []struct {
		name       string
		personName string
		kind       entity.DebtKind
		amount     decimal.Decimal
		walletID   uuid.UUID
		date       time.Time
		time       string
		wantErr    error
	}{
		{
			name:       "valid record without time",
			personName: "Luca",
			kind:       entity.DebtKindDebt,
			amount:     amount,
			walletID:   walletID,
			date:       now,
		},
		{
			name:       "valid record with padded time",
			personName: "Luca",
			kind:       entity.DebtKindDebt,
			amount:     amount,
			walletID:   walletID,
			date:       now,
			time:       "09:30",
		},
		{
			name:       "unpadded hour is rejected",
			personName: "Luca",
			kind:       entity.DebtKindDebt,
			amount:     amount,
			walletID:   walletID,
			date:       now,
			time:       "9:30",
			wantErr:    domainerror.ErrInvalidDebtTime,
		},
		{
			name:       "out of range time is rejected",
			personName: "Luca",
			kind:       entity.DebtKindCredit,
			amount:     amount,
			walletID:   walletID,
			date:       now,
			time:       "25:00",
			wantErr:    domainerror.ErrInvalidDebtTime,
		},
		{
			name:       "time with seconds is rejected",
			personName: "Luca",
			kind:       entity.DebtKindCredit,
			amount:     amount,
			walletID:   walletID,
			date:       now,
			time:       "09:30:15",
			wantErr:    domainerror.ErrInvalidDebtTime,
		},
		{
			name:       "empty person name is rejected",
			kind:       entity.DebtKindDebt,
			amount:     amount,
			walletID:   walletID,
			date:       now,
			wantErr:    domainerror.ErrMissingPersonName,
		},
		{
			name:       "unknown kind is rejected",
			personName: "Luca",
			kind:       entity.DebtKind("loan"),
			amount:     amount,
			walletID:   walletID,
			date:       now,
			wantErr:    domainerror.ErrInvalidDebtKind,
		},
		{
			name:       "non-positive amount is rejected",
			personName: "Luca",
			kind:       entity.DebtKindDebt,
			amount:     decimal.Zero,
			walletID:   walletID,
			date:       now,
			wantErr:    domainerror.ErrInvalidDebtAmount,
		},
		{
			name:       "future date is rejected",
			personName: "Luca",
			kind:       entity.DebtKindDebt,
			amount:     amount,
			walletID:   walletID,
			date:       now.AddDate(0, 0, 1),
			wantErr:    domainerror.ErrFutureDebtDate,
		},
		{
			name:       "same day is not a future date",
			personName: "Luca",
			kind:       entity.DebtKindDebt,
			amount:     amount,
			walletID:   walletID,
			date:       time.Date(2024, 5, 10, 23, 59, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateRecordFields(
				tt.personName, tt.kind, tt.amount, tt.walletID, tt.date, tt.time, now,
			)

			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}
