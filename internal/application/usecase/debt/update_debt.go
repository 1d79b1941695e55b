// Package debt contains debt-record and person-ledger use cases.
package debt

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/household-ledger/backend/internal/application/adapter"
	"github.com/household-ledger/backend/internal/domain/entity"
	domainerror "github.com/household-ledger/backend/internal/domain/error"
)

// UpdateDebtInput represents the input for debt record update.
// Nil fields are left unchanged.
type UpdateDebtInput struct {
	RecordID    uuid.UUID
	UserID      uuid.UUID
	WalletID    *uuid.UUID
	PersonName  *string
	Kind        *entity.DebtKind
	Amount      *decimal.Decimal
	Date        *time.Time
	Time        *string
	Description *string
}

// UpdateDebtOutput represents the output of debt record update.
type UpdateDebtOutput struct {
	Record *DebtRecordOutput
}

// UpdateDebtUseCase handles debt record update logic.
type UpdateDebtUseCase struct {
	debtRepo   adapter.DebtRepository
	walletRepo adapter.WalletRepository
}

// NewUpdateDebtUseCase creates a new UpdateDebtUseCase instance.
func NewUpdateDebtUseCase(debtRepo adapter.DebtRepository, walletRepo adapter.WalletRepository) *UpdateDebtUseCase {
	return &UpdateDebtUseCase{
		debtRepo:   debtRepo,
		walletRepo: walletRepo,
	}
}

// Execute performs the debt record update.
func (uc *UpdateDebtUseCase) Execute(ctx context.Context, input UpdateDebtInput) (*UpdateDebtOutput, error) {
	record, err := uc.debtRepo.FindByID(ctx, input.RecordID)
	if err != nil {
		if errors.Is(err, domainerror.ErrDebtRecordNotFound) {
			return nil, domainerror.NewDebtError(
				domainerror.ErrCodeDebtRecordNotFound,
				"debt record not found",
				domainerror.ErrDebtRecordNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find debt record: %w", err)
	}

	if record.UserID != input.UserID {
		return nil, domainerror.NewDebtError(
			domainerror.ErrCodeNotAuthorizedDebt,
			"not authorized to modify this debt record",
			domainerror.ErrNotAuthorizedToModifyDebt,
		)
	}

	if input.WalletID != nil && *input.WalletID != record.WalletID {
		wallet, err := uc.walletRepo.FindByID(ctx, *input.WalletID)
		if err != nil {
			if errors.Is(err, domainerror.ErrWalletNotFound) {
				return nil, domainerror.NewWalletError(
					domainerror.ErrCodeWalletNotFound,
					"wallet not found",
					domainerror.ErrWalletNotFound,
				)
			}
			return nil, fmt.Errorf("failed to find wallet: %w", err)
		}
		if wallet.UserID != input.UserID {
			return nil, domainerror.NewWalletError(
				domainerror.ErrCodeNotAuthorizedWallet,
				"wallet does not belong to user",
				domainerror.ErrNotAuthorizedToModifyWallet,
			)
		}
		record.WalletID = *input.WalletID
	}

	if input.PersonName != nil {
		record.PersonName = *input.PersonName
	}
	if input.Kind != nil {
		record.Kind = *input.Kind
	}
	if input.Amount != nil {
		record.Amount = *input.Amount
	}
	if input.Date != nil {
		record.Date = *input.Date
	}
	if input.Time != nil {
		record.Time = *input.Time
	}
	if input.Description != nil {
		record.Description = *input.Description
	}

	if err := validateRecordFields(
		record.PersonName, record.Kind, record.Amount, record.WalletID, record.Date, record.Time, time.Now(),
	); err != nil {
		return nil, err
	}

	record.UpdatedAt = time.Now().UTC()

	if err := uc.debtRepo.Update(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to update debt record: %w", err)
	}

	return &UpdateDebtOutput{Record: toDebtRecordOutput(record)}, nil
}
