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

// CreateDebtInput represents the input for debt record creation.
type CreateDebtInput struct {
	UserID      uuid.UUID
	WalletID    uuid.UUID
	PersonName  string
	Kind        entity.DebtKind
	Amount      decimal.Decimal
	Date        time.Time
	Time        string
	Description string
}

// CreateDebtOutput represents the output of debt record creation.
type CreateDebtOutput struct {
	Record *DebtRecordOutput
}

// CreateDebtUseCase handles debt record creation logic.
type CreateDebtUseCase struct {
	debtRepo   adapter.DebtRepository
	walletRepo adapter.WalletRepository
}

// NewCreateDebtUseCase creates a new CreateDebtUseCase instance.
func NewCreateDebtUseCase(debtRepo adapter.DebtRepository, walletRepo adapter.WalletRepository) *CreateDebtUseCase {
	return &CreateDebtUseCase{
		debtRepo:   debtRepo,
		walletRepo: walletRepo,
	}
}

// Execute performs the debt record creation.
func (uc *CreateDebtUseCase) Execute(ctx context.Context, input CreateDebtInput) (*CreateDebtOutput, error) {
	if err := validateRecordFields(
		input.PersonName, input.Kind, input.Amount, input.WalletID, input.Date, input.Time, time.Now(),
	); err != nil {
		return nil, err
	}

	wallet, err := uc.walletRepo.FindByID(ctx, input.WalletID)
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

	record := entity.NewDebtRecord(
		input.UserID,
		input.WalletID,
		input.PersonName,
		input.Kind,
		input.Amount,
		input.Date,
		input.Time,
		input.Description,
	)

	if err := uc.debtRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to create debt record: %w", err)
	}

	return &CreateDebtOutput{Record: toDebtRecordOutput(record)}, nil
}
