// Package debt contains debt-record and person-ledger use cases.
package debt

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/household-ledger/backend/internal/application/adapter"
	"github.com/household-ledger/backend/internal/domain/entity"
	domainerror "github.com/household-ledger/backend/internal/domain/error"
)

// resolutionDescription marks the settling record created for a person.
const resolutionDescription = "Risoluzione saldo"

// ResolvePersonInput represents the input for settling a person's balance.
type ResolvePersonInput struct {
	UserID     uuid.UUID
	PersonName string
	WalletID   uuid.UUID
}

// ResolvePersonOutput represents the output of settling a person's balance.
type ResolvePersonOutput struct {
	Record *DebtRecordOutput
}

// ResolvePersonUseCase creates the single debt record that zeroes a
// person's current balance, so the person can afterwards be deleted.
type ResolvePersonUseCase struct {
	debtRepo   adapter.DebtRepository
	walletRepo adapter.WalletRepository
}

// NewResolvePersonUseCase creates a new ResolvePersonUseCase instance.
func NewResolvePersonUseCase(debtRepo adapter.DebtRepository, walletRepo adapter.WalletRepository) *ResolvePersonUseCase {
	return &ResolvePersonUseCase{
		debtRepo:   debtRepo,
		walletRepo: walletRepo,
	}
}

// Execute settles the person's balance on the given wallet. A positive
// balance (the person owes the user) is settled by recording the incoming
// repayment as a debt-kind record; a negative balance by the symmetric
// credit-kind record. Applying the resolution brings PersonBalance to
// exactly zero.
func (uc *ResolvePersonUseCase) Execute(ctx context.Context, input ResolvePersonInput) (*ResolvePersonOutput, error) {
	records, err := uc.debtRepo.FindByPerson(ctx, input.UserID, input.PersonName)
	if err != nil {
		return nil, fmt.Errorf("failed to load debt records: %w", err)
	}

	balance := PersonBalance(records, input.PersonName)
	if balance.IsZero() {
		return nil, domainerror.NewDebtError(
			domainerror.ErrCodePersonSettled,
			"person balance is already settled",
			domainerror.ErrPersonAlreadySettled,
		)
	}

	kind := entity.DebtKindDebt
	if balance.IsNegative() {
		kind = entity.DebtKindCredit
	}

	now := time.Now()
	record := entity.NewDebtRecord(
		input.UserID,
		input.WalletID,
		input.PersonName,
		kind,
		balance.Abs(),
		now,
		now.Format("15:04"),
		resolutionDescription,
	)

	if err := validateRecordFields(
		record.PersonName, record.Kind, record.Amount, record.WalletID, record.Date, record.Time, now,
	); err != nil {
		return nil, err
	}

	wallet, err := uc.walletRepo.FindByID(ctx, input.WalletID)
	if err != nil {
		return nil, fmt.Errorf("failed to find wallet: %w", err)
	}
	if wallet.UserID != input.UserID {
		return nil, domainerror.NewWalletError(
			domainerror.ErrCodeNotAuthorizedWallet,
			"wallet does not belong to user",
			domainerror.ErrNotAuthorizedToModifyWallet,
		)
	}

	if err := uc.debtRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to create resolution record: %w", err)
	}

	return &ResolvePersonOutput{Record: toDebtRecordOutput(record)}, nil
}
