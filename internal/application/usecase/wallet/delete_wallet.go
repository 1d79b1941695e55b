// Package wallet contains wallet-related use cases.
package wallet

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/household-ledger/backend/internal/application/adapter"
	domainerror "github.com/household-ledger/backend/internal/domain/error"
)

// DeleteWalletInput represents the input for wallet deletion.
type DeleteWalletInput struct {
	WalletID uuid.UUID
	UserID   uuid.UUID
}

// DeleteWalletOutput represents the output of wallet deletion.
type DeleteWalletOutput struct {
	Success bool
}

// DeleteWalletUseCase handles wallet deletion logic.
type DeleteWalletUseCase struct {
	walletRepo      adapter.WalletRepository
	transactionRepo adapter.TransactionRepository
	debtRepo        adapter.DebtRepository
}

// NewDeleteWalletUseCase creates a new DeleteWalletUseCase instance.
func NewDeleteWalletUseCase(
	walletRepo adapter.WalletRepository,
	transactionRepo adapter.TransactionRepository,
	debtRepo adapter.DebtRepository,
) *DeleteWalletUseCase {
	return &DeleteWalletUseCase{
		walletRepo:      walletRepo,
		transactionRepo: transactionRepo,
		debtRepo:        debtRepo,
	}
}

// Execute performs the wallet deletion. A wallet that still has transactions
// or debt records attached cannot be deleted; the movements must be removed
// or moved first so no balance silently disappears.
func (uc *DeleteWalletUseCase) Execute(ctx context.Context, input DeleteWalletInput) (*DeleteWalletOutput, error) {
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
			"not authorized to delete this wallet",
			domainerror.ErrNotAuthorizedToModifyWallet,
		)
	}

	txCount, err := uc.transactionRepo.CountByWallet(ctx, wallet.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to count wallet transactions: %w", err)
	}
	debtCount, err := uc.debtRepo.CountByWallet(ctx, wallet.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to count wallet debt records: %w", err)
	}
	if txCount > 0 || debtCount > 0 {
		return nil, domainerror.NewWalletError(
			domainerror.ErrCodeWalletHasMovements,
			"wallet still has movements attached",
			domainerror.ErrWalletHasMovements,
		)
	}

	if err := uc.walletRepo.Delete(ctx, wallet.ID); err != nil {
		return nil, fmt.Errorf("failed to delete wallet: %w", err)
	}

	return &DeleteWalletOutput{Success: true}, nil
}
