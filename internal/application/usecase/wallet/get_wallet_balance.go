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

// GetWalletBalanceInput represents the input for the balance query.
type GetWalletBalanceInput struct {
	WalletID uuid.UUID
	UserID   uuid.UUID
}

// GetWalletBalanceOutput represents the output of the balance query.
type GetWalletBalanceOutput struct {
	Wallet *WalletOutput
}

// GetWalletBalanceUseCase handles the derived-balance query for one wallet.
type GetWalletBalanceUseCase struct {
	walletRepo      adapter.WalletRepository
	transactionRepo adapter.TransactionRepository
	debtRepo        adapter.DebtRepository
}

// NewGetWalletBalanceUseCase creates a new GetWalletBalanceUseCase instance.
func NewGetWalletBalanceUseCase(
	walletRepo adapter.WalletRepository,
	transactionRepo adapter.TransactionRepository,
	debtRepo adapter.DebtRepository,
) *GetWalletBalanceUseCase {
	return &GetWalletBalanceUseCase{
		walletRepo:      walletRepo,
		transactionRepo: transactionRepo,
		debtRepo:        debtRepo,
	}
}

// Execute computes the wallet's current balance from the full snapshot.
func (uc *GetWalletBalanceUseCase) Execute(ctx context.Context, input GetWalletBalanceInput) (*GetWalletBalanceOutput, error) {
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
			"not authorized to read this wallet",
			domainerror.ErrNotAuthorizedToModifyWallet,
		)
	}

	transactions, err := uc.transactionRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	debts, err := uc.debtRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load debt records: %w", err)
	}

	return &GetWalletBalanceOutput{
		Wallet: toWalletOutput(wallet, ComputeBalance(wallet, transactions, debts)),
	}, nil
}
