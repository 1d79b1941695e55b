// Package wallet contains wallet-related use cases.
package wallet

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/household-ledger/backend/internal/application/adapter"
)

// ListWalletsInput represents the input for listing wallets.
type ListWalletsInput struct {
	UserID uuid.UUID
}

// ListWalletsOutput represents the output of listing wallets.
type ListWalletsOutput struct {
	Wallets []*WalletOutput
}

// ListWalletsUseCase handles listing a user's wallets with derived balances.
type ListWalletsUseCase struct {
	walletRepo      adapter.WalletRepository
	transactionRepo adapter.TransactionRepository
	debtRepo        adapter.DebtRepository
}

// NewListWalletsUseCase creates a new ListWalletsUseCase instance.
func NewListWalletsUseCase(
	walletRepo adapter.WalletRepository,
	transactionRepo adapter.TransactionRepository,
	debtRepo adapter.DebtRepository,
) *ListWalletsUseCase {
	return &ListWalletsUseCase{
		walletRepo:      walletRepo,
		transactionRepo: transactionRepo,
		debtRepo:        debtRepo,
	}
}

// Execute lists the user's wallets. Balances are recomputed from the full
// movement snapshot on every call; nothing cached is trusted.
func (uc *ListWalletsUseCase) Execute(ctx context.Context, input ListWalletsInput) (*ListWalletsOutput, error) {
	wallets, err := uc.walletRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list wallets: %w", err)
	}

	transactions, err := uc.transactionRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	debts, err := uc.debtRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load debt records: %w", err)
	}

	outputs := make([]*WalletOutput, len(wallets))
	for i, w := range wallets {
		outputs[i] = toWalletOutput(w, ComputeBalance(w, transactions, debts))
	}

	return &ListWalletsOutput{Wallets: outputs}, nil
}
