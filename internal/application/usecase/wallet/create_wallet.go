// Package wallet contains wallet-related use cases.
package wallet

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/household-ledger/backend/internal/application/adapter"
	"github.com/household-ledger/backend/internal/domain/entity"
	domainerror "github.com/household-ledger/backend/internal/domain/error"
)

// CreateWalletInput represents the input for wallet creation.
type CreateWalletInput struct {
	UserID         uuid.UUID
	Name           string
	Color          string
	InitialBalance decimal.Decimal
}

// CreateWalletOutput represents the output of wallet creation.
type CreateWalletOutput struct {
	Wallet *WalletOutput
}

// CreateWalletUseCase handles wallet creation logic.
type CreateWalletUseCase struct {
	walletRepo adapter.WalletRepository
}

// NewCreateWalletUseCase creates a new CreateWalletUseCase instance.
func NewCreateWalletUseCase(walletRepo adapter.WalletRepository) *CreateWalletUseCase {
	return &CreateWalletUseCase{
		walletRepo: walletRepo,
	}
}

// Execute performs the wallet creation.
func (uc *CreateWalletUseCase) Execute(ctx context.Context, input CreateWalletInput) (*CreateWalletOutput, error) {
	if input.Name == "" {
		return nil, domainerror.NewWalletError(
			domainerror.ErrCodeMissingWalletName,
			"wallet name is required",
			domainerror.ErrMissingWalletName,
		)
	}

	if input.Color == "" {
		return nil, domainerror.NewWalletError(
			domainerror.ErrCodeMissingWalletColor,
			"wallet color is required",
			domainerror.ErrMissingWalletColor,
		)
	}

	// Name uniqueness is case-sensitive and scoped to the user.
	exists, err := uc.walletRepo.ExistsByName(ctx, input.UserID, input.Name, uuid.Nil)
	if err != nil {
		return nil, fmt.Errorf("failed to check wallet name: %w", err)
	}
	if exists {
		return nil, domainerror.NewWalletError(
			domainerror.ErrCodeDuplicateWallet,
			fmt.Sprintf("a wallet named %q already exists", input.Name),
			domainerror.ErrDuplicateWalletName,
		)
	}

	wallet := entity.NewWallet(input.UserID, input.Name, input.Color, input.InitialBalance)

	if err := uc.walletRepo.Create(ctx, wallet); err != nil {
		return nil, fmt.Errorf("failed to create wallet: %w", err)
	}

	// A freshly created wallet has no movements; its balance is the
	// initial balance.
	return &CreateWalletOutput{
		Wallet: toWalletOutput(wallet, wallet.InitialBalance),
	}, nil
}
