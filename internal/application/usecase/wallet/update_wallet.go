// Package wallet contains wallet-related use cases.
package wallet

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/household-ledger/backend/internal/application/adapter"
	domainerror "github.com/household-ledger/backend/internal/domain/error"
)

// UpdateWalletInput represents the input for wallet update.
// Nil fields are left unchanged.
type UpdateWalletInput struct {
	WalletID       uuid.UUID
	UserID         uuid.UUID
	Name           *string
	Color          *string
	InitialBalance *decimal.Decimal
}

// UpdateWalletOutput represents the output of wallet update.
type UpdateWalletOutput struct {
	Wallet *WalletOutput
}

// UpdateWalletUseCase handles wallet update logic.
type UpdateWalletUseCase struct {
	walletRepo      adapter.WalletRepository
	transactionRepo adapter.TransactionRepository
	debtRepo        adapter.DebtRepository
}

// NewUpdateWalletUseCase creates a new UpdateWalletUseCase instance.
func NewUpdateWalletUseCase(
	walletRepo adapter.WalletRepository,
	transactionRepo adapter.TransactionRepository,
	debtRepo adapter.DebtRepository,
) *UpdateWalletUseCase {
	return &UpdateWalletUseCase{
		walletRepo:      walletRepo,
		transactionRepo: transactionRepo,
		debtRepo:        debtRepo,
	}
}

// Execute performs the wallet update.
func (uc *UpdateWalletUseCase) Execute(ctx context.Context, input UpdateWalletInput) (*UpdateWalletOutput, error) {
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
			"not authorized to modify this wallet",
			domainerror.ErrNotAuthorizedToModifyWallet,
		)
	}

	if input.Name != nil {
		if *input.Name == "" {
			return nil, domainerror.NewWalletError(
				domainerror.ErrCodeMissingWalletName,
				"wallet name is required",
				domainerror.ErrMissingWalletName,
			)
		}
		if *input.Name != wallet.Name {
			exists, err := uc.walletRepo.ExistsByName(ctx, input.UserID, *input.Name, wallet.ID)
			if err != nil {
				return nil, fmt.Errorf("failed to check wallet name: %w", err)
			}
			if exists {
				return nil, domainerror.NewWalletError(
					domainerror.ErrCodeDuplicateWallet,
					fmt.Sprintf("a wallet named %q already exists", *input.Name),
					domainerror.ErrDuplicateWalletName,
				)
			}
		}
		wallet.Name = *input.Name
	}

	if input.Color != nil {
		if *input.Color == "" {
			return nil, domainerror.NewWalletError(
				domainerror.ErrCodeMissingWalletColor,
				"wallet color is required",
				domainerror.ErrMissingWalletColor,
			)
		}
		wallet.Color = *input.Color
	}

	if input.InitialBalance != nil {
		wallet.InitialBalance = *input.InitialBalance
	}

	wallet.UpdatedAt = time.Now().UTC()

	if err := uc.walletRepo.Update(ctx, wallet); err != nil {
		return nil, fmt.Errorf("failed to update wallet: %w", err)
	}

	transactions, err := uc.transactionRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}
	debts, err := uc.debtRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load debt records: %w", err)
	}

	return &UpdateWalletOutput{
		Wallet: toWalletOutput(wallet, ComputeBalance(wallet, transactions, debts)),
	}, nil
}
