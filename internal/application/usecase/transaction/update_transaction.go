// Package transaction contains transaction-related use cases.
package transaction

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

// UpdateTransactionInput represents the input for updating a transaction.
// Nil fields are left unchanged.
type UpdateTransactionInput struct {
	TransactionID uuid.UUID
	UserID        uuid.UUID
	WalletID      *uuid.UUID
	Kind          *entity.TransactionKind
	Amount        *decimal.Decimal
	Category      *string
	Date          *time.Time
	Store         *string
	Note          *string
}

// UpdateTransactionOutput represents the output of updating a transaction.
type UpdateTransactionOutput struct {
	Transaction *TransactionOutput
}

// UpdateTransactionUseCase handles editing an existing transaction.
// Transfer halves cannot be edited; they only exist as a balanced pair.
type UpdateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	walletRepo      adapter.WalletRepository
}

// NewUpdateTransactionUseCase creates a new UpdateTransactionUseCase instance.
func NewUpdateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	walletRepo adapter.WalletRepository,
) *UpdateTransactionUseCase {
	return &UpdateTransactionUseCase{
		transactionRepo: transactionRepo,
		walletRepo:      walletRepo,
	}
}

// Execute applies the changed fields, re-validates the result and persists it.
func (uc *UpdateTransactionUseCase) Execute(ctx context.Context, input UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	transaction, err := uc.findOwned(ctx, input.TransactionID, input.UserID)
	if err != nil {
		return nil, err
	}

	if transaction.IsTransfer() {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeReservedCategory,
			"transfer halves cannot be edited",
			domainerror.ErrReservedCategory,
		)
	}

	if input.WalletID != nil {
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
		transaction.WalletID = *input.WalletID
	}

	if input.Kind != nil {
		transaction.Kind = *input.Kind
	}
	if input.Amount != nil {
		transaction.Amount = *input.Amount
	}
	if input.Category != nil {
		transaction.Category = *input.Category
	}
	if input.Date != nil {
		transaction.Date = *input.Date
	}
	if input.Store != nil {
		transaction.Store = *input.Store
	}
	if input.Note != nil {
		transaction.Note = *input.Note
	}

	if err := validateFields(transaction.Kind, transaction.Amount, transaction.Category, transaction.Date); err != nil {
		return nil, err
	}

	transaction.UpdatedAt = time.Now().UTC()
	if err := uc.transactionRepo.Update(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	return &UpdateTransactionOutput{Transaction: toTransactionOutput(transaction)}, nil
}

func (uc *UpdateTransactionUseCase) findOwned(ctx context.Context, id, userID uuid.UUID) (*entity.Transaction, error) {
	transaction, err := uc.transactionRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerror.ErrTransactionNotFound) {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeTransactionNotFound,
				"transaction not found",
				domainerror.ErrTransactionNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find transaction: %w", err)
	}
	if transaction.UserID != userID {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeNotAuthorizedTransaction,
			"transaction does not belong to user",
			domainerror.ErrNotAuthorizedToModifyTransaction,
		)
	}
	return transaction, nil
}
