// Package transfer contains the wallet-to-wallet transfer use case.
package transfer

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

// ExecuteTransferInput represents the input for moving money between wallets.
type ExecuteTransferInput struct {
	UserID       uuid.UUID
	FromWalletID uuid.UUID
	ToWalletID   uuid.UUID
	Amount       decimal.Decimal
	Date         time.Time
	Note         string
}

// ExecuteTransferOutput represents the two linked transactions of a transfer.
type ExecuteTransferOutput struct {
	TransferID uuid.UUID
	OutgoingID uuid.UUID
	IncomingID uuid.UUID
}

// ExecuteTransferUseCase records a transfer as an expense on the source
// wallet and an income on the destination wallet, linked by a shared
// transfer ID so the pair can never be mistaken for real spending.
type ExecuteTransferUseCase struct {
	walletRepo      adapter.WalletRepository
	transactionRepo adapter.TransactionRepository
}

// NewExecuteTransferUseCase creates a new ExecuteTransferUseCase instance.
func NewExecuteTransferUseCase(
	walletRepo adapter.WalletRepository,
	transactionRepo adapter.TransactionRepository,
) *ExecuteTransferUseCase {
	return &ExecuteTransferUseCase{
		walletRepo:      walletRepo,
		transactionRepo: transactionRepo,
	}
}

// Execute validates the transfer and persists both halves atomically.
func (uc *ExecuteTransferUseCase) Execute(ctx context.Context, input ExecuteTransferInput) (*ExecuteTransferOutput, error) {
	if input.FromWalletID == input.ToWalletID {
		return nil, domainerror.NewTransferError(
			domainerror.ErrCodeSelfTransfer,
			"source and destination wallet must differ",
			domainerror.ErrSelfTransfer,
		)
	}

	if !input.Amount.IsPositive() {
		return nil, domainerror.NewTransferError(
			domainerror.ErrCodeInvalidTransferAmount,
			"transfer amount must be positive",
			domainerror.ErrInvalidTransferAmount,
		)
	}

	if err := uc.checkWallet(ctx, input.UserID, input.FromWalletID); err != nil {
		return nil, err
	}
	if err := uc.checkWallet(ctx, input.UserID, input.ToWalletID); err != nil {
		return nil, err
	}

	date := input.Date
	if date.IsZero() {
		date = time.Now()
	}

	outgoing, incoming := entity.NewTransferPair(
		input.UserID, input.FromWalletID, input.ToWalletID, input.Amount, date, input.Note,
	)

	if err := uc.transactionRepo.CreatePair(ctx, outgoing, incoming); err != nil {
		return nil, fmt.Errorf("failed to create transfer pair: %w", err)
	}

	return &ExecuteTransferOutput{
		TransferID: *outgoing.TransferID,
		OutgoingID: outgoing.ID,
		IncomingID: incoming.ID,
	}, nil
}

func (uc *ExecuteTransferUseCase) checkWallet(ctx context.Context, userID, walletID uuid.UUID) error {
	wallet, err := uc.walletRepo.FindByID(ctx, walletID)
	if err != nil {
		if errors.Is(err, domainerror.ErrWalletNotFound) {
			return domainerror.NewTransferError(
				domainerror.ErrCodeTransferWalletNotFound,
				"transfer wallet not found",
				domainerror.ErrTransferWalletNotFound,
			)
		}
		return fmt.Errorf("failed to find wallet: %w", err)
	}
	if wallet.UserID != userID {
		return domainerror.NewWalletError(
			domainerror.ErrCodeNotAuthorizedWallet,
			"wallet does not belong to user",
			domainerror.ErrNotAuthorizedToModifyWallet,
		)
	}
	return nil
}
