// Package transfer contains the wallet-to-wallet transfer use case.
package transfer

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/household-ledger/backend/internal/application/adapter"
	"github.com/household-ledger/backend/internal/domain/entity"
	domainerror "github.com/household-ledger/backend/internal/domain/error"
)

type walletRepoStub struct {
	adapter.WalletRepository
	wallets map[uuid.UUID]*entity.Wallet
}

func (s *walletRepoStub) FindByID(_ context.Context, id uuid.UUID) (*entity.Wallet, error) {
	w, ok := s.wallets[id]
	if !ok {
		return nil, domainerror.ErrWalletNotFound
	}
	return w, nil
}

type transactionRepoStub struct {
	adapter.TransactionRepository
	pairs [][2]*entity.Transaction
}

func (s *transactionRepoStub) CreatePair(_ context.Context, outgoing, incoming *entity.Transaction) error {
	s.pairs = append(s.pairs, [2]*entity.Transaction{outgoing, incoming})
	return nil
}

func newTestWallet(userID uuid.UUID) *entity.Wallet {
	w := entity.NewWallet(userID, "Conto", "#6366F1", decimal.Zero)
	return w
}

func TestExecuteTransfer(t *testing.T) {
	userID := uuid.New()
	from := newTestWallet(userID)
	to := newTestWallet(userID)
	other := newTestWallet(uuid.New())

	newUseCase := func() (*ExecuteTransferUseCase, *transactionRepoStub) {
		txRepo := &transactionRepoStub{}
		walletRepo := &walletRepoStub{wallets: map[uuid.UUID]*entity.Wallet{
			from.ID:  from,
			to.ID:    to,
			other.ID: other,
		}}
		return NewExecuteTransferUseCase(walletRepo, txRepo), txRepo
	}

	t.Run("creates linked expense and income pair", func(t *testing.T) {
		uc, txRepo := newUseCase()
		date := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)

		output, err := uc.Execute(context.Background(), ExecuteTransferInput{
			UserID:       userID,
			FromWalletID: from.ID,
			ToWalletID:   to.ID,
			Amount:       decimal.RequireFromString("25.50"),
			Date:         date,
			Note:         "giroconto",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(txRepo.pairs) != 1 {
			t.Fatalf("expected 1 persisted pair, got %d", len(txRepo.pairs))
		}

		outgoing, incoming := txRepo.pairs[0][0], txRepo.pairs[0][1]
		if outgoing.Kind != entity.TransactionKindExpense || outgoing.WalletID != from.ID {
			t.Errorf("unexpected outgoing half: %s on %s", outgoing.Kind, outgoing.WalletID)
		}
		if incoming.Kind != entity.TransactionKindIncome || incoming.WalletID != to.ID {
			t.Errorf("unexpected incoming half: %s on %s", incoming.Kind, incoming.WalletID)
		}
		if outgoing.Category != entity.CategoryTransfer || incoming.Category != entity.CategoryTransfer {
			t.Error("expected both halves in the transfer category")
		}
		if outgoing.TransferID == nil || incoming.TransferID == nil || *outgoing.TransferID != *incoming.TransferID {
			t.Error("expected both halves to share a transfer ID")
		}
		if output.TransferID != *outgoing.TransferID {
			t.Error("expected output transfer ID to match the persisted pair")
		}
	})

	t.Run("rejects a self transfer", func(t *testing.T) {
		uc, txRepo := newUseCase()

		_, err := uc.Execute(context.Background(), ExecuteTransferInput{
			UserID:       userID,
			FromWalletID: from.ID,
			ToWalletID:   from.ID,
			Amount:       decimal.RequireFromString("10"),
		})
		if !errors.Is(err, domainerror.ErrSelfTransfer) {
			t.Errorf("expected ErrSelfTransfer, got %v", err)
		}
		if len(txRepo.pairs) != 0 {
			t.Error("expected nothing persisted")
		}
	})

	t.Run("rejects a non-positive amount", func(t *testing.T) {
		uc, _ := newUseCase()

		for _, amount := range []string{"0", "-5"} {
			_, err := uc.Execute(context.Background(), ExecuteTransferInput{
				UserID:       userID,
				FromWalletID: from.ID,
				ToWalletID:   to.ID,
				Amount:       decimal.RequireFromString(amount),
			})
			if !errors.Is(err, domainerror.ErrInvalidTransferAmount) {
				t.Errorf("amount %s: expected ErrInvalidTransferAmount, got %v", amount, err)
			}
		}
	})

	t.Run("rejects an unknown wallet", func(t *testing.T) {
		uc, _ := newUseCase()

		_, err := uc.Execute(context.Background(), ExecuteTransferInput{
			UserID:       userID,
			FromWalletID: from.ID,
			ToWalletID:   uuid.New(),
			Amount:       decimal.RequireFromString("10"),
		})
		if !errors.Is(err, domainerror.ErrTransferWalletNotFound) {
			t.Errorf("expected ErrTransferWalletNotFound, got %v", err)
		}
	})

	t.Run("rejects another user's wallet", func(t *testing.T) {
		uc, _ := newUseCase()

		_, err := uc.Execute(context.Background(), ExecuteTransferInput{
			UserID:       userID,
			FromWalletID: from.ID,
			ToWalletID:   other.ID,
			Amount:       decimal.RequireFromString("10"),
		})
		if !errors.Is(err, domainerror.ErrNotAuthorizedToModifyWallet) {
			t.Errorf("expected ErrNotAuthorizedToModifyWallet, got %v", err)
		}
	})
}
