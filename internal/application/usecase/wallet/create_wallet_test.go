// Package wallet contains wallet-related use cases.
package wallet

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/household-ledger/backend/internal/application/adapter"
	"github.com/household-ledger/backend/internal/domain/entity"
	domainerror "github.com/household-ledger/backend/internal/domain/error"
)

type walletRepoStub struct {
	adapter.WalletRepository
	created []*entity.Wallet
	names   map[string]bool
}

func (s *walletRepoStub) ExistsByName(_ context.Context, _ uuid.UUID, name string, _ uuid.UUID) (bool, error) {
	return s.names[name], nil
}

func (s *walletRepoStub) Create(_ context.Context, w *entity.Wallet) error {
	s.created = append(s.created, w)
	return nil
}

func TestCreateWallet(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name      string
		input     CreateWalletInput
		existing  map[string]bool
		wantErr   error
		wantCode  domainerror.WalletErrorCode
		wantCount int
	}{
		{
			name: "creates the wallet",
			input: CreateWalletInput{
				UserID:         userID,
				Name:           "Contanti",
				Color:          "#22C55E",
				InitialBalance: decimal.NewFromInt(100),
			},
			wantCount: 1,
		},
		{
			name: "rejects an empty name",
			input: CreateWalletInput{
				UserID: userID,
				Color:  "#22C55E",
			},
			wantErr:  domainerror.ErrMissingWalletName,
			wantCode: domainerror.ErrCodeMissingWalletName,
		},
		{
			name: "rejects an empty color",
			input: CreateWalletInput{
				UserID: userID,
				Name:   "Contanti",
			},
			wantErr:  domainerror.ErrMissingWalletColor,
			wantCode: domainerror.ErrCodeMissingWalletColor,
		},
		{
			name: "rejects a duplicate name",
			input: CreateWalletInput{
				UserID: userID,
				Name:   "Contanti",
				Color:  "#22C55E",
			},
			existing: map[string]bool{"Contanti": true},
			wantErr:  domainerror.ErrDuplicateWalletName,
			wantCode: domainerror.ErrCodeDuplicateWallet,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &walletRepoStub{names: tt.existing}
			uc := NewCreateWalletUseCase(repo)

			output, err := uc.Execute(context.Background(), tt.input)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				var walletErr *domainerror.WalletError
				if !errors.As(err, &walletErr) || walletErr.Code != tt.wantCode {
					t.Fatalf("expected code %s, got %v", tt.wantCode, err)
				}
				if len(repo.created) != 0 {
					t.Fatalf("expected no wallet to be created, got %d", len(repo.created))
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(repo.created) != tt.wantCount {
				t.Fatalf("expected %d created wallets, got %d", tt.wantCount, len(repo.created))
			}
			if output.Wallet.Color != tt.input.Color {
				t.Errorf("expected color %q, got %q", tt.input.Color, output.Wallet.Color)
			}
			if !output.Wallet.Balance.Equal(tt.input.InitialBalance) {
				t.Errorf("expected balance %s, got %s", tt.input.InitialBalance, output.Wallet.Balance)
			}
		})
	}
}
