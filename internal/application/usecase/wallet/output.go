// Package wallet contains wallet-related use cases.
package wallet

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/household-ledger/backend/internal/domain/entity"
)

// WalletOutput represents a wallet returned by the use cases, together with
// its derived balance.
type WalletOutput struct {
	ID             uuid.UUID
	Name           string
	Color          string
	InitialBalance decimal.Decimal
	Balance        decimal.Decimal
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// toWalletOutput builds a WalletOutput from an entity and its derived balance.
func toWalletOutput(w *entity.Wallet, balance decimal.Decimal) *WalletOutput {
	return &WalletOutput{
		ID:             w.ID,
		Name:           w.Name,
		Color:          w.Color,
		InitialBalance: w.InitialBalance,
		Balance:        balance,
		CreatedAt:      w.CreatedAt,
		UpdatedAt:      w.UpdatedAt,
	}
}
