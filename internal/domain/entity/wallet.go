// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Wallet represents a named money container (cash, bank account, PayPal, ...).
//
// The wallet stores only its initial balance. The current balance is always
// derived from the initial balance plus every movement that touches the
// wallet; no cached balance field exists that could go stale.
type Wallet struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	Name           string
	Color          string
	InitialBalance decimal.Decimal
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      *time.Time // Soft-delete support
}

// NewWallet creates a new Wallet entity.
func NewWallet(userID uuid.UUID, name, color string, initialBalance decimal.Decimal) *Wallet {
	now := time.Now().UTC()
	return &Wallet{
		ID:             uuid.New(),
		UserID:         userID,
		Name:           name,
		Color:          color,
		InitialBalance: initialBalance,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}
