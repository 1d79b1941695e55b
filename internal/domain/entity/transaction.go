// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionKind represents the kind of transaction (expense or income).
// The kind is decided at construction time and never inferred later.
type TransactionKind string

const (
	TransactionKindExpense TransactionKind = "expense"
	TransactionKindIncome  TransactionKind = "income"
)

// CategoryTransfer is the reserved category marking the two halves of an
// inter-wallet transfer. Transactions in this category are excluded from
// category/store statistics and from user-facing expense/income totals,
// otherwise every transfer would be double counted.
const CategoryTransfer = "Trasferimento"

// Transaction represents a single money movement on a wallet.
// Amount is strictly positive for both kinds; the kind carries the sign.
type Transaction struct {
	ID       uuid.UUID
	UserID   uuid.UUID
	WalletID uuid.UUID
	Kind     TransactionKind
	Amount   decimal.Decimal
	Category string
	Date     time.Time
	Store    string
	Note     string

	// TransferID links the expense and income halves of a transfer.
	// Nil for ordinary transactions.
	TransferID *uuid.UUID

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time // Soft-delete support
}

// NewTransaction creates a new Transaction entity.
func NewTransaction(
	userID uuid.UUID,
	walletID uuid.UUID,
	kind TransactionKind,
	amount decimal.Decimal,
	category string,
	date time.Time,
	store string,
	note string,
) *Transaction {
	now := time.Now().UTC()
	return &Transaction{
		ID:        uuid.New(),
		UserID:    userID,
		WalletID:  walletID,
		Kind:      kind,
		Amount:    amount,
		Category:  category,
		Date:      date,
		Store:     store,
		Note:      note,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// IsTransfer reports whether the transaction is one half of an
// inter-wallet transfer.
func (t *Transaction) IsTransfer() bool {
	return t.Category == CategoryTransfer
}
