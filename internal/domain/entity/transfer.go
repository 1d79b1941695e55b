// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// NewTransferPair materializes an inter-wallet transfer as its two ledger
// halves: an expense on the source wallet and an income on the destination
// wallet. Both carry the transfer category, the same amount, the same date
// and a shared transfer ID.
func NewTransferPair(
	userID uuid.UUID,
	fromWalletID uuid.UUID,
	toWalletID uuid.UUID,
	amount decimal.Decimal,
	date time.Time,
	note string,
) (outgoing, incoming *Transaction) {
	transferID := uuid.New()

	outgoing = NewTransaction(userID, fromWalletID, TransactionKindExpense, amount, CategoryTransfer, date, "", note)
	incoming = NewTransaction(userID, toWalletID, TransactionKindIncome, amount, CategoryTransfer, date, "", note)

	outgoing.TransferID = &transferID
	incoming.TransferID = &transferID

	// The two halves must be indistinguishable in time.
	incoming.CreatedAt = outgoing.CreatedAt
	incoming.UpdatedAt = outgoing.UpdatedAt

	return outgoing, incoming
}
