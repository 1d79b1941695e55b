// Package transaction contains transaction-related use cases.
package transaction

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/household-ledger/backend/internal/domain/entity"
)

// TransactionOutput is the use-case view of a transaction.
type TransactionOutput struct {
	ID         uuid.UUID
	WalletID   uuid.UUID
	Kind       entity.TransactionKind
	Amount     decimal.Decimal
	Category   string
	Date       time.Time
	Store      string
	Note       string
	TransferID *uuid.UUID
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func toTransactionOutput(t *entity.Transaction) *TransactionOutput {
	return &TransactionOutput{
		ID:         t.ID,
		WalletID:   t.WalletID,
		Kind:       t.Kind,
		Amount:     t.Amount,
		Category:   t.Category,
		Date:       t.Date,
		Store:      t.Store,
		Note:       t.Note,
		TransferID: t.TransferID,
		CreatedAt:  t.CreatedAt,
		UpdatedAt:  t.UpdatedAt,
	}
}

func toTransactionOutputs(transactions []*entity.Transaction) []*TransactionOutput {
	outputs := make([]*TransactionOutput, len(transactions))
	for i, t := range transactions {
		outputs[i] = toTransactionOutput(t)
	}
	return outputs
}
