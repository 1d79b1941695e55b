// Package valueobject defines immutable value objects shared across use cases.
package valueobject

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// WalletImpact is the net effect a person's debt history had on one wallet:
// sum of debt amounts minus sum of credit amounts. A positive impact means
// the wallet holds money that arrived through the person's records.
type WalletImpact struct {
	WalletID uuid.UUID
	Impact   decimal.Decimal
}

// PlannedTransfer is one wallet-to-wallet transfer instruction produced by
// the reconciliation engine. It is not persisted as its own entity; the
// caller materializes it as a linked expense/income pair.
type PlannedTransfer struct {
	FromWalletID uuid.UUID
	ToWalletID   uuid.UUID
	Amount       decimal.Decimal
	Description  string
	Date         time.Time
	Time         string
}
