// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DebtKind represents the direction of a debt record.
type DebtKind string

const (
	// DebtKindDebt means the user received money: the user now owes the
	// named person, and the amount entered the record's wallet.
	DebtKindDebt DebtKind = "debt"

	// DebtKindCredit means the user gave money away: the named person now
	// owes the user, and the amount left the record's wallet.
	DebtKindCredit DebtKind = "credit"
)

// DebtRecord represents a person-to-person loan movement tied to a wallet.
//
// Date carries only the calendar day; Time is an optional "HH:MM" string
// used for ordering a person's history. Records with no time sort as "00:00".
type DebtRecord struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	WalletID    uuid.UUID
	PersonName  string
	Kind        DebtKind
	Amount      decimal.Decimal
	Date        time.Time
	Time        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time // Soft-delete support
}

// NewDebtRecord creates a new DebtRecord entity.
func NewDebtRecord(
	userID uuid.UUID,
	walletID uuid.UUID,
	personName string,
	kind DebtKind,
	amount decimal.Decimal,
	date time.Time,
	timeOfDay string,
	description string,
) *DebtRecord {
	now := time.Now().UTC()
	return &DebtRecord{
		ID:          uuid.New(),
		UserID:      userID,
		WalletID:    walletID,
		PersonName:  personName,
		Kind:        kind,
		Amount:      amount,
		Date:        date,
		Time:        timeOfDay,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// SignedAmount returns the record's effect on its wallet: positive for a
// debt (money received into the wallet), negative for a credit (money
// given out of the wallet).
func (d *DebtRecord) SignedAmount() decimal.Decimal {
	if d.Kind == DebtKindDebt {
		return d.Amount
	}
	return d.Amount.Neg()
}
