// Package debt contains debt-record and person-ledger use cases.
package debt

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/household-ledger/backend/internal/domain/entity"
)

// DebtRecordOutput represents a debt record returned by the use cases.
type DebtRecordOutput struct {
	ID          uuid.UUID
	WalletID    uuid.UUID
	PersonName  string
	Kind        entity.DebtKind
	Amount      decimal.Decimal
	Date        time.Time
	Time        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// toDebtRecordOutput builds a DebtRecordOutput from an entity.
func toDebtRecordOutput(r *entity.DebtRecord) *DebtRecordOutput {
	return &DebtRecordOutput{
		ID:          r.ID,
		WalletID:    r.WalletID,
		PersonName:  r.PersonName,
		Kind:        r.Kind,
		Amount:      r.Amount,
		Date:        r.Date,
		Time:        r.Time,
		Description: r.Description,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

// toDebtRecordOutputs converts a slice of entities.
func toDebtRecordOutputs(records []*entity.DebtRecord) []*DebtRecordOutput {
	outputs := make([]*DebtRecordOutput, len(records))
	for i, r := range records {
		outputs[i] = toDebtRecordOutput(r)
	}
	return outputs
}
