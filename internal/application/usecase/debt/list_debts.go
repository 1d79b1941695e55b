// Package debt contains debt-record and person-ledger use cases.
package debt

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/household-ledger/backend/internal/application/adapter"
)

// ListDebtsInput represents the input for listing debt records.
// An empty PersonName lists every record for the user.
type ListDebtsInput struct {
	UserID     uuid.UUID
	PersonName string
}

// ListDebtsOutput represents the output of listing debt records.
type ListDebtsOutput struct {
	Records []*DebtRecordOutput
}

// ListDebtsUseCase handles listing debt records, most recent first.
type ListDebtsUseCase struct {
	debtRepo adapter.DebtRepository
}

// NewListDebtsUseCase creates a new ListDebtsUseCase instance.
func NewListDebtsUseCase(debtRepo adapter.DebtRepository) *ListDebtsUseCase {
	return &ListDebtsUseCase{
		debtRepo: debtRepo,
	}
}

// Execute lists the debt records. When a person is named, the records are
// ordered by (date, time) descending, most recent activity first.
func (uc *ListDebtsUseCase) Execute(ctx context.Context, input ListDebtsInput) (*ListDebtsOutput, error) {
	records, err := uc.debtRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list debt records: %w", err)
	}

	if input.PersonName != "" {
		records = PersonRecords(records, input.PersonName)
	}

	return &ListDebtsOutput{Records: toDebtRecordOutputs(records)}, nil
}
