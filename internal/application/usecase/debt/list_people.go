// Package debt contains debt-record and person-ledger use cases.
package debt

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/household-ledger/backend/internal/application/adapter"
)

// ListPeopleInput represents the input for the person summary.
type ListPeopleInput struct {
	UserID uuid.UUID
}

// PersonSummary is one counterparty with their derived net position.
type PersonSummary struct {
	PersonName  string
	Balance     decimal.Decimal
	RecordCount int
}

// ListPeopleOutput represents the output of the person summary.
type ListPeopleOutput struct {
	People []*PersonSummary
}

// ListPeopleUseCase derives every counterparty's net balance from the
// debt snapshot.
type ListPeopleUseCase struct {
	debtRepo adapter.DebtRepository
}

// NewListPeopleUseCase creates a new ListPeopleUseCase instance.
func NewListPeopleUseCase(debtRepo adapter.DebtRepository) *ListPeopleUseCase {
	return &ListPeopleUseCase{
		debtRepo: debtRepo,
	}
}

// Execute lists every person named in the user's debt records with their
// net balance: positive means the person owes the user, negative means the
// user owes the person.
func (uc *ListPeopleUseCase) Execute(ctx context.Context, input ListPeopleInput) (*ListPeopleOutput, error) {
	records, err := uc.debtRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load debt records: %w", err)
	}

	names := PersonNames(records)
	people := make([]*PersonSummary, len(names))
	for i, name := range names {
		people[i] = &PersonSummary{
			PersonName:  name,
			Balance:     PersonBalance(records, name),
			RecordCount: len(PersonRecords(records, name)),
		}
	}

	return &ListPeopleOutput{People: people}, nil
}
