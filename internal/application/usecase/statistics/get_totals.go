package statistics

import (
	"context"

	"github.com/google/uuid"

	"github.com/household-ledger/backend/internal/application/adapter"
)

// GetTotalsInput represents the input for the overall totals query.
type GetTotalsInput struct {
	UserID    uuid.UUID
	DateRange DateRange
}

// GetTotalsOutput represents the output of the overall totals query.
type GetTotalsOutput struct {
	Totals Totals
}

// GetTotalsUseCase computes overall expense/income totals and the balance.
type GetTotalsUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewGetTotalsUseCase creates a new GetTotalsUseCase instance.
func NewGetTotalsUseCase(transactionRepo adapter.TransactionRepository) *GetTotalsUseCase {
	return &GetTotalsUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute sums the snapshot within the range.
func (uc *GetTotalsUseCase) Execute(ctx context.Context, input GetTotalsInput) (*GetTotalsOutput, error) {
	transactions, err := loadTransactions(ctx, uc.transactionRepo, input.UserID, input.DateRange)
	if err != nil {
		return nil, err
	}
	return &GetTotalsOutput{Totals: ComputeTotals(transactions)}, nil
}
