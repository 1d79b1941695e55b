package statistics

import (
	"context"

	"github.com/google/uuid"

	"github.com/household-ledger/backend/internal/application/adapter"
)

// GetMonthlyInput represents the input for the monthly breakdown.
type GetMonthlyInput struct {
	UserID    uuid.UUID
	DateRange DateRange
}

// GetMonthlyOutput maps "YYYY-MM" keys to that month's sums. Only months
// with at least one movement appear.
type GetMonthlyOutput struct {
	Months map[string]MonthlySummary
}

// GetMonthlyUseCase buckets the snapshot into calendar months.
type GetMonthlyUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewGetMonthlyUseCase creates a new GetMonthlyUseCase instance.
func NewGetMonthlyUseCase(transactionRepo adapter.TransactionRepository) *GetMonthlyUseCase {
	return &GetMonthlyUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute groups the snapshot by month.
func (uc *GetMonthlyUseCase) Execute(ctx context.Context, input GetMonthlyInput) (*GetMonthlyOutput, error) {
	transactions, err := loadTransactions(ctx, uc.transactionRepo, input.UserID, input.DateRange)
	if err != nil {
		return nil, err
	}
	return &GetMonthlyOutput{Months: GroupByMonth(transactions)}, nil
}
