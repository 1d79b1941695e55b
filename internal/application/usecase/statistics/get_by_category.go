package statistics

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/household-ledger/backend/internal/application/adapter"
)

// GetByCategoryInput represents the input for the per-category breakdown.
type GetByCategoryInput struct {
	UserID    uuid.UUID
	DateRange DateRange
}

// GetByCategoryOutput represents the output of the per-category breakdown.
type GetByCategoryOutput struct {
	Categories map[string]decimal.Decimal
}

// GetByCategoryUseCase sums expenses per category.
type GetByCategoryUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewGetByCategoryUseCase creates a new GetByCategoryUseCase instance.
func NewGetByCategoryUseCase(transactionRepo adapter.TransactionRepository) *GetByCategoryUseCase {
	return &GetByCategoryUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute groups the snapshot by category.
func (uc *GetByCategoryUseCase) Execute(ctx context.Context, input GetByCategoryInput) (*GetByCategoryOutput, error) {
	transactions, err := loadTransactions(ctx, uc.transactionRepo, input.UserID, input.DateRange)
	if err != nil {
		return nil, err
	}
	return &GetByCategoryOutput{Categories: GroupByCategory(transactions)}, nil
}
