package statistics

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/household-ledger/backend/internal/application/adapter"
)

// GetByStoreInput represents the input for the per-store breakdown.
type GetByStoreInput struct {
	UserID    uuid.UUID
	DateRange DateRange
}

// GetByStoreOutput represents the output of the per-store breakdown.
type GetByStoreOutput struct {
	Stores map[string]decimal.Decimal
}

// GetByStoreUseCase sums expenses per store, bucketing storeless
// transactions under the StoreNone label.
type GetByStoreUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewGetByStoreUseCase creates a new GetByStoreUseCase instance.
func NewGetByStoreUseCase(transactionRepo adapter.TransactionRepository) *GetByStoreUseCase {
	return &GetByStoreUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute groups the snapshot by store.
func (uc *GetByStoreUseCase) Execute(ctx context.Context, input GetByStoreInput) (*GetByStoreOutput, error) {
	transactions, err := loadTransactions(ctx, uc.transactionRepo, input.UserID, input.DateRange)
	if err != nil {
		return nil, err
	}
	return &GetByStoreOutput{Stores: GroupByStore(transactions)}, nil
}
