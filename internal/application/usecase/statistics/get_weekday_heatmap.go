package statistics

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/household-ledger/backend/internal/application/adapter"
)

// GetWeekdayHeatmapInput represents the input for the weekday heatmap.
type GetWeekdayHeatmapInput struct {
	UserID    uuid.UUID
	DateRange DateRange
}

// GetWeekdayHeatmapOutput holds the mean expense per weekday, Monday first.
type GetWeekdayHeatmapOutput struct {
	Averages [7]decimal.Decimal
}

// GetWeekdayHeatmapUseCase computes the average expense amount per weekday.
type GetWeekdayHeatmapUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewGetWeekdayHeatmapUseCase creates a new GetWeekdayHeatmapUseCase instance.
func NewGetWeekdayHeatmapUseCase(transactionRepo adapter.TransactionRepository) *GetWeekdayHeatmapUseCase {
	return &GetWeekdayHeatmapUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute averages expenses per weekday over the range.
func (uc *GetWeekdayHeatmapUseCase) Execute(ctx context.Context, input GetWeekdayHeatmapInput) (*GetWeekdayHeatmapOutput, error) {
	transactions, err := loadTransactions(ctx, uc.transactionRepo, input.UserID, input.DateRange)
	if err != nil {
		return nil, err
	}
	return &GetWeekdayHeatmapOutput{Averages: WeekdayAverages(transactions)}, nil
}
