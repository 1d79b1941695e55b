package statistics

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/household-ledger/backend/internal/application/adapter"
	"github.com/household-ledger/backend/internal/domain/entity"
	domainerror "github.com/household-ledger/backend/internal/domain/error"
)

// DateRange bounds a statistics query. Both ends are inclusive; a zero range
// means the whole history.
type DateRange struct {
	StartDate *time.Time
	EndDate   *time.Time
}

func (r DateRange) validate() error {
	if r.StartDate == nil && r.EndDate == nil {
		return nil
	}
	if r.StartDate == nil {
		return domainerror.NewStatisticsError(
			domainerror.ErrCodeMissingStartDate,
			"start date is required when end date is set",
			domainerror.ErrMissingStartDate,
		)
	}
	if r.EndDate == nil {
		return domainerror.NewStatisticsError(
			domainerror.ErrCodeMissingEndDate,
			"end date is required when start date is set",
			domainerror.ErrMissingEndDate,
		)
	}
	if r.EndDate.Before(*r.StartDate) {
		return domainerror.NewStatisticsError(
			domainerror.ErrCodeInvalidDateRange,
			"end date must not precede start date",
			domainerror.ErrInvalidDateRange,
		)
	}
	return nil
}

// loadTransactions fetches the user's transactions bounded by the range.
func loadTransactions(
	ctx context.Context,
	repo adapter.TransactionRepository,
	userID uuid.UUID,
	dateRange DateRange,
) ([]*entity.Transaction, error) {
	if err := dateRange.validate(); err != nil {
		return nil, err
	}

	transactions, err := repo.FindByFilter(ctx, adapter.TransactionFilter{
		UserID:    userID,
		StartDate: dateRange.StartDate,
		EndDate:   dateRange.EndDate,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}
	return transactions, nil
}
