// Package debt contains debt-record and person-ledger use cases.
package debt

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/household-ledger/backend/internal/application/adapter"
	domainerror "github.com/household-ledger/backend/internal/domain/error"
)

// DeleteDebtInput represents the input for debt record deletion.
type DeleteDebtInput struct {
	RecordID uuid.UUID
	UserID   uuid.UUID
}

// DeleteDebtOutput represents the output of debt record deletion.
type DeleteDebtOutput struct {
	Success bool
}

// DeleteDebtUseCase handles single debt record deletion.
type DeleteDebtUseCase struct {
	debtRepo adapter.DebtRepository
}

// NewDeleteDebtUseCase creates a new DeleteDebtUseCase instance.
func NewDeleteDebtUseCase(debtRepo adapter.DebtRepository) *DeleteDebtUseCase {
	return &DeleteDebtUseCase{
		debtRepo: debtRepo,
	}
}

// Execute performs the debt record deletion.
func (uc *DeleteDebtUseCase) Execute(ctx context.Context, input DeleteDebtInput) (*DeleteDebtOutput, error) {
	record, err := uc.debtRepo.FindByID(ctx, input.RecordID)
	if err != nil {
		if errors.Is(err, domainerror.ErrDebtRecordNotFound) {
			return nil, domainerror.NewDebtError(
				domainerror.ErrCodeDebtRecordNotFound,
				"debt record not found",
				domainerror.ErrDebtRecordNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find debt record: %w", err)
	}

	if record.UserID != input.UserID {
		return nil, domainerror.NewDebtError(
			domainerror.ErrCodeNotAuthorizedDebt,
			"not authorized to delete this debt record",
			domainerror.ErrNotAuthorizedToModifyDebt,
		)
	}

	if err := uc.debtRepo.Delete(ctx, record.ID); err != nil {
		return nil, fmt.Errorf("failed to delete debt record: %w", err)
	}

	return &DeleteDebtOutput{Success: true}, nil
}
