// Package debt contains debt-record and person-ledger use cases.
package debt

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/household-ledger/backend/internal/application/adapter"
	"github.com/household-ledger/backend/internal/domain/entity"
	"github.com/household-ledger/backend/internal/domain/valueobject"
)

// DeletePersonInput represents the input for deleting a person's history.
type DeletePersonInput struct {
	UserID     uuid.UUID
	PersonName string
}

// DeletePersonOutput represents the output of deleting a person's history.
type DeletePersonOutput struct {
	DeletedRecords     int
	AutomaticTransfers []valueobject.PlannedTransfer
}

// DeletePersonUseCase deletes a person's entire debt history while keeping
// every wallet's total balance intact. The compensating transfers and the
// record deletion are committed in one database transaction; there is no
// window in which a wallet appears unbalanced.
type DeletePersonUseCase struct {
	debtRepo adapter.DebtRepository
}

// NewDeletePersonUseCase creates a new DeletePersonUseCase instance.
func NewDeletePersonUseCase(debtRepo adapter.DebtRepository) *DeletePersonUseCase {
	return &DeletePersonUseCase{
		debtRepo: debtRepo,
	}
}

// Execute plans the automatic transfers for the person's wallet impacts,
// materializes them as linked transaction pairs and removes the person's
// records atomically.
func (uc *DeletePersonUseCase) Execute(ctx context.Context, input DeletePersonInput) (*DeletePersonOutput, error) {
	records, err := uc.debtRepo.FindByPerson(ctx, input.UserID, input.PersonName)
	if err != nil {
		return nil, fmt.Errorf("failed to load debt records: %w", err)
	}

	if len(records) == 0 {
		// Nothing to delete; the snapshot is left untouched.
		return &DeletePersonOutput{}, nil
	}

	planned := PlanTransfers(records, input.PersonName, time.Now())

	transactions := make([]*entity.Transaction, 0, len(planned)*2)
	for _, p := range planned {
		outgoing, incoming := entity.NewTransferPair(
			input.UserID, p.FromWalletID, p.ToWalletID, p.Amount, p.Date, p.Description,
		)
		transactions = append(transactions, outgoing, incoming)
	}

	if err := uc.debtRepo.DeletePersonWithTransfers(ctx, input.UserID, input.PersonName, transactions); err != nil {
		return nil, fmt.Errorf("failed to delete person history: %w", err)
	}

	slog.Info("Deleted person history",
		"person", input.PersonName,
		"deletedRecords", len(records),
		"automaticTransfers", len(planned),
	)

	return &DeletePersonOutput{
		DeletedRecords:     len(records),
		AutomaticTransfers: planned,
	}, nil
}
