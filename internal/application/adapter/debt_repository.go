// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/household-ledger/backend/internal/domain/entity"
)

// DebtRepository defines the interface for debt record persistence operations.
type DebtRepository interface {
	// Create creates a new debt record in the database.
	Create(ctx context.Context, record *entity.DebtRecord) error

	// FindByID retrieves a debt record by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.DebtRecord, error)

	// FindByUser retrieves all debt records for a given user.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.DebtRecord, error)

	// FindByPerson retrieves all of a user's debt records naming the given
	// person. The match is exact and case-sensitive.
	FindByPerson(ctx context.Context, userID uuid.UUID, personName string) ([]*entity.DebtRecord, error)

	// CountByWallet counts the debt records attached to a wallet.
	CountByWallet(ctx context.Context, walletID uuid.UUID) (int64, error)

	// Update updates an existing debt record in the database.
	Update(ctx context.Context, record *entity.DebtRecord) error

	// Delete soft-deletes a debt record from the database.
	Delete(ctx context.Context, id uuid.UUID) error

	// DeletePersonWithTransfers deletes every debt record naming the person
	// and persists the compensating transfer transactions in the same
	// database transaction. An observer never sees the records gone while
	// the transfers are missing, or vice versa.
	DeletePersonWithTransfers(
		ctx context.Context,
		userID uuid.UUID,
		personName string,
		transfers []*entity.Transaction,
	) error
}
