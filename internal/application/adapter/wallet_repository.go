// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/household-ledger/backend/internal/domain/entity"
)

// WalletRepository defines the interface for wallet persistence operations.
type WalletRepository interface {
	// Create creates a new wallet. It returns
	// domainerror.ErrDuplicateWalletName when the user already owns a
	// wallet with the same name (case-sensitive comparison).
	Create(ctx context.Context, wallet *entity.Wallet) error

	// FindByID retrieves a wallet by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Wallet, error)

	// FindByUser retrieves all wallets for a given user, ordered by name.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Wallet, error)

	// ExistsByName checks whether the user owns a wallet with exactly the
	// given name, excluding the wallet identified by excludeID (pass
	// uuid.Nil to exclude none).
	ExistsByName(ctx context.Context, userID uuid.UUID, name string, excludeID uuid.UUID) (bool, error)

	// Update updates an existing wallet.
	Update(ctx context.Context, wallet *entity.Wallet) error

	// Delete soft-deletes a wallet.
	Delete(ctx context.Context, id uuid.UUID) error
}
