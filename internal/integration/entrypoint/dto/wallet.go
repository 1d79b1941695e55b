// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/household-ledger/backend/internal/application/usecase/wallet"
)

// CreateWalletRequest represents the request body for creating a wallet.
type CreateWalletRequest struct {
	Name           string `json:"name" binding:"required,min=1,max=100"`
	Color          string `json:"color"`
	InitialBalance string `json:"initial_balance"`
}

// UpdateWalletRequest represents the request body for updating a wallet.
// Omitted fields are left unchanged.
type UpdateWalletRequest struct {
	Name           *string `json:"name"`
	Color          *string `json:"color"`
	InitialBalance *string `json:"initial_balance"`
}

// WalletResponse represents a wallet with its derived balance.
type WalletResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Color          string    `json:"color"`
	InitialBalance string    `json:"initial_balance"`
	Balance        string    `json:"balance"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// WalletListResponse represents the response for wallet listing.
type WalletListResponse struct {
	Wallets []WalletResponse `json:"wallets"`
}

// ToWalletResponse converts a use-case wallet output to a WalletResponse DTO.
func ToWalletResponse(w *wallet.WalletOutput) WalletResponse {
	return WalletResponse{
		ID:             w.ID.String(),
		Name:           w.Name,
		Color:          w.Color,
		InitialBalance: w.InitialBalance.StringFixed(2),
		Balance:        w.Balance.StringFixed(2),
		CreatedAt:      w.CreatedAt,
		UpdatedAt:      w.UpdatedAt,
	}
}

// ToWalletListResponse converts a slice of use-case wallet outputs.
func ToWalletListResponse(wallets []*wallet.WalletOutput) WalletListResponse {
	responses := make([]WalletResponse, len(wallets))
	for i, w := range wallets {
		responses[i] = ToWalletResponse(w)
	}
	return WalletListResponse{Wallets: responses}
}
