// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/household-ledger/backend/internal/application/usecase/transaction"
)

// CreateTransactionRequest represents the request body for creating a transaction.
type CreateTransactionRequest struct {
	WalletID string `json:"wallet_id" binding:"required,uuid"`
	Kind     string `json:"kind" binding:"required,oneof=expense income"`
	Amount   string `json:"amount" binding:"required"`
	Category string `json:"category" binding:"required,min=1,max=100"`
	Date     string `json:"date" binding:"required"`
	Store    string `json:"store"`
	Note     string `json:"note"`
}

// UpdateTransactionRequest represents the request body for updating a
// transaction. Omitted fields are left unchanged.
type UpdateTransactionRequest struct {
	WalletID *string `json:"wallet_id"`
	Kind     *string `json:"kind"`
	Amount   *string `json:"amount"`
	Category *string `json:"category"`
	Date     *string `json:"date"`
	Store    *string `json:"store"`
	Note     *string `json:"note"`
}

// TransactionResponse represents a transaction in API responses.
type TransactionResponse struct {
	ID         string    `json:"id"`
	WalletID   string    `json:"wallet_id"`
	Kind       string    `json:"kind"`
	Amount     string    `json:"amount"`
	Category   string    `json:"category"`
	Date       string    `json:"date"`
	Store      string    `json:"store,omitempty"`
	Note       string    `json:"note,omitempty"`
	TransferID *string   `json:"transfer_id,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// TransactionListResponse represents the response for transaction listing.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// ToTransactionResponse converts a use-case transaction output to a DTO.
func ToTransactionResponse(t *transaction.TransactionOutput) TransactionResponse {
	var transferID *string
	if t.TransferID != nil {
		id := t.TransferID.String()
		transferID = &id
	}

	return TransactionResponse{
		ID:         t.ID.String(),
		WalletID:   t.WalletID.String(),
		Kind:       string(t.Kind),
		Amount:     t.Amount.StringFixed(2),
		Category:   t.Category,
		Date:       t.Date.Format("2006-01-02"),
		Store:      t.Store,
		Note:       t.Note,
		TransferID: transferID,
		CreatedAt:  t.CreatedAt,
		UpdatedAt:  t.UpdatedAt,
	}
}

// ToTransactionListResponse converts a slice of use-case transaction outputs.
func ToTransactionListResponse(transactions []*transaction.TransactionOutput) TransactionListResponse {
	responses := make([]TransactionResponse, len(transactions))
	for i, t := range transactions {
		responses[i] = ToTransactionResponse(t)
	}
	return TransactionListResponse{Transactions: responses}
}
