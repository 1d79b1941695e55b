// Package dto defines data transfer objects for API requests and responses.
package dto

// ExecuteTransferRequest represents the request body for a wallet transfer.
type ExecuteTransferRequest struct {
	FromWalletID string `json:"from_wallet_id" binding:"required,uuid"`
	ToWalletID   string `json:"to_wallet_id" binding:"required,uuid"`
	Amount       string `json:"amount" binding:"required"`
	Date         string `json:"date"`
	Note         string `json:"note"`
}

// ExecuteTransferResponse represents the created transfer pair.
type ExecuteTransferResponse struct {
	TransferID string `json:"transfer_id"`
	OutgoingID string `json:"outgoing_id"`
	IncomingID string `json:"incoming_id"`
}
