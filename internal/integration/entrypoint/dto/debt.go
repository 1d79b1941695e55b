// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/household-ledger/backend/internal/application/usecase/debt"
	"github.com/household-ledger/backend/internal/domain/valueobject"
)

// CreateDebtRecordRequest represents the request body for creating a debt record.
type CreateDebtRecordRequest struct {
	WalletID    string `json:"wallet_id" binding:"required,uuid"`
	PersonName  string `json:"person_name" binding:"required,min=1,max=100"`
	Kind        string `json:"kind" binding:"required,oneof=debt credit"`
	Amount      string `json:"amount" binding:"required"`
	Date        string `json:"date" binding:"required"`
	Time        string `json:"time"`
	Description string `json:"description"`
}

// UpdateDebtRecordRequest represents the request body for updating a debt
// record. Omitted fields are left unchanged.
type UpdateDebtRecordRequest struct {
	WalletID    *string `json:"wallet_id"`
	PersonName  *string `json:"person_name"`
	Kind        *string `json:"kind"`
	Amount      *string `json:"amount"`
	Date        *string `json:"date"`
	Time        *string `json:"time"`
	Description *string `json:"description"`
}

// ResolvePersonRequest represents the request body for settling a person.
type ResolvePersonRequest struct {
	WalletID string `json:"wallet_id" binding:"required,uuid"`
}

// DebtRecordResponse represents a debt record in API responses.
type DebtRecordResponse struct {
	ID          string    `json:"id"`
	WalletID    string    `json:"wallet_id"`
	PersonName  string    `json:"person_name"`
	Kind        string    `json:"kind"`
	Amount      string    `json:"amount"`
	Date        string    `json:"date"`
	Time        string    `json:"time,omitempty"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// DebtRecordListResponse represents the response for debt record listing.
type DebtRecordListResponse struct {
	Records []DebtRecordResponse `json:"records"`
}

// PersonSummaryResponse represents one counterparty with their net balance.
type PersonSummaryResponse struct {
	PersonName  string `json:"person_name"`
	Balance     string `json:"balance"`
	RecordCount int    `json:"record_count"`
}

// PersonListResponse represents the response for the person summary.
type PersonListResponse struct {
	People []PersonSummaryResponse `json:"people"`
}

// PlannedTransferResponse represents one automatic transfer created while
// deleting a person's history.
type PlannedTransferResponse struct {
	FromWalletID string `json:"from_wallet_id"`
	ToWalletID   string `json:"to_wallet_id"`
	Amount       string `json:"amount"`
	Description  string `json:"description"`
	Date         string `json:"date"`
	Time         string `json:"time"`
}

// DeletePersonResponse represents the outcome of deleting a person's history.
type DeletePersonResponse struct {
	DeletedRecords     int                       `json:"deleted_records"`
	AutomaticTransfers []PlannedTransferResponse `json:"automatic_transfers"`
}

// ToDebtRecordResponse converts a use-case debt record output to a DTO.
func ToDebtRecordResponse(r *debt.DebtRecordOutput) DebtRecordResponse {
	return DebtRecordResponse{
		ID:          r.ID.String(),
		WalletID:    r.WalletID.String(),
		PersonName:  r.PersonName,
		Kind:        string(r.Kind),
		Amount:      r.Amount.StringFixed(2),
		Date:        r.Date.Format("2006-01-02"),
		Time:        r.Time,
		Description: r.Description,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

// ToDebtRecordListResponse converts a slice of use-case debt record outputs.
func ToDebtRecordListResponse(records []*debt.DebtRecordOutput) DebtRecordListResponse {
	responses := make([]DebtRecordResponse, len(records))
	for i, r := range records {
		responses[i] = ToDebtRecordResponse(r)
	}
	return DebtRecordListResponse{Records: responses}
}

// ToPersonListResponse converts the person summaries.
func ToPersonListResponse(people []*debt.PersonSummary) PersonListResponse {
	responses := make([]PersonSummaryResponse, len(people))
	for i, p := range people {
		responses[i] = PersonSummaryResponse{
			PersonName:  p.PersonName,
			Balance:     p.Balance.StringFixed(2),
			RecordCount: p.RecordCount,
		}
	}
	return PersonListResponse{People: responses}
}

// ToDeletePersonResponse converts the deletion outcome.
func ToDeletePersonResponse(deleted int, transfers []valueobject.PlannedTransfer) DeletePersonResponse {
	responses := make([]PlannedTransferResponse, len(transfers))
	for i, t := range transfers {
		responses[i] = PlannedTransferResponse{
			FromWalletID: t.FromWalletID.String(),
			ToWalletID:   t.ToWalletID.String(),
			Amount:       t.Amount.StringFixed(2),
			Description:  t.Description,
			Date:         t.Date.Format("2006-01-02"),
			Time:         t.Time,
		}
	}
	return DeletePersonResponse{
		DeletedRecords:     deleted,
		AutomaticTransfers: responses,
	}
}
