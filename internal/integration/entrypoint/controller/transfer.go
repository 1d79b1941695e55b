// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/household-ledger/backend/internal/application/usecase/transfer"
	domainerror "github.com/household-ledger/backend/internal/domain/error"
	"github.com/household-ledger/backend/internal/integration/entrypoint/dto"
	"github.com/household-ledger/backend/internal/integration/entrypoint/middleware"
)

// TransferController handles wallet-to-wallet transfer endpoints.
type TransferController struct {
	executeUseCase *transfer.ExecuteTransferUseCase
}

// NewTransferController creates a new transfer controller instance.
func NewTransferController(executeUseCase *transfer.ExecuteTransferUseCase) *TransferController {
	return &TransferController{
		executeUseCase: executeUseCase,
	}
}

// Execute handles POST /transfers requests.
func (c *TransferController) Execute(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.ExecuteTransferRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(ctx)
		return
	}

	fromWalletID, err := uuid.Parse(req.FromWalletID)
	if err != nil {
		respondInvalidID(ctx)
		return
	}
	toWalletID, err := uuid.Parse(req.ToWalletID)
	if err != nil {
		respondInvalidID(ctx)
		return
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid amount",
			Code:  string(domainerror.ErrCodeInvalidTransferAmount),
		})
		return
	}

	var date time.Time
	if req.Date != "" {
		date, err = time.Parse(dateLayout, req.Date)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid date, expected YYYY-MM-DD",
			})
			return
		}
	}

	output, err := c.executeUseCase.Execute(ctx.Request.Context(), transfer.ExecuteTransferInput{
		UserID:       userID,
		FromWalletID: fromWalletID,
		ToWalletID:   toWalletID,
		Amount:       amount,
		Date:         date,
		Note:         req.Note,
	})
	if err != nil {
		c.handleTransferError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ExecuteTransferResponse{
		TransferID: output.TransferID.String(),
		OutgoingID: output.OutgoingID.String(),
		IncomingID: output.IncomingID.String(),
	})
}

// handleTransferError handles transfer errors and returns appropriate HTTP responses.
func (c *TransferController) handleTransferError(ctx *gin.Context, err error) {
	var transferErr *domainerror.TransferError
	if errors.As(err, &transferErr) {
		ctx.JSON(statusCodeForTransferError(transferErr.Code), dto.ErrorResponse{
			Error: transferErr.Message,
			Code:  string(transferErr.Code),
		})
		return
	}

	var walletErr *domainerror.WalletError
	if errors.As(err, &walletErr) {
		ctx.JSON(statusCodeForWalletError(walletErr.Code), dto.ErrorResponse{
			Error: walletErr.Message,
			Code:  string(walletErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// statusCodeForTransferError maps transfer error codes to HTTP status codes.
func statusCodeForTransferError(code domainerror.TransferErrorCode) int {
	switch code {
	case domainerror.ErrCodeSelfTransfer,
		domainerror.ErrCodeInvalidTransferAmount:
		return http.StatusBadRequest
	case domainerror.ErrCodeTransferWalletNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
