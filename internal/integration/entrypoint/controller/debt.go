// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/household-ledger/backend/internal/application/usecase/debt"
	"github.com/household-ledger/backend/internal/domain/entity"
	domainerror "github.com/household-ledger/backend/internal/domain/error"
	"github.com/household-ledger/backend/internal/integration/entrypoint/dto"
	"github.com/household-ledger/backend/internal/integration/entrypoint/middleware"
)

// DebtController handles debt record and person ledger endpoints.
type DebtController struct {
	createUseCase        *debt.CreateDebtUseCase
	listUseCase          *debt.ListDebtsUseCase
	listPeopleUseCase    *debt.ListPeopleUseCase
	updateUseCase        *debt.UpdateDebtUseCase
	deleteUseCase        *debt.DeleteDebtUseCase
	resolvePersonUseCase *debt.ResolvePersonUseCase
	deletePersonUseCase  *debt.DeletePersonUseCase
}

// NewDebtController creates a new debt controller instance.
func NewDebtController(
	createUseCase *debt.CreateDebtUseCase,
	listUseCase *debt.ListDebtsUseCase,
	listPeopleUseCase *debt.ListPeopleUseCase,
	updateUseCase *debt.UpdateDebtUseCase,
	deleteUseCase *debt.DeleteDebtUseCase,
	resolvePersonUseCase *debt.ResolvePersonUseCase,
	deletePersonUseCase *debt.DeletePersonUseCase,
) *DebtController {
	return &DebtController{
		createUseCase:        createUseCase,
		listUseCase:          listUseCase,
		listPeopleUseCase:    listPeopleUseCase,
		updateUseCase:        updateUseCase,
		deleteUseCase:        deleteUseCase,
		resolvePersonUseCase: resolvePersonUseCase,
		deletePersonUseCase:  deletePersonUseCase,
	}
}

// Create handles POST /debts requests.
func (c *DebtController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.CreateDebtRecordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(ctx)
		return
	}

	walletID, err := uuid.Parse(req.WalletID)
	if err != nil {
		respondInvalidID(ctx)
		return
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid amount",
			Code:  string(domainerror.ErrCodeInvalidDebtAmount),
		})
		return
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid date, expected YYYY-MM-DD",
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), debt.CreateDebtInput{
		UserID:      userID,
		WalletID:    walletID,
		PersonName:  req.PersonName,
		Kind:        entity.DebtKind(req.Kind),
		Amount:      amount,
		Date:        date,
		Time:        req.Time,
		Description: req.Description,
	})
	if err != nil {
		c.handleDebtError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToDebtRecordResponse(output.Record))
}

// List handles GET /debts requests. An optional ?person= query narrows the
// listing to one counterparty's history, most recent first.
func (c *DebtController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), debt.ListDebtsInput{
		UserID:     userID,
		PersonName: ctx.Query("person"),
	})
	if err != nil {
		c.handleDebtError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDebtRecordListResponse(output.Records))
}

// ListPeople handles GET /debts/people requests.
func (c *DebtController) ListPeople(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.listPeopleUseCase.Execute(ctx.Request.Context(), debt.ListPeopleInput{UserID: userID})
	if err != nil {
		c.handleDebtError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPersonListResponse(output.People))
}

// Update handles PUT /debts/:id requests.
func (c *DebtController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	recordID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		respondInvalidID(ctx)
		return
	}

	var req dto.UpdateDebtRecordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(ctx)
		return
	}

	input := debt.UpdateDebtInput{
		RecordID:    recordID,
		UserID:      userID,
		PersonName:  req.PersonName,
		Time:        req.Time,
		Description: req.Description,
	}

	if req.WalletID != nil {
		walletID, err := uuid.Parse(*req.WalletID)
		if err != nil {
			respondInvalidID(ctx)
			return
		}
		input.WalletID = &walletID
	}
	if req.Kind != nil {
		kind := entity.DebtKind(*req.Kind)
		input.Kind = &kind
	}
	if req.Amount != nil {
		amount, err := decimal.NewFromString(*req.Amount)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid amount",
				Code:  string(domainerror.ErrCodeInvalidDebtAmount),
			})
			return
		}
		input.Amount = &amount
	}
	if req.Date != nil {
		date, err := time.Parse(dateLayout, *req.Date)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid date, expected YYYY-MM-DD",
			})
			return
		}
		input.Date = &date
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleDebtError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDebtRecordResponse(output.Record))
}

// Delete handles DELETE /debts/:id requests.
func (c *DebtController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	recordID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		respondInvalidID(ctx)
		return
	}

	if _, err := c.deleteUseCase.Execute(ctx.Request.Context(), debt.DeleteDebtInput{
		RecordID: recordID,
		UserID:   userID,
	}); err != nil {
		c.handleDebtError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Debt record deleted"})
}

// ResolvePerson handles POST /debts/people/:name/resolve requests.
func (c *DebtController) ResolvePerson(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.ResolvePersonRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(ctx)
		return
	}

	walletID, err := uuid.Parse(req.WalletID)
	if err != nil {
		respondInvalidID(ctx)
		return
	}

	output, err := c.resolvePersonUseCase.Execute(ctx.Request.Context(), debt.ResolvePersonInput{
		UserID:     userID,
		PersonName: ctx.Param("name"),
		WalletID:   walletID,
	})
	if err != nil {
		c.handleDebtError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToDebtRecordResponse(output.Record))
}

// DeletePerson handles DELETE /debts/people/:name requests. The person's
// whole history is removed and the compensating transfers are reported back.
func (c *DebtController) DeletePerson(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.deletePersonUseCase.Execute(ctx.Request.Context(), debt.DeletePersonInput{
		UserID:     userID,
		PersonName: ctx.Param("name"),
	})
	if err != nil {
		c.handleDebtError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDeletePersonResponse(output.DeletedRecords, output.AutomaticTransfers))
}

// handleDebtError handles debt errors and returns appropriate HTTP responses.
func (c *DebtController) handleDebtError(ctx *gin.Context, err error) {
	var debtErr *domainerror.DebtError
	if errors.As(err, &debtErr) {
		ctx.JSON(statusCodeForDebtError(debtErr.Code), dto.ErrorResponse{
			Error: debtErr.Message,
			Code:  string(debtErr.Code),
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

// statusCodeForDebtError maps debt error codes to HTTP status codes.
func statusCodeForDebtError(code domainerror.DebtErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidDebtKind,
		domainerror.ErrCodeInvalidDebtAmount,
		domainerror.ErrCodeMissingPersonName,
		domainerror.ErrCodeMissingDebtWallet,
		domainerror.ErrCodeFutureDebtDate,
		domainerror.ErrCodeInvalidDebtTime:
		return http.StatusBadRequest
	case domainerror.ErrCodeDebtRecordNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeNotAuthorizedDebt:
		return http.StatusForbidden
	case domainerror.ErrCodePersonSettled:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
