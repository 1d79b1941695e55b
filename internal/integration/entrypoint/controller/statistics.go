// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/household-ledger/backend/internal/application/usecase/statistics"
	domainerror "github.com/household-ledger/backend/internal/domain/error"
	"github.com/household-ledger/backend/internal/integration/entrypoint/dto"
	"github.com/household-ledger/backend/internal/integration/entrypoint/middleware"
)

// StatisticsController handles reporting endpoints.
type StatisticsController struct {
	totalsUseCase     *statistics.GetTotalsUseCase
	byCategoryUseCase *statistics.GetByCategoryUseCase
	byStoreUseCase    *statistics.GetByStoreUseCase
	monthlyUseCase    *statistics.GetMonthlyUseCase
	heatmapUseCase    *statistics.GetWeekdayHeatmapUseCase
}

// NewStatisticsController creates a new statistics controller instance.
func NewStatisticsController(
	totalsUseCase *statistics.GetTotalsUseCase,
	byCategoryUseCase *statistics.GetByCategoryUseCase,
	byStoreUseCase *statistics.GetByStoreUseCase,
	monthlyUseCase *statistics.GetMonthlyUseCase,
	heatmapUseCase *statistics.GetWeekdayHeatmapUseCase,
) *StatisticsController {
	return &StatisticsController{
		totalsUseCase:     totalsUseCase,
		byCategoryUseCase: byCategoryUseCase,
		byStoreUseCase:    byStoreUseCase,
		monthlyUseCase:    monthlyUseCase,
		heatmapUseCase:    heatmapUseCase,
	}
}

// Totals handles GET /statistics/totals requests.
func (c *StatisticsController) Totals(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.totalsUseCase.Execute(ctx.Request.Context(), statistics.GetTotalsInput{
		UserID:    userID,
		DateRange: parseDateRange(ctx),
	})
	if err != nil {
		c.handleStatisticsError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTotalsResponse(output.Totals))
}

// ByCategory handles GET /statistics/by-category requests.
func (c *StatisticsController) ByCategory(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.byCategoryUseCase.Execute(ctx.Request.Context(), statistics.GetByCategoryInput{
		UserID:    userID,
		DateRange: parseDateRange(ctx),
	})
	if err != nil {
		c.handleStatisticsError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBreakdownResponse(output.Categories))
}

// ByStore handles GET /statistics/by-store requests.
func (c *StatisticsController) ByStore(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.byStoreUseCase.Execute(ctx.Request.Context(), statistics.GetByStoreInput{
		UserID:    userID,
		DateRange: parseDateRange(ctx),
	})
	if err != nil {
		c.handleStatisticsError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBreakdownResponse(output.Stores))
}

// Monthly handles GET /statistics/monthly requests.
func (c *StatisticsController) Monthly(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.monthlyUseCase.Execute(ctx.Request.Context(), statistics.GetMonthlyInput{
		UserID:    userID,
		DateRange: parseDateRange(ctx),
	})
	if err != nil {
		c.handleStatisticsError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMonthlyResponse(output.Months))
}

// WeekdayHeatmap handles GET /statistics/weekday-heatmap requests.
func (c *StatisticsController) WeekdayHeatmap(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.heatmapUseCase.Execute(ctx.Request.Context(), statistics.GetWeekdayHeatmapInput{
		UserID:    userID,
		DateRange: parseDateRange(ctx),
	})
	if err != nil {
		c.handleStatisticsError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToWeekdayHeatmapResponse(output.Averages))
}

// parseDateRange reads the optional startDate/endDate query parameters.
func parseDateRange(ctx *gin.Context) statistics.DateRange {
	var dateRange statistics.DateRange
	if startDateStr := ctx.Query("startDate"); startDateStr != "" {
		if startDate, err := time.Parse(dateLayout, startDateStr); err == nil {
			dateRange.StartDate = &startDate
		}
	}
	if endDateStr := ctx.Query("endDate"); endDateStr != "" {
		if endDate, err := time.Parse(dateLayout, endDateStr); err == nil {
			dateRange.EndDate = &endDate
		}
	}
	return dateRange
}

// handleStatisticsError handles statistics errors and returns appropriate HTTP responses.
func (c *StatisticsController) handleStatisticsError(ctx *gin.Context, err error) {
	var statsErr *domainerror.StatisticsError
	if errors.As(err, &statsErr) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: statsErr.Message,
			Code:  string(statsErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
