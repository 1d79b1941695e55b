// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/shopspring/decimal"

	"github.com/household-ledger/backend/internal/application/usecase/statistics"
)

// TotalsResponse represents the overall totals for a period.
type TotalsResponse struct {
	TotalExpenses string `json:"total_expenses"`
	TotalIncomes  string `json:"total_incomes"`
	Balance       string `json:"balance"`
}

// BreakdownResponse maps a group label (category or store) to its summed amount.
type BreakdownResponse struct {
	Groups map[string]string `json:"groups"`
}

// MonthlySummaryResponse represents one month's sums.
type MonthlySummaryResponse struct {
	Expenses string `json:"expenses"`
	Incomes  string `json:"incomes"`
	Balance  string `json:"balance"`
}

// MonthlyResponse maps "YYYY-MM" keys to monthly summaries.
type MonthlyResponse struct {
	Months map[string]MonthlySummaryResponse `json:"months"`
}

// WeekdayHeatmapResponse holds the mean expense per weekday, Monday first.
type WeekdayHeatmapResponse struct {
	Averages [7]string `json:"averages"`
}

// ToTotalsResponse converts use-case totals to a DTO.
func ToTotalsResponse(t statistics.Totals) TotalsResponse {
	return TotalsResponse{
		TotalExpenses: t.TotalExpenses.StringFixed(2),
		TotalIncomes:  t.TotalIncomes.StringFixed(2),
		Balance:       t.Balance.StringFixed(2),
	}
}

// ToBreakdownResponse converts a grouping map to a DTO.
func ToBreakdownResponse(groups map[string]decimal.Decimal) BreakdownResponse {
	out := make(map[string]string, len(groups))
	for label, amount := range groups {
		out[label] = amount.StringFixed(2)
	}
	return BreakdownResponse{Groups: out}
}

// ToMonthlyResponse converts monthly summaries to a DTO.
func ToMonthlyResponse(months map[string]statistics.MonthlySummary) MonthlyResponse {
	out := make(map[string]MonthlySummaryResponse, len(months))
	for key, summary := range months {
		out[key] = MonthlySummaryResponse{
			Expenses: summary.Expenses.StringFixed(2),
			Incomes:  summary.Incomes.StringFixed(2),
			Balance:  summary.Balance().StringFixed(2),
		}
	}
	return MonthlyResponse{Months: out}
}

// ToWeekdayHeatmapResponse converts weekday averages to a DTO.
func ToWeekdayHeatmapResponse(averages [7]decimal.Decimal) WeekdayHeatmapResponse {
	var out [7]string
	for i, avg := range averages {
		out[i] = avg.StringFixed(2)
	}
	return WeekdayHeatmapResponse{Averages: out}
}
