// Package statistics contains reporting use cases derived from the
// transaction snapshot. Every grouping excludes transfer halves, otherwise
// moving money between two own wallets would count as spending.
package statistics

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/household-ledger/backend/internal/domain/entity"
)

// StoreNone labels transactions recorded without a store.
const StoreNone = "Senza negozio"

// monthKeyLayout formats a transaction date into its monthly bucket.
const monthKeyLayout = "2006-01"

// Totals holds the overall expense/income sums for a snapshot.
type Totals struct {
	TotalExpenses decimal.Decimal
	TotalIncomes  decimal.Decimal
	Balance       decimal.Decimal
}

// MonthlySummary holds one month's expense and income sums.
type MonthlySummary struct {
	Expenses decimal.Decimal
	Incomes  decimal.Decimal
}

// Balance returns the month's net position.
func (m MonthlySummary) Balance() decimal.Decimal {
	return m.Incomes.Sub(m.Expenses)
}

// ComputeTotals sums expenses and incomes over the snapshot.
func ComputeTotals(transactions []*entity.Transaction) Totals {
	totals := Totals{
		TotalExpenses: decimal.Zero,
		TotalIncomes:  decimal.Zero,
	}
	for _, t := range transactions {
		if t.IsTransfer() {
			continue
		}
		switch t.Kind {
		case entity.TransactionKindExpense:
			totals.TotalExpenses = totals.TotalExpenses.Add(t.Amount)
		case entity.TransactionKindIncome:
			totals.TotalIncomes = totals.TotalIncomes.Add(t.Amount)
		}
	}
	totals.Balance = totals.TotalIncomes.Sub(totals.TotalExpenses)
	return totals
}

// GroupByCategory sums expense amounts per category.
func GroupByCategory(transactions []*entity.Transaction) map[string]decimal.Decimal {
	groups := make(map[string]decimal.Decimal)
	for _, t := range transactions {
		if t.IsTransfer() || t.Kind != entity.TransactionKindExpense {
			continue
		}
		groups[t.Category] = groups[t.Category].Add(t.Amount)
	}
	return groups
}

// GroupByStore sums expense amounts per store. Transactions without a store
// fall under the StoreNone label.
func GroupByStore(transactions []*entity.Transaction) map[string]decimal.Decimal {
	groups := make(map[string]decimal.Decimal)
	for _, t := range transactions {
		if t.IsTransfer() || t.Kind != entity.TransactionKindExpense {
			continue
		}
		store := t.Store
		if store == "" {
			store = StoreNone
		}
		groups[store] = groups[store].Add(t.Amount)
	}
	return groups
}

// GroupByMonth buckets the snapshot into "YYYY-MM" keys. Only months with at
// least one movement appear.
func GroupByMonth(transactions []*entity.Transaction) map[string]MonthlySummary {
	groups := make(map[string]MonthlySummary)
	for _, t := range transactions {
		if t.IsTransfer() {
			continue
		}
		key := t.Date.Format(monthKeyLayout)
		summary := groups[key]
		switch t.Kind {
		case entity.TransactionKindExpense:
			summary.Expenses = summary.Expenses.Add(t.Amount)
		case entity.TransactionKindIncome:
			summary.Incomes = summary.Incomes.Add(t.Amount)
		}
		groups[key] = summary
	}
	return groups
}

// mondayIndex maps a date's weekday to the Monday-first index 0..6.
func mondayIndex(date time.Time) int {
	return (int(date.Weekday()) + 6) % 7
}

// WeekdayAverages returns, per Monday-first weekday index, the mean expense
// amount of the transactions falling on that weekday. Weekdays without
// expenses report zero.
func WeekdayAverages(transactions []*entity.Transaction) [7]decimal.Decimal {
	var sums [7]decimal.Decimal
	var counts [7]int64
	for _, t := range transactions {
		if t.IsTransfer() || t.Kind != entity.TransactionKindExpense {
			continue
		}
		idx := mondayIndex(t.Date)
		sums[idx] = sums[idx].Add(t.Amount)
		counts[idx]++
	}

	var averages [7]decimal.Decimal
	for i := range averages {
		if counts[i] == 0 {
			averages[i] = decimal.Zero
			continue
		}
		averages[i] = sums[i].Div(decimal.NewFromInt(counts[i]))
	}
	return averages
}
