package statistics

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/household-ledger/backend/internal/domain/entity"
)

func tx(kind entity.TransactionKind, amount, category, store string, date time.Time) *entity.Transaction {
	return entity.NewTransaction(
		uuid.New(), uuid.New(), kind,
		decimal.RequireFromString(amount),
		category, date, store, "",
	)
}

var testDay = time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC) // a Monday

func TestComputeTotals(t *testing.T) {
	transactions := []*entity.Transaction{
		tx(entity.TransactionKindExpense, "50", "Spesa", "", testDay),
		tx(entity.TransactionKindExpense, "20", "Benzina", "", testDay),
		tx(entity.TransactionKindIncome, "1000", "Stipendio", "", testDay),
		tx(entity.TransactionKindExpense, "300", entity.CategoryTransfer, "", testDay),
		tx(entity.TransactionKindIncome, "300", entity.CategoryTransfer, "", testDay),
	}

	totals := ComputeTotals(transactions)
	if !totals.TotalExpenses.Equal(decimal.RequireFromString("70")) {
		t.Errorf("expected expenses 70, got %s", totals.TotalExpenses)
	}
	if !totals.TotalIncomes.Equal(decimal.RequireFromString("1000")) {
		t.Errorf("expected incomes 1000, got %s", totals.TotalIncomes)
	}
	if !totals.Balance.Equal(decimal.RequireFromString("930")) {
		t.Errorf("expected balance 930, got %s", totals.Balance)
	}
}

func TestGroupByCategory(t *testing.T) {
	transactions := []*entity.Transaction{
		tx(entity.TransactionKindExpense, "30", "Spesa", "", testDay),
		tx(entity.TransactionKindExpense, "12.50", "Spesa", "", testDay),
		tx(entity.TransactionKindExpense, "40", "Benzina", "", testDay),
		tx(entity.TransactionKindIncome, "1000", "Stipendio", "", testDay),
		tx(entity.TransactionKindExpense, "99", entity.CategoryTransfer, "", testDay),
	}

	groups := GroupByCategory(transactions)
	if len(groups) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(groups))
	}
	if !groups["Spesa"].Equal(decimal.RequireFromString("42.50")) {
		t.Errorf("expected Spesa 42.50, got %s", groups["Spesa"])
	}
	if !groups["Benzina"].Equal(decimal.RequireFromString("40")) {
		t.Errorf("expected Benzina 40, got %s", groups["Benzina"])
	}
	if _, ok := groups[entity.CategoryTransfer]; ok {
		t.Error("expected transfers excluded from category groups")
	}
}

func TestGroupByStore(t *testing.T) {
	transactions := []*entity.Transaction{
		tx(entity.TransactionKindExpense, "15", "Spesa", "Esselunga", testDay),
		tx(entity.TransactionKindExpense, "5", "Spesa", "", testDay),
		tx(entity.TransactionKindExpense, "3", "Bar", "", testDay),
	}

	groups := GroupByStore(transactions)
	if !groups["Esselunga"].Equal(decimal.RequireFromString("15")) {
		t.Errorf("expected Esselunga 15, got %s", groups["Esselunga"])
	}
	if !groups[StoreNone].Equal(decimal.RequireFromString("8")) {
		t.Errorf("expected %q 8, got %s", StoreNone, groups[StoreNone])
	}
}

func TestGroupByMonth(t *testing.T) {
	january := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	march := time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)
	transactions := []*entity.Transaction{
		tx(entity.TransactionKindExpense, "100", "Spesa", "", january),
		tx(entity.TransactionKindIncome, "250", "Stipendio", "", january),
		tx(entity.TransactionKindExpense, "60", "Spesa", "", march),
	}

	months := GroupByMonth(transactions)
	if len(months) != 2 {
		t.Fatalf("expected 2 months, got %d", len(months))
	}

	jan := months["2024-01"]
	if !jan.Expenses.Equal(decimal.RequireFromString("100")) || !jan.Incomes.Equal(decimal.RequireFromString("250")) {
		t.Errorf("unexpected january summary: %+v", jan)
	}
	if !jan.Balance().Equal(decimal.RequireFromString("150")) {
		t.Errorf("expected january balance 150, got %s", jan.Balance())
	}
	if !months["2024-03"].Balance().Equal(decimal.RequireFromString("-60")) {
		t.Errorf("expected march balance -60, got %s", months["2024-03"].Balance())
	}
}

func TestWeekdayAverages(t *testing.T) {
	monday := time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)
	nextMonday := monday.AddDate(0, 0, 7)
	sunday := time.Date(2024, 3, 17, 0, 0, 0, 0, time.UTC)

	transactions := []*entity.Transaction{
		tx(entity.TransactionKindExpense, "10", "Bar", "", monday),
		tx(entity.TransactionKindExpense, "30", "Bar", "", nextMonday),
		tx(entity.TransactionKindExpense, "7", "Bar", "", sunday),
		tx(entity.TransactionKindIncome, "500", "Stipendio", "", monday),
		tx(entity.TransactionKindExpense, "99", entity.CategoryTransfer, "", monday),
	}

	averages := WeekdayAverages(transactions)
	if !averages[0].Equal(decimal.RequireFromString("20")) {
		t.Errorf("expected Monday average 20, got %s", averages[0])
	}
	if !averages[6].Equal(decimal.RequireFromString("7")) {
		t.Errorf("expected Sunday average 7, got %s", averages[6])
	}
	// Weekdays without expenses report zero, never NaN or a division error.
	for _, idx := range []int{1, 2, 3, 4, 5} {
		if !averages[idx].IsZero() {
			t.Errorf("weekday %d: expected zero, got %s", idx, averages[idx])
		}
	}
}

func TestDateRangeValidate(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		r       DateRange
		wantErr bool
	}{
		{name: "empty range is whole history", r: DateRange{}, wantErr: false},
		{name: "complete range", r: DateRange{StartDate: &start, EndDate: &end}, wantErr: false},
		{name: "missing start", r: DateRange{EndDate: &end}, wantErr: true},
		{name: "missing end", r: DateRange{StartDate: &start}, wantErr: true},
		{name: "inverted range", r: DateRange{StartDate: &end, EndDate: &start}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.r.validate()
			if tt.wantErr && err == nil {
				t.Error("expected an error")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
