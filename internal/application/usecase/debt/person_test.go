// Package debt contains debt-record and person-ledger use cases.
package debt

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/household-ledger/backend/internal/domain/entity"
)

func record(person string, kind entity.DebtKind, amount string, walletID uuid.UUID) *entity.DebtRecord {
	return entity.NewDebtRecord(
		uuid.New(), walletID, person, kind,
		decimal.RequireFromString(amount),
		time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), "10:00", "",
	)
}

func datedRecord(person, day, timeOfDay string) *entity.DebtRecord {
	date, _ := time.Parse("2006-01-02", day)
	r := record(person, entity.DebtKindCredit, "10", uuid.New())
	r.Date = date
	r.Time = timeOfDay
	return r
}

func TestPersonBalance(t *testing.T) {
	w := uuid.New()

	tests := []struct {
		name    string
		records []*entity.DebtRecord
		person  string
		want    string
	}{
		{
			name:    "no records yields zero",
			records: nil,
			person:  "Mario",
			want:    "0",
		},
		{
			name: "credits minus debts",
			records: []*entity.DebtRecord{
				record("Mario", entity.DebtKindCredit, "100", w),
				record("Mario", entity.DebtKindDebt, "40", w),
			},
			person: "Mario",
			want:   "60",
		},
		{
			name: "user owes the person",
			records: []*entity.DebtRecord{
				record("Luigi", entity.DebtKindDebt, "75.50", w),
			},
			person: "Luigi",
			want:   "-75.50",
		},
		{
			name: "name match is case-sensitive",
			records: []*entity.DebtRecord{
				record("mario", entity.DebtKindCredit, "10", w),
			},
			person: "Mario",
			want:   "0",
		},
		{
			name: "empty person name yields zero",
			records: []*entity.DebtRecord{
				record("Mario", entity.DebtKindCredit, "10", w),
			},
			person: "",
			want:   "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PersonBalance(tt.records, tt.person)
			if !got.Equal(decimal.RequireFromString(tt.want)) {
				t.Errorf("expected balance %s, got %s", tt.want, got)
			}
		})
	}
}

func TestPersonBalanceResolution(t *testing.T) {
	// Applying the resolution record for the exact current balance must
	// bring the person to zero.
	w := uuid.New()
	records := []*entity.DebtRecord{
		record("Anna", entity.DebtKindCredit, "80", w),
		record("Anna", entity.DebtKindDebt, "25", w),
	}

	balance := PersonBalance(records, "Anna")
	kind := entity.DebtKindDebt
	if balance.IsNegative() {
		kind = entity.DebtKindCredit
	}
	resolution := record("Anna", kind, balance.Abs().String(), w)

	settled := PersonBalance(append(records, resolution), "Anna")
	if !settled.IsZero() {
		t.Errorf("expected settled balance, got %s", settled)
	}
}

func TestPersonRecords(t *testing.T) {
	t.Run("most recent first by date and time", func(t *testing.T) {
		records := []*entity.DebtRecord{
			datedRecord("Mario", "2024-01-10", "09:00"),
			datedRecord("Mario", "2024-02-01", "08:00"),
			datedRecord("Mario", "2024-01-10", "18:30"),
			datedRecord("Luigi", "2024-03-01", "12:00"),
		}

		got := PersonRecords(records, "Mario")
		if len(got) != 3 {
			t.Fatalf("expected 3 records, got %d", len(got))
		}

		wantOrder := []string{"2024-02-01 08:00", "2024-01-10 18:30", "2024-01-10 09:00"}
		for i, want := range wantOrder {
			if key := recordSortKey(got[i]); key != want {
				t.Errorf("position %d: expected %s, got %s", i, want, key)
			}
		}
	})

	t.Run("missing time sorts as midnight", func(t *testing.T) {
		records := []*entity.DebtRecord{
			datedRecord("Mario", "2024-01-10", ""),
			datedRecord("Mario", "2024-01-10", "00:01"),
		}

		got := PersonRecords(records, "Mario")
		if got[0].Time != "00:01" {
			t.Errorf("expected the timed record first, got time %q", got[0].Time)
		}
	})

	t.Run("input slice is not mutated", func(t *testing.T) {
		first := datedRecord("Mario", "2024-01-01", "01:00")
		second := datedRecord("Mario", "2024-06-01", "01:00")
		records := []*entity.DebtRecord{first, second}

		PersonRecords(records, "Mario")
		if records[0] != first || records[1] != second {
			t.Error("expected input order preserved")
		}
	})
}

func TestPersonNames(t *testing.T) {
	w := uuid.New()
	records := []*entity.DebtRecord{
		record("Mario", entity.DebtKindCredit, "1", w),
		record("Anna", entity.DebtKindDebt, "2", w),
		record("Mario", entity.DebtKindDebt, "3", w),
	}

	got := PersonNames(records)
	want := []string{"Anna", "Mario"}
	if len(got) != len(want) {
		t.Fatalf("expected %d names, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d: expected %s, got %s", i, want[i], got[i])
		}
	}
}
