// Package debt contains debt-record and person-ledger use cases.
package debt

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/household-ledger/backend/internal/domain/entity"
)

// defaultTimeOfDay is used for ordering records that carry no time.
const defaultTimeOfDay = "00:00"

// PersonBalance derives a person's net position from the snapshot:
// sum of credits minus sum of debts over the records naming the person.
// Positive means the person owes the user, negative means the user owes the
// person, zero means settled. Name matching is exact and case-sensitive;
// an unknown or empty name yields zero.
func PersonBalance(records []*entity.DebtRecord, personName string) decimal.Decimal {
	balance := decimal.Zero
	if personName == "" {
		return balance
	}
	for _, r := range records {
		if r.PersonName != personName {
			continue
		}
		if r.Kind == entity.DebtKindCredit {
			balance = balance.Add(r.Amount)
		} else {
			balance = balance.Sub(r.Amount)
		}
	}
	return balance
}

// PersonRecords returns the person's records most recent first, ordered by
// (date, time) descending. The input slice is never mutated. Relative order
// of records with identical date and time is unspecified.
func PersonRecords(records []*entity.DebtRecord, personName string) []*entity.DebtRecord {
	matched := make([]*entity.DebtRecord, 0)
	for _, r := range records {
		if r.PersonName == personName {
			matched = append(matched, r)
		}
	}

	sort.Slice(matched, func(i, j int) bool {
		return recordSortKey(matched[i]) > recordSortKey(matched[j])
	})
	return matched
}

// PersonNames returns the distinct person names in the snapshot, sorted
// alphabetically.
func PersonNames(records []*entity.DebtRecord) []string {
	seen := make(map[string]struct{})
	names := make([]string, 0)
	for _, r := range records {
		if _, ok := seen[r.PersonName]; ok {
			continue
		}
		seen[r.PersonName] = struct{}{}
		names = append(names, r.PersonName)
	}
	sort.Strings(names)
	return names
}

// recordSortKey builds a lexicographically ordered "YYYY-MM-DD HH:MM" key.
func recordSortKey(r *entity.DebtRecord) string {
	t := r.Time
	if t == "" {
		t = defaultTimeOfDay
	}
	return r.Date.Format("2006-01-02") + " " + t
}
