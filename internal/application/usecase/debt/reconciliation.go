// Package debt contains debt-record and person-ledger use cases.
package debt

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/household-ledger/backend/internal/domain/entity"
	"github.com/household-ledger/backend/internal/domain/valueobject"
)

// reconcileTolerance absorbs rounding drift accumulated by repeated
// additions on imported data. Impacts and transfers below it are treated
// as zero.
var reconcileTolerance = decimal.RequireFromString("0.01")

// autoTransferDescription prefixes the description of every transfer
// planned while deleting a person's history.
const autoTransferDescription = "Trasferimento automatico da eliminazione "

// WalletImpacts partitions a person's records by wallet and returns each
// wallet's net monetary impact: sum of debt amounts minus sum of credit
// amounts, the same sign convention the balance calculator applies. Wallets
// whose impact is within tolerance of zero are omitted. The result is
// ordered ascending by impact, ties broken by wallet ID for determinism.
func WalletImpacts(records []*entity.DebtRecord, personName string) []valueobject.WalletImpact {
	byWallet := make(map[string]*valueobject.WalletImpact)
	for _, r := range records {
		if r.PersonName != personName {
			continue
		}
		key := r.WalletID.String()
		impact, ok := byWallet[key]
		if !ok {
			impact = &valueobject.WalletImpact{WalletID: r.WalletID, Impact: decimal.Zero}
			byWallet[key] = impact
		}
		impact.Impact = impact.Impact.Add(r.SignedAmount())
	}

	impacts := make([]valueobject.WalletImpact, 0, len(byWallet))
	for _, impact := range byWallet {
		if impact.Impact.Abs().GreaterThan(reconcileTolerance) {
			impacts = append(impacts, *impact)
		}
	}

	sort.Slice(impacts, func(i, j int) bool {
		if !impacts[i].Impact.Equal(impacts[j].Impact) {
			return impacts[i].Impact.LessThan(impacts[j].Impact)
		}
		return impacts[i].WalletID.String() < impacts[j].WalletID.String()
	})
	return impacts
}

// PlanTransfers computes the minimal set of wallet-to-wallet transfers that
// preserve every wallet's total balance once the person's records are
// deleted. Deleting the records removes their implicit contribution to each
// wallet; the planned transfers make that contribution explicit instead.
//
// A wallet with positive impact loses money when the records disappear, so
// it must receive transfers; a wallet with negative impact gains a windfall,
// so it must send them. The two sides are merged with a two-pointer greedy
// walk: each step moves min(|negative|, positive) from the most negative
// wallet to the most positive one and advances whichever side reaches zero
// within tolerance. At most one wallet with non-negligible impact means
// nothing has to move, so for k impacted wallets the plan holds at most
// k-1 transfers.
func PlanTransfers(
	records []*entity.DebtRecord,
	personName string,
	now time.Time,
) []valueobject.PlannedTransfer {
	impacts := WalletImpacts(records, personName)
	if len(impacts) <= 1 {
		return nil
	}

	remaining := make([]decimal.Decimal, len(impacts))
	for i, impact := range impacts {
		remaining[i] = impact.Impact
	}

	transfers := make([]valueobject.PlannedTransfer, 0, len(impacts)-1)
	i, j := 0, len(impacts)-1
	// One-sided histories (only deficits or only surpluses) have nothing to
	// balance against; the residual stays on each wallet's own balance line.
	for i < j && remaining[i].IsNegative() && remaining[j].IsPositive() {
		amount := decimal.Min(remaining[i].Abs(), remaining[j])
		if amount.GreaterThan(reconcileTolerance) {
			transfers = append(transfers, valueobject.PlannedTransfer{
				FromWalletID: impacts[i].WalletID,
				ToWalletID:   impacts[j].WalletID,
				Amount:       amount,
				Description:  autoTransferDescription + personName,
				Date:         now,
				Time:         now.Format("15:04"),
			})
		}

		remaining[i] = remaining[i].Add(amount)
		remaining[j] = remaining[j].Sub(amount)

		if remaining[i].Abs().LessThanOrEqual(reconcileTolerance) {
			i++
		}
		if remaining[j].Abs().LessThanOrEqual(reconcileTolerance) {
			j--
		}
	}
	return transfers
}
