// Package debt contains debt-record and person-ledger use cases.
package debt

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/household-ledger/backend/internal/domain/entity"
	"github.com/household-ledger/backend/internal/domain/valueobject"
)

// netFlow returns the signed amount each planned transfer moves onto (+) or
// off (-) the given wallet.
func netFlow(transfers []valueobject.PlannedTransfer, walletID uuid.UUID) decimal.Decimal {
	flow := decimal.Zero
	for _, t := range transfers {
		if t.ToWalletID == walletID {
			flow = flow.Add(t.Amount)
		}
		if t.FromWalletID == walletID {
			flow = flow.Sub(t.Amount)
		}
	}
	return flow
}

func TestWalletImpacts(t *testing.T) {
	paypal := uuid.New()
	contanti := uuid.New()

	t.Run("aggregates per wallet with signed amounts", func(t *testing.T) {
		records := []*entity.DebtRecord{
			record("Mario", entity.DebtKindCredit, "100", paypal),
			record("Mario", entity.DebtKindDebt, "100", contanti),
		}

		impacts := WalletImpacts(records, "Mario")
		if len(impacts) != 2 {
			t.Fatalf("expected 2 impacts, got %d", len(impacts))
		}
		if impacts[0].WalletID != paypal || !impacts[0].Impact.Equal(decimal.RequireFromString("-100")) {
			t.Errorf("expected paypal impact -100 first, got %s %s", impacts[0].WalletID, impacts[0].Impact)
		}
		if impacts[1].WalletID != contanti || !impacts[1].Impact.Equal(decimal.RequireFromString("100")) {
			t.Errorf("expected contanti impact 100 last, got %s %s", impacts[1].WalletID, impacts[1].Impact)
		}
	})

	t.Run("same-wallet records cancel out", func(t *testing.T) {
		records := []*entity.DebtRecord{
			record("Anna", entity.DebtKindDebt, "40", paypal),
			record("Anna", entity.DebtKindCredit, "40", paypal),
		}

		if impacts := WalletImpacts(records, "Anna"); len(impacts) != 0 {
			t.Errorf("expected no impacts, got %d", len(impacts))
		}
	})

	t.Run("impacts within tolerance are dropped", func(t *testing.T) {
		records := []*entity.DebtRecord{
			record("Mario", entity.DebtKindDebt, "0.005", paypal),
			record("Mario", entity.DebtKindCredit, "0.005", contanti),
		}

		if impacts := WalletImpacts(records, "Mario"); len(impacts) != 0 {
			t.Errorf("expected no impacts, got %d", len(impacts))
		}
	})

	t.Run("other people's records are ignored", func(t *testing.T) {
		records := []*entity.DebtRecord{
			record("Mario", entity.DebtKindDebt, "10", paypal),
			record("Luigi", entity.DebtKindDebt, "99", contanti),
		}

		impacts := WalletImpacts(records, "Mario")
		if len(impacts) != 1 || impacts[0].WalletID != paypal {
			t.Fatalf("expected only the paypal impact, got %v", impacts)
		}
	})
}

func TestPlanTransfers(t *testing.T) {
	now := time.Date(2024, 5, 2, 14, 30, 0, 0, time.UTC)
	paypal := uuid.New()
	contanti := uuid.New()

	t.Run("balanced two-wallet history needs one transfer", func(t *testing.T) {
		records := []*entity.DebtRecord{
			record("Mario", entity.DebtKindCredit, "100", paypal),
			record("Mario", entity.DebtKindDebt, "100", contanti),
		}

		transfers := PlanTransfers(records, "Mario", now)
		if len(transfers) != 1 {
			t.Fatalf("expected 1 transfer, got %d", len(transfers))
		}
		got := transfers[0]
		if got.FromWalletID != paypal || got.ToWalletID != contanti {
			t.Errorf("expected transfer paypal -> contanti, got %s -> %s", got.FromWalletID, got.ToWalletID)
		}
		if !got.Amount.Equal(decimal.RequireFromString("100")) {
			t.Errorf("expected amount 100, got %s", got.Amount)
		}
		if !strings.HasSuffix(got.Description, "Mario") || !strings.HasPrefix(got.Description, autoTransferDescription) {
			t.Errorf("unexpected description %q", got.Description)
		}
		if got.Time != "14:30" {
			t.Errorf("expected time 14:30, got %s", got.Time)
		}
	})

	t.Run("unbalanced history moves only the matched portion", func(t *testing.T) {
		records := []*entity.DebtRecord{
			record("Luigi", entity.DebtKindCredit, "50", paypal),
			record("Luigi", entity.DebtKindDebt, "30", contanti),
		}

		transfers := PlanTransfers(records, "Luigi", now)
		if len(transfers) != 1 {
			t.Fatalf("expected 1 transfer, got %d", len(transfers))
		}
		if !transfers[0].Amount.Equal(decimal.RequireFromString("30")) {
			t.Errorf("expected amount 30, got %s", transfers[0].Amount)
		}
		// The residual -20 stays on paypal's own balance line.
		if flow := netFlow(transfers, paypal); !flow.Equal(decimal.RequireFromString("-30")) {
			t.Errorf("expected -30 out of paypal, got %s", flow)
		}
	})

	t.Run("zero net impact plans nothing", func(t *testing.T) {
		records := []*entity.DebtRecord{
			record("Anna", entity.DebtKindDebt, "40", paypal),
			record("Anna", entity.DebtKindCredit, "40", paypal),
		}

		if transfers := PlanTransfers(records, "Anna", now); len(transfers) != 0 {
			t.Errorf("expected no transfers, got %d", len(transfers))
		}
	})

	t.Run("amounts within tolerance plan nothing", func(t *testing.T) {
		records := []*entity.DebtRecord{
			record("Mario", entity.DebtKindDebt, "0.005", paypal),
			record("Mario", entity.DebtKindCredit, "0.005", contanti),
		}

		if transfers := PlanTransfers(records, "Mario", now); len(transfers) != 0 {
			t.Errorf("expected no transfers, got %d", len(transfers))
		}
	})

	t.Run("one-sided history plans nothing", func(t *testing.T) {
		records := []*entity.DebtRecord{
			record("Mario", entity.DebtKindDebt, "10", paypal),
			record("Mario", entity.DebtKindDebt, "20", contanti),
		}

		if transfers := PlanTransfers(records, "Mario", now); len(transfers) != 0 {
			t.Errorf("expected no transfers, got %d", len(transfers))
		}
	})

	t.Run("four wallets settle within k-1 transfers", func(t *testing.T) {
		wallets := []uuid.UUID{uuid.New(), uuid.New(), uuid.New(), uuid.New()}
		records := []*entity.DebtRecord{
			record("Mario", entity.DebtKindCredit, "70", wallets[0]),
			record("Mario", entity.DebtKindCredit, "30", wallets[1]),
			record("Mario", entity.DebtKindDebt, "55", wallets[2]),
			record("Mario", entity.DebtKindDebt, "45", wallets[3]),
		}

		transfers := PlanTransfers(records, "Mario", now)
		if len(transfers) > 3 {
			t.Fatalf("expected at most 3 transfers, got %d", len(transfers))
		}

		// Each wallet's transfer flow must offset its impact exactly, so the
		// wallet balance is unchanged once the records are gone.
		for _, impact := range WalletImpacts(records, "Mario") {
			flow := netFlow(transfers, impact.WalletID)
			if diff := flow.Sub(impact.Impact).Abs(); diff.GreaterThan(reconcileTolerance) {
				t.Errorf("wallet %s: impact %s not offset by flow %s", impact.WalletID, impact.Impact, flow)
			}
		}
	})
}
