// Package wallet contains wallet-related use cases.
package wallet

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/household-ledger/backend/internal/domain/entity"
)

func newTestWallet(initial string) *entity.Wallet {
	return entity.NewWallet(uuid.New(), "contanti", "#FF0000", decimal.RequireFromString(initial))
}

func newTestTransaction(w *entity.Wallet, kind entity.TransactionKind, amount string) *entity.Transaction {
	return entity.NewTransaction(
		w.UserID, w.ID, kind,
		decimal.RequireFromString(amount),
		"Spesa", time.Now(), "", "",
	)
}

func newTestDebt(w *entity.Wallet, kind entity.DebtKind, amount string) *entity.DebtRecord {
	return entity.NewDebtRecord(
		w.UserID, w.ID, "Mario", kind,
		decimal.RequireFromString(amount),
		time.Now(), "12:00", "",
	)
}

func TestComputeBalance(t *testing.T) {
	t.Run("income and expense applied to initial balance", func(t *testing.T) {
		w := newTestWallet("100")
		txs := []*entity.Transaction{
			newTestTransaction(w, entity.TransactionKindIncome, "30"),
			newTestTransaction(w, entity.TransactionKindExpense, "50"),
		}

		got := ComputeBalance(w, txs, nil)
		if !got.Equal(decimal.RequireFromString("80")) {
			t.Errorf("expected balance 80, got %s", got)
		}
	})

	t.Run("debt adds and credit subtracts", func(t *testing.T) {
		w := newTestWallet("0")
		debts := []*entity.DebtRecord{
			newTestDebt(w, entity.DebtKindDebt, "25"),
			newTestDebt(w, entity.DebtKindCredit, "10"),
		}

		got := ComputeBalance(w, nil, debts)
		if !got.Equal(decimal.RequireFromString("15")) {
			t.Errorf("expected balance 15, got %s", got)
		}
	})

	t.Run("wallet with no movements keeps initial balance", func(t *testing.T) {
		w := newTestWallet("42.50")

		got := ComputeBalance(w, nil, nil)
		if !got.Equal(w.InitialBalance) {
			t.Errorf("expected balance %s, got %s", w.InitialBalance, got)
		}
	})

	t.Run("nil wallet yields zero", func(t *testing.T) {
		got := ComputeBalance(nil, nil, nil)
		if !got.IsZero() {
			t.Errorf("expected zero balance, got %s", got)
		}
	})

	t.Run("movements on other wallets are ignored", func(t *testing.T) {
		w := newTestWallet("10")
		other := newTestWallet("0")
		txs := []*entity.Transaction{
			newTestTransaction(other, entity.TransactionKindExpense, "7"),
		}
		debts := []*entity.DebtRecord{
			newTestDebt(other, entity.DebtKindCredit, "3"),
		}

		got := ComputeBalance(w, txs, debts)
		if !got.Equal(decimal.RequireFromString("10")) {
			t.Errorf("expected balance 10, got %s", got)
		}
	})

	t.Run("adding then removing a transaction restores the balance", func(t *testing.T) {
		w := newTestWallet("100")
		base := []*entity.Transaction{
			newTestTransaction(w, entity.TransactionKindIncome, "12.34"),
		}
		before := ComputeBalance(w, base, nil)

		extra := append(append([]*entity.Transaction{}, base...),
			newTestTransaction(w, entity.TransactionKindExpense, "99.99"))
		during := ComputeBalance(w, extra, nil)
		if during.Equal(before) {
			t.Fatal("expected balance to change while the transaction exists")
		}

		after := ComputeBalance(w, base, nil)
		if !after.Equal(before) {
			t.Errorf("expected balance restored to %s, got %s", before, after)
		}
	})

	t.Run("order of movements does not matter", func(t *testing.T) {
		w := newTestWallet("0")
		a := newTestTransaction(w, entity.TransactionKindIncome, "5")
		b := newTestTransaction(w, entity.TransactionKindExpense, "3")
		c := newTestTransaction(w, entity.TransactionKindIncome, "1.25")

		first := ComputeBalance(w, []*entity.Transaction{a, b, c}, nil)
		second := ComputeBalance(w, []*entity.Transaction{c, a, b}, nil)
		if !first.Equal(second) {
			t.Errorf("expected %s and %s to be equal", first, second)
		}
	})
}
