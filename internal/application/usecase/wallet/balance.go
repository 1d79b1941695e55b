// Package wallet contains wallet-related use cases.
package wallet

import (
	"github.com/shopspring/decimal"

	"github.com/household-ledger/backend/internal/domain/entity"
)

// ComputeBalance derives a wallet's current balance from its initial balance
// plus every movement that touches it:
//
//	base + incomes - expenses + debts - credits
//
// The computation is a pure sum over the snapshot, so it is deterministic and
// order-independent. A wallet with no matching movement keeps its initial
// balance; a nil wallet yields zero.
func ComputeBalance(
	w *entity.Wallet,
	transactions []*entity.Transaction,
	debts []*entity.DebtRecord,
) decimal.Decimal {
	if w == nil {
		return decimal.Zero
	}

	balance := w.InitialBalance
	for _, tx := range transactions {
		if tx.WalletID != w.ID {
			continue
		}
		if tx.Kind == entity.TransactionKindIncome {
			balance = balance.Add(tx.Amount)
		} else {
			balance = balance.Sub(tx.Amount)
		}
	}
	for _, d := range debts {
		if d.WalletID != w.ID {
			continue
		}
		balance = balance.Add(d.SignedAmount())
	}
	return balance
}
