package summary

import (
	"github.com/shopspring/decimal"

	"github.com/tally-dev/tally/internal/model"
)

// AccountChecker tests whether an account name is declared.
type AccountChecker interface {
	Exists(name string) bool
}

// ValidateTransaction enforces the two per-transaction invariants: every
// leg references a declared account, and the legs sum to exactly zero.
// The first violation is returned; a valid transaction returns nil.
func ValidateTransaction(txn model.Transaction, accounts AccountChecker) error {
	sum := decimal.Zero
	for _, leg := range txn.Transfers {
		if !accounts.Exists(leg.Account) {
			return &UndeclaredAccountError{Transaction: txn.Name, Account: leg.Account}
		}
		sum = sum.Add(leg.Amount)
	}
	if !sum.IsZero() {
		return &UnbalancedTransactionError{Transaction: txn.Name, Sum: sum}
	}
	return nil
}
