package summary

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// UndeclaredAccountError reports a transaction leg naming an account that
// was never declared.
type UndeclaredAccountError struct {
	Transaction string
	Account     string
}

func (e *UndeclaredAccountError) Error() string {
	return fmt.Sprintf("transaction %q uses undeclared account %q", e.Transaction, e.Account)
}

// UnbalancedTransactionError reports a transaction whose legs do not net to
// exactly zero.
type UnbalancedTransactionError struct {
	Transaction string
	Sum         decimal.Decimal
}

func (e *UnbalancedTransactionError) Error() string {
	return fmt.Sprintf("transaction %q does not sum to zero (legs sum to %s)", e.Transaction, e.Sum)
}

// DuplicateTransferError reports an identical transfer inserted twice into
// one account's set. This can only happen when transaction indexes within a
// period are not unique, which is itself an invariant violation upstream.
type DuplicateTransferError struct {
	Transaction string
}

func (e *DuplicateTransferError) Error() string {
	return fmt.Sprintf("duplicate transfer in transaction %q (non-unique transaction index)", e.Transaction)
}

// DuplicatePeriodError reports two periods sharing a name. Unique period
// names are a precondition the loader must supply; the engine still asserts
// it since transfer identity depends on it.
type DuplicatePeriodError struct {
	Name string
}

func (e *DuplicatePeriodError) Error() string {
	return fmt.Sprintf("duplicate period %q", e.Name)
}
