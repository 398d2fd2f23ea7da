package summary

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tally-dev/tally/internal/model"
)

// Transfer is one realized transaction leg as recorded against an account.
// It carries the sibling legs of its transaction as an audit trail and is
// never mutated after creation.
type Transfer struct {
	ID       string
	Name     string
	Date     time.Time
	Amount   decimal.Decimal
	Siblings []model.Leg
}

// compare orders transfers by (date, name, amount, id). Zero means the two
// transfers are fully identical; ID alone would suffice for uniqueness, but
// the full tuple keeps the ordering stable and the duplicate check exact.
func (t Transfer) compare(o Transfer) int {
	if c := t.Date.Compare(o.Date); c != 0 {
		return c
	}
	if c := strings.Compare(t.Name, o.Name); c != 0 {
		return c
	}
	if c := t.Amount.Cmp(o.Amount); c != 0 {
		return c
	}
	return strings.Compare(t.ID, o.ID)
}

// SummedAccount is one account's aggregate at a single scope: its running
// total and every transfer that contributed to it, held ascending by
// (date, name, amount, id).
type SummedAccount struct {
	Name      string
	Total     decimal.Decimal
	Transfers []Transfer
}

// add applies one transfer. Inserting a transfer identical to one already
// held is rejected as a DuplicateTransferError.
func (s *SummedAccount) add(amount decimal.Decimal, tr Transfer) error {
	i := sort.Search(len(s.Transfers), func(i int) bool {
		return s.Transfers[i].compare(tr) >= 0
	})
	if i < len(s.Transfers) && s.Transfers[i].compare(tr) == 0 {
		return &DuplicateTransferError{Transaction: tr.Name}
	}
	s.Transfers = append(s.Transfers, Transfer{})
	copy(s.Transfers[i+1:], s.Transfers[i:])
	s.Transfers[i] = tr
	s.Total = s.Total.Add(amount)
	return nil
}

// Accumulator collects per-account totals and transfers for one scope.
// A run uses one accumulator per period plus one global accumulator; the
// engine never shares an accumulator between scopes.
type Accumulator struct {
	accounts map[string]*SummedAccount
}

// NewAccumulator returns an empty accumulator.
func NewAccumulator() *Accumulator {
	return &Accumulator{accounts: make(map[string]*SummedAccount)}
}

// Apply adds amount to the account's running total and records the transfer
// in its ordered set, creating the account's aggregate on first activity.
func (a *Accumulator) Apply(account string, amount decimal.Decimal, tr Transfer) error {
	sa := a.accounts[account]
	if sa == nil {
		sa = &SummedAccount{Name: account, Total: decimal.Zero}
		a.accounts[account] = sa
	}
	return sa.add(amount, tr)
}

// Account returns the aggregate for an account name. The second result is
// false when the account saw no activity in this scope.
func (a *Accumulator) Account(name string) (*SummedAccount, bool) {
	sa, ok := a.accounts[name]
	return sa, ok
}

// Len returns the number of accounts with activity in this scope.
func (a *Accumulator) Len() int {
	return len(a.accounts)
}
