package summary

import (
	"github.com/shopspring/decimal"

	"github.com/tally-dev/tally/internal/model"
)

// CategorySum is one rollup entry: a category key, the sum of its member
// accounts' totals, and the members that actually saw activity in scope.
type CategorySum struct {
	Key      string
	Total    decimal.Decimal
	Accounts []*SummedAccount
}

// RollUp computes one classification dimension over a completed accumulator.
// Categories appear in declaration order, each with the sum of its members'
// totals. A declared member with no activity contributes zero and is left
// out of the member list; a category with no active members still appears,
// at total zero. The same function serves both the account-type dimension
// and the named account-sum dimension, at either scope.
func RollUp(acc *Accumulator, table []model.Category) []CategorySum {
	sums := make([]CategorySum, 0, len(table))
	for _, cat := range table {
		cs := CategorySum{Key: cat.Name, Total: decimal.Zero}
		for _, name := range cat.Accounts {
			sa, ok := acc.Account(name)
			if !ok {
				continue
			}
			cs.Total = cs.Total.Add(sa.Total)
			cs.Accounts = append(cs.Accounts, sa)
		}
		sums = append(sums, cs)
	}
	return sums
}
