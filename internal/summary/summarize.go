package summary

import (
	"github.com/tally-dev/tally/internal/id"
	"github.com/tally-dev/tally/internal/model"
)

// SummedGrouping is the pair of rollup dimensions at one scope: by account
// type and by named account sum, each in declaration order.
type SummedGrouping struct {
	AccountTypes []CategorySum
	AccountSums  []CategorySum
}

// PeriodSummary is one period's name and its period-local grouping.
type PeriodSummary struct {
	Name     string
	Grouping SummedGrouping
}

// SummedBookkeeping is the full result of one run: the global grouping over
// all periods and a per-period grouping list in input order.
type SummedBookkeeping struct {
	Name    string
	Global  SummedGrouping
	Periods []PeriodSummary
}

// Summarize runs the whole aggregation pass over a validated ledger: every
// transaction is checked against the declared accounts and for zero balance,
// every leg feeds a fresh period-local accumulator and one persistent global
// accumulator, and both rollup dimensions are computed per period and once
// globally. The first invariant violation aborts the run; no partial result
// is ever returned.
//
// The pass is sequential on purpose: the global rollup needs every period's
// legs, and output period order must mirror input order exactly.
func Summarize(ledger *model.Ledger) (*SummedBookkeeping, error) {
	accounts := ledger.AccountIndex()
	typeTable := ledger.Accounts.Categories()

	global := NewAccumulator()
	out := &SummedBookkeeping{Name: ledger.Name}

	seen := make(map[string]bool, len(ledger.Periods))
	for _, period := range ledger.Periods {
		if seen[period.Name] {
			return nil, &DuplicatePeriodError{Name: period.Name}
		}
		seen[period.Name] = true

		local := NewAccumulator()
		for _, txn := range period.Transactions {
			if err := ValidateTransaction(txn, accounts); err != nil {
				return nil, err
			}
			for li, leg := range txn.Transfers {
				tr := Transfer{
					ID:       id.FormatTransferID(period.Name, txn.Index, li),
					Name:     txn.Name,
					Date:     txn.Date,
					Amount:   leg.Amount,
					Siblings: txn.Transfers,
				}
				if err := local.Apply(leg.Account, leg.Amount, tr); err != nil {
					return nil, err
				}
				if err := global.Apply(leg.Account, leg.Amount, tr); err != nil {
					return nil, err
				}
			}
		}

		out.Periods = append(out.Periods, PeriodSummary{
			Name: period.Name,
			Grouping: SummedGrouping{
				AccountTypes: RollUp(local, typeTable),
				AccountSums:  RollUp(local, ledger.AccountSums),
			},
		})
	}

	out.Global = SummedGrouping{
		AccountTypes: RollUp(global, typeTable),
		AccountSums:  RollUp(global, ledger.AccountSums),
	}
	return out, nil
}
