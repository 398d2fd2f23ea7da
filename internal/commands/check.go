package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tally-dev/tally/internal/ledger"
	"github.com/tally-dev/tally/internal/summary"
)

func newCheckCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [ledger-file]",
		Short: "Validate a ledger without printing the summary",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, _, err := resolveLedger(args)
			if err != nil {
				return err
			}

			led, err := ledger.Load(path)
			if err != nil {
				return err
			}
			if _, err := summary.Summarize(led); err != nil {
				return err
			}

			txns := 0
			for _, p := range led.Periods {
				txns += len(p.Transactions)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ok: %d accounts, %d periods, %d transactions\n",
				len(led.AccountIndex()), len(led.Periods), txns)
			return nil
		},
	}

	return cmd
}
