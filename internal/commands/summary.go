package commands

import (
	"github.com/spf13/cobra"

	"github.com/tally-dev/tally/internal/ledger"
	"github.com/tally-dev/tally/internal/render"
	"github.com/tally-dev/tally/internal/summary"
)

func newSummaryCommand() *cobra.Command {
	var transfers bool

	cmd := &cobra.Command{
		Use:   "summary [ledger-file]",
		Short: "Compute and print the full summary of a ledger",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, cfg, err := resolveLedger(args)
			if err != nil {
				return err
			}
			if cfg != nil && !cmd.Flags().Changed("transfers") {
				transfers = cfg.Render.Transfers
			}

			led, err := ledger.Load(path)
			if err != nil {
				return err
			}
			summed, err := summary.Summarize(led)
			if err != nil {
				return err
			}
			return render.Encode(cmd.OutOrStdout(), summed, render.Options{Transfers: transfers})
		},
	}

	cmd.Flags().BoolVar(&transfers, "transfers", false, "list contributing transfers under every account")

	return cmd
}
