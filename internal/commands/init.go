package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/tally-dev/tally/internal/config"
)

const starterLedger = `name: my bookkeeping
accounts:
  yearly_result: [last_year]
  income: [salary]
  asset: [money]
  expense: [groceries]
account_sums:
  spending: [groceries]
periods:
  - name: January
    transactions:
      - name: opening balance
        date: 2026-01-01
        transfers:
          last_year: -1000
          money: 1000
`

func newInitCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Create a starter ledger and tally.yaml",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}
			return runInit(cmd, dir)
		},
	}

	return cmd
}

func runInit(cmd *cobra.Command, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}

	cfgPath := filepath.Join(dir, config.Filename)
	if _, err := os.Stat(cfgPath); err == nil {
		return fmt.Errorf("%s already exists", cfgPath)
	}

	ledgerPath := filepath.Join(dir, "bookkeeping.yaml")
	if err := os.WriteFile(ledgerPath, []byte(starterLedger), 0o644); err != nil {
		return fmt.Errorf("writing starter ledger: %w", err)
	}

	if err := config.Save(cfgPath, config.Default("bookkeeping.yaml")); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "created %s and %s\n", ledgerPath, cfgPath)
	return nil
}
