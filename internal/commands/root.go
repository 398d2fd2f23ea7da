package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tally-dev/tally/internal/buildinfo"
	"github.com/tally-dev/tally/internal/config"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "tally",
		Short:   "Summarize double-entry bookkeeping ledgers",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newSummaryCommand())
	rootCmd.AddCommand(newCheckCommand())
	rootCmd.AddCommand(newInitCommand())

	return rootCmd
}

// resolveLedger picks the ledger path from the command arguments, falling
// back to tally.yaml in the working directory. The config is returned too
// when it was consulted, so commands can pick up render defaults.
func resolveLedger(args []string) (string, *config.Config, error) {
	if len(args) > 0 {
		return args[0], nil, nil
	}
	cfg, err := config.Load(config.Filename)
	if err != nil {
		return "", nil, fmt.Errorf("no ledger file given and no %s in the working directory", config.Filename)
	}
	if cfg.Ledger == "" {
		return "", nil, fmt.Errorf("%s does not set a ledger path", config.Filename)
	}
	return cfg.Ledger, cfg, nil
}
