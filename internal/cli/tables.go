package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/quadlab/grhverify/internal/arith"
	"github.com/quadlab/grhverify/internal/store"
	"github.com/quadlab/grhverify/internal/sweep"
)

// TablesOptions holds flags for the tables command.
type TablesOptions struct {
	*RootOptions
	Discriminant int64
	K            int
}

// NewTablesCommand creates the tables command.
func NewTablesCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &TablesOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "tables",
		Short: "Precompute and cache arithmetic tables",
		Long: `Build the Kronecker table for a discriminant and the shared von Mangoldt
table up to the truncation bound, writing both to the database. Sweeps do
this on demand; precomputing is useful before launching many parallel runs
against the same database.

Example:
  grhverify tables -d 5 --k 100000`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTables(opts, cmd)
		},
	}

	cmd.Flags().Int64VarP(&opts.Discriminant, "discriminant", "d", 0, "fundamental discriminant (required)")
	cmd.Flags().IntVar(&opts.K, "k", 0, "truncation bound override")
	_ = cmd.MarkFlagRequired("discriminant")

	return cmd
}

func runTables(opts *TablesOptions, cmd *cobra.Command) error {
	out := &OutputFormatter{Format: opts.Format, Writer: os.Stdout, Verbose: opts.Verbose}

	cfg, err := loadConfig(opts.RootOptions)
	if err != nil {
		return err
	}
	if opts.K > 0 {
		cfg.K = opts.K
	}

	d := opts.Discriminant
	if !arith.IsFundamental(d) {
		return NewExitError(ExitCommandError, fmt.Sprintf("d = %d is not a fundamental discriminant", d))
	}

	st, err := store.Open(cfg.Database)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open database", err)
	}
	defer func() {
		if closeErr := st.Close(); closeErr != nil {
			slog.Error("error closing database", "error", closeErr)
		}
	}()

	ctx := cmd.Context()
	if _, err := sweep.ChiTable(ctx, st, d, cfg.K); err != nil {
		return WrapExitError(ExitCommandError, "failed to build kronecker table", err)
	}
	if _, err := sweep.LambdaTable(ctx, st, cfg.K); err != nil {
		return WrapExitError(ExitCommandError, "failed to build von mangoldt table", err)
	}

	return out.Success(fmt.Sprintf("tables for d = %d cached up to K = %d", d, cfg.K))
}
