package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/quadlab/grhverify/internal/arith"
	"github.com/quadlab/grhverify/internal/store"
)

// ZerosOptions holds flags for the zeros command.
type ZerosOptions struct {
	*RootOptions
	Discriminant int64
	Count        int
}

// NewZerosCommand creates the zeros command.
func NewZerosCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ZerosOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "zeros",
		Short: "Fetch and cache zero ordinates",
		Long: `Fetch the first N zero ordinates of L(s, chi_d) from the configured
zero-finder, caching them in the database, and print them.

Example:
  grhverify zeros -d 5 -n 20`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runZeros(opts, cmd)
		},
	}

	cmd.Flags().Int64VarP(&opts.Discriminant, "discriminant", "d", 0, "fundamental discriminant (required)")
	cmd.Flags().IntVarP(&opts.Count, "count", "n", 10, "number of zeros to fetch")
	_ = cmd.MarkFlagRequired("discriminant")

	return cmd
}

func runZeros(opts *ZerosOptions, cmd *cobra.Command) error {
	out := &OutputFormatter{Format: opts.Format, Writer: os.Stdout, Verbose: opts.Verbose}

	cfg, err := loadConfig(opts.RootOptions)
	if err != nil {
		return err
	}
	if opts.Count <= 0 {
		return NewExitError(ExitCommandError, "--count must be positive")
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

	source := newSource(cfg, st)
	ordinates, err := source.Zeros(cmd.Context(), d, opts.Count)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to fetch zeros", err)
	}

	if opts.Format == "json" {
		return out.Success(map[string]any{"d": d, "zeros": ordinates})
	}
	for i, gamma := range ordinates {
		fmt.Fprintf(os.Stdout, "%4d  %.12f\n", i+1, gamma)
	}
	return nil
}
