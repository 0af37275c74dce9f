package cli

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/quadlab/grhverify/internal/store"
	"github.com/quadlab/grhverify/internal/sweep"
)

// SweepOptions holds flags for the sweep command.
type SweepOptions struct {
	*RootOptions
	DMin    int64
	DMax    int64
	Eta     float64
	K       int
	Workers int
}

// NewSweepCommand creates the sweep command.
func NewSweepCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SweepOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Verify a range of fundamental discriminants",
		Long: `Run the adaptive inequality test over every fundamental discriminant in
[d-min, d-max]. Verification of distinct discriminants is independent, so
the range is processed by a bounded worker pool.

Outcomes are persisted to the database; discriminants already decided by an
earlier run are skipped, so an interrupted sweep can simply be re-run. The
CSV summary and error log land in the configured output directory.

Example:
  grhverify sweep --d-min -1000 --d-max 1000
  grhverify sweep --d-min 2 --d-max 100000 --workers 8 --config run.yaml`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSweep(opts, cmd)
		},
	}

	cmd.Flags().Int64Var(&opts.DMin, "d-min", 0, "minimum discriminant (required)")
	cmd.Flags().Int64Var(&opts.DMax, "d-max", 0, "maximum discriminant (required)")
	cmd.Flags().Float64Var(&opts.Eta, "eta", 0, "height to certify (default: per-discriminant)")
	cmd.Flags().IntVar(&opts.K, "k", 0, "truncation bound override")
	cmd.Flags().IntVar(&opts.Workers, "workers", 0, "worker pool size override")
	_ = cmd.MarkFlagRequired("d-min")
	_ = cmd.MarkFlagRequired("d-max")

	return cmd
}

func runSweep(opts *SweepOptions, cmd *cobra.Command) error {
	out := &OutputFormatter{Format: opts.Format, Writer: os.Stdout, Verbose: opts.Verbose}

	cfg, err := loadConfig(opts.RootOptions)
	if err != nil {
		return err
	}
	if opts.K > 0 {
		cfg.K = opts.K
	}
	if opts.Workers > 0 {
		cfg.Workers = opts.Workers
	}
	if opts.Eta > 0 {
		cfg.Eta = opts.Eta
	}
	if opts.DMin > opts.DMax {
		return NewExitError(ExitCommandError, "--d-min must not exceed --d-max")
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

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return WrapExitError(ExitCommandError, "failed to create output directory", err)
	}
	errLogPath := filepath.Join(cfg.OutputDir, "errors.log")
	errLogFile, err := os.OpenFile(errLogPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open error log", err)
	}
	defer errLogFile.Close()

	sw := &sweep.Sweep{
		Driver:  newDriver(cfg, st),
		Store:   st,
		Workers: cfg.Workers,
		K:       cfg.K,
		Eta:     cfg.Eta,
		Errors:  sweep.NewErrorLog(errLogFile),
	}

	sum, err := sw.Run(cmd.Context(), opts.DMin, opts.DMax)
	if err != nil {
		return WrapExitError(ExitCommandError, "sweep failed", err)
	}

	// Export the cumulative summary CSV alongside the error log.
	if err := writeSummaryFile(cmd, st, cfg.OutputDir); err != nil {
		return WrapExitError(ExitCommandError, "failed to write summary", err)
	}

	if opts.Format == "json" {
		if err := out.Success(sum); err != nil {
			return err
		}
	} else {
		if err := sweep.WriteReport(os.Stdout, sum); err != nil {
			return err
		}
	}

	if sum.Inconclusive > 0 || sum.Failed > 0 {
		return NewExitError(ExitInconclusive,
			fmt.Sprintf("%d inconclusive, %d failed", sum.Inconclusive, sum.Failed))
	}
	return nil
}

// writeSummaryFile renders every stored result to summary.csv.
func writeSummaryFile(cmd *cobra.Command, st *store.Store, outputDir string) error {
	results, err := st.ListResults(cmd.Context())
	if err != nil {
		return err
	}

	path := filepath.Join(outputDir, "summary.csv")
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := sweep.WriteSummaryCSV(f, results); err != nil {
		return err
	}
	slog.Info("summary written", "path", path, "rows", len(results))
	return nil
}
