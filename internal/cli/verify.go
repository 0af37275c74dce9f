package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/quadlab/grhverify/internal/arith"
	"github.com/quadlab/grhverify/internal/inequality"
	"github.com/quadlab/grhverify/internal/store"
	"github.com/quadlab/grhverify/internal/sweep"
)

// VerifyOptions holds flags for the verify command.
type VerifyOptions struct {
	*RootOptions
	Discriminant int64
	Eta          float64
	K            int
	MaxZeros     int
}

// verifyReport is the command's output payload.
type verifyReport struct {
	D int64 `json:"d"`
	inequality.Result
	Eta float64 `json:"eta"`
}

func (r verifyReport) String() string {
	if r.Verified {
		return fmt.Sprintf("d = %d verified up to height %g using %d zero(s) (lhs=%.6f > rhs=%.6f)",
			r.D, r.Eta, r.ZerosUsed, r.LHS, r.RHS)
	}
	return fmt.Sprintf("d = %d inconclusive up to height %g after %d zero(s) (lhs=%.6f <= rhs=%.6f)",
		r.D, r.Eta, r.ZerosUsed, r.LHS, r.RHS)
}

// NewVerifyCommand creates the verify command.
func NewVerifyCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &VerifyOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify one fundamental discriminant",
		Long: `Run the adaptive inequality test for a single discriminant.

Zeros are fetched chunk-by-chunk from the configured zero-finder (cached in
the database) until the inequality flips or the zero ceiling is reached.

Example:
  grhverify verify -d 5
  grhverify verify -d -163 --eta 2.5 --config run.yaml`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVerify(opts, cmd)
		},
	}

	cmd.Flags().Int64VarP(&opts.Discriminant, "discriminant", "d", 0, "fundamental discriminant (required)")
	cmd.Flags().Float64Var(&opts.Eta, "eta", 0, "height to certify (default: first zero + padding)")
	cmd.Flags().IntVar(&opts.K, "k", 0, "truncation bound override")
	cmd.Flags().IntVar(&opts.MaxZeros, "max-zeros", 0, "zero ceiling override")
	_ = cmd.MarkFlagRequired("discriminant")

	return cmd
}

func runVerify(opts *VerifyOptions, cmd *cobra.Command) error {
	out := &OutputFormatter{Format: opts.Format, Writer: os.Stdout, Verbose: opts.Verbose}

	cfg, err := loadConfig(opts.RootOptions)
	if err != nil {
		return err
	}
	if opts.K > 0 {
		cfg.K = opts.K
	}
	if opts.MaxZeros > 0 {
		cfg.MaxZeros = opts.MaxZeros
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

	driver := newDriver(cfg, st)
	ctx := cmd.Context()

	eta := opts.Eta
	if eta == 0 {
		eta, err = driver.HeightFor(ctx, d)
		if err != nil {
			return WrapExitError(ExitCommandError, "failed to choose default height", err)
		}
		slog.Debug("using default height", "d", d, "eta", eta)
	}

	// An outcome already stored for (d, eta) is authoritative; report it
	// without redoing the computation.
	cached, err := st.ReadResult(ctx, d, eta)
	if err == nil {
		slog.Debug("reporting stored result", "d", d, "eta", eta, "run_id", cached.RunID)
		return reportOutcome(out, d, eta, inequality.Result{
			Verified:  cached.Verified,
			ZerosUsed: cached.ZerosUsed,
			LHS:       cached.LHS,
			RHS:       cached.RHS,
		})
	}
	if !errors.Is(err, store.ErrNotCached) {
		return WrapExitError(ExitCommandError, "failed to read stored result", err)
	}

	chi, err := sweep.ChiTable(ctx, st, d, cfg.K)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to build kronecker table", err)
	}
	lambda, err := sweep.LambdaTable(ctx, st, cfg.K)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to build von mangoldt table", err)
	}

	res, err := driver.Verify(ctx, d, cfg.K, eta, chi, lambda)
	if err != nil {
		return WrapExitError(ExitCommandError, "verification failed", err)
	}

	err = st.WriteResult(ctx, store.Result{
		D:         d,
		Eta:       eta,
		Verified:  res.Verified,
		ZerosUsed: res.ZerosUsed,
		LHS:       res.LHS,
		RHS:       res.RHS,
		RunID:     uuid.Must(uuid.NewV7()).String(),
	})
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to persist result", err)
	}

	return reportOutcome(out, d, eta, res)
}

// reportOutcome emits the report and maps an inconclusive verdict to its
// exit code.
func reportOutcome(out *OutputFormatter, d int64, eta float64, res inequality.Result) error {
	if err := out.Success(verifyReport{D: d, Result: res, Eta: eta}); err != nil {
		return err
	}
	if !res.Verified {
		return NewExitError(ExitInconclusive, "inconclusive: supplied zeros insufficient, raise --max-zeros or K")
	}
	return nil
}
