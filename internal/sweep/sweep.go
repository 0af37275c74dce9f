package sweep

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/quadlab/grhverify/internal/arith"
	"github.com/quadlab/grhverify/internal/store"
)

// DefaultWorkers bounds the worker pool when the caller does not
// configure one. Verification of distinct discriminants shares no mutable
// state, so the pool size is purely a resource knob.
const DefaultWorkers = 4

// Sweep runs the adaptive verifier over a range of discriminants.
//
// Non-fundamental values in the range are skipped silently, as are
// discriminants with an outcome already in the store (resume). Each
// verified or inconclusive outcome is persisted with the sweep's run ID.
// Per-discriminant failures are recorded and the sweep continues; retrying
// would not make a zero-finder failure deterministic.
type Sweep struct {
	Driver  *Driver
	Store   *store.Store
	Workers int

	// K is the truncation bound for the arithmetic tables.
	K int

	// Eta is the height to certify. Zero means per-discriminant default
	// (first zero ordinate plus padding).
	Eta float64

	// Errors receives per-discriminant failures. Optional.
	Errors *ErrorLog
}

// Summary aggregates a sweep run.
type Summary struct {
	RunID        string `json:"run_id"`
	Candidates   int    `json:"candidates"`
	Verified     int    `json:"verified"`
	Inconclusive int    `json:"inconclusive"`
	Skipped      int    `json:"skipped"`
	Failed       int    `json:"failed"`
}

// Run sweeps discriminants dMin..dMax inclusive and returns the summary.
//
// The range is fanned out over a bounded errgroup pool; the first context
// cancellation stops scheduling, but individual verification failures only
// mark the discriminant failed.
func (s *Sweep) Run(ctx context.Context, dMin, dMax int64) (Summary, error) {
	if dMin > dMax {
		return Summary{}, fmt.Errorf("invalid range: d-min %d exceeds d-max %d", dMin, dMax)
	}

	workers := s.Workers
	if workers <= 0 {
		workers = DefaultWorkers
	}

	// The von Mangoldt table is shared by every worker; build it once
	// up front rather than racing the read-through on first use.
	lambda, err := LambdaTable(ctx, s.Store, s.K)
	if err != nil {
		return Summary{}, err
	}

	runID := uuid.Must(uuid.NewV7()).String()
	sum := Summary{RunID: runID}
	var mu sync.Mutex

	slog.Info("sweep starting",
		"run_id", runID,
		"d_min", dMin,
		"d_max", dMax,
		"K", s.K,
		"workers", workers,
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for d := dMin; d <= dMax; d++ {
		if !arith.IsFundamental(d) {
			continue
		}
		mu.Lock()
		sum.Candidates++
		mu.Unlock()

		d := d
		g.Go(func() error {
			outcome, err := s.verifyOne(gctx, d, lambda, runID)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err != nil:
				sum.Failed++
				slog.Error("verification failed", "d", d, "error", err)
				if s.Errors != nil {
					s.Errors.Record(d, err)
				}
			case outcome == outcomeSkipped:
				sum.Skipped++
			case outcome == outcomeVerified:
				sum.Verified++
			default:
				sum.Inconclusive++
			}
			// Only context cancellation aborts the group.
			return gctx.Err()
		})
	}

	if err := g.Wait(); err != nil {
		return sum, fmt.Errorf("sweep aborted: %w", err)
	}

	slog.Info("sweep finished",
		"run_id", runID,
		"verified", sum.Verified,
		"inconclusive", sum.Inconclusive,
		"skipped", sum.Skipped,
		"failed", sum.Failed,
	)
	return sum, nil
}

type outcome int

const (
	outcomeVerified outcome = iota
	outcomeInconclusive
	outcomeSkipped
)

// verifyOne handles a single fundamental discriminant: resume check, table
// load, height selection, adaptive verification, persistence.
func (s *Sweep) verifyOne(ctx context.Context, d int64, lambda []float64, runID string) (outcome, error) {
	eta := s.Eta
	if eta == 0 {
		h, err := s.Driver.HeightFor(ctx, d)
		if err != nil {
			return 0, err
		}
		eta = h
	}

	if s.Store != nil {
		done, err := s.Store.HasResult(ctx, d, eta)
		if err != nil {
			return 0, err
		}
		if done {
			slog.Debug("result cached, skipping", "d", d, "eta", eta)
			return outcomeSkipped, nil
		}
	}

	chi, err := ChiTable(ctx, s.Store, d, s.K)
	if err != nil {
		return 0, err
	}

	res, err := s.Driver.Verify(ctx, d, s.K, eta, chi, lambda)
	if err != nil {
		return 0, err
	}

	if s.Store != nil {
		err := s.Store.WriteResult(ctx, store.Result{
			D:         d,
			Eta:       eta,
			Verified:  res.Verified,
			ZerosUsed: res.ZerosUsed,
			LHS:       res.LHS,
			RHS:       res.RHS,
			RunID:     runID,
		})
		if err != nil {
			return 0, err
		}
	}

	if res.Verified {
		slog.Info("verified", "d", d, "eta", eta, "zeros_used", res.ZerosUsed)
		return outcomeVerified, nil
	}
	slog.Warn("inconclusive", "d", d, "eta", eta, "zeros_used", res.ZerosUsed)
	return outcomeInconclusive, nil
}
