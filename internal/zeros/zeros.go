// Package zeros supplies nontrivial zero ordinates of quadratic Dirichlet
// L-functions and turns them into the interval sequences the verifier
// consumes. The production source shells out to the lcalc command-line
// tool; tests use the in-memory Fixed source.
package zeros

import (
	"context"
	"fmt"
	"sort"

	"github.com/quadlab/grhverify/internal/inequality"
)

// Source produces zero ordinates for a discriminant.
//
// Implemented by LCalc (production) and Fixed (tests). Implementations must
// return the first n positive ordinates in ascending order; the adaptive
// driver relies on a Source returning a stable prefix across calls with
// growing n, so that retry sequences only ever extend earlier ones.
type Source interface {
	Zeros(ctx context.Context, d int64, n int) ([]float64, error)
}

// Intervals builds the enclosing interval [gamma-eps, gamma+eps] around
// each ordinate, preserving order. The half-width eps is chosen by the
// caller; ordinates spaced closer than 2*eps would produce overlapping
// intervals, which the verifier's ordering precondition forbids, so eps
// should stay well below the expected zero spacing.
func Intervals(ordinates []float64, eps float64) []inequality.ZeroInterval {
	intervals := make([]inequality.ZeroInterval, len(ordinates))
	for i, gamma := range ordinates {
		intervals[i] = inequality.ZeroInterval{
			GammaMinus: gamma - eps,
			GammaPlus:  gamma + eps,
		}
	}
	return intervals
}

// Fixed is a Source backed by a predetermined ordinate list.
//
// It returns prefixes of the list, mirroring how a real zero-finder yields
// a stable, growing sequence. Requesting more ordinates than the list holds
// is an error, which exercises the driver's exhaustion path in tests.
type Fixed struct {
	Ordinates []float64
}

// NewFixed creates a Fixed source, sorting the ordinates ascending.
func NewFixed(ordinates ...float64) *Fixed {
	sorted := make([]float64, len(ordinates))
	copy(sorted, ordinates)
	sort.Float64s(sorted)
	return &Fixed{Ordinates: sorted}
}

// Zeros returns the first n ordinates.
func (f *Fixed) Zeros(_ context.Context, _ int64, n int) ([]float64, error) {
	if n > len(f.Ordinates) {
		return nil, fmt.Errorf("requested %d zeros, only %d available", n, len(f.Ordinates))
	}
	out := make([]float64, n)
	copy(out, f.Ordinates[:n])
	return out, nil
}
