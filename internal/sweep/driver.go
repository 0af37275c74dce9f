package sweep

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/quadlab/grhverify/internal/inequality"
	"github.com/quadlab/grhverify/internal/zeros"
)

// Defaults for the adaptive fetch loop.
const (
	// DefaultChunk is how many additional zeros each retry requests.
	DefaultChunk = 10

	// DefaultMaxZeros caps the total zeros spent on one discriminant.
	DefaultMaxZeros = 500

	// DefaultEpsilon is the half-width of the interval built around each
	// ordinate.
	DefaultEpsilon = 1e-6
)

// Driver runs the inequality test with adaptive zero accumulation.
//
// Each retry re-fetches a strictly larger ordinate prefix from the source
// and re-runs the verification over the rebuilt interval sequence. Sources
// return stable prefixes, so the sequence seen across retries only ever
// grows - never fewer, never reordered.
type Driver struct {
	source   zeros.Source
	chunk    int
	maxZeros int
	eps      float64
	vopts    []inequality.VerifyOption
}

// DriverOption configures a Driver.
type DriverOption func(*Driver)

// WithChunk sets how many additional zeros each retry fetches.
func WithChunk(n int) DriverOption {
	return func(d *Driver) { d.chunk = n }
}

// WithMaxZeros sets the hard ceiling on zeros spent per discriminant.
// The ceiling is mandatory; there is no analytic guarantee that any finite
// zero count certifies a given height.
func WithMaxZeros(n int) DriverOption {
	return func(d *Driver) { d.maxZeros = n }
}

// WithEpsilon sets the interval half-width around each ordinate.
func WithEpsilon(eps float64) DriverOption {
	return func(d *Driver) { d.eps = eps }
}

// WithVerifyOptions forwards options to every underlying Verify call,
// e.g. inequality.WithRemainderBound().
func WithVerifyOptions(opts ...inequality.VerifyOption) DriverOption {
	return func(d *Driver) { d.vopts = opts }
}

// NewDriver creates a Driver over the given zero source.
func NewDriver(source zeros.Source, opts ...DriverOption) *Driver {
	d := &Driver{
		source:   source,
		chunk:    DefaultChunk,
		maxZeros: DefaultMaxZeros,
		eps:      DefaultEpsilon,
	}
	for _, opt := range opts {
		opt(d)
	}
	// The fetch loop needs every retry to make progress.
	if d.chunk < 1 {
		d.chunk = 1
	}
	return d
}

// Epsilon returns the configured interval half-width.
func (dr *Driver) Epsilon() float64 { return dr.eps }

// MaxZeros returns the configured per-discriminant zero ceiling.
func (dr *Driver) MaxZeros() int { return dr.maxZeros }

// HeightFor picks the default verification height for d when the caller
// supplies none: the first zero ordinate plus 2*eps of padding, so the
// window edge clears the first enclosing interval.
func (dr *Driver) HeightFor(ctx context.Context, d int64) (float64, error) {
	ordinates, err := dr.source.Zeros(ctx, d, 1)
	if err != nil {
		return 0, fmt.Errorf("fetch first zero for d=%d: %w", d, err)
	}
	return ordinates[0] + 2*dr.eps, nil
}

// Verify runs the adaptive loop for one discriminant.
//
// An inconclusive outcome after the ceiling is reached is a normal result
// (Verified = false), not an error; errors are reserved for invalid inputs
// and zero-source failures.
func (dr *Driver) Verify(ctx context.Context, d int64, K int, eta float64, chi []int8, lambda []float64) (inequality.Result, error) {
	fetched := 0
	for {
		target := fetched + dr.chunk
		if target > dr.maxZeros {
			target = dr.maxZeros
		}

		var intervals []inequality.ZeroInterval
		if target > 0 {
			ordinates, err := dr.source.Zeros(ctx, d, target)
			if err != nil {
				return inequality.Result{}, fmt.Errorf("fetch zeros for d=%d: %w", d, err)
			}
			intervals = zeros.Intervals(ordinates, dr.eps)
		}

		res, err := inequality.Verify(d, K, eta, intervals, chi, lambda, dr.vopts...)
		if err != nil {
			return inequality.Result{}, err
		}
		if res.Verified {
			slog.Debug("inequality satisfied",
				"d", d,
				"eta", eta,
				"zeros_used", res.ZerosUsed,
			)
			return res, nil
		}
		if target >= dr.maxZeros {
			slog.Debug("zero ceiling reached, inconclusive",
				"d", d,
				"eta", eta,
				"max_zeros", dr.maxZeros,
			)
			return res, nil
		}
		fetched = target
	}
}
