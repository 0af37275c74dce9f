package inequality

import (
	"fmt"
	"math"
)

// eulerGamma is the Euler-Mascheroni constant used in both closed-form
// right-hand side bounds.
const eulerGamma = 0.5772156649015329

// DiscriminantSign selects which closed-form right-hand side bound applies.
type DiscriminantSign int

const (
	// SignNegative selects the d < 0 bound: 0.5*ln(|d|*e^2 / (4*pi*e^gamma)).
	SignNegative DiscriminantSign = iota

	// SignPositive selects the d > 0 bound: 0.5*ln(d / (pi*e^gamma)).
	SignPositive
)

// SignOf classifies a nonzero discriminant. d = 0 has no valid sign and is
// rejected by Verify before this is consulted.
func SignOf(d int64) DiscriminantSign {
	if d < 0 {
		return SignNegative
	}
	return SignPositive
}

// rhsConstant returns the sign-dependent closed-form term of the
// right-hand side, without the logarithmic-derivative contribution.
func rhsConstant(d int64) float64 {
	abs := math.Abs(float64(d))
	switch SignOf(d) {
	case SignNegative:
		return 0.5 * math.Log(abs*math.E*math.E/(4.0*math.Pi*math.Exp(eulerGamma)))
	default:
		return 0.5 * math.Log(abs/(math.Pi*math.Exp(eulerGamma)))
	}
}

// Result is the outcome of a single Verify call.
//
// Verified = false is inconclusive, not negative: it means the supplied
// intervals were insufficient to flip the inequality, not that a zero off
// the critical line exists.
type Result struct {
	// Verified reports whether the inequality flipped.
	Verified bool `json:"verified"`

	// ZerosUsed is the number of intervals consumed. For a verified result
	// this is the minimal prefix length of the given sequence that
	// suffices; for an inconclusive result it is the full sequence length.
	ZerosUsed int `json:"zeros_used"`

	// LHS and RHS are the final values of the two sides.
	LHS float64 `json:"lhs"`
	RHS float64 `json:"rhs"`
}

// verifyConfig collects the optional behaviors of Verify.
type verifyConfig struct {
	sequenceCheck  bool
	remainderBound bool
}

// VerifyOption configures a Verify call.
type VerifyOption func(*verifyConfig)

// WithSequenceCheck validates the interval sequence ordering and
// disjointness before any accumulation. The check is O(n); without it a
// malformed sequence silently voids the minimal-prefix property of
// ZerosUsed.
func WithSequenceCheck() VerifyOption {
	return func(c *verifyConfig) { c.sequenceCheck = true }
}

// WithRemainderBound adds the analytic tail bound for the truncated
// logarithmic-derivative series to the right-hand side, making the verdict
// conservative about the dropped terms. Requires K >= 18.
func WithRemainderBound() VerifyOption {
	return func(c *verifyConfig) { c.remainderBound = true }
}

// Verify runs the inequality test for discriminant d at height eta, using
// arithmetic tables truncated at K and the given zero-enclosing intervals.
//
// The interval sequence must be ordered by nondecreasing enclosed-zero
// magnitude and pairwise disjoint; Verify consumes it strictly in order and
// never reorders or deduplicates. Intervals are accumulated one at a time
// onto the left-hand side, and the inequality is tested immediately after
// each contribution. Because every contribution is strictly positive, the
// first prefix that crosses is the smallest one that can, so Verify stops
// there and reports its length in ZerosUsed.
//
// Exhausting the sequence without crossing yields Verified = false with
// ZerosUsed equal to the sequence length - the caller should supply more
// intervals (or a larger K) and try again.
//
// The call is purely computational: no I/O, no shared state, deterministic
// for fixed inputs. Concurrent calls on independent inputs are safe.
func Verify(d int64, K int, eta float64, intervals []ZeroInterval, chi []int8, lambda []float64, opts ...VerifyOption) (Result, error) {
	if d == 0 {
		return Result{}, ErrInvalidDiscriminant
	}

	var cfg verifyConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.sequenceCheck {
		if err := ValidateSequence(intervals); err != nil {
			return Result{}, err
		}
	}

	logDeriv, err := LogDerivative(chi, lambda, K)
	if err != nil {
		return Result{}, fmt.Errorf("compute logarithmic derivative: %w", err)
	}
	rhs := rhsConstant(d) + logDeriv

	if cfg.remainderBound {
		tail, err := RemainderBound(K)
		if err != nil {
			return Result{}, fmt.Errorf("compute remainder bound: %w", err)
		}
		rhs += tail
	}

	lhs := 2.0 * Iota(eta)
	zerosUsed := 0

	for _, z := range intervals {
		zerosUsed++
		lhs += z.Contribution()
		if lhs > rhs {
			return Result{Verified: true, ZerosUsed: zerosUsed, LHS: lhs, RHS: rhs}, nil
		}
	}

	// Not enough zeros to flip the inequality.
	return Result{Verified: false, ZerosUsed: zerosUsed, LHS: lhs, RHS: rhs}, nil
}
