package inequality

import "math"

// symmetryTol is the fixed tolerance used to classify an interval as
// symmetric about the origin. It is deliberately not configurable: the
// classification decides which closed-form contribution an interval gets,
// and varying it would change the minimal zero counts reported across runs.
const symmetryTol = 1e-8

// ZeroInterval encloses one nontrivial zero ordinate of an L-function.
//
// An interval is either asymmetric, enclosing a single ordinate near
// GammaPlus, or symmetric about the origin ([-gamma0, gamma0]), enclosing a
// conjugate pair. The two shapes contribute different closed forms to the
// inequality; IsSymmetric decides between them.
type ZeroInterval struct {
	GammaMinus float64
	GammaPlus  float64
}

// IsSymmetric reports whether the interval is symmetric about the origin,
// i.e. |GammaMinus + GammaPlus| < 1e-8.
func (z ZeroInterval) IsSymmetric() bool {
	return math.Abs(z.GammaMinus+z.GammaPlus) < symmetryTol
}

// Contribution returns the interval's term on the left-hand side of the
// inequality: 6/(9+4*gamma0^2) for a symmetric interval with
// gamma0 = |GammaPlus|, and 12/(9+4*GammaPlus^2) otherwise.
//
// The value is always in (0, 4/3], so accumulating contributions can only
// raise the left-hand side. Both the batch sum CZ and the early-exit loop
// in Verify go through this single primitive so the two paths can never
// diverge numerically.
func (z ZeroInterval) Contribution() float64 {
	if z.IsSymmetric() {
		gamma0 := math.Abs(z.GammaPlus)
		return 6.0 / (9.0 + 4.0*gamma0*gamma0)
	}
	return 12.0 / (9.0 + 4.0*z.GammaPlus*z.GammaPlus)
}

// CZ returns the batch sum of contributions over an entire interval
// sequence. It is the one-shot alternative to Verify's early-exit
// accumulation, useful when the caller has already decided exactly which
// intervals to spend.
func CZ(intervals []ZeroInterval) float64 {
	sum := 0.0
	for _, z := range intervals {
		sum += z.Contribution()
	}
	return sum
}

// ValidateSequence checks the ordering preconditions Verify depends on:
// intervals sorted by nondecreasing upper endpoint and pairwise disjoint.
// The check is O(n). A nil error does not certify the enclosed ordinates,
// only the shape of the sequence.
func ValidateSequence(intervals []ZeroInterval) error {
	for i, z := range intervals {
		if z.GammaMinus > z.GammaPlus {
			return &SequenceError{
				Index:   i,
				Message: "interval endpoints out of order",
			}
		}
		if i == 0 {
			continue
		}
		prev := intervals[i-1]
		if z.GammaPlus < prev.GammaPlus {
			return &SequenceError{
				Index:   i,
				Message: "intervals not in ascending order",
			}
		}
		if z.GammaMinus < prev.GammaPlus {
			return &SequenceError{
				Index:   i,
				Message: "intervals overlap",
			}
		}
	}
	return nil
}
