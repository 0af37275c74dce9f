package inequality

import (
	"fmt"
	"math"
)

// minRemainderK is the smallest truncation bound for which the analytic
// tail bound in RemainderBound is valid.
const minRemainderK = 18

// LogDerivative computes the truncated logarithmic-derivative sum
//
//	sum_{k=1}^{K} -chi(k) * lambda(k) / k^2
//
// over the Kronecker table chi and the von Mangoldt table lambda. Both
// tables are indexed 1..K with index 0 unused; terms where chi(k) = 0 are
// skipped (they contribute nothing and lambda need not be touched).
//
// K = 0 returns 0 regardless of table contents. A K beyond either table's
// populated range returns a TableRangeError.
func LogDerivative(chi []int8, lambda []float64, K int) (float64, error) {
	if K < 0 {
		return 0, fmt.Errorf("truncation bound must be nonnegative, got %d", K)
	}
	// An empty truncation needs no table entries at all.
	if K == 0 {
		return 0, nil
	}
	if len(chi) <= K {
		return 0, &TableRangeError{Table: "kronecker", K: K, Have: len(chi) - 1}
	}
	if len(lambda) <= K {
		return 0, &TableRangeError{Table: "von_mangoldt", K: K, Have: len(lambda) - 1}
	}

	sum := 0.0
	for k := 1; k <= K; k++ {
		chiK := chi[k]
		if chiK == 0 {
			continue
		}
		kf := float64(k)
		sum -= float64(chiK) * lambda[k] / (kf * kf)
	}
	return sum, nil
}

// RemainderBound returns the analytic upper bound on the tail of the
// logarithmic-derivative series truncated at K, for the first-derivative
// case. Adding it to the right-hand side makes the verdict conservative
// with respect to the dropped terms.
//
// The bound is only valid for K >= 18.
func RemainderBound(K int) (float64, error) {
	if K < minRemainderK {
		return 0, fmt.Errorf("remainder bound requires K >= %d, got %d", minRemainderK, K)
	}
	return (8.55/math.Log(float64(K)) + 1.0) / float64(K), nil
}
