// Package arith builds the arithmetic-function tables the inequality engine
// consumes: Kronecker symbol values chi_d(k) and von Mangoldt values
// Lambda(k) for k = 1..K, plus the fundamental-discriminant predicate used
// to filter sweep ranges.
//
// Tables are plain slices indexed 1..K with index 0 unused, matching the
// layout inequality.LogDerivative expects.
package arith
