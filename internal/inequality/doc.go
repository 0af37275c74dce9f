// Package inequality implements the explicit-formula inequality test that
// certifies a quadratic Dirichlet L-function has no nontrivial zero below a
// target height.
//
// The test compares a left-hand side built from a height term and the
// contributions of known zero-enclosing intervals against a right-hand side
// built from the discriminant and a truncated logarithmic-derivative sum.
// Contributions are strictly positive, so the left-hand side grows
// monotonically as intervals are consumed; Verify exploits this to stop at
// the minimal prefix of intervals that satisfies the inequality.
//
// All functions are pure: identical inputs produce bit-identical outputs,
// which callers rely on for reproducible sweeps and result caching. The
// arithmetic is ordinary float64 - the verdict is a numerical heuristic,
// not a certified proof.
package inequality
