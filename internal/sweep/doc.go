// Package sweep orchestrates verification across discriminants.
//
// Driver wraps the pure inequality test with the adaptive zero-fetch loop:
// when the supplied intervals are insufficient it asks the zero source for
// a strictly larger prefix and retries, up to a hard ceiling. Sweep fans a
// Driver out over a discriminant range with a bounded worker pool, persists
// outcomes to the store, and renders the CSV summary and error log.
//
// There is no analytic guarantee that any finite zero count certifies a
// given height for a small truncation bound, so the ceiling is mandatory:
// a Driver cannot be constructed without one.
package sweep
