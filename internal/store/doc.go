// Package store provides SQLite-backed caching for verification inputs and
// outcomes.
//
// Cached data, all expensive to regenerate:
//   - Kronecker tables: chi_d(k) per discriminant
//   - Von Mangoldt table: Lambda(k), shared across discriminants
//   - Zeros: ascending ordinates per discriminant, stored as an indexed
//     prefix so adaptive retries can reuse earlier fetches
//   - Results: per-discriminant verdicts with the run that produced them
//
// Writes are idempotent (ON CONFLICT DO NOTHING), which lets an interrupted
// sweep resume against the same database without special handling.
package store
