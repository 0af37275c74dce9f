package store

import (
	"context"
	"errors"
	"fmt"
)

// ErrNotCached indicates the requested data is absent or only partially
// populated. Callers fall back to generating the data and writing it back.
var ErrNotCached = errors.New("not cached")

// WriteKronecker stores the Kronecker table chi_d(k) for k = 1..len(chi)-1.
// The chi slice uses the 1-based layout produced by arith.Kronecker (index
// 0 unused). Idempotent: re-writing an existing (d, k) pair is a no-op.
func (s *Store) WriteKronecker(ctx context.Context, d int64, chi []int8) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("write kronecker: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO kronecker (d, k, chi) VALUES (?, ?, ?)
		ON CONFLICT(d, k) DO NOTHING
	`)
	if err != nil {
		return fmt.Errorf("write kronecker: %w", err)
	}
	defer stmt.Close()

	for k := 1; k < len(chi); k++ {
		if _, err := stmt.ExecContext(ctx, d, k, chi[k]); err != nil {
			return fmt.Errorf("write kronecker d=%d k=%d: %w", d, k, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("write kronecker: %w", err)
	}
	return nil
}

// ReadKronecker returns the cached chi_d(k) table for k = 1..K in the
// 1-based slice layout. Returns ErrNotCached unless every index up to K is
// present - a partially populated table must never be padded with zeros,
// since a zeroed chi(k) silently corrupts the logarithmic-derivative sum.
func (s *Store) ReadKronecker(ctx context.Context, d int64, K int) ([]int8, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT k, chi FROM kronecker
		WHERE d = ? AND k <= ?
		ORDER BY k ASC
	`, d, K)
	if err != nil {
		return nil, fmt.Errorf("read kronecker: %w", err)
	}
	defer rows.Close()

	chi := make([]int8, K+1)
	count := 0
	for rows.Next() {
		var k int
		var v int8
		if err := rows.Scan(&k, &v); err != nil {
			return nil, fmt.Errorf("read kronecker: %w", err)
		}
		chi[k] = v
		count++
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read kronecker: %w", err)
	}

	if count < K {
		return nil, fmt.Errorf("kronecker d=%d covers %d of %d entries: %w", d, count, K, ErrNotCached)
	}
	return chi, nil
}

// WriteVonMangoldt stores Lambda(k) for k = 1..len(lambda)-1, in the same
// 1-based layout as arith.VonMangoldt. Idempotent.
func (s *Store) WriteVonMangoldt(ctx context.Context, lambda []float64) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("write von mangoldt: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO von_mangoldt (k, lambda) VALUES (?, ?)
		ON CONFLICT(k) DO NOTHING
	`)
	if err != nil {
		return fmt.Errorf("write von mangoldt: %w", err)
	}
	defer stmt.Close()

	for k := 1; k < len(lambda); k++ {
		if _, err := stmt.ExecContext(ctx, k, lambda[k]); err != nil {
			return fmt.Errorf("write von mangoldt k=%d: %w", k, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("write von mangoldt: %w", err)
	}
	return nil
}

// ReadVonMangoldt returns the cached Lambda table for k = 1..K in the
// 1-based slice layout, or ErrNotCached if any index up to K is missing.
func (s *Store) ReadVonMangoldt(ctx context.Context, K int) ([]float64, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT k, lambda FROM von_mangoldt
		WHERE k <= ?
		ORDER BY k ASC
	`, K)
	if err != nil {
		return nil, fmt.Errorf("read von mangoldt: %w", err)
	}
	defer rows.Close()

	lambda := make([]float64, K+1)
	count := 0
	for rows.Next() {
		var k int
		var v float64
		if err := rows.Scan(&k, &v); err != nil {
			return nil, fmt.Errorf("read von mangoldt: %w", err)
		}
		lambda[k] = v
		count++
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read von mangoldt: %w", err)
	}

	if count < K {
		return nil, fmt.Errorf("von mangoldt covers %d of %d entries: %w", count, K, ErrNotCached)
	}
	return lambda, nil
}
