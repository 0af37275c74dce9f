package store

import (
	"context"
	"fmt"
)

// WriteZeros stores an ascending prefix of zero ordinates for d, starting
// at position 1. The stored positions are derived from slice order, so
// callers must always pass the full prefix fetched so far - never a tail on
// its own. Idempotent for positions already present.
func (s *Store) WriteZeros(ctx context.Context, d int64, ordinates []float64) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("write zeros: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO zeros (d, idx, gamma) VALUES (?, ?, ?)
		ON CONFLICT(d, idx) DO NOTHING
	`)
	if err != nil {
		return fmt.Errorf("write zeros: %w", err)
	}
	defer stmt.Close()

	for i, gamma := range ordinates {
		if _, err := stmt.ExecContext(ctx, d, i+1, gamma); err != nil {
			return fmt.Errorf("write zeros d=%d idx=%d: %w", d, i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("write zeros: %w", err)
	}
	return nil
}

// ReadZeros returns up to n cached ordinates for d in ascending position
// order. Fewer than n rows is not an error - the caller compares the length
// against its need and fetches the remainder from the zero-finder.
func (s *Store) ReadZeros(ctx context.Context, d int64, n int) ([]float64, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT gamma FROM zeros
		WHERE d = ?
		ORDER BY idx ASC
		LIMIT ?
	`, d, n)
	if err != nil {
		return nil, fmt.Errorf("read zeros: %w", err)
	}
	defer rows.Close()

	var ordinates []float64
	for rows.Next() {
		var gamma float64
		if err := rows.Scan(&gamma); err != nil {
			return nil, fmt.Errorf("read zeros: %w", err)
		}
		ordinates = append(ordinates, gamma)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read zeros: %w", err)
	}

	return ordinates, nil
}

// CountZeros returns how many ordinates are cached for d.
func (s *Store) CountZeros(ctx context.Context, d int64) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM zeros WHERE d = ?`, d).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count zeros: %w", err)
	}
	return count, nil
}
