package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// Result is a persisted verification outcome for one (d, eta) pair.
type Result struct {
	D         int64
	Eta       float64
	Verified  bool
	ZerosUsed int
	LHS       float64
	RHS       float64
	RunID     string
	CreatedAt time.Time
}

// WriteResult persists a verification outcome. Idempotent on (d, eta):
// the first recorded outcome for a pair stands, so a resumed sweep cannot
// overwrite earlier work.
func (s *Store) WriteResult(ctx context.Context, r Result) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO results (d, eta, verified, zeros_used, lhs, rhs, run_id)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(d, eta) DO NOTHING
	`, r.D, r.Eta, boolToInt(r.Verified), r.ZerosUsed, r.LHS, r.RHS, r.RunID)
	if err != nil {
		return fmt.Errorf("write result d=%d: %w", r.D, err)
	}
	return nil
}

// ReadResult returns the stored outcome for (d, eta), or ErrNotCached.
func (s *Store) ReadResult(ctx context.Context, d int64, eta float64) (Result, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT d, eta, verified, zeros_used, lhs, rhs, run_id, created_at
		FROM results
		WHERE d = ? AND eta = ?
	`, d, eta)

	r, err := scanResult(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Result{}, fmt.Errorf("result d=%d eta=%g: %w", d, eta, ErrNotCached)
	}
	if err != nil {
		return Result{}, fmt.Errorf("read result: %w", err)
	}
	return r, nil
}

// HasResult reports whether an outcome is already stored for (d, eta).
// Sweeps use this to skip discriminants finished by an earlier run.
func (s *Store) HasResult(ctx context.Context, d int64, eta float64) (bool, error) {
	var one int
	err := s.db.QueryRowContext(ctx, `
		SELECT 1 FROM results WHERE d = ? AND eta = ?
	`, d, eta).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("has result: %w", err)
	}
	return true, nil
}

// ListResults returns all stored outcomes ordered by discriminant then
// height. The deterministic ordering keeps exported summaries stable
// across runs.
func (s *Store) ListResults(ctx context.Context) ([]Result, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT d, eta, verified, zeros_used, lhs, rhs, run_id, created_at
		FROM results
		ORDER BY d ASC, eta ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("list results: %w", err)
	}
	defer rows.Close()

	results := []Result{}
	for rows.Next() {
		r, err := scanResult(rows)
		if err != nil {
			return nil, fmt.Errorf("list results: %w", err)
		}
		results = append(results, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list results: %w", err)
	}

	return results, nil
}

// scanner abstracts sql.Row and sql.Rows for scanResult.
type scanner interface {
	Scan(dest ...any) error
}

func scanResult(sc scanner) (Result, error) {
	var (
		r         Result
		verified  int
		createdAt string
	)
	if err := sc.Scan(&r.D, &r.Eta, &verified, &r.ZerosUsed, &r.LHS, &r.RHS, &r.RunID, &createdAt); err != nil {
		return Result{}, err
	}
	r.Verified = verified != 0

	ts, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return Result{}, fmt.Errorf("parse created_at %q: %w", createdAt, err)
	}
	r.CreatedAt = ts

	return r, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
