package sweep

import (
	"context"
	"errors"
	"fmt"

	"github.com/quadlab/grhverify/internal/arith"
	"github.com/quadlab/grhverify/internal/store"
)

// ChiTable returns the Kronecker table chi_d(k) for k = 1..K, reading
// through the store: a complete cached table is returned as-is, anything
// else is recomputed and written back.
func ChiTable(ctx context.Context, st *store.Store, d int64, K int) ([]int8, error) {
	if st != nil {
		chi, err := st.ReadKronecker(ctx, d, K)
		if err == nil {
			return chi, nil
		}
		if !errors.Is(err, store.ErrNotCached) {
			return nil, err
		}
	}

	chi, err := arith.Kronecker(d, K)
	if err != nil {
		return nil, fmt.Errorf("compute kronecker table: %w", err)
	}
	if st != nil {
		if err := st.WriteKronecker(ctx, d, chi); err != nil {
			return nil, err
		}
	}
	return chi, nil
}

// LambdaTable returns the von Mangoldt table Lambda(k) for k = 1..K,
// reading through the store like ChiTable. The table is independent of the
// discriminant, so one cached copy serves the whole sweep.
func LambdaTable(ctx context.Context, st *store.Store, K int) ([]float64, error) {
	if st != nil {
		lambda, err := st.ReadVonMangoldt(ctx, K)
		if err == nil {
			return lambda, nil
		}
		if !errors.Is(err, store.ErrNotCached) {
			return nil, err
		}
	}

	lambda, err := arith.VonMangoldt(K)
	if err != nil {
		return nil, fmt.Errorf("compute von mangoldt table: %w", err)
	}
	if st != nil {
		if err := st.WriteVonMangoldt(ctx, lambda); err != nil {
			return nil, err
		}
	}
	return lambda, nil
}
