package zeros

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quadlab/grhverify/internal/store"
)

// countingSource wraps a Source and records how many calls reach it.
type countingSource struct {
	inner Source
	calls int
}

func (c *countingSource) Zeros(ctx context.Context, d int64, n int) ([]float64, error) {
	c.calls++
	return c.inner.Zeros(ctx, d, n)
}

func newCacheStore(t *testing.T) *store.Store {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "cache.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return st
}

func TestCached_ReadThrough(t *testing.T) {
	st := newCacheStore(t)
	counting := &countingSource{inner: NewFixed(4.1329, 6.1836, 8.4572)}
	src := NewCached(st, counting)
	ctx := context.Background()

	got, err := src.Zeros(ctx, 5, 2)
	require.NoError(t, err)
	assert.Equal(t, []float64{4.1329, 6.1836}, got)
	assert.Equal(t, 1, counting.calls)

	// Same request again is served from the store.
	again, err := src.Zeros(ctx, 5, 2)
	require.NoError(t, err)
	assert.Equal(t, got, again)
	assert.Equal(t, 1, counting.calls)
}

func TestCached_PartialHitRefetchesPrefix(t *testing.T) {
	st := newCacheStore(t)
	counting := &countingSource{inner: NewFixed(4.1329, 6.1836, 8.4572)}
	src := NewCached(st, counting)
	ctx := context.Background()

	_, err := src.Zeros(ctx, 5, 1)
	require.NoError(t, err)

	got, err := src.Zeros(ctx, 5, 3)
	require.NoError(t, err)
	assert.Equal(t, []float64{4.1329, 6.1836, 8.4572}, got)
	assert.Equal(t, 2, counting.calls, "a partial hit re-fetches the whole prefix")

	count, err := st.CountZeros(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestCached_FallbackErrorPropagates(t *testing.T) {
	st := newCacheStore(t)
	src := NewCached(st, NewFixed(4.1329))
	ctx := context.Background()

	_, err := src.Zeros(ctx, 5, 2)
	require.Error(t, err)

	// A failed fetch must leave nothing behind in the cache.
	count, err := st.CountZeros(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestCached_SeparateDiscriminants(t *testing.T) {
	st := newCacheStore(t)
	src := NewCached(st, NewFixed(3.0, 5.0))
	ctx := context.Background()

	_, err := src.Zeros(ctx, 5, 2)
	require.NoError(t, err)

	// Cached ordinates for one discriminant never leak to another.
	twoCalls := &countingSource{inner: NewFixed(2.0)}
	other := NewCached(st, twoCalls)
	got, err := other.Zeros(ctx, -3, 1)
	require.NoError(t, err)
	assert.Equal(t, []float64{2.0}, got)
	assert.Equal(t, 1, twoCalls.calls)
}

func TestCached_StoreErrorsAreNotSwallowed(t *testing.T) {
	st := newCacheStore(t)
	require.NoError(t, st.Close())

	src := NewCached(st, NewFixed(4.1329))
	_, err := src.Zeros(context.Background(), 5, 1)
	require.Error(t, err)
	assert.False(t, errors.Is(err, store.ErrNotCached))
}
