package zeros

import (
	"context"
	"fmt"

	"github.com/quadlab/grhverify/internal/store"
)

// Cached is a Source that reads through the store before falling back to
// an inner source. Fetched prefixes are written back, so across adaptive
// retries (and across runs) each ordinate is computed at most once.
type Cached struct {
	Store    *store.Store
	Fallback Source
}

// NewCached creates a read-through source over st and fallback.
func NewCached(st *store.Store, fallback Source) *Cached {
	return &Cached{Store: st, Fallback: fallback}
}

// Zeros returns the first n ordinates for d, consulting the cache first.
// A count query decides hit or miss up front, so a miss never scans rows.
// On a partial hit the whole prefix is re-fetched from the fallback rather
// than stitched, keeping the stored sequence a single source's output.
func (c *Cached) Zeros(ctx context.Context, d int64, n int) ([]float64, error) {
	count, err := c.Store.CountZeros(ctx, d)
	if err != nil {
		return nil, fmt.Errorf("count cached zeros: %w", err)
	}
	if count >= n {
		cached, err := c.Store.ReadZeros(ctx, d, n)
		if err != nil {
			return nil, fmt.Errorf("read cached zeros: %w", err)
		}
		return cached, nil
	}

	ordinates, err := c.Fallback.Zeros(ctx, d, n)
	if err != nil {
		return nil, err
	}
	if err := c.Store.WriteZeros(ctx, d, ordinates); err != nil {
		return nil, fmt.Errorf("cache zeros: %w", err)
	}
	return ordinates, nil
}
