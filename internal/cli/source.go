package cli

import (
	"context"
	"fmt"

	"github.com/quadlab/grhverify/internal/config"
	"github.com/quadlab/grhverify/internal/inequality"
	"github.com/quadlab/grhverify/internal/store"
	"github.com/quadlab/grhverify/internal/sweep"
	"github.com/quadlab/grhverify/internal/zeros"
)

// newSource builds the zero-ordinate source for a command: lcalc behind the
// store cache when an executable is configured, cache-only otherwise.
// Cache-only mode still serves any sweep whose ordinates were fetched by an
// earlier run.
func newSource(cfg config.Config, st *store.Store) zeros.Source {
	var fallback zeros.Source = unavailableSource{}
	if cfg.LCalcPath != "" {
		fallback = zeros.NewLCalc(cfg.LCalcPath)
	}
	return zeros.NewCached(st, fallback)
}

// newDriver assembles the adaptive driver from configuration.
func newDriver(cfg config.Config, st *store.Store) *sweep.Driver {
	opts := []sweep.DriverOption{
		sweep.WithChunk(cfg.Chunk),
		sweep.WithMaxZeros(cfg.MaxZeros),
		sweep.WithEpsilon(cfg.Epsilon),
	}
	if cfg.RemainderBound {
		opts = append(opts, sweep.WithVerifyOptions(inequality.WithRemainderBound()))
	}
	return sweep.NewDriver(newSource(cfg, st), opts...)
}

// unavailableSource fails every fetch; used when no lcalc path is
// configured so cache misses surface as a clear configuration error.
type unavailableSource struct{}

func (unavailableSource) Zeros(_ context.Context, d int64, n int) ([]float64, error) {
	return nil, fmt.Errorf("need %d zeros for d=%d but no lcalc path is configured and the cache has fewer", n, d)
}
