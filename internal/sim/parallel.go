package sim

import (
	"context"

	"github.com/san-kum/ndlife/internal/life"
	"golang.org/x/sync/errgroup"
)

// GridFactory builds the starting grid for one ensemble member.
type GridFactory func(seed int64) (*life.Grid, error)

// Ensemble runs independent grids concurrently, one per seed. Every member
// gets its own Runner and Grid, so nothing is shared between goroutines.
type Ensemble struct {
	newRunner func() *Runner
	build     GridFactory
	numRuns   int
	seedStart int64
}

func NewEnsemble(newRunner func() *Runner, build GridFactory, numRuns int, seedStart int64) *Ensemble {
	return &Ensemble{newRunner: newRunner, build: build, numRuns: numRuns, seedStart: seedStart}
}

// Run returns results indexed by member, member i seeded with seedStart+i.
// The first failing member cancels the rest.
func (e *Ensemble) Run(ctx context.Context, cfg Config) ([]*Result, error) {
	results := make([]*Result, e.numRuns)

	eg, ctx := errgroup.WithContext(ctx)
	for i := 0; i < e.numRuns; i++ {
		idx := i
		eg.Go(func() error {
			g, err := e.build(e.seedStart + int64(idx))
			if err != nil {
				return err
			}
			res, err := e.newRunner().Run(ctx, g, cfg)
			if err != nil {
				return err
			}
			results[idx] = res
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
