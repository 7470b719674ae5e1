// Package seed fills grids with initial states: random soups from an
// injected RNG, or named patterns placed at a coordinate.
package seed

import (
	"fmt"
	"math/rand/v2"

	"github.com/san-kum/ndlife/internal/life"
)

// NewRNG returns a deterministic generator for the given seed.
func NewRNG(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), 0))
}

// Randomize sets each cell Alive with probability density. A density of
// 0.5 is a fair coin per cell.
func Randomize(g *life.Grid, rng *rand.Rand, density float64) error {
	if density < 0 || density > 1 {
		return fmt.Errorf("density must be in [0, 1], got %f", density)
	}
	for i := 0; i < g.Len(); i++ {
		if err := g.SetCell(i, life.FromBool(rng.Float64() < density)); err != nil {
			return err
		}
	}
	return nil
}
