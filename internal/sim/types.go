package sim

import (
	"fmt"

	"github.com/san-kum/ndlife/internal/life"
)

// Sample summarizes one generation.
type Sample struct {
	Generation int
	Population int
	Births     int
	Deaths     int
}

type Metric interface {
	Name() string
	Observe(s Sample)
	Value() float64
	Reset()
}

type Observer interface {
	OnStep(g *life.Grid, s Sample)
}

type Config struct {
	Generations int
	StopOnCycle bool
}

type Result struct {
	Samples     []Sample
	Metrics     map[string]float64
	Generations int // steps actually taken
	CycleStart  int // first generation of a repeating state, -1 if none seen
	Period      int // cycle length, 0 if none seen
}

// CycleError is returned by RunUntil when a run ends in a cycle before
// reaching the requested generation.
type CycleError struct {
	Generation int
	Period     int
}

func (e CycleError) Error() string {
	return fmt.Sprintf("generation %d: state repeats with period %d", e.Generation, e.Period)
}
