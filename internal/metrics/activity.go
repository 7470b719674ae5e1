package metrics

import "github.com/san-kum/ndlife/internal/sim"

// Activity is the mean number of births plus deaths per step. The first
// sample of a run has no predecessor and is skipped.
type Activity struct {
	changes int
	steps   int
	seen    bool
}

func NewActivity() *Activity {
	return &Activity{}
}

func (a *Activity) Name() string {
	return "activity"
}

func (a *Activity) Observe(s sim.Sample) {
	if !a.seen {
		a.seen = true
		return
	}
	a.changes += s.Births + s.Deaths
	a.steps++
}

func (a *Activity) Value() float64 {
	if a.steps == 0 {
		return 0
	}
	return float64(a.changes) / float64(a.steps)
}

func (a *Activity) Reset() {
	a.changes = 0
	a.steps = 0
	a.seen = false
}

// Defaults returns a fresh set of the standard run metrics.
func Defaults() []sim.Metric {
	return []sim.Metric{
		NewPeakPopulation(),
		NewMeanPopulation(),
		NewActivity(),
		NewExtinction(),
		NewDominantPeriod(),
	}
}
