package metrics

import (
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
	"github.com/san-kum/ndlife/internal/sim"
)

// DominantPeriod is the period, in generations, of the strongest
// oscillation in the population series. It reports quasi-periodic
// behaviour that never repeats a grid state exactly. Zero means the
// series is too short or flat.
type DominantPeriod struct {
	series []float64
}

func NewDominantPeriod() *DominantPeriod { return &DominantPeriod{} }

func (d *DominantPeriod) Name() string { return "dominant_period" }

func (d *DominantPeriod) Observe(s sim.Sample) {
	d.series = append(d.series, float64(s.Population))
}

func (d *DominantPeriod) Value() float64 {
	n := len(d.series)
	if n < 4 {
		return 0
	}

	var mean float64
	for _, v := range d.series {
		mean += v
	}
	mean /= float64(n)

	centered := make([]float64, n)
	for i, v := range d.series {
		centered[i] = v - mean
	}

	spectrum := fft.FFTReal(centered)
	best, bestMag := 0, 1e-9*float64(n)
	for k := 1; k <= n/2; k++ {
		if mag := cmplx.Abs(spectrum[k]); mag > bestMag {
			best, bestMag = k, mag
		}
	}
	if best == 0 {
		return 0
	}
	return float64(n) / float64(best)
}

func (d *DominantPeriod) Reset() { d.series = d.series[:0] }
