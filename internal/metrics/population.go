package metrics

import "github.com/san-kum/ndlife/internal/sim"

type PeakPopulation struct {
	peak int
}

func NewPeakPopulation() *PeakPopulation { return &PeakPopulation{} }

func (p *PeakPopulation) Name() string { return "peak_population" }

func (p *PeakPopulation) Observe(s sim.Sample) {
	p.peak = max(p.peak, s.Population)
}

func (p *PeakPopulation) Value() float64 { return float64(p.peak) }
func (p *PeakPopulation) Reset()         { p.peak = 0 }

type MeanPopulation struct {
	sum     int
	samples int
}

func NewMeanPopulation() *MeanPopulation { return &MeanPopulation{} }

func (m *MeanPopulation) Name() string { return "mean_population" }

func (m *MeanPopulation) Observe(s sim.Sample) {
	m.sum += s.Population
	m.samples++
}

func (m *MeanPopulation) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return float64(m.sum) / float64(m.samples)
}

func (m *MeanPopulation) Reset() {
	m.sum = 0
	m.samples = 0
}

// Extinction records the first generation with no alive cells, or -1.
type Extinction struct {
	generation int
}

func NewExtinction() *Extinction { return &Extinction{generation: -1} }

func (e *Extinction) Name() string { return "extinction" }

func (e *Extinction) Observe(s sim.Sample) {
	if e.generation < 0 && s.Population == 0 {
		e.generation = s.Generation
	}
}

func (e *Extinction) Value() float64 { return float64(e.generation) }
func (e *Extinction) Reset()         { e.generation = -1 }
