package viz

import (
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/ndlife/internal/sim"
)

// PopulationPlot charts population against generation.
func PopulationPlot(samples []sim.Sample, width, height int, caption string) string {
	if len(samples) == 0 {
		return ""
	}
	data := make([]float64, len(samples))
	for i, s := range samples {
		data[i] = float64(s.Population)
	}
	return plotSeries(data, width, height, caption)
}

func plotSeries(data []float64, width, height int, caption string) string {
	if len(data) == 0 {
		return ""
	}
	opts := []asciigraph.Option{
		asciigraph.Height(height),
		asciigraph.Precision(0),
	}
	if width > 0 {
		opts = append(opts, asciigraph.Width(width))
	}
	if caption != "" {
		opts = append(opts, asciigraph.Caption(caption))
	}
	return asciigraph.Plot(data, opts...)
}
