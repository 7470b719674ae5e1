package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/ndlife/internal/life"
	"github.com/san-kum/ndlife/internal/sim"
	"github.com/san-kum/ndlife/internal/viz"
)

// GridToSVG draws the renderer's 2D slice of g as one square per live cell.
func GridToSVG(g *life.Grid, r *viz.Renderer, scale float64) (string, error) {
	coords, err := r.Coords(g)
	if err != nil {
		return "", err
	}
	if scale <= 0 {
		scale = 8
	}

	rows := 1
	if g.Dim() > 1 {
		rows = g.Size()
	}
	width := float64(g.Size()) * scale
	height := float64(rows) * scale

	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
<g fill="%s">
`, width, height, width, height, string(r.Theme.Dead), string(r.Theme.Alive))

	for y := 0; y < rows; y++ {
		if g.Dim() > 1 {
			coords[1] = y
		}
		for x := 0; x < g.Size(); x++ {
			coords[0] = x
			c, err := g.CellAt(coords)
			if err != nil {
				return "", err
			}
			if c != life.Alive {
				continue
			}
			fmt.Fprintf(&sb, `<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f"/>
`, float64(x)*scale, float64(y)*scale, scale, scale)
		}
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String(), nil
}

// SeriesToSVG draws population against generation as a single path.
func SeriesToSVG(samples []sim.Sample, width, height int, strokeColor string) string {
	if len(samples) < 2 {
		return ""
	}

	minX, maxX := float64(samples[0].Generation), float64(samples[0].Generation)
	minY, maxY := float64(samples[0].Population), float64(samples[0].Population)
	for _, s := range samples {
		x, y := float64(s.Generation), float64(s.Population)
		minX, maxX = min(minX, x), max(maxX, x)
		minY, maxY = min(minY, y), max(maxY, y)
	}

	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeY = maxY - minY

	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		width, height, width, height, strokeColor)

	for i, s := range samples {
		x := (float64(s.Generation) - minX) / rangeX * float64(width)
		y := float64(height) - (float64(s.Population)-minY)/rangeY*float64(height)

		if i == 0 {
			fmt.Fprintf(&sb, "%.1f,%.1f", x, y)
		} else {
			fmt.Fprintf(&sb, " L%.1f,%.1f", x, y)
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}
