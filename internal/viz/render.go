package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/ndlife/internal/life"
)

// Renderer draws one 2D slice of a grid.
type Renderer struct {
	// Plane pins axes 2 and up. Missing components default to the middle
	// of the axis.
	Plane []int
	// Plain disables colors and emits the raw cell glyphs.
	Plain bool
	Theme Theme
}

func NewRenderer(plane []int, plain bool, theme Theme) *Renderer {
	return &Renderer{
		Plane: append([]int(nil), plane...),
		Plain: plain,
		Theme: theme,
	}
}

// Coords returns the full coordinate template for g with axes 0 and 1 set
// to zero and the remaining axes pinned to the plane.
func (r *Renderer) Coords(g *life.Grid) ([]int, error) {
	extra := max(g.Dim()-2, 0)
	if len(r.Plane) > extra {
		return nil, fmt.Errorf("%w: plane has %d components, grid has %d extra axes", life.ErrCoordLength, len(r.Plane), extra)
	}
	coords := make([]int, g.Dim())
	for d := 2; d < g.Dim(); d++ {
		coords[d] = g.Size() / 2
		if d-2 < len(r.Plane) {
			coords[d] = r.Plane[d-2]
		}
		if coords[d] < 0 || coords[d] >= g.Size() {
			return nil, &life.CoordError{Axis: d, Value: coords[d], Size: g.Size()}
		}
	}
	return coords, nil
}

// Render returns the slice as text, one line per row.
func (r *Renderer) Render(g *life.Grid) (string, error) {
	coords, err := r.Coords(g)
	if err != nil {
		return "", err
	}

	rows := 1
	if g.Dim() > 1 {
		rows = g.Size()
	}

	alive := lipgloss.NewStyle().Foreground(r.Theme.Alive)
	dead := lipgloss.NewStyle().Foreground(r.Theme.Dead)

	var b strings.Builder
	row := make([]life.Cell, g.Size())
	for y := 0; y < rows; y++ {
		if g.Dim() > 1 {
			coords[1] = y
		}
		for x := range row {
			coords[0] = x
			c, err := g.CellAt(coords)
			if err != nil {
				return "", err
			}
			row[x] = c
		}

		if r.Plain {
			for _, c := range row {
				b.WriteString(c.String())
			}
		} else {
			writeRuns(&b, row, alive, dead)
		}
		b.WriteByte('\n')
	}
	return b.String(), nil
}

// writeRuns styles consecutive equal cells as one span.
func writeRuns(b *strings.Builder, row []life.Cell, alive, dead lipgloss.Style) {
	for start := 0; start < len(row); {
		end := start
		for end < len(row) && row[end] == row[start] {
			end++
		}
		span := strings.Repeat(row[start].String(), end-start)
		if row[start] == life.Alive {
			b.WriteString(alive.Render(span))
		} else {
			b.WriteString(dead.Render(span))
		}
		start = end
	}
}

// PlaneLabel describes the pinned axes, e.g. "x2=8 x3=4".
func (r *Renderer) PlaneLabel(g *life.Grid) string {
	coords, err := r.Coords(g)
	if err != nil || g.Dim() <= 2 {
		return ""
	}
	parts := make([]string, 0, g.Dim()-2)
	for d := 2; d < g.Dim(); d++ {
		parts = append(parts, fmt.Sprintf("x%d=%d", d, coords[d]))
	}
	return strings.Join(parts, " ")
}

// ShiftPlane moves pinned axis 2 by delta, clamped to the grid.
func (r *Renderer) ShiftPlane(g *life.Grid, delta int) {
	if g.Dim() < 3 {
		return
	}
	coords, err := r.Coords(g)
	if err != nil {
		return
	}
	plane := append([]int(nil), coords[2:]...)
	plane[0] = min(max(plane[0]+delta, 0), g.Size()-1)
	r.Plane = plane
}
