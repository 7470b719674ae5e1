package seed

import (
	"fmt"
	"sort"

	"github.com/san-kum/ndlife/internal/life"
)

// Pattern is a set of alive cells relative to an origin. Cells may have
// fewer components than the grid; missing axes are taken from the origin.
type Pattern struct {
	Name  string
	Cells [][]int
}

var Patterns = map[string]Pattern{
	"dot":     {Name: "dot", Cells: [][]int{{0}}},
	"pair":    {Name: "pair", Cells: [][]int{{0}, {2}}},
	"blinker": {Name: "blinker", Cells: [][]int{{1, 0}, {1, 1}, {1, 2}}},
	"block":   {Name: "block", Cells: [][]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}}},
	"glider":  {Name: "glider", Cells: [][]int{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}}},
	"cross": {Name: "cross", Cells: [][]int{
		{1, 1, 0}, {1, 0, 1}, {0, 1, 1}, {1, 1, 1}, {2, 1, 1}, {1, 2, 1}, {1, 1, 2},
	}},
}

// GetPattern looks up a pattern by name.
func GetPattern(name string) (Pattern, error) {
	p, ok := Patterns[name]
	if !ok {
		return Pattern{}, fmt.Errorf("unknown pattern: %s (available: %v)", name, ListPatterns())
	}
	return p, nil
}

// ListPatterns returns pattern names in sorted order.
func ListPatterns() []string {
	names := make([]string, 0, len(Patterns))
	for name := range Patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Dim is the number of axes the pattern spans.
func (p Pattern) Dim() int {
	dim := 0
	for _, c := range p.Cells {
		dim = max(dim, len(c))
	}
	return dim
}

// Extent returns the bounding box length on each of dim axes.
func (p Pattern) Extent(dim int) []int {
	ext := make([]int, dim)
	for _, c := range p.Cells {
		for d := 0; d < len(c) && d < dim; d++ {
			ext[d] = max(ext[d], c[d]+1)
		}
	}
	for d := range ext {
		ext[d] = max(ext[d], 1)
	}
	return ext
}

// Place sets the pattern's cells Alive relative to origin. Nothing is
// written unless every cell fits.
func Place(g *life.Grid, p Pattern, origin []int) error {
	if p.Dim() > g.Dim() {
		return fmt.Errorf("pattern %s needs %d dimensions, grid has %d", p.Name, p.Dim(), g.Dim())
	}
	if len(origin) != g.Dim() {
		return fmt.Errorf("%w: origin has %d components, grid has %d", life.ErrCoordLength, len(origin), g.Dim())
	}

	indices := make([]int, 0, len(p.Cells))
	coords := make([]int, g.Dim())
	for _, c := range p.Cells {
		copy(coords, origin)
		for d, v := range c {
			coords[d] += v
		}
		idx, err := g.CoordsToIndex(coords)
		if err != nil {
			return fmt.Errorf("place %s: %w", p.Name, err)
		}
		indices = append(indices, idx)
	}

	for _, idx := range indices {
		if err := g.SetCell(idx, life.Alive); err != nil {
			return err
		}
	}
	return nil
}

// PlaceCentered places the pattern in the middle of the grid.
func PlaceCentered(g *life.Grid, p Pattern) error {
	ext := p.Extent(g.Dim())
	origin := make([]int, g.Dim())
	for d := range origin {
		origin[d] = (g.Size() - ext[d]) / 2
	}
	return Place(g, p, origin)
}
