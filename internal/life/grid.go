package life

import "fmt"

// Grid is a dense hypercube of size^dim cells.
type Grid struct {
	cells []Cell
	next  []Cell

	dim   int
	size  int
	moore int // 3^dim, including the cell itself

	variant RuleVariant
	rules   Thresholds

	generation int
}

// New allocates a grid with every cell Dead and freezes its thresholds.
func New(variant RuleVariant, dim, size int) (*Grid, error) {
	rules, err := Derive(dim, variant)
	if err != nil {
		return nil, err
	}
	n, err := CellCount(size, dim)
	if err != nil {
		return nil, err
	}
	n3, _ := ipow(3, dim) // Derive already proved 3^dim fits
	return &Grid{
		cells:   make([]Cell, n),
		dim:     dim,
		size:    size,
		moore:   n3,
		variant: variant,
		rules:   rules,
	}, nil
}

func (g *Grid) Dim() int               { return g.dim }
func (g *Grid) Size() int              { return g.size }
func (g *Grid) Len() int               { return len(g.cells) }
func (g *Grid) Rule() RuleVariant      { return g.variant }
func (g *Grid) Thresholds() Thresholds { return g.rules }
func (g *Grid) Generation() int        { return g.generation }

func (g *Grid) checkIndex(index int) error {
	if index < 0 || index >= len(g.cells) {
		return fmt.Errorf("%w: index %d not in [0, %d)", ErrOutOfBounds, index, len(g.cells))
	}
	return nil
}

// Cell returns the cell at index.
func (g *Grid) Cell(index int) (Cell, error) {
	if err := g.checkIndex(index); err != nil {
		return Dead, err
	}
	return g.cells[index], nil
}

// SetCell overwrites the cell at index.
func (g *Grid) SetCell(index int, c Cell) error {
	if err := g.checkIndex(index); err != nil {
		return err
	}
	g.cells[index] = c
	return nil
}

// CoordsToIndex encodes coords using the grid's own shape.
func (g *Grid) CoordsToIndex(coords []int) (int, error) {
	if err := checkCoords(g.size, g.dim, coords); err != nil {
		return 0, err
	}
	return encode(g.size, coords), nil
}

// IndexToCoords decodes index using the grid's own shape.
func (g *Grid) IndexToCoords(index int) ([]int, error) {
	if err := g.checkIndex(index); err != nil {
		return nil, err
	}
	coords := make([]int, g.dim)
	decode(g.size, len(g.cells), index, coords)
	return coords, nil
}

// CellAt returns the cell at coords.
func (g *Grid) CellAt(coords []int) (Cell, error) {
	i, err := g.CoordsToIndex(coords)
	if err != nil {
		return Dead, err
	}
	return g.cells[i], nil
}

// SetCellAt overwrites the cell at coords.
func (g *Grid) SetCellAt(coords []int, c Cell) error {
	i, err := g.CoordsToIndex(coords)
	if err != nil {
		return err
	}
	g.cells[i] = c
	return nil
}

// Population counts alive cells.
func (g *Grid) Population() int {
	n := 0
	for _, c := range g.cells {
		if c == Alive {
			n++
		}
	}
	return n
}

// CopyCells appends the current cells to dst[:0] and returns it.
func (g *Grid) CopyCells(dst []Cell) []Cell {
	return append(dst[:0], g.cells...)
}

// Clear sets every cell Dead. Generation count is kept.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = Dead
	}
}

// Clone returns an independent copy, including the generation count.
func (g *Grid) Clone() *Grid {
	c := *g
	c.cells = g.CopyCells(nil)
	c.next = nil
	return &c
}

// Equal reports whether both grids have the same shape, rules and cells.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.dim != other.dim || g.size != other.size || g.rules != other.rules {
		return false
	}
	for i, c := range g.cells {
		if other.cells[i] != c {
			return false
		}
	}
	return true
}
