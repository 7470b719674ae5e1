package life

// Cell is the state of one grid position.
type Cell uint8

const (
	Dead Cell = iota
	Alive
)

// FromBool maps true to Alive and false to Dead.
func FromBool(alive bool) Cell {
	if alive {
		return Alive
	}
	return Dead
}

// String returns the display glyph. Mostly useful for debugging.
func (c Cell) String() string {
	if c == Alive {
		return "█"
	}
	return "░"
}
