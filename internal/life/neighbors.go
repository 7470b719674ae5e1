package life

// NeighborIndices returns the flat indices of every in-bounds neighbor of
// the cell at index, ordered by ascending offset identifier.
//
// Offset identifiers run from 1 to 3^dim - 1. Digit d of an identifier in
// base 3 moves axis d: 0 stays, 1 steps back, 2 steps forward. Any offset
// that leaves the grid on some axis is skipped whole.
func (g *Grid) NeighborIndices(index int) ([]int, error) {
	if err := g.checkIndex(index); err != nil {
		return nil, err
	}
	origin := make([]int, g.dim)
	work := make([]int, g.dim)
	return g.appendNeighbors(nil, index, origin, work), nil
}

// appendNeighbors is the allocation-free core of NeighborIndices. origin
// and work are scratch buffers of length dim.
func (g *Grid) appendNeighbors(dst []int, index int, origin, work []int) []int {
	decode(g.size, len(g.cells), index, origin)

next:
	for offset := 1; offset < g.moore; offset++ {
		copy(work, origin)
		id := offset
		for d := 0; d < g.dim; d++ {
			switch id % 3 {
			case 1:
				work[d]--
			case 2:
				work[d]++
			}
			id /= 3
			if work[d] < 0 || work[d] >= g.size {
				continue next
			}
		}
		dst = append(dst, encode(g.size, work))
	}
	return dst
}
