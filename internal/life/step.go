package life

// Step advances the grid one generation. Every cell reads the same prior
// state: new values go to a second buffer which is swapped in at the end.
func (g *Grid) Step() {
	if len(g.next) != len(g.cells) {
		g.next = make([]Cell, len(g.cells))
	}

	origin := make([]int, g.dim)
	work := make([]int, g.dim)
	var neighbors []int

	for i, prior := range g.cells {
		neighbors = g.appendNeighbors(neighbors[:0], i, origin, work)
		alive := 0
		for _, j := range neighbors {
			if g.cells[j] == Alive {
				alive++
			}
		}
		g.next[i] = g.rules.Next(prior, alive)
	}

	g.cells, g.next = g.next, g.cells
	g.generation++
}
