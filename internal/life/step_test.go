package life

import (
	"slices"
	"testing"
)

func cellsOf(g *Grid) []Cell { return g.CopyCells(nil) }

func TestStep_1DScenario(t *testing.T) {
	g, _ := New(Basic, 1, 5)
	_ = g.SetCell(1, Alive)

	g.Step()

	want := []Cell{Alive, Alive, Alive, Dead, Dead}
	if got := cellsOf(g); !slices.Equal(got, want) {
		t.Errorf("after one step got %v, want %v", got, want)
	}
	if g.Generation() != 1 {
		t.Errorf("generation %d, want 1", g.Generation())
	}
}

func TestStep_Blinker(t *testing.T) {
	g, _ := New(Basic, 2, 5)
	for _, y := range []int{1, 2, 3} {
		_ = g.SetCellAt([]int{2, y}, Alive)
	}
	start := g.Clone()

	g.Step()
	for x := 0; x < 5; x++ {
		for y := 0; y < 5; y++ {
			c, _ := g.CellAt([]int{x, y})
			want := FromBool(y == 2 && x >= 1 && x <= 3)
			if c != want {
				t.Fatalf("cell (%d,%d) = %v, want %v", x, y, c, want)
			}
		}
	}

	g.Step()
	if !slices.Equal(cellsOf(g), cellsOf(start)) {
		t.Error("blinker did not return to its start after two steps")
	}
}

func TestStep_Block(t *testing.T) {
	g, _ := New(Basic, 2, 4)
	for _, p := range [][]int{{1, 1}, {2, 1}, {1, 2}, {2, 2}} {
		_ = g.SetCellAt(p, Alive)
	}
	before := cellsOf(g)
	g.Step()
	if !slices.Equal(cellsOf(g), before) {
		t.Error("block still life changed")
	}
}

func TestStep_Deterministic(t *testing.T) {
	g, _ := New(Percentage, 3, 5)
	for i := 0; i < g.Len(); i += 3 {
		_ = g.SetCell(i, Alive)
	}

	a, b := g.Clone(), g.Clone()
	for i := 0; i < 4; i++ {
		a.Step()
		b.Step()
	}
	if !a.Equal(b) {
		t.Error("identical grids diverged")
	}
}

// TestStep_Synchronous checks that no cell sees an updated sibling. Updating
// in place would let the birth at 1 cascade to the right end.
func TestStep_Synchronous(t *testing.T) {
	g, _ := New(Basic, 1, 4)
	_ = g.SetCell(0, Alive)
	g.Step()

	want := []Cell{Alive, Alive, Dead, Dead}
	if got := cellsOf(g); !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func BenchmarkStep2D(b *testing.B) {
	g, _ := New(Basic, 2, 64)
	for i := 0; i < g.Len(); i += 2 {
		_ = g.SetCell(i, Alive)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.Step()
	}
}

func BenchmarkStep4D(b *testing.B) {
	g, _ := New(Percentage, 4, 8)
	for i := 0; i < g.Len(); i += 3 {
		_ = g.SetCell(i, Alive)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.Step()
	}
}
