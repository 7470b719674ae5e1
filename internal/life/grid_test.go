package life

import (
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	g, err := New(Percentage, 3, 4)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if g.Len() != 64 {
		t.Errorf("expected 64 cells, got %d", g.Len())
	}
	if g.Dim() != 3 || g.Size() != 4 || g.Rule() != Percentage {
		t.Errorf("unexpected shape dim=%d size=%d rule=%v", g.Dim(), g.Size(), g.Rule())
	}
	if g.Population() != 0 {
		t.Errorf("new grid should be all dead, population %d", g.Population())
	}
	want, _ := Derive(3, Percentage)
	if g.Thresholds() != want {
		t.Errorf("thresholds %+v, want %+v", g.Thresholds(), want)
	}
}

func TestNew_Degenerate(t *testing.T) {
	tests := []struct {
		name      string
		dim, size int
		want      error
	}{
		{"zero dim", 0, 5, ErrDegenerate},
		{"zero size", 2, 0, ErrDegenerate},
		{"negative size", 2, -3, ErrDegenerate},
		{"too large", 40, 4, ErrTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := New(Basic, tt.dim, tt.size)
			if !errors.Is(err, tt.want) {
				t.Errorf("got %v, want %v", err, tt.want)
			}
			if g != nil {
				t.Error("expected nil grid on error")
			}
		})
	}
}

func TestGridCellAccess(t *testing.T) {
	g, _ := New(Basic, 2, 3)

	if err := g.SetCell(4, Alive); err != nil {
		t.Fatalf("SetCell: %v", err)
	}
	c, err := g.Cell(4)
	if err != nil || c != Alive {
		t.Errorf("Cell(4) = %v, %v", c, err)
	}

	c, err = g.CellAt([]int{1, 1})
	if err != nil || c != Alive {
		t.Errorf("CellAt(1,1) = %v, %v", c, err)
	}

	if err := g.SetCellAt([]int{2, 0}, Alive); err != nil {
		t.Fatalf("SetCellAt: %v", err)
	}
	if c, _ := g.Cell(2); c != Alive {
		t.Error("SetCellAt(2,0) did not write index 2")
	}
	if g.Population() != 2 {
		t.Errorf("population %d, want 2", g.Population())
	}
}

func TestGridBounds(t *testing.T) {
	g, _ := New(Basic, 2, 3)

	for _, idx := range []int{-1, 9, 1000} {
		if _, err := g.Cell(idx); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("Cell(%d): got %v", idx, err)
		}
		if err := g.SetCell(idx, Alive); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("SetCell(%d): got %v", idx, err)
		}
		if _, err := g.IndexToCoords(idx); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("IndexToCoords(%d): got %v", idx, err)
		}
	}

	if _, err := g.CellAt([]int{3, 0}); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("CellAt(3,0): got %v", err)
	}
	if err := g.SetCellAt([]int{0}, Alive); !errors.Is(err, ErrCoordLength) {
		t.Errorf("SetCellAt short: got %v", err)
	}
	if g.Population() != 0 {
		t.Error("failed writes must not change the grid")
	}
}

func TestGridCodec(t *testing.T) {
	g, _ := New(Basic, 3, 5)
	for i := 0; i < g.Len(); i++ {
		coords, err := g.IndexToCoords(i)
		if err != nil {
			t.Fatal(err)
		}
		back, err := g.CoordsToIndex(coords)
		if err != nil {
			t.Fatal(err)
		}
		if back != i {
			t.Errorf("%d -> %v -> %d", i, coords, back)
		}
	}
}

func TestGridClone(t *testing.T) {
	g, _ := New(Basic, 2, 4)
	_ = g.SetCell(5, Alive)

	c := g.Clone()
	if !c.Equal(g) {
		t.Fatal("clone should equal original")
	}

	_ = c.SetCell(6, Alive)
	if cell, _ := g.Cell(6); cell != Dead {
		t.Error("clone shares storage with original")
	}
	if c.Equal(g) {
		t.Error("modified clone should differ")
	}

	other, _ := New(Percentage, 2, 5)
	if g.Equal(other) || g.Equal(nil) {
		t.Error("grids of different shape should not be equal")
	}
}

func TestGridClearAndCopy(t *testing.T) {
	g, _ := New(Basic, 1, 4)
	_ = g.SetCell(1, Alive)

	snap := g.CopyCells(nil)
	g.Clear()

	if g.Population() != 0 {
		t.Error("Clear left alive cells")
	}
	if snap[1] != Alive {
		t.Error("CopyCells should be independent of the grid")
	}
}

func TestCellFromBool(t *testing.T) {
	if FromBool(true) != Alive || FromBool(false) != Dead {
		t.Error("FromBool mapping wrong")
	}
	if Alive.String() != "█" || Dead.String() != "░" {
		t.Errorf("unexpected glyphs %q %q", Alive.String(), Dead.String())
	}
}
