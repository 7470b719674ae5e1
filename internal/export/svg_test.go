package export

import (
	"strings"
	"testing"

	"github.com/san-kum/ndlife/internal/life"
	"github.com/san-kum/ndlife/internal/sim"
	"github.com/san-kum/ndlife/internal/viz"
)

func TestGridToSVG(t *testing.T) {
	g, err := life.New(life.Basic, 2, 4)
	if err != nil {
		t.Fatal(err)
	}
	for _, c := range [][]int{{0, 0}, {1, 2}, {3, 3}} {
		if err := g.SetCellAt(c, life.Alive); err != nil {
			t.Fatal(err)
		}
	}

	r := viz.NewRenderer(nil, true, viz.ThemeMinimal)
	svg, err := GridToSVG(g, r, 10)
	if err != nil {
		t.Fatal(err)
	}

	if !strings.HasPrefix(svg, "<?xml") || !strings.HasSuffix(svg, "</svg>") {
		t.Errorf("not a complete svg document")
	}
	if !strings.Contains(svg, `width="40" height="40"`) {
		t.Errorf("expected 40x40 canvas")
	}
	// background rect plus one per live cell
	if n := strings.Count(svg, "<rect "); n != 4 {
		t.Errorf("expected 4 rects, got %d", n)
	}
	if !strings.Contains(svg, `x="10.0" y="20.0"`) {
		t.Errorf("missing cell at (1,2)")
	}
}

func TestGridToSVG_PlaneOutOfRange(t *testing.T) {
	g, err := life.New(life.Basic, 3, 4)
	if err != nil {
		t.Fatal(err)
	}
	r := viz.NewRenderer([]int{9}, true, viz.ThemeMinimal)
	if _, err := GridToSVG(g, r, 10); err == nil {
		t.Error("expected error for plane outside grid")
	}
}

func TestSeriesToSVG(t *testing.T) {
	if got := SeriesToSVG([]sim.Sample{{Population: 3}}, 100, 50, "#fff"); got != "" {
		t.Errorf("single sample should produce no svg, got %q", got)
	}

	samples := []sim.Sample{
		{Generation: 0, Population: 10},
		{Generation: 1, Population: 20},
		{Generation: 2, Population: 5},
	}
	svg := SeriesToSVG(samples, 100, 50, "#00ff00")
	if !strings.Contains(svg, `stroke="#00ff00"`) {
		t.Error("stroke color not applied")
	}
	if n := strings.Count(svg, " L"); n != 2 {
		t.Errorf("expected 2 line segments, got %d", n)
	}
	if !strings.Contains(svg, "d=\"M0.0,") {
		t.Error("path should start at x=0")
	}
}
