package viz

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/ndlife/internal/life"
	"github.com/san-kum/ndlife/internal/sim"
)

func key(s string) tea.KeyMsg {
	if s == " " {
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestRenderPlain2D(t *testing.T) {
	g, _ := life.New(life.Basic, 2, 3)
	_ = g.SetCellAt([]int{0, 0}, life.Alive)
	_ = g.SetCellAt([]int{2, 1}, life.Alive)

	out, err := NewRenderer(nil, true, ThemeMinimal).Render(g)
	if err != nil {
		t.Fatal(err)
	}
	want := "█░░\n░░█\n░░░\n"
	if out != want {
		t.Errorf("Render = %q, want %q", out, want)
	}
}

func TestRenderPlain1D(t *testing.T) {
	g, _ := life.New(life.Basic, 1, 5)
	_ = g.SetCell(1, life.Alive)

	out, err := NewRenderer(nil, true, ThemeMinimal).Render(g)
	if err != nil {
		t.Fatal(err)
	}
	if out != "░█░░░\n" {
		t.Errorf("Render = %q", out)
	}
}

func TestRenderPlane(t *testing.T) {
	g, _ := life.New(life.Basic, 3, 4)
	_ = g.SetCellAt([]int{1, 1, 3}, life.Alive)

	r := NewRenderer([]int{3}, true, ThemeMinimal)
	out, err := r.Render(g)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Count(out, "█") != 1 {
		t.Errorf("expected one alive cell on plane 3, got %q", out)
	}
	if r.PlaneLabel(g) != "x2=3" {
		t.Errorf("PlaneLabel = %q", r.PlaneLabel(g))
	}

	r.ShiftPlane(g, -1)
	out, _ = r.Render(g)
	if strings.Contains(out, "█") {
		t.Error("plane 2 should be empty")
	}

	r.ShiftPlane(g, 10)
	if r.Plane[0] != 3 {
		t.Errorf("ShiftPlane should clamp to 3, got %d", r.Plane[0])
	}

	bad := NewRenderer([]int{9}, true, ThemeMinimal)
	if _, err := bad.Render(g); !errors.Is(err, life.ErrOutOfBounds) {
		t.Errorf("out-of-range plane: got %v", err)
	}
	tooMany := NewRenderer([]int{1, 1}, true, ThemeMinimal)
	if _, err := tooMany.Render(g); !errors.Is(err, life.ErrCoordLength) {
		t.Errorf("long plane: got %v", err)
	}
}

func TestRenderStyled(t *testing.T) {
	g, _ := life.New(life.Basic, 2, 4)
	_ = g.SetCellAt([]int{1, 1}, life.Alive)
	_ = g.SetCellAt([]int{2, 1}, life.Alive)

	out, err := NewRenderer(nil, false, ThemeRetroGreen).Render(g)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Count(out, "█") != 2 || strings.Count(out, "\n") != 4 {
		t.Errorf("unexpected styled output %q", out)
	}
}

func TestPopulationPlot(t *testing.T) {
	if PopulationPlot(nil, 40, 5, "") != "" {
		t.Error("empty series should render nothing")
	}
	samples := []sim.Sample{{Population: 1}, {Population: 5}, {Population: 3}}
	out := PopulationPlot(samples, 30, 5, "population")
	if !strings.Contains(out, "population") {
		t.Errorf("caption missing from %q", out)
	}
}

func TestThemes(t *testing.T) {
	if th, err := GetTheme(""); err != nil || th.Name != "retro" {
		t.Errorf("empty name: got %q, %v; want retro", th.Name, err)
	}
	if th, err := GetTheme("cyberpunk"); err != nil || th.Alive != ThemeCyberpunk.Alive {
		t.Errorf("cyberpunk: got %+v, %v", th, err)
	}
	_, err := GetTheme("bogus")
	if err == nil {
		t.Fatal("unknown theme should be rejected")
	}
	for _, name := range ListThemes() {
		if !strings.Contains(err.Error(), name) {
			t.Errorf("error %q should list %q", err, name)
		}
	}
	if len(ListThemes()) != 3 {
		t.Errorf("expected 3 themes, got %v", ListThemes())
	}
}

func newTestModel(t *testing.T, limit int) Model {
	t.Helper()
	factory := func() (*life.Grid, error) {
		g, err := life.New(life.Basic, 2, 5)
		if err != nil {
			return nil, err
		}
		for _, y := range []int{1, 2, 3} {
			_ = g.SetCellAt([]int{2, y}, life.Alive)
		}
		return g, nil
	}
	g, err := factory()
	if err != nil {
		t.Fatal(err)
	}
	return NewModel(g, factory, NewRenderer(nil, true, ThemeMinimal), 10, limit)
}

func TestModelTickAndPause(t *testing.T) {
	m := newTestModel(t, 0)

	next, cmd := m.Update(TickMsg{})
	m = next.(Model)
	if m.Grid().Generation() != 1 {
		t.Errorf("tick should step, generation %d", m.Grid().Generation())
	}
	if cmd == nil {
		t.Error("tick should schedule another tick")
	}

	next, _ = m.Update(key(" "))
	m = next.(Model)
	if m.Running() {
		t.Fatal("space should pause")
	}

	next, _ = m.Update(TickMsg{})
	m = next.(Model)
	if m.Grid().Generation() != 1 {
		t.Error("paused model should not step on tick")
	}

	next, _ = m.Update(key("n"))
	m = next.(Model)
	if m.Grid().Generation() != 2 {
		t.Errorf("n should single-step while paused, generation %d", m.Grid().Generation())
	}
}

func TestModelReset(t *testing.T) {
	m := newTestModel(t, 0)
	m.Update(TickMsg{})

	next, _ := m.Update(key("r"))
	m = next.(Model)
	if m.Grid().Generation() != 0 {
		t.Errorf("reset should build a fresh grid, generation %d", m.Grid().Generation())
	}
}

func TestModelClear(t *testing.T) {
	m := newTestModel(t, 0)

	next, _ := m.Update(key("c"))
	m = next.(Model)
	if m.Grid().Population() != 0 {
		t.Errorf("c should clear the grid, population %d", m.Grid().Population())
	}
	if m.Running() {
		t.Error("c should pause")
	}
}

func TestModelThemeStyles(t *testing.T) {
	g, _ := life.New(life.Basic, 2, 3)
	m := NewModel(g, nil, NewRenderer(nil, true, ThemeCyberpunk), 10, 0)
	if got := m.styles.metricValue.GetForeground(); got != ThemeCyberpunk.Accent {
		t.Errorf("metric value color %v, want accent %v", got, ThemeCyberpunk.Accent)
	}
	if got := m.styles.keyHint.GetForeground(); got != ThemeCyberpunk.Muted {
		t.Errorf("key hint color %v, want muted %v", got, ThemeCyberpunk.Muted)
	}
}

func TestModelLimit(t *testing.T) {
	m := newTestModel(t, 2)
	for i := 0; i < 5; i++ {
		next, _ := m.Update(TickMsg{})
		m = next.(Model)
	}
	if m.Grid().Generation() != 2 || m.Running() {
		t.Errorf("expected stop at generation 2, got %d running=%v", m.Grid().Generation(), m.Running())
	}
}

func TestModelQuitAndView(t *testing.T) {
	m := newTestModel(t, 0)
	_, cmd := m.Update(key("q"))
	if cmd == nil {
		t.Fatal("q should return a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}

	view := m.View()
	for _, want := range []string{"ndlife", "generation", "population", "█"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestPrintObserver(t *testing.T) {
	g, _ := life.New(life.Basic, 1, 3)
	_ = g.SetCell(0, life.Alive)

	var b strings.Builder
	p := &PrintObserver{W: &b, Renderer: NewRenderer(nil, true, ThemeMinimal)}
	p.OnStep(g, sim.Sample{Generation: 4, Population: 1})

	if p.Err() != nil {
		t.Fatal(p.Err())
	}
	if b.String() != "generation 4  population 1\n█░░\n\n" {
		t.Errorf("unexpected output %q", b.String())
	}
}
