package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/ndlife/internal/life"
)

const historyCapacity = 600

type TickMsg time.Time

// GridFactory builds a fresh starting grid; the live view calls it on reset.
type GridFactory func() (*life.Grid, error)

// Model is the bubbletea model for watching a grid evolve.
type Model struct {
	grid        *life.Grid
	factory     GridFactory
	renderer    *Renderer
	styles      styles
	fps         int
	running     bool
	limit       int // stop after this many generations, 0 for no limit
	history     []float64
	showHelp    bool
	err         error
	lastChanged int
	prevCells   []life.Cell
}

// NewModel wraps a grid. factory may be nil, which disables reset.
func NewModel(g *life.Grid, factory GridFactory, renderer *Renderer, fps, limit int) Model {
	if fps <= 0 {
		fps = 10
	}
	m := Model{
		grid:     g,
		factory:  factory,
		renderer: renderer,
		styles:   newStyles(renderer.Theme),
		fps:      fps,
		running:  true,
		limit:    limit,
		history:  make([]float64, 0, historyCapacity),
	}
	m.record()
	return m
}

func (m Model) Grid() *life.Grid { return m.grid }
func (m Model) Running() bool    { return m.running }

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Update handles keys and advances the grid on each tick while running.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "n":
			if !m.running {
				m.step()
			}
		case "r":
			m.reset()
		case "c":
			m.grid.Clear()
			m.running = false
			m.lastChanged = 0
			m.record()
		case "[":
			m.renderer.ShiftPlane(m.grid, -1)
		case "]":
			m.renderer.ShiftPlane(m.grid, 1)
		case "+", "=":
			m.fps = min(m.fps*2, 120)
		case "-":
			m.fps = max(m.fps/2, 1)
		case "?":
			m.showHelp = !m.showHelp
		}
		return m, nil

	case TickMsg:
		if m.running {
			m.step()
		}
		return m, m.tick()
	}
	return m, nil
}

func (m *Model) step() {
	if m.limit > 0 && m.grid.Generation() >= m.limit {
		m.running = false
		return
	}
	m.prevCells = m.grid.CopyCells(m.prevCells)
	m.grid.Step()

	m.lastChanged = 0
	for i, c := range m.prevCells {
		if cur, _ := m.grid.Cell(i); cur != c {
			m.lastChanged++
		}
	}
	m.record()
}

func (m *Model) record() {
	if len(m.history) == historyCapacity {
		copy(m.history, m.history[1:])
		m.history = m.history[:historyCapacity-1]
	}
	m.history = append(m.history, float64(m.grid.Population()))
}

func (m *Model) reset() {
	if m.factory == nil {
		return
	}
	g, err := m.factory()
	if err != nil {
		m.err = err
		return
	}
	m.grid = g
	m.err = nil
	m.lastChanged = 0
	m.history = m.history[:0]
	m.record()
}

func (m Model) View() string {
	var b strings.Builder

	th := m.grid.Thresholds()
	title := fmt.Sprintf("ndlife  %dD %s  size %d", m.grid.Dim(), m.grid.Rule(), m.grid.Size())
	if label := m.renderer.PlaneLabel(m.grid); label != "" {
		title += "  [" + label + "]"
	}
	b.WriteString(m.styles.header.Render(title))
	b.WriteString("\n")

	body, err := m.renderer.Render(m.grid)
	if err != nil {
		b.WriteString(ErrorStyle.Render(err.Error()))
		b.WriteString("\n")
	} else {
		b.WriteString(body)
	}

	status := StatusRunning.Render("RUNNING")
	if !m.running {
		status = StatusPaused.Render("PAUSED")
	}

	stats := []string{
		status,
		m.styles.metricRow("generation", fmt.Sprintf("%d", m.grid.Generation())),
		m.styles.metricRow("population", fmt.Sprintf("%d / %d", m.grid.Population(), m.grid.Len())),
		m.styles.metricRow("changed", fmt.Sprintf("%d", m.lastChanged)),
		m.styles.metricRow("thresholds", fmt.Sprintf("survive %d-%d breed %d+", th.MinNeighbors, th.MaxNeighbors, th.MinBreedNeighbors)),
		m.styles.metricRow("fps", fmt.Sprintf("%d", m.fps)),
	}
	b.WriteString(m.styles.panel.Render(strings.Join(stats, "\n")))
	b.WriteString("\n")

	if len(m.history) > 1 {
		b.WriteString(plotSeries(m.history, 60, 6, "population"))
		b.WriteString("\n")
	}

	if m.err != nil {
		b.WriteString(ErrorStyle.Render(m.err.Error()))
		b.WriteString("\n")
	}

	if m.showHelp {
		b.WriteString(m.styles.keyHint.Render("space pause  n step  r reset  c clear  [ ] move plane  + - speed  q quit"))
	} else {
		b.WriteString(m.styles.keyHint.Render("? help"))
	}
	b.WriteString("\n")
	return b.String()
}

// RunLive starts the interactive view and blocks until the user quits.
func RunLive(m Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
