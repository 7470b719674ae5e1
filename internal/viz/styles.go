package viz

import "github.com/charmbracelet/lipgloss"

var (
	StatusRunning = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00ff88"))

	StatusPaused = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffaa00"))

	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ff4444"))
)

// styles are the theme-dependent parts of the live view.
type styles struct {
	header      lipgloss.Style
	metricLabel lipgloss.Style
	metricValue lipgloss.Style
	keyHint     lipgloss.Style
	panel       lipgloss.Style
}

func newStyles(t Theme) styles {
	return styles{
		header: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Accent).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(t.Muted),
		metricLabel: lipgloss.NewStyle().
			Foreground(t.Muted).
			Width(12),
		metricValue: lipgloss.NewStyle().
			Foreground(t.Accent).
			Bold(true),
		keyHint: lipgloss.NewStyle().
			Foreground(t.Muted).
			Italic(true),
		panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Muted).
			Padding(0, 1),
	}
}

// metricRow renders "label  value" with the metric styles.
func (s styles) metricRow(label, value string) string {
	return s.metricLabel.Render(label) + s.metricValue.Render(value)
}
