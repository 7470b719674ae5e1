package viz

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines the cell colors for the terminal view.
type Theme struct {
	Name   string
	Alive  lipgloss.Color
	Dead   lipgloss.Color
	Accent lipgloss.Color
	Muted  lipgloss.Color
}

var (
	ThemeRetroGreen = Theme{
		Name:   "retro",
		Alive:  lipgloss.Color("#00ff00"),
		Dead:   lipgloss.Color("#003300"),
		Accent: lipgloss.Color("#88ff88"),
		Muted:  lipgloss.Color("#005500"),
	}

	ThemeCyberpunk = Theme{
		Name:   "cyberpunk",
		Alive:  lipgloss.Color("#ff00ff"),
		Dead:   lipgloss.Color("#1a001a"),
		Accent: lipgloss.Color("#00ffff"),
		Muted:  lipgloss.Color("#666666"),
	}

	ThemeMinimal = Theme{
		Name:   "minimal",
		Alive:  lipgloss.Color("#ffffff"),
		Dead:   lipgloss.Color("#333333"),
		Accent: lipgloss.Color("#0088ff"),
		Muted:  lipgloss.Color("#888888"),
	}
)

var themes = map[string]Theme{
	ThemeRetroGreen.Name: ThemeRetroGreen,
	ThemeCyberpunk.Name:  ThemeCyberpunk,
	ThemeMinimal.Name:    ThemeMinimal,
}

// GetTheme returns the named theme. An empty name selects retro.
func GetTheme(name string) (Theme, error) {
	if name == "" {
		return ThemeRetroGreen, nil
	}
	if t, ok := themes[name]; ok {
		return t, nil
	}
	return Theme{}, fmt.Errorf("unknown theme: %s (available: %v)", name, ListThemes())
}

func ListThemes() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
