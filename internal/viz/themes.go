package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines color scheme for the TUI
type Theme struct {
	Name    string
	Title   lipgloss.Color
	Accent  lipgloss.Color
	Text    lipgloss.Color
	Muted   lipgloss.Color
	Value   lipgloss.Color
	Warning lipgloss.Color
}

var (
	ThemePlasma = Theme{
		Name:    "plasma",
		Title:   lipgloss.Color("#00cccc"),
		Accent:  lipgloss.Color("#ff88ff"),
		Text:    lipgloss.Color("#ffffff"),
		Muted:   lipgloss.Color("#666688"),
		Value:   lipgloss.Color("#00ccff"),
		Warning: lipgloss.Color("#ffaa00"),
	}

	ThemeSchlieren = Theme{
		Name:    "schlieren",
		Title:   lipgloss.Color("#feca57"),
		Accent:  lipgloss.Color("#ff6b6b"),
		Text:    lipgloss.Color("#fff5f5"),
		Muted:   lipgloss.Color("#8b6b8c"),
		Value:   lipgloss.Color("#5fd068"),
		Warning: lipgloss.Color("#ff4757"),
	}

	ThemeMinimal = Theme{
		Name:    "minimal",
		Title:   lipgloss.Color("#ffffff"),
		Accent:  lipgloss.Color("#0088ff"),
		Text:    lipgloss.Color("#ffffff"),
		Muted:   lipgloss.Color("#888888"),
		Value:   lipgloss.Color("#cccccc"),
		Warning: lipgloss.Color("#ffaa00"),
	}

	Themes = []Theme{ThemePlasma, ThemeSchlieren, ThemeMinimal}
)

func themeIndex(name string) (int, bool) {
	for i, t := range Themes {
		if t.Name == name {
			return i, true
		}
	}
	return 0, false
}

// ThemeNames returns list of available theme names
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
