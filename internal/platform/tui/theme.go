package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/maze-drift/internal/core"
)

// Theme names, as stored in the settings table.
const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// Theme maps the game's color roles to terminal styles and carries the
// styles used by the menu and scoreboard screens.
type Theme struct {
	Name  string
	cells map[core.Color]lipgloss.Style

	Title    lipgloss.Style
	Text     lipgloss.Style
	Dim      lipgloss.Style
	Selected lipgloss.Style
	Border   lipgloss.Color
	Help     lipgloss.Style
}

// palette holds the handful of colors a theme is derived from.
type palette struct {
	bg     lipgloss.Color
	wall   lipgloss.Color
	edge   lipgloss.Color
	accent lipgloss.Color
	text   lipgloss.Color
	dim    lipgloss.Color
	danger lipgloss.Color
}

func newTheme(name string, p palette) Theme {
	base := lipgloss.NewStyle().Background(p.bg)

	return Theme{
		Name: name,
		cells: map[core.Color]lipgloss.Style{
			core.ColorDefault:    lipgloss.NewStyle(),
			core.ColorBackground: base.Foreground(p.text),
			core.ColorWall:       base.Foreground(p.wall),
			core.ColorEdge:       base.Foreground(p.edge),
			core.ColorBall:       base.Foreground(p.accent).Bold(true),
			core.ColorText:       base.Foreground(p.text),
			core.ColorAccent:     base.Foreground(p.accent).Bold(true),
			core.ColorDim:        base.Foreground(p.dim),
			core.ColorDanger:     base.Foreground(p.danger).Bold(true),
		},
		Title:    lipgloss.NewStyle().Bold(true).Foreground(p.accent),
		Text:     lipgloss.NewStyle().Foreground(p.text),
		Dim:      lipgloss.NewStyle().Foreground(p.dim),
		Selected: lipgloss.NewStyle().Bold(true).Foreground(p.bg).Background(p.accent),
		Border:   p.dim,
		Help:     lipgloss.NewStyle().Foreground(p.dim),
	}
}

// DarkTheme is the default night palette: slate walls, amber ball.
func DarkTheme() Theme {
	return newTheme(ThemeDark, palette{
		bg:     lipgloss.Color("#020617"),
		wall:   lipgloss.Color("#1e293b"),
		edge:   lipgloss.Color("#78591a"),
		accent: lipgloss.Color("#fbbf24"),
		text:   lipgloss.Color("#e5e7eb"),
		dim:    lipgloss.Color("#64748b"),
		danger: lipgloss.Color("#f87171"),
	})
}

// LightTheme is the day palette.
func LightTheme() Theme {
	return newTheme(ThemeLight, palette{
		bg:     lipgloss.Color("#f8fafc"),
		wall:   lipgloss.Color("#94a3b8"),
		edge:   lipgloss.Color("#d97706"),
		accent: lipgloss.Color("#b45309"),
		text:   lipgloss.Color("#0f172a"),
		dim:    lipgloss.Color("#64748b"),
		danger: lipgloss.Color("#dc2626"),
	})
}

// ThemeByName returns the named theme. Unknown names get the dark theme.
func ThemeByName(name string) Theme {
	if name == ThemeLight {
		return LightTheme()
	}
	return DarkTheme()
}

// Toggle returns the other theme.
func (t Theme) Toggle() Theme {
	if t.Name == ThemeLight {
		return DarkTheme()
	}
	return LightTheme()
}

// Style returns the style for a color role.
func (t Theme) Style(c core.Color) lipgloss.Style {
	if s, ok := t.cells[c]; ok {
		return s
	}
	return t.cells[core.ColorDefault]
}
