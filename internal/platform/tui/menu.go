package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"

	"github.com/vovakirdan/maze-drift/internal/config"
	"github.com/vovakirdan/maze-drift/internal/core"
	"github.com/vovakirdan/maze-drift/internal/storage"
)

// MenuAction is what a menu item does when selected.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionPlay
	MenuActionScores
	MenuActionTheme
	MenuActionQuit
)

// MenuItem represents a selectable entry in the menu.
type MenuItem struct {
	Title  string
	Action MenuAction
	Preset config.DifficultyPreset // For MenuActionPlay
}

// presetBlurbs describes each difficulty preset in the menu.
var presetBlurbs = map[config.DifficultyPreset]string{
	config.DifficultyEasy:   "wide gaps, ramps up over 45s",
	config.DifficultyNormal: "starts at 30% difficulty",
	config.DifficultyHard:   "starts at 70% difficulty",
	config.DifficultyFixed:  "no ramp, constant difficulty",
}

// MenuModel is the Bubble Tea model for the main menu.
type MenuModel struct {
	items    []MenuItem
	cursor   int
	width    int
	height   int
	store    *storage.Store
	logger   *log.Logger
	config   core.RuntimeConfig
	theme    Theme
	best     int
	keys     MenuKeyMap
	help     help.Model
	quitting bool
	selected *MenuItem
}

// NewMenuModel creates a new menu model.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) MenuModel {
	items := make([]MenuItem, 0, len(config.Presets)+3)
	for _, p := range config.Presets {
		items = append(items, MenuItem{
			Title:  "Play " + strings.ToUpper(string(p[:1])) + string(p[1:]),
			Action: MenuActionPlay,
			Preset: p,
		})
	}
	items = append(items,
		MenuItem{Title: "High Scores", Action: MenuActionScores},
		MenuItem{Title: "Theme", Action: MenuActionTheme},
		MenuItem{Title: "Quit", Action: MenuActionQuit},
	)

	m := MenuModel{
		items:  items,
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
		store:  store,
		logger: logger,
		config: cfg,
		theme:  DarkTheme(),
		keys:   DefaultMenuKeyMap(),
		help:   help.New(),
	}
	m.keys.Switch.SetEnabled(false)
	m.keys.Back.SetEnabled(false)
	m.help.Width = cfg.ScreenW

	if store != nil {
		if best, err := store.HighScore(); err == nil {
			m.best = best
		}
		if name, err := store.Theme(); err == nil {
			m.theme = ThemeByName(name)
		}
	}
	return m
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Select):
		item := m.items[m.cursor]
		switch item.Action {
		case MenuActionTheme:
			m.toggleTheme()
			return m, nil
		case MenuActionQuit:
			m.quitting = true
			return m, tea.Quit
		}
		m.selected = &item
		return m, tea.Quit
	}

	return m, nil
}

// toggleTheme switches and persists the theme.
func (m *MenuModel) toggleTheme() {
	m.theme = m.theme.Toggle()
	if m.store == nil {
		return
	}
	if err := m.store.SetTheme(m.theme.Name); err != nil && m.logger != nil {
		m.logger.Warn("could not save theme", "error", err)
	}
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(m.theme.Title.Render("M A Z E   D R I F T"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.theme.Dim.Render("Best "+humanize.Comma(int64(m.best))), m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		title := item.Title
		if item.Action == MenuActionTheme {
			title = fmt.Sprintf("Theme: %s", m.theme.Name)
		}

		line := "  " + title
		style := m.theme.Text
		if i == m.cursor {
			line = "> " + title
			style = m.theme.Selected
		}
		line = fmt.Sprintf("%-20s", line)
		b.WriteString(centerText(style.Render(line), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if item := m.items[m.cursor]; item.Action == MenuActionPlay {
		b.WriteString(centerText(m.theme.Dim.Render(presetBlurbs[item.Preset]), m.width))
	}
	b.WriteString("\n\n")
	b.WriteString(centerText(m.theme.Help.Render(m.help.View(m.keys)), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}
