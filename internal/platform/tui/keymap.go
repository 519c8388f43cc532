package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/maze-drift/internal/core"
)

// GameKeyMap defines the key bindings of the game screen.
type GameKeyMap struct {
	Start   key.Binding
	Left    key.Binding
	Right   key.Binding
	Pause   key.Binding
	Restart key.Binding
	Theme   key.Binding
	Shot    key.Binding
	Back    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	bindings := []key.Binding{k.Start, k.Left, k.Right, k.Pause, k.Restart, k.Theme}
	if k.Back.Enabled() {
		bindings = append(bindings, k.Back)
	}
	return append(bindings, k.Quit)
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Start, k.Left, k.Right},
		{k.Pause, k.Restart, k.Theme},
		{k.Shot, k.Back, k.Quit},
	}
}

// DefaultGameKeyMap returns the default game bindings. Back is only enabled
// when the game runs inside a menu session.
func DefaultGameKeyMap(withBack bool) GameKeyMap {
	back := key.NewBinding(
		key.WithKeys("b"),
		key.WithHelp("b", "menu"),
	)
	back.SetEnabled(withBack)

	return GameKeyMap{
		Start: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "start"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h", "a"),
			key.WithHelp("←/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l", "d"),
			key.WithHelp("→/l", "right"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Theme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "theme"),
		),
		Shot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Back: back,
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Intent translates a key to a game intent. Keys handled by the front end
// itself (theme, screenshot, back, quit) map to IntentNone.
func (k GameKeyMap) Intent(msg tea.KeyMsg) core.Intent {
	switch {
	case key.Matches(msg, k.Start):
		return core.Intent{Kind: core.IntentStart}
	case key.Matches(msg, k.Left):
		return core.Intent{Kind: core.IntentNudgeLeft}
	case key.Matches(msg, k.Right):
		return core.Intent{Kind: core.IntentNudgeRight}
	case key.Matches(msg, k.Pause):
		return core.Intent{Kind: core.IntentTogglePause}
	case key.Matches(msg, k.Restart):
		return core.Intent{Kind: core.IntentRestart}
	}
	return core.Intent{Kind: core.IntentNone}
}

// MenuKeyMap defines the key bindings shared by the menu and scoreboard.
type MenuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Switch key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k MenuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Switch, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k MenuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Select},
		{k.Switch, k.Back, k.Quit},
	}
}

// DefaultMenuKeyMap returns default menu bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "w"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "s"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "select"),
		),
		Switch: key.NewBinding(
			key.WithKeys("tab", "shift+tab"),
			key.WithHelp("tab", "switch view"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
