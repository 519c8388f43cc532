package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/maze-drift/internal/config"
	"github.com/vovakirdan/maze-drift/internal/core"
	"github.com/vovakirdan/maze-drift/internal/games/mazedrift"
	"github.com/vovakirdan/maze-drift/internal/storage"
)

// GameOptions configures a game screen.
type GameOptions struct {
	Config  config.MazeDriftConfig
	Runtime core.RuntimeConfig
	Preset  config.DifficultyPreset
	Store   *storage.Store // May be nil: play without persistence
	Logger  *log.Logger    // May be nil: discard logs
	InMenu  bool           // Enables the back-to-menu key
}

// GameModel is the Bubble Tea model that runs one Maze Drift game.
type GameModel struct {
	game    *mazedrift.Game
	screen  *core.Screen
	vp      core.Viewport
	queue   *core.IntentQueue
	clock   *core.FrameClock
	store   *storage.Store
	logger  *log.Logger
	runtime core.RuntimeConfig
	preset  config.DifficultyPreset
	theme   Theme
	keys    GameKeyMap
	help    help.Model

	quitting   bool
	backToMenu bool
}

// NewGameModel creates the game screen. The high score and theme are read
// from the store when one is given.
func NewGameModel(opts GameOptions) GameModel {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	cfg := opts.Config
	config.ApplyPreset(&cfg, opts.Preset)

	best := 0
	theme := DarkTheme()
	if opts.Store != nil {
		if b, err := opts.Store.HighScore(); err != nil {
			logger.Warn("could not read high score", "error", err)
		} else {
			best = b
		}
		if name, err := opts.Store.Theme(); err != nil {
			logger.Warn("could not read theme", "error", err)
		} else {
			theme = ThemeByName(name)
		}
	}

	h := help.New()
	h.ShowAll = false

	m := GameModel{
		game:    mazedrift.New(cfg, opts.Runtime, mazedrift.WithHighScore(best)),
		screen:  core.NewScreen(0, 0),
		queue:   core.NewIntentQueue(),
		clock:   core.NewFrameClock(time.Duration(cfg.Timing.MaxDeltaMS) * time.Millisecond),
		store:   opts.Store,
		logger:  logger,
		runtime: opts.Runtime,
		preset:  opts.Preset,
		theme:   theme,
		keys:    DefaultGameKeyMap(opts.InMenu),
		help:    h,
	}
	m.resize(opts.Runtime.ScreenW, opts.Runtime.ScreenH)
	return m
}

// resize fits the board into a width x height terminal, keeping the last
// row for the help line.
func (m *GameModel) resize(width, height int) {
	m.runtime.ScreenW = width
	m.runtime.ScreenH = height
	m.help.Width = width

	boardH := max(0, height-1)
	m.screen.Resize(width, boardH)
	cfg := m.game.Config()
	m.vp = core.FitViewport(width, boardH, mazedrift.HUDRows, cfg.Field.Width, cfg.Field.Height)
}

// Init starts the frame loop.
func (m GameModel) Init() tea.Cmd {
	return frameCmd(m.runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case FrameMsg:
		return m.handleFrame(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Back):
		if m.game.Phase() != mazedrift.PhaseRunning {
			m.backToMenu = true
		}
		return m, nil

	case key.Matches(msg, m.keys.Theme):
		m.toggleTheme()
		return m, nil

	case key.Matches(msg, m.keys.Shot):
		m.saveScreenshot()
		return m, nil
	}

	m.queue.Push(m.keys.Intent(msg))
	return m, nil
}

// handleMouse turns a press or a drag into a pointer intent.
func (m GameModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	if msg.Action == tea.MouseActionPress || msg.Action == tea.MouseActionMotion {
		m.queue.Push(core.MoveTo(m.vp.WorldX(msg.X)))
	}
	return m, nil
}

// handleFrame advances the simulation by the elapsed wall time.
func (m GameModel) handleFrame(now time.Time) (tea.Model, tea.Cmd) {
	if m.backToMenu || m.quitting {
		return m, nil
	}

	// Paused wall time never reaches the simulation, so the frame that
	// resumes or restarts a paused game steps with dt 0
	if m.game.Phase() == mazedrift.PhasePaused {
		m.clock.Rebase(now)
	}

	dt := m.clock.Delta(now)
	res := m.game.Step(dt, m.queue.Drain())

	if res.Events.Has(mazedrift.EventStarted) {
		m.syncHighScore()
		m.logger.Debug("run started", "preset", m.preset)
	}
	if res.Events.Has(mazedrift.EventLifeLost) {
		m.logger.Debug("life lost", "lives", m.game.Lives(), "score", res.Score)
	}
	if res.Events.Has(mazedrift.EventGameOver) {
		m.saveRun(res)
	}

	return m, frameCmd(m.runtime.TickRate)
}

// syncHighScore picks up a better score stored by another session.
func (m *GameModel) syncHighScore() {
	if m.store == nil {
		return
	}
	best, err := m.store.HighScore()
	if err != nil {
		m.logger.Warn("could not read high score", "error", err)
		return
	}
	if best > m.game.HighScore() {
		m.game.SetHighScore(best)
	}
}

// saveRun records a finished run and a new best. Failures are logged; the
// game continues regardless.
func (m *GameModel) saveRun(res mazedrift.StepResult) {
	m.logger.Info("run finished", "score", res.Score, "elapsed", res.Elapsed, "preset", m.preset)
	if m.store == nil {
		return
	}

	if res.Events.Has(mazedrift.EventHighScore) {
		stored, err := m.store.HighScore()
		if err == nil && res.Best > stored {
			err = m.store.SetHighScore(res.Best)
		}
		if err != nil {
			m.logger.Warn("could not save high score", "error", err)
		}
	}

	id, err := m.store.SaveRun(storage.RunRecord{
		Score:    res.Score,
		Duration: time.Duration(res.Elapsed * float64(time.Second)),
		Preset:   string(m.preset),
	})
	if err != nil {
		m.logger.Warn("could not save run", "error", err)
		return
	}
	m.logger.Debug("run saved", "run", id)
}

// toggleTheme switches between the dark and light palettes and persists
// the choice.
func (m *GameModel) toggleTheme() {
	m.theme = m.theme.Toggle()
	if m.store == nil {
		return
	}
	if err := m.store.SetTheme(m.theme.Name); err != nil {
		m.logger.Warn("could not save theme", "error", err)
	}
}

// saveScreenshot saves the current screen as plain text.
func (m *GameModel) saveScreenshot() {
	mazedrift.Render(m.game.Snapshot(), m.screen, m.vp)

	dir := filepath.Join(os.Getenv("HOME"), ".mazedrift", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot directory", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", mazedrift.ID, timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	mazedrift.Render(m.game.Snapshot(), m.screen, m.vp)
	return RenderScreen(m.screen, m.theme) + "\n" + m.theme.Help.Render(m.help.View(m.keys))
}

// IsQuitting returns true if the user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user requested to go back to the menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Theme returns the active theme.
func (m GameModel) Theme() Theme {
	return m.theme
}

// Run starts a standalone game program.
func Run(opts GameOptions) error {
	p := tea.NewProgram(
		NewGameModel(opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
