package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/maze-drift/internal/config"
	"github.com/vovakirdan/maze-drift/internal/storage"
)

var (
	downKey  = tea.KeyMsg{Type: tea.KeyDown}
	upKey    = tea.KeyMsg{Type: tea.KeyUp}
	enterKey = tea.KeyMsg{Type: tea.KeyEnter}
	tabKey   = tea.KeyMsg{Type: tea.KeyTab}
)

func updateMenu(t *testing.T, m MenuModel, msgs ...tea.Msg) MenuModel {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		mm, ok := next.(MenuModel)
		if !ok {
			t.Fatalf("Update returned %T, expected MenuModel", next)
		}
		m = mm
	}
	return m
}

func TestMenuItems(t *testing.T) {
	m := NewMenuModel(nil, testRuntime(), nil)

	want := []string{"Play Easy", "Play Normal", "Play Hard", "Play Fixed", "High Scores", "Theme", "Quit"}
	if len(m.items) != len(want) {
		t.Fatalf("menu has %d items, expected %d", len(m.items), len(want))
	}
	for i, title := range want {
		if m.items[i].Title != title {
			t.Errorf("item %d = %q, expected %q", i, m.items[i].Title, title)
		}
	}
}

func TestMenuSelectPreset(t *testing.T) {
	tests := []struct {
		name  string
		moves []tea.Msg
		want  config.DifficultyPreset
	}{
		{"first item", nil, config.DifficultyEasy},
		{"down twice", []tea.Msg{downKey, downKey}, config.DifficultyHard},
		{"up stops at top", []tea.Msg{upKey, upKey, downKey}, config.DifficultyNormal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMenuModel(nil, testRuntime(), nil)
			m = updateMenu(t, m, tt.moves...)
			m = updateMenu(t, m, enterKey)

			sel := m.Selected()
			if sel == nil {
				t.Fatal("nothing selected")
			}
			if sel.Action != MenuActionPlay || sel.Preset != tt.want {
				t.Errorf("selected %+v, expected play %s", *sel, tt.want)
			}
		})
	}
}

func TestMenuCursorStopsAtBottom(t *testing.T) {
	m := NewMenuModel(nil, testRuntime(), nil)
	for i := 0; i < 20; i++ {
		m = updateMenu(t, m, downKey)
	}
	m = updateMenu(t, m, enterKey)
	if !m.IsQuitting() {
		t.Error("last item should be Quit")
	}
}

func TestMenuThemeToggle(t *testing.T) {
	store := openTestStore(t)
	m := NewMenuModel(store, testRuntime(), nil)

	// Theme is the second to last item
	for i := 0; i < len(m.items)-2; i++ {
		m = updateMenu(t, m, downKey)
	}
	m = updateMenu(t, m, enterKey)

	if m.Selected() != nil {
		t.Error("theme toggles in place and selects nothing")
	}
	if !strings.Contains(m.View(), "Theme: light") {
		t.Error("view should show the light theme")
	}
	if name, _ := store.Theme(); name != ThemeLight {
		t.Errorf("stored theme = %q, expected light", name)
	}
}

func TestMenuShowsBest(t *testing.T) {
	store := openTestStore(t)
	if err := store.SetHighScore(12345); err != nil {
		t.Fatalf("SetHighScore() failed: %v", err)
	}

	m := NewMenuModel(store, testRuntime(), nil)
	if !strings.Contains(m.View(), "Best 12,345") {
		t.Error("view should show the humanized best score")
	}
}

func TestMenuResize(t *testing.T) {
	m := NewMenuModel(nil, testRuntime(), nil)
	m = updateMenu(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

	if cfg := m.Config(); cfg.ScreenW != 100 || cfg.ScreenH != 30 {
		t.Errorf("config size = %dx%d, expected 100x30", cfg.ScreenW, cfg.ScreenH)
	}
}

func TestScoreboardViews(t *testing.T) {
	store := openTestStore(t)
	for _, score := range []int{50, 300, 120} {
		if _, err := store.SaveRun(storage.RunRecord{Score: score, Duration: 90 * time.Second, Preset: "easy"}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	m := NewScoreboardModel(store, 80, 24, DarkTheme())
	if m.view != ViewTop {
		t.Fatalf("view = %v, expected top", m.view)
	}
	if len(m.runs) != 3 || m.runs[0].Score != 300 {
		t.Fatalf("top runs = %+v, expected 300 first", m.runs)
	}

	view := m.View()
	for _, want := range []string{"300", "1:30", "3 runs", "best 300"} {
		if !strings.Contains(view, want) {
			t.Errorf("view is missing %q", want)
		}
	}

	next, _ := m.Update(tabKey)
	m = next.(ScoreboardModel)
	if m.view != ViewRecent {
		t.Fatalf("view = %v after tab, expected recent", m.view)
	}
	if m.runs[0].Score != 120 {
		t.Errorf("most recent run = %d, expected 120", m.runs[0].Score)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(ScoreboardModel)
	if !m.IsGoingBack() || m.IsQuitting() {
		t.Error("esc should go back without quitting")
	}
}

func TestScoreboardWithoutStore(t *testing.T) {
	m := NewScoreboardModel(nil, 80, 24, DarkTheme())
	if !strings.Contains(m.View(), "scores are not being saved") {
		t.Error("view should explain that scores are not saved")
	}
}

func TestSessionFlow(t *testing.T) {
	store := openTestStore(t)
	s := NewSessionModel(store, config.DefaultConfig(), testRuntime(), nil)

	step := func(msg tea.Msg) {
		t.Helper()
		next, _ := s.Update(msg)
		sm, ok := next.(SessionModel)
		if !ok {
			t.Fatalf("Update returned %T, expected SessionModel", next)
		}
		s = sm
	}

	step(enterKey)
	if s.screen != screenGame {
		t.Fatalf("screen = %v, expected game after selecting a preset", s.screen)
	}
	if !strings.Contains(s.View(), "Maze Drift") {
		t.Error("game screen should show the ready overlay")
	}

	step(runeKey('b'))
	if s.screen != screenMenu {
		t.Fatalf("screen = %v, expected menu after back", s.screen)
	}
	if s.menu.Selected() != nil {
		t.Error("menu should be fresh after returning")
	}

	for i := 0; i < 4; i++ {
		step(downKey)
	}
	step(enterKey)
	if s.screen != screenScores {
		t.Fatalf("screen = %v, expected scores", s.screen)
	}

	step(tea.KeyMsg{Type: tea.KeyEsc})
	if s.screen != screenMenu {
		t.Fatalf("screen = %v, expected menu after leaving scores", s.screen)
	}

	step(runeKey('q'))
	if !s.quitting {
		t.Error("q should quit the session")
	}
}
