// Package tui provides the Bubble Tea front end for Maze Drift: the game
// screen, the menu, the scoreboard and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg is sent once per frame to advance the simulation.
type FrameMsg time.Time

// frameCmd returns a Bubble Tea command that sends frame messages at the given rate.
func frameCmd(fps int) tea.Cmd {
	if fps <= 0 {
		fps = 60
	}
	interval := time.Second / time.Duration(fps)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}
