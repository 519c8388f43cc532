package mazedrift

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/maze-drift/internal/core"
)

// Visual characters for rendering
const (
	WallChar     = '█'
	EdgeChar     = '▓'
	OpenChar     = ' '
	BallChar     = '●'
	LifeChar     = '●'
	LostLifeChar = '○'
)

// HUDRows is the number of rows Render reserves above the board.
const HUDRows = 1

// Render draws a snapshot into dst. The board is placed with vp; the HUD is
// drawn in the row above it and a phase overlay is drawn over it whenever
// the game is not running.
func Render(snap Snapshot, dst *core.Screen, vp core.Viewport) {
	dst.Clear()

	drawMaze(snap, dst, vp)
	drawBall(snap, dst, vp)
	drawHUD(snap, dst, vp)

	switch snap.Phase {
	case PhaseReady:
		drawOverlay(dst, Title, core.ColorAccent,
			"Drag or press arrows to move.",
			"Pass through the gaps. Avoid walls.",
			"",
			"Press Space, Click, or R")
	case PhasePaused:
		drawOverlay(dst, "Paused", core.ColorAccent,
			"Game paused",
			"",
			"Press P to resume")
	case PhaseOver:
		drawOverlay(dst, "Game Over", core.ColorDanger,
			fmt.Sprintf("Score: %d", snap.Score),
			fmt.Sprintf("Best: %d", snap.Best),
			"",
			"Press Space or Click to Retry")
	}
}

// drawMaze fills every board cell with wall or open field, sampling the gap
// at the center of each cell.
func drawMaze(snap Snapshot, dst *core.Screen, vp core.Viewport) {
	for row := vp.OffsetY; row < vp.OffsetY+vp.Rows; row++ {
		gap, ok := snap.GapAt(vp.WorldY(row))

		for col := vp.OffsetX; col < vp.OffsetX+vp.Cols; col++ {
			if !ok {
				dst.SetCell(col, row, OpenChar, core.ColorBackground)
				continue
			}

			x := vp.WorldX(col)
			switch {
			case x < gap.Left():
				if vp.WorldX(col+1) >= gap.Left() {
					dst.SetCell(col, row, EdgeChar, core.ColorEdge)
				} else {
					dst.SetCell(col, row, WallChar, core.ColorWall)
				}
			case x > gap.Right():
				if vp.WorldX(col-1) <= gap.Right() {
					dst.SetCell(col, row, EdgeChar, core.ColorEdge)
				} else {
					dst.SetCell(col, row, WallChar, core.ColorWall)
				}
			default:
				dst.SetCell(col, row, OpenChar, core.ColorBackground)
			}
		}
	}
}

// drawBall marks every cell whose center lies inside the ball. A ball smaller
// than a cell still occupies the cell holding its center.
func drawBall(snap Snapshot, dst *core.Screen, vp core.Viewport) {
	b := snap.Ball
	if b.Radius <= 0 {
		return
	}

	board := vp.Bounds()
	minCol, minRow := vp.ToCell(b.X-b.Radius, b.Y-b.Radius)
	maxCol, maxRow := vp.ToCell(b.X+b.Radius, b.Y+b.Radius)

	for row := minRow; row <= maxRow; row++ {
		for col := minCol; col <= maxCol; col++ {
			if !board.Contains(col, row) {
				continue
			}
			dx := vp.WorldX(col) - b.X
			dy := vp.WorldY(row) - b.Y
			if dx*dx+dy*dy <= b.Radius*b.Radius {
				dst.SetCell(col, row, BallChar, core.ColorBall)
			}
		}
	}

	col, row := vp.ToCell(b.X, b.Y)
	if board.Contains(col, row) {
		dst.SetCell(col, row, BallChar, core.ColorBall)
	}
}

// drawHUD writes score, best, lives and difficulty in the row above the board.
func drawHUD(snap Snapshot, dst *core.Screen, vp core.Viewport) {
	y := vp.OffsetY - HUDRows
	if y < 0 {
		return
	}

	lives := strings.Repeat(string(LifeChar), snap.Lives) +
		strings.Repeat(string(LostLifeChar), max(0, snap.MaxLives-snap.Lives))
	level := int(math.Round(snap.Level * 100))

	text := fmt.Sprintf("Score %d  Best %d  %s  Lv %d%%", snap.Score, snap.Best, lives, level)
	dst.DrawTextCentered(core.NewRect(0, y, dst.Width(), 1), y, text, core.ColorText)
}

// drawOverlay draws a message box centered on the screen.
func drawOverlay(dst *core.Screen, title string, titleColor core.Color, lines ...string) {
	textW := len([]rune(title))
	for _, l := range lines {
		textW = core.Max(textW, len([]rune(l)))
	}

	boxW := textW + 4
	boxH := len(lines) + 4
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorBackground)
	dst.DrawBox(box, core.ColorDim)
	dst.DrawTextCentered(box, box.Y+1, title, titleColor)
	for i, l := range lines {
		dst.DrawTextCentered(box, box.Y+3+i, l, core.ColorText)
	}
}
