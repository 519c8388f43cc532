package core

import "math"

// Viewport maps the world field (e.g. 480x800 units) onto a block of
// terminal cells. Terminal cells are roughly twice as tall as they are wide,
// so the column count is doubled relative to a square-pixel fit.
type Viewport struct {
	OffsetX int // First column of the board on screen
	OffsetY int // First row of the board on screen
	Cols    int // Board width in cells
	Rows    int // Board height in cells

	fieldW float64
	fieldH float64
}

// cellAspect is the height/width ratio of a terminal cell.
const cellAspect = 2.0

// FitViewport places the field inside a screenW x screenH area, leaving
// topRows rows free above the board (for the HUD). The board keeps the
// field's aspect ratio and is centered horizontally.
func FitViewport(screenW, screenH, topRows int, fieldW, fieldH float64) Viewport {
	rows := screenH - topRows
	if rows < 1 {
		rows = 1
	}
	cols := int(math.Round(float64(rows) * cellAspect * fieldW / fieldH))
	if cols > screenW {
		cols = screenW
		rows = Clamp(int(math.Round(float64(cols)*fieldH/(fieldW*cellAspect))), 1, rows)
	}
	if cols < 1 {
		cols = 1
	}

	return Viewport{
		OffsetX: Max(0, (screenW-cols)/2),
		OffsetY: topRows,
		Cols:    cols,
		Rows:    rows,
		fieldW:  fieldW,
		fieldH:  fieldH,
	}
}

// CellW returns the world width covered by one column.
func (v Viewport) CellW() float64 {
	return v.fieldW / float64(v.Cols)
}

// CellH returns the world height covered by one row.
func (v Viewport) CellH() float64 {
	return v.fieldH / float64(v.Rows)
}

// WorldX returns the world x at the center of screen column col.
func (v Viewport) WorldX(col int) float64 {
	return (float64(col-v.OffsetX) + 0.5) * v.CellW()
}

// WorldY returns the world y at the center of screen row row.
func (v Viewport) WorldY(row int) float64 {
	return (float64(row-v.OffsetY) + 0.5) * v.CellH()
}

// ToCell returns the screen cell containing world point (x, y).
func (v Viewport) ToCell(x, y float64) (col, row int) {
	col = v.OffsetX + int(math.Floor(x/v.CellW()))
	row = v.OffsetY + int(math.Floor(y/v.CellH()))
	return col, row
}

// Bounds returns the board rectangle in screen cells.
func (v Viewport) Bounds() Rect {
	return NewRect(v.OffsetX, v.OffsetY, v.Cols, v.Rows)
}
