// Package layout maps pointer positions to grid cells and back.
//
// Positions are in whatever unit the frontend reports: pixels for the
// window, character cells for the terminal.
package layout

// GridSize derives the grid dimension from a window extent and a cell
// extent. Non-positive inputs yield 0.
func GridSize(window, cell int) int {
	if window <= 0 || cell <= 0 {
		return 0
	}
	return window / cell
}

// Layout places an N x N board at an origin with fixed cell extents.
type Layout struct {
	OriginX, OriginY      int
	CellWidth, CellHeight int
	Size                  int
}

// Square returns a layout of n cells of side px starting at the origin.
func Square(n, px int) Layout {
	return Layout{CellWidth: px, CellHeight: px, Size: n}
}

// CellAt translates a position to (row, col). Positions off the board,
// including those left of or above the origin, report ok == false and must
// be ignored by the caller; they are never clamped onto an edge cell.
func (l Layout) CellAt(x, y int) (row, col int, ok bool) {
	if l.CellWidth <= 0 || l.CellHeight <= 0 {
		return 0, 0, false
	}
	dx, dy := x-l.OriginX, y-l.OriginY
	if dx < 0 || dy < 0 {
		return 0, 0, false
	}
	row, col = dy/l.CellHeight, dx/l.CellWidth
	if row >= l.Size || col >= l.Size {
		return 0, 0, false
	}
	return row, col, true
}

// Rect returns the top-left corner and extent of a cell.
func (l Layout) Rect(row, col int) (x, y, w, h int) {
	return l.OriginX + col*l.CellWidth, l.OriginY + row*l.CellHeight, l.CellWidth, l.CellHeight
}

// Extent returns the board's total width and height.
func (l Layout) Extent() (w, h int) {
	return l.Size * l.CellWidth, l.Size * l.CellHeight
}
