package life

import (
	"fmt"
	"strings"
)

// Grid is a square board of live/dead cells stored row-major.
type Grid struct {
	size  int
	cells []bool
}

// NewGrid returns an all-dead n x n grid. Negative sizes yield an empty grid.
func NewGrid(n int) *Grid {
	if n < 0 {
		n = 0
	}
	return &Grid{size: n, cells: make([]bool, n*n)}
}

// Size returns the grid dimension N.
func (g *Grid) Size() int { return g.size }

// InBounds reports whether (row, col) addresses a cell of g.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.size && col >= 0 && col < g.size
}

func (g *Grid) index(row, col int) int { return row*g.size + col }

// Alive returns the state of a cell. Out-of-range coordinates read as dead.
func (g *Grid) Alive(row, col int) bool {
	if !g.InBounds(row, col) {
		return false
	}
	return g.cells[g.index(row, col)]
}

// Set assigns a cell's state. Out-of-range coordinates are ignored.
func (g *Grid) Set(row, col int, alive bool) {
	if g.InBounds(row, col) {
		g.cells[g.index(row, col)] = alive
	}
}

// SetChecked is Set with an error for out-of-range coordinates.
func (g *Grid) SetChecked(row, col int, alive bool) error {
	if !g.InBounds(row, col) {
		return &CellError{Row: row, Col: col, Size: g.size, Wrapped: ErrOutOfRange}
	}
	g.cells[g.index(row, col)] = alive
	return nil
}

// Toggle flips a cell. Callers map pointer positions to valid coordinates
// first; anything out of range is ignored rather than wrapped.
func (g *Grid) Toggle(row, col int) {
	if g.InBounds(row, col) {
		i := g.index(row, col)
		g.cells[i] = !g.cells[i]
	}
}

// Population counts live cells.
func (g *Grid) Population() int {
	n := 0
	for _, c := range g.cells {
		if c {
			n++
		}
	}
	return n
}

// Clone returns an independent copy of g.
func (g *Grid) Clone() *Grid {
	c := &Grid{size: g.size, cells: make([]bool, len(g.cells))}
	copy(c.cells, g.cells)
	return c
}

// Equal reports whether both grids have the same size and cells.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.size != other.size {
		return false
	}
	for i, c := range g.cells {
		if other.cells[i] != c {
			return false
		}
	}
	return true
}

// Each calls fn for every cell in row-major order.
func (g *Grid) Each(fn func(row, col int, alive bool)) {
	for row := 0; row < g.size; row++ {
		for col := 0; col < g.size; col++ {
			fn(row, col, g.cells[g.index(row, col)])
		}
	}
}

// String renders the grid with '#' for live and '.' for dead cells.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow(g.size * (g.size + 1))
	for row := 0; row < g.size; row++ {
		for col := 0; col < g.size; col++ {
			if g.cells[g.index(row, col)] {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Parse builds a grid from rows of '#'/'.' (also 'O'/'*' for live). Every
// row must have exactly as many cells as there are rows.
func Parse(s string) (*Grid, error) {
	lines := make([]string, 0)
	for _, l := range strings.Split(s, "\n") {
		l = strings.TrimSpace(l)
		if l != "" {
			lines = append(lines, l)
		}
	}
	g := NewGrid(len(lines))
	for row, l := range lines {
		if len(l) != g.size {
			return nil, fmt.Errorf("life: row %d has %d cells, want %d", row, len(l), g.size)
		}
		for col, ch := range l {
			switch ch {
			case '#', 'O', '*':
				g.Set(row, col, true)
			case '.':
			default:
				return nil, fmt.Errorf("life: unexpected %q at (%d, %d)", ch, row, col)
			}
		}
	}
	return g, nil
}
