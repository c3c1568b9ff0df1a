// Package session owns the one live grid of a running visualizer.
//
// Frontends never keep their own grid: they read [Session.Grid] to draw and
// call the editing methods in response to input. Advancing replaces the held
// grid with a new one; toggling edits it in place.
package session

import (
	"github.com/san-kum/conway/internal/layout"
	"github.com/san-kum/conway/internal/life"
	"github.com/san-kum/conway/internal/patterns"
)

// HistoryCapacity bounds the population samples kept for charts.
const HistoryCapacity = 120

type Session struct {
	grid       *life.Grid
	generation int
	history    []float64
	pattern    string
}

// New returns a session over an all-dead n x n grid.
func New(n int) *Session {
	s := &Session{
		grid:    life.NewGrid(n),
		history: make([]float64, 0, HistoryCapacity),
	}
	s.record()
	return s
}

// Grid returns the live grid. Callers must treat it as read-only.
func (s *Session) Grid() *life.Grid { return s.grid }

func (s *Session) Size() int       { return s.grid.Size() }
func (s *Session) Generation() int { return s.generation }
func (s *Session) Population() int { return s.grid.Population() }

// Pattern returns the name of the last seeded pattern, or "".
func (s *Session) Pattern() string { return s.pattern }

// History returns population samples, oldest first, one per generation.
func (s *Session) History() []float64 { return s.history }

// Toggle flips one cell. Out-of-range coordinates are ignored.
func (s *Session) Toggle(row, col int) {
	s.grid.Toggle(row, col)
	s.touch()
}

// ToggleAt flips the cell under a pointer position and reports whether the
// position was on the board.
func (s *Session) ToggleAt(l layout.Layout, x, y int) bool {
	row, col, ok := l.CellAt(x, y)
	if !ok || !s.grid.InBounds(row, col) {
		return false
	}
	s.Toggle(row, col)
	return true
}

// Advance replaces the grid with its next generation.
func (s *Session) Advance() {
	s.grid = life.Step(s.grid)
	s.generation++
	s.record()
}

// Clear kills every cell and resets the generation counter.
func (s *Session) Clear() {
	s.grid = life.NewGrid(s.grid.Size())
	s.generation = 0
	s.pattern = ""
	s.history = s.history[:0]
	s.record()
}

// Seed clears the board and places p at its centre. It returns the number of
// pattern cells that did not fit.
func (s *Session) Seed(p *patterns.Pattern) int {
	s.Clear()
	skipped := patterns.Place(s.grid, p)
	s.pattern = p.Name
	s.touch()
	return skipped
}

// touch rewrites the latest history sample after an edit so the chart
// reflects the board the next generation will start from.
func (s *Session) touch() {
	if len(s.history) > 0 {
		s.history[len(s.history)-1] = float64(s.grid.Population())
	}
}

func (s *Session) record() {
	if len(s.history) == HistoryCapacity {
		copy(s.history, s.history[1:])
		s.history = s.history[:HistoryCapacity-1]
	}
	s.history = append(s.history, float64(s.grid.Population()))
}
