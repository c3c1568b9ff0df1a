// Package patterns holds the built-in seed library.
//
// Offsets are (row, col) relative to the grid centre, size/2 on both axes.
package patterns

import (
	"errors"
	"sort"

	"github.com/san-kum/conway/internal/life"
)

const (
	StillLifes  = "still lifes"
	Oscillators = "oscillators"
	Spaceships  = "spaceships"
	Methuselahs = "methuselahs"
)

// Pattern is a named set of live cells.
type Pattern struct {
	Name     string
	Category string
	Period   int
	Cells    [][2]int
}

// DefaultName is the seed used when a frontend asks for "something
// interesting" without naming a pattern.
const DefaultName = "r-pentomino"

var Library = map[string]*Pattern{
	"block": {
		Name: "block", Category: StillLifes, Period: 1,
		Cells: [][2]int{{0, 0}, {0, 1}, {1, 0}, {1, 1}},
	},
	"beehive": {
		Name: "beehive", Category: StillLifes, Period: 1,
		Cells: [][2]int{{-1, 0}, {-1, 1}, {0, -1}, {0, 2}, {1, 0}, {1, 1}},
	},
	"loaf": {
		Name: "loaf", Category: StillLifes, Period: 1,
		Cells: [][2]int{{-1, 0}, {-1, 1}, {0, -1}, {0, 2}, {1, 0}, {1, 2}, {2, 1}},
	},
	"boat": {
		Name: "boat", Category: StillLifes, Period: 1,
		Cells: [][2]int{{-1, -1}, {-1, 0}, {0, -1}, {0, 1}, {1, 0}},
	},
	"tub": {
		Name: "tub", Category: StillLifes, Period: 1,
		Cells: [][2]int{{-1, 0}, {0, -1}, {0, 1}, {1, 0}},
	},
	"blinker": {
		Name: "blinker", Category: Oscillators, Period: 2,
		Cells: [][2]int{{0, -1}, {0, 0}, {0, 1}},
	},
	"toad": {
		Name: "toad", Category: Oscillators, Period: 2,
		Cells: [][2]int{{0, 0}, {0, 1}, {0, 2}, {1, -1}, {1, 0}, {1, 1}},
	},
	"beacon": {
		Name: "beacon", Category: Oscillators, Period: 2,
		Cells: [][2]int{
			{-2, -2}, {-2, -1}, {-1, -2}, {-1, -1},
			{0, 0}, {0, 1}, {1, 0}, {1, 1},
		},
	},
	"pulsar": {
		Name: "pulsar", Category: Oscillators, Period: 3,
		Cells: pulsar(),
	},
	"glider": {
		Name: "glider", Category: Spaceships, Period: 4,
		Cells: [][2]int{{-1, 0}, {0, 1}, {1, -1}, {1, 0}, {1, 1}},
	},
	"lwss": {
		Name: "lwss", Category: Spaceships, Period: 4,
		Cells: [][2]int{
			{-2, -1}, {-2, 2},
			{-1, -2},
			{0, -2}, {0, 2},
			{1, -2}, {1, -1}, {1, 0}, {1, 1},
		},
	},
	"r-pentomino": {
		Name: "r-pentomino", Category: Methuselahs,
		Cells: [][2]int{{0, 0}, {1, -1}, {1, 0}, {2, 0}, {2, 1}},
	},
}

// pulsar builds the 48-cell period-3 oscillator: four arms of three cells
// at distances 1 and 6 from the centre lines.
func pulsar() [][2]int {
	cells := make([][2]int, 0, 48)
	for _, a := range []int{1, 6} {
		for _, b := range []int{2, 3, 4} {
			for _, sr := range []int{-1, 1} {
				for _, sc := range []int{-1, 1} {
					cells = append(cells, [2]int{sr * a, sc * b}, [2]int{sr * b, sc * a})
				}
			}
		}
	}
	return cells
}

// Lookup returns the named pattern or nil.
func Lookup(name string) *Pattern {
	return Library[name]
}

// Names returns every pattern name, sorted.
func Names() []string {
	names := make([]string, 0, len(Library))
	for name := range Library {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Next returns the pattern after name in sorted order, wrapping around.
// An unknown or empty name starts from the first pattern.
func Next(name string) *Pattern {
	names := Names()
	for i, n := range names {
		if n == name {
			return Library[names[(i+1)%len(names)]]
		}
	}
	return Library[names[0]]
}

// Categories returns category names in display order.
func Categories() []string {
	return []string{StillLifes, Oscillators, Spaceships, Methuselahs}
}

// ByCategory groups sorted pattern names under their category.
func ByCategory() map[string][]string {
	out := make(map[string][]string)
	for _, name := range Names() {
		p := Library[name]
		out[p.Category] = append(out[p.Category], name)
	}
	return out
}

// Bounds returns the smallest and largest offsets on each axis.
func (p *Pattern) Bounds() (minRow, minCol, maxRow, maxCol int) {
	for i, c := range p.Cells {
		if i == 0 {
			minRow, maxRow, minCol, maxCol = c[0], c[0], c[1], c[1]
			continue
		}
		minRow, maxRow = min(minRow, c[0]), max(maxRow, c[0])
		minCol, maxCol = min(minCol, c[1]), max(maxCol, c[1])
	}
	return
}

// Fits reports whether every cell of p lands inside an n x n grid.
func (p *Pattern) Fits(n int) bool {
	minRow, minCol, maxRow, maxCol := p.Bounds()
	mid := n / 2
	return mid+minRow >= 0 && mid+minCol >= 0 && mid+maxRow < n && mid+maxCol < n
}

// Place sets p's cells alive around the centre of g and returns how many
// cells fell outside the grid and were skipped.
func Place(g *life.Grid, p *Pattern) (skipped int) {
	mid := g.Size() / 2
	for _, c := range p.Cells {
		if err := g.SetChecked(mid+c[0], mid+c[1], true); errors.Is(err, life.ErrOutOfRange) {
			skipped++
		}
	}
	return skipped
}
