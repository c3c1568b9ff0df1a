package life

// Rule is the B3/S23 update: a live cell survives with 2 or 3 live
// neighbours, a dead cell is born with exactly 3.
func Rule(alive bool, neighbors int) bool {
	return (alive && neighbors == 2) || neighbors == 3
}

// Neighbors counts live cells among the up-to-8 cells around (row, col).
// Positions outside the grid contribute nothing.
func Neighbors(g *Grid, row, col int) int {
	minR, maxR := max(0, row-1), min(g.size-1, row+1)
	minC, maxC := max(0, col-1), min(g.size-1, col+1)

	count := 0
	for r := minR; r <= maxR; r++ {
		for c := minC; c <= maxC; c++ {
			if r == row && c == col {
				continue
			}
			if g.cells[g.index(r, c)] {
				count++
			}
		}
	}
	return count
}

// Step returns the next generation of g. All neighbour counts are taken
// from g; the result is a new grid and g is left untouched.
func Step(g *Grid) *Grid {
	next := NewGrid(g.size)
	for row := 0; row < g.size; row++ {
		for col := 0; col < g.size; col++ {
			i := g.index(row, col)
			next.cells[i] = Rule(g.cells[i], Neighbors(g, row, col))
		}
	}
	return next
}
