// Package life implements Conway's Game of Life on a fixed-size square grid.
//
// The package defines the cell storage and the generation rule:
//
//   - [Grid]: N x N cells in a single row-major buffer
//   - [Neighbors]: live-neighbour count with no wraparound at the edges
//   - [Rule]: B3/S23 cell update
//   - [Step]: one generation, returned as a new grid
//
// # Example
//
//	g := life.NewGrid(40)
//	g.Toggle(20, 19)
//	g.Toggle(20, 20)
//	g.Toggle(20, 21)
//	g = life.Step(g)
//
// # Edges
//
// The grid is finite. Coordinates outside [0, N) are never read or written;
// a cell on the border simply has fewer neighbours.
//
// # Thread Safety
//
// Grid values are NOT thread-safe. Step only reads its input, so a grid that
// is no longer being edited can be stepped from any goroutine.
package life
