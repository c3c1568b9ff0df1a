// Package gui is the raylib window frontend.
//
// The board is window_size pixels square and split into cell_size pixel
// cells, with a status strip below it that is not part of the board. Each frame redraws the whole board, then polls input; the frame
// rate cap only bounds CPU use, since generations advance on key presses.
//
// # Key Bindings
//
//	Click - Toggle the cell under the pointer
//	Space - Advance one generation (configurable)
//	C     - Clear the board
//	P     - Seed the next preset pattern
//	T     - Cycle color themes
//	?     - Show help overlay
//	Q     - Quit
package gui
