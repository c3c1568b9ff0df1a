// Package tui provides the terminal frontend using the Bubble Tea framework.
//
// Every cell is two columns wide so the board stays roughly square. Mouse
// presses are mapped to cells through [layout.Layout]; terminals without
// mouse reporting can move a cursor with the arrow keys and toggle with X.
//
// # Key Bindings
//
//	Space - Advance one generation (configurable)
//	C     - Clear the board
//	P     - Seed the next preset pattern
//	T     - Cycle color themes
//	?     - Show help
//	Q     - Quit
package tui
