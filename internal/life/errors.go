package life

import (
	"errors"
	"fmt"
)

// Domain errors for grid operations.
var (
	// ErrOutOfRange indicates a coordinate outside [0, N) x [0, N).
	ErrOutOfRange = errors.New("life: coordinate out of range")
)

// CellError wraps an error with the offending coordinate.
type CellError struct {
	Row, Col int
	Size     int
	Wrapped  error
}

func (e *CellError) Error() string {
	return fmt.Sprintf("%v: (%d, %d) on %dx%d grid", e.Wrapped, e.Row, e.Col, e.Size, e.Size)
}

func (e *CellError) Unwrap() error {
	return e.Wrapped
}
