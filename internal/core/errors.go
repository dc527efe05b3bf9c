package core

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfBounds reports a coordinate outside [0,W)x[0,H).
	ErrOutOfBounds = errors.New("coordinate out of bounds")
	// ErrInvalidSize reports a grid dimension that is zero or negative.
	ErrInvalidSize = errors.New("grid dimensions must be positive")
)

// OutOfBoundsError carries the rejected coordinate together with the grid size.
type OutOfBoundsError struct {
	X, Y int
	Size Size
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("(%d,%d) outside %dx%d grid", e.X, e.Y, e.Size.W, e.Size.H)
}

// Is lets errors.Is match the sentinel.
func (e *OutOfBoundsError) Is(target error) bool { return target == ErrOutOfBounds }
