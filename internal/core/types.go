package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Contains reports whether (x, y) lies inside the grid.
func (s Size) Contains(x, y int) bool {
	return x >= 0 && y >= 0 && x < s.W && y < s.H
}

// Wrap applies toroidal wrapping to the provided coordinates.
func (s Size) Wrap(x, y int) (int, int) {
	x = (x%s.W + s.W) % s.W
	y = (y%s.H + s.H) % s.H
	return x, y
}

// Point addresses a single cell.
type Point struct {
	X, Y int
}

// CellChange is one cell whose committed state flipped during a commit.
type CellChange struct {
	X, Y  int
	Alive bool
}

// Frame is handed to observers after every commit, and after a restart or
// clear rewrote the board outside of a step.
type Frame struct {
	Generation int
	Size       Size
	// Reset marks a board rewritten by a command; Changes is nil and the
	// observer should redraw from Cells.
	Reset bool
	// Cells is the committed generation in row-major order. Observers must not
	// retain or mutate it past the call.
	Cells   []bool
	Changes []CellChange
}

// Observer receives committed generations. Implementations only read.
type Observer interface {
	Refresh(f Frame)
}

// ObserverFunc adapts a plain function to the Observer interface.
type ObserverFunc func(f Frame)

// Refresh calls fn(f).
func (fn ObserverFunc) Refresh(f Frame) { fn(f) }
