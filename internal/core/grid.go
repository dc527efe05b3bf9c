package core

import (
	pkgcore "tilelife/pkg/core"
)

// Grid stores the committed and pending alive flags of a W×H board in
// row-major order. Dimensions are fixed at construction.
type Grid struct {
	W, H    int
	alive   []bool
	pending []bool
}

// NewGrid allocates an all-dead grid. Non-positive dimensions are rejected.
func NewGrid(w, h int) (*Grid, error) {
	if w <= 0 || h <= 0 {
		return nil, ErrInvalidSize
	}
	return &Grid{W: w, H: h, alive: make([]bool, w*h), pending: make([]bool, w*h)}, nil
}

// Size returns the grid dimensions.
func (g *Grid) Size() Size { return Size{W: g.W, H: g.H} }

// Cells exposes the committed generation. Callers must treat it as read-only.
func (g *Grid) Cells() []bool { return g.alive }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.W + x }

func (g *Grid) check(x, y int) error {
	if !g.Size().Contains(x, y) {
		return &OutOfBoundsError{X: x, Y: y, Size: g.Size()}
	}
	return nil
}

// Get returns the committed state of (x, y).
func (g *Grid) Get(x, y int) (bool, error) {
	if err := g.check(x, y); err != nil {
		return false, err
	}
	return g.alive[g.Index(x, y)], nil
}

// SetAlive writes the committed state of (x, y) and mirrors it into pending.
func (g *Grid) SetAlive(x, y int, value bool) error {
	if err := g.check(x, y); err != nil {
		return err
	}
	i := g.Index(x, y)
	g.alive[i] = value
	g.pending[i] = value
	return nil
}

// Randomize makes every cell alive with probability one half.
func (g *Grid) Randomize(seed int64) {
	rng := pkgcore.NewRNG(seed).Source()
	pkgcore.FillBool(rng, g.alive)
	copy(g.pending, g.alive)
}

// Clear kills every cell.
func (g *Grid) Clear() {
	for i := range g.alive {
		g.alive[i] = false
		g.pending[i] = false
	}
}

// LiveCount returns the number of committed live cells.
func (g *Grid) LiveCount() int {
	n := 0
	for _, a := range g.alive {
		if a {
			n++
		}
	}
	return n
}

// BeginComputation opens a step. Until Commit, only SetPending may write and
// every read goes to the committed generation.
func (g *Grid) BeginComputation() {
	copy(g.pending, g.alive)
}

// SetPending records the next-generation value for cell index i.
func (g *Grid) SetPending(i int, value bool) { g.pending[i] = value }

// Commit publishes the pending generation and returns the cells that changed.
// Afterwards pending mirrors alive again.
func (g *Grid) Commit() []CellChange {
	var changes []CellChange
	for i, next := range g.pending {
		if g.alive[i] != next {
			changes = append(changes, CellChange{X: i % g.W, Y: i / g.W, Alive: next})
		}
	}
	g.alive, g.pending = g.pending, g.alive
	copy(g.pending, g.alive)
	return changes
}
