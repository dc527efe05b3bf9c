package core

// NextState applies Conway's rule: a live cell survives with 2 or 3 live
// neighbours, a dead cell is born with exactly 3.
func NextState(alive bool, liveNeighbors int) bool {
	if alive {
		return liveNeighbors == 2 || liveNeighbors == 3
	}
	return liveNeighbors == 3
}

// EvaluateCell computes the next state of cell index i from the committed
// generation and writes it to pending.
func EvaluateCell(g *Grid, n Neighborhood, i int) {
	x, y := i%g.W, i/g.W
	g.SetPending(i, NextState(g.alive[i], n.LiveNeighbors(g, x, y)))
}
