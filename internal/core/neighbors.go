package core

import "slices"

// mooreOffsets lists the eight compass directions around a cell.
var mooreOffsets = [8]Point{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// Neighborhood resolves Moore neighbours for a fixed grid size. With Wrap
// unset, candidates that fall off the board are dropped, so corners have 3
// neighbours and edges 5.
type Neighborhood struct {
	Size Size
	Wrap bool
}

// NeighborsOf returns the distinct Moore neighbours of (x, y). On tori
// narrower than three cells offsets that fold onto the same cell are
// reported once, and the cell is never its own neighbour.
func (n Neighborhood) NeighborsOf(x, y int) ([]Point, error) {
	if !n.Size.Contains(x, y) {
		return nil, &OutOfBoundsError{X: x, Y: y, Size: n.Size}
	}
	return n.appendNeighbors(make([]Point, 0, len(mooreOffsets)), x, y), nil
}

func (n Neighborhood) appendNeighbors(dst []Point, x, y int) []Point {
	start := len(dst)
	for _, o := range mooreOffsets {
		nx, ny := x+o.X, y+o.Y
		if !n.Wrap {
			if n.Size.Contains(nx, ny) {
				dst = append(dst, Point{X: nx, Y: ny})
			}
			continue
		}
		nx, ny = n.Size.Wrap(nx, ny)
		p := Point{X: nx, Y: ny}
		if (nx == x && ny == y) || slices.Contains(dst[start:], p) {
			continue
		}
		dst = append(dst, p)
	}
	return dst
}

// LiveNeighbors counts committed live neighbours of (x, y). The coordinate
// must be in bounds.
func (n Neighborhood) LiveNeighbors(g *Grid, x, y int) int {
	var buf [8]Point
	count := 0
	for _, p := range n.appendNeighbors(buf[:0], x, y) {
		if g.alive[g.Index(p.X, p.Y)] {
			count++
		}
	}
	return count
}
