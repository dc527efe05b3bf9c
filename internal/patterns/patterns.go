package patterns

import (
	"fmt"
	"sort"
	"strings"

	"tilelife/internal/core"
)

// Pattern is a named seed: a set of live cells relative to the origin.
type Pattern struct {
	Name  string
	Descr string
	Cells []core.Point
}

// Bounds returns the width and height of the pattern's bounding box.
func (p Pattern) Bounds() core.Size {
	var s core.Size
	for _, c := range p.Cells {
		if c.X+1 > s.W {
			s.W = c.X + 1
		}
		if c.Y+1 > s.H {
			s.H = c.Y + 1
		}
	}
	return s
}

var registry = map[string]Pattern{}

// Register adds a pattern under its name.
func Register(p Pattern) {
	if p.Name == "" || len(p.Cells) == 0 {
		return
	}
	registry[p.Name] = p
}

// Lookup returns the pattern registered as name.
func Lookup(name string) (Pattern, bool) {
	p, ok := registry[name]
	return p, ok
}

// Names lists the registered patterns in alphabetical order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Usage lists every registered pattern with its description, one per line,
// in alphabetical order.
func Usage() string {
	var b strings.Builder
	for i, n := range Names() {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%s: %s", n, registry[n].Descr)
	}
	return b.String()
}

// Place clears g and seeds p with its origin at (dx, dy). It fails without
// touching the grid when any cell would land outside.
func Place(g *core.Grid, p Pattern, dx, dy int) error {
	size := g.Size()
	for _, c := range p.Cells {
		if !size.Contains(c.X+dx, c.Y+dy) {
			return fmt.Errorf("pattern %q at (%d,%d): %w", p.Name, dx, dy,
				&core.OutOfBoundsError{X: c.X + dx, Y: c.Y + dy, Size: size})
		}
	}
	g.Clear()
	for _, c := range p.Cells {
		if err := g.SetAlive(c.X+dx, c.Y+dy, true); err != nil {
			return err
		}
	}
	return nil
}

// PlaceCentered places p in the middle of g.
func PlaceCentered(g *core.Grid, p Pattern) error {
	b := p.Bounds()
	return Place(g, p, (g.W-b.W)/2, (g.H-b.H)/2)
}

func init() {
	Register(Pattern{
		Name:  "glider",
		Descr: "travels one cell diagonally every four generations",
		Cells: []core.Point{{X: 1, Y: 0}, {X: 2, Y: 1}, {X: 0, Y: 2}, {X: 1, Y: 2}, {X: 2, Y: 2}},
	})
	Register(Pattern{
		Name:  "blinker",
		Descr: "period 2 oscillator",
		Cells: []core.Point{{X: 1, Y: 0}, {X: 1, Y: 1}, {X: 1, Y: 2}},
	})
	Register(Pattern{
		Name:  "block",
		Descr: "still life",
		Cells: []core.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}},
	})
	Register(Pattern{
		Name:  "toad",
		Descr: "period 2 oscillator",
		Cells: []core.Point{{X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 1}},
	})
	Register(Pattern{
		Name:  "beacon",
		Descr: "period 2 oscillator made of two blocks",
		Cells: []core.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 3, Y: 2}, {X: 2, Y: 3}, {X: 3, Y: 3}},
	})
}
