package render

import "tilelife/internal/core"

// Tracker keeps an RGBA copy of the last committed generation. It is fed by
// the simulation as an observer and drained by whatever draws the pixels.
type Tracker struct {
	size       core.Size
	palette    Palette
	pixels     []byte
	generation int
	dirty      bool
}

// NewTracker allocates pixel storage for a grid of the given size.
func NewTracker(size core.Size, p Palette) *Tracker {
	return &Tracker{size: size, palette: p, pixels: make([]byte, 4*size.W*size.H)}
}

// Refresh implements core.Observer.
func (t *Tracker) Refresh(f core.Frame) {
	if f.Size != t.size {
		return
	}
	if f.Reset || f.Changes == nil {
		fillCellsRGBA(t.pixels, f.Cells, t.palette)
	} else {
		applyChangesRGBA(t.pixels, t.size.W, f.Changes, t.palette)
	}
	t.generation = f.Generation
	t.dirty = true
}

// Sync repaints from a full snapshot, used before the first frame arrives.
func (t *Tracker) Sync(cells []bool) {
	if len(cells) != t.size.W*t.size.H {
		return
	}
	fillCellsRGBA(t.pixels, cells, t.palette)
	t.dirty = true
}

// Pixels returns the RGBA buffer and whether it changed since the last call.
func (t *Tracker) Pixels() ([]byte, bool) {
	d := t.dirty
	t.dirty = false
	return t.pixels, d
}

// Generation returns the generation of the last frame seen.
func (t *Tracker) Generation() int { return t.generation }

// Size returns the tracked grid dimensions.
func (t *Tracker) Size() core.Size { return t.size }
