//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter uploads the tracked generation into an image and draws it
// scaled up to one tile per cell.
type GridPainter struct {
	tracker *Tracker
	img     *ebiten.Image
}

// NewGridPainter allocates a painter that reads from tracker.
func NewGridPainter(tracker *Tracker) *GridPainter {
	size := tracker.Size()
	return &GridPainter{tracker: tracker, img: ebiten.NewImage(size.W, size.H)}
}

// Draw re-uploads pixels after a commit and draws the board at (ox, oy).
func (gp *GridPainter) Draw(dst *ebiten.Image, ox, oy float64, tile int) {
	if tile <= 0 {
		tile = 1
	}
	if pix, dirty := gp.tracker.Pixels(); dirty {
		gp.img.WritePixels(pix)
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(tile), float64(tile))
	op.GeoM.Translate(ox, oy)
	dst.DrawImage(gp.img, op)
}

// Bounds returns the on-screen size of the board at the given tile size.
func (gp *GridPainter) Bounds(tile int) (int, int) {
	size := gp.tracker.Size()
	return size.W * tile, size.H * tile
}
