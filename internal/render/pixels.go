package render

import (
	"image/color"

	"tilelife/internal/core"
)

// Palette maps cell states to colours.
type Palette struct {
	Background color.RGBA
	Fill       color.RGBA
	Empty      color.RGBA
}

// DefaultPalette is the dark red-on-purple scheme of the tile sheet.
var DefaultPalette = Palette{
	Background: color.RGBA{R: 26, G: 9, B: 13, A: 255},
	Fill:       color.RGBA{R: 187, G: 68, B: 48, A: 255},
	Empty:      color.RGBA{R: 74, G: 49, B: 77, A: 255},
}

// fillCellsRGBA converts committed cell states into RGBA pixels in buf.
func fillCellsRGBA(buf []byte, cells []bool, p Palette) {
	for i, alive := range cells {
		col := p.Empty
		if alive {
			col = p.Fill
		}
		setPixel(buf, i, col)
	}
}

// applyChangesRGBA repaints only the cells listed in changes.
func applyChangesRGBA(buf []byte, w int, changes []core.CellChange, p Palette) {
	for _, c := range changes {
		col := p.Empty
		if c.Alive {
			col = p.Fill
		}
		setPixel(buf, c.Y*w+c.X, col)
	}
}

func setPixel(buf []byte, i int, col color.RGBA) {
	base := i * 4
	buf[base+0] = col.R
	buf[base+1] = col.G
	buf[base+2] = col.B
	buf[base+3] = col.A
}
