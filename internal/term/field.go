package term

import (
	"strings"

	"tilelife/internal/core"
)

// overflowNotice replaces the last visible line when the board is cropped.
const overflowNotice = "The field size is larger than the viewing area"

// RenderField draws one character per cell, row by row, cropped to
// maxW x maxH. When cropping happens the last visible row carries a notice
// produced by notice instead of cells.
func RenderField(cells []bool, size core.Size, maxW, maxH int, live, dead string, notice func(string) string) string {
	if len(cells) != size.W*size.H || maxW <= 0 || maxH <= 0 {
		return ""
	}
	crop := size.W > maxW || size.H > maxH
	var b strings.Builder
	for y := 0; y < size.H; y++ {
		if y >= maxH {
			break
		}
		if y != 0 {
			b.WriteByte('\n')
		}
		if crop && y == maxH-1 {
			if notice != nil {
				b.WriteString(notice(overflowNotice))
			} else {
				b.WriteString(overflowNotice)
			}
			break
		}
		row := cells[y*size.W : (y+1)*size.W]
		for x, alive := range row {
			if x >= maxW {
				break
			}
			if alive {
				b.WriteString(live)
			} else {
				b.WriteString(dead)
			}
		}
	}
	return b.String()
}
