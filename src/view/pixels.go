package view

import (
	"image/color"

	"conway/src/universe"
)

var (
	colorAlive = color.RGBA{R: 0, G: 228, B: 48, A: 255}
	colorDead  = color.RGBA{R: 55, G: 55, B: 55, A: 255}
)

//fillCellsRGBA converts the cell states into RGBA pixels in buf, one pixel per cell
func fillCellsRGBA(buf []byte, a universe.View, on, off color.RGBA) {
	i := 0
	for r := 0; r < a.Rows(); r++ {
		for c := 0; c < a.Cols(); c++ {
			col := off
			if a.Get(r, c) == universe.Alive {
				col = on
			}
			buf[i+0] = col.R
			buf[i+1] = col.G
			buf[i+2] = col.B
			buf[i+3] = col.A
			i += 4
		}
	}
}
