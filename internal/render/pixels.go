package render

import "image/color"

// ColorSource reports the display color of a grid cell; ok is false for
// empty cells.
type ColorSource interface {
	ColorAt(x, y int) (c color.RGBA, ok bool)
}

// FillRGBA writes one RGBA pixel per cell of a w*h grid into buf, using bg for
// empty cells. buf must hold at least 4*w*h bytes.
func FillRGBA(buf []byte, w, h int, src ColorSource, bg color.RGBA) {
	if len(buf) < 4*w*h {
		return
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			col, ok := src.ColorAt(x, y)
			if !ok {
				col = bg
			}
			base := (y*w + x) * 4
			buf[base+0] = col.R
			buf[base+1] = col.G
			buf[base+2] = col.B
			buf[base+3] = col.A
		}
	}
}

// FillPaletteRGBA converts cell tags into RGBA pixels using a palette indexed
// by tag. Tags past the end of the palette use its last entry. When the
// palette is empty the buffer is cleared to transparent black.
func FillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		for i := range cells {
			base := i * 4
			buf[base+0] = 0
			buf[base+1] = 0
			buf[base+2] = 0
			buf[base+3] = 0
		}
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}
