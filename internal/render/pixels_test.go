package render

import (
	"image/color"
	"slices"
	"testing"
)

type checker struct{}

func (c checker) ColorAt(x, y int) (color.RGBA, bool) {
	if (x+y)%2 == 0 {
		return color.RGBA{R: uint8(x), G: uint8(y), B: 9, A: 255}, true
	}
	return color.RGBA{}, false
}

func TestFillRGBA(t *testing.T) {
	buf := make([]byte, 4*3*2)
	bg := color.RGBA{R: 1, G: 2, B: 3, A: 4}
	FillRGBA(buf, 3, 2, checker{}, bg)

	want := []byte{
		0, 0, 9, 255, 1, 2, 3, 4, 2, 0, 9, 255,
		1, 2, 3, 4, 1, 1, 9, 255, 1, 2, 3, 4,
	}
	if !slices.Equal(buf, want) {
		t.Fatalf("FillRGBA = %v, want %v", buf, want)
	}
}

func TestFillRGBAShortBuffer(t *testing.T) {
	buf := make([]byte, 4)
	FillRGBA(buf, 3, 2, checker{}, color.RGBA{A: 255})
	if !slices.Equal(buf, []byte{0, 0, 0, 0}) {
		t.Fatal("short buffer must be left untouched")
	}
}

func TestFillPaletteRGBA(t *testing.T) {
	palette := []color.RGBA{{A: 255}, {R: 10, A: 255}}
	buf := make([]byte, 12)
	FillPaletteRGBA(buf, []uint8{0, 1, 7}, palette)
	want := []byte{0, 0, 0, 255, 10, 0, 0, 255, 10, 0, 0, 255}
	if !slices.Equal(buf, want) {
		t.Fatalf("FillPaletteRGBA = %v, want %v", buf, want)
	}

	FillPaletteRGBA(buf, []uint8{0, 1, 7}, nil)
	if !slices.Equal(buf, make([]byte, 12)) {
		t.Fatal("empty palette should clear the buffer")
	}
}
