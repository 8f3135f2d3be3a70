//go:build ebiten

package ui

import (
	"image/color"

	"atlantis/internal/sims/sand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// layoutProvider exposes the chunk layout of the next tick.
type layoutProvider interface {
	Layout() []sand.ChunkSpec
}

var (
	phaseTint = [2]color.RGBA{
		{R: 40, G: 90, B: 200, A: 48},
		{R: 200, G: 120, B: 40, A: 48},
	}
	haloColor  = color.RGBA{R: 255, G: 255, B: 255, A: 90}
	brushColor = color.RGBA{R: 255, G: 255, B: 255, A: 160}
)

// Overlay draws debugging visuals over the simulation: the chunk layout
// (key 1) and the brush outline.
type Overlay struct {
	sim        layoutProvider
	scale      int
	height     int
	showChunks bool

	pixel *ebiten.Image
}

// NewOverlay constructs an overlay for a grid of the given height drawn at
// scale. sim may be nil, in which case the chunk view is empty.
func NewOverlay(sim layoutProvider, height, scale int) *Overlay {
	o := &Overlay{sim: sim, scale: max(scale, 1), height: height}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles overlays from the keyboard.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showChunks = !o.showChunks
	}
}

// ShowChunks reports whether the chunk layout is visible.
func (o *Overlay) ShowChunks() bool { return o.showChunks }

// Draw paints the enabled overlays.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.showChunks || o.sim == nil {
		return
	}
	h := float64(o.height * o.scale)
	for _, c := range o.sim.Layout() {
		s := float64(o.scale)
		o.rect(screen, float64(c.Update.Lo)*s, 0, float64(c.Update.Len())*s, h, phaseTint[c.Phase()])
		o.rect(screen, float64(c.Extent.Lo)*s, 0, 1, h, haloColor)
		o.rect(screen, float64(c.Extent.Hi)*s-1, 0, 1, h, haloColor)
	}
}

// DrawBrush outlines a brush of radius cells centred on grid cell (x, y).
func (o *Overlay) DrawBrush(screen *ebiten.Image, x, y, radius int) {
	s := float64(o.scale)
	r := float64(radius - 1)
	x0, y0 := (float64(x)-r)*s, (float64(y)-r)*s
	side := (2*r + 1) * s
	o.rect(screen, x0, y0, side, 1, brushColor)
	o.rect(screen, x0, y0+side-1, side, 1, brushColor)
	o.rect(screen, x0, y0, 1, side, brushColor)
	o.rect(screen, x0+side-1, y0, 1, side, brushColor)
}

func (o *Overlay) rect(screen *ebiten.Image, x, y, w, h float64, c color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	screen.DrawImage(o.pixel, op)
}
