package sand

import (
	"testing"

	"atlantis/internal/core"
)

func newTestFrame(w, h int) *Frame {
	return newTestFrameWith(w, h, DefaultParams())
}

func newTestFrameWith(w, h int, p Params) *Frame {
	env := NewEnv(p, 1)
	return NewFrame(env, NewGrid(w, h), core.Child(7, 11), 1)
}

// advance runs one full serial tick on the frame's grid.
func advance(f *Frame) {
	f.tick++
	f.Scan(0, f.g.W)
}

// updateNow runs p's rule as if a new tick had started.
func updateNow(f *Frame, p *Particle) {
	f.tick++
	f.update(p)
}

func assertGridInvariant(t *testing.T, g *Grid) {
	t.Helper()
	if !g.Consistent() {
		t.Fatal("grid has a particle whose position disagrees with its cell or that occupies two cells")
	}
}

func materialsOf(g *Grid) []Material {
	out := make([]Material, g.W*g.H)
	g.Each(func(p *Particle) {
		out[p.Y*g.W+p.X] = p.Material
	})
	return out
}
