package shader

import (
	"image/color"
	"math/rand/v2"
	"testing"
)

var testPalette = Palette{
	From: color.RGBA{R: 0, G: 100, B: 200, A: 255},
	To:   color.RGBA{R: 100, G: 200, B: 250, A: 255},
}

func within(c color.RGBA, p Palette) bool {
	in := func(v, a, b uint8) bool {
		if a > b {
			a, b = b, a
		}
		return v >= a && v <= b
	}
	return in(c.R, p.From.R, p.To.R) && in(c.G, p.From.G, p.To.G) && in(c.B, p.From.B, p.To.B) && c.A == 255
}

func TestCacheCapsVariants(t *testing.T) {
	c := NewCache(3, 1)
	style := Style{Palette: testPalette, Kind: KindStill}
	r := rand.New(rand.NewPCG(5, 6))
	seen := map[Animator]bool{}
	for i := 0; i < 50; i++ {
		seen[c.Get(r, "Sand", style)] = true
	}
	if got := c.Variants("Sand"); got != 3 {
		t.Fatalf("expected 3 variants, got %d", got)
	}
	if len(seen) > 3 {
		t.Fatalf("Get handed out %d distinct animators, want at most 3", len(seen))
	}
	c.Get(r, "Rock", style)
	if got := c.Len(); got != 6 {
		t.Fatalf("expected 6 animators total, got %d", got)
	}

	c.Reset(2)
	if c.Len() != 0 {
		t.Fatal("Reset should drop all animators")
	}
}

func TestCacheIgnoresRequestOrder(t *testing.T) {
	style := Style{Palette: testPalette, Kind: KindRandomize, Period: 1}
	pick := func() *rand.Rand { return rand.New(rand.NewPCG(9, 9)) }

	a := NewCache(4, 7)
	a.Get(pick(), "Water", style)
	sandA := a.Get(pick(), "Sand", style)

	b := NewCache(4, 7)
	sandB := b.Get(pick(), "Sand", style)
	b.Get(pick(), "Water", style)

	for i := 0; i < 5; i++ {
		if sandA.Color() != sandB.Color() {
			t.Fatalf("tick %d: %+v != %+v", i, sandA.Color(), sandB.Color())
		}
		a.Advance()
		b.Advance()
	}
}

func TestShimmerStaysInPalette(t *testing.T) {
	a := New(Style{Palette: testPalette, Kind: KindShimmer, Speed: 0.05}, rand.New(rand.NewPCG(3, 4)))
	for i := 0; i < 200; i++ {
		if c := a.Color(); !within(c, testPalette) {
			t.Fatalf("tick %d: color %+v escaped palette", i, c)
		}
		a.Advance()
	}
}

func TestShimmerReversesAtEnds(t *testing.T) {
	s := &Shimmer{from: toColorful(testPalette.From), to: toColorful(testPalette.To), speed: 0.5, t: 0.9, dir: 1}
	s.Advance()
	if s.t != 1 || s.dir != -1 {
		t.Fatalf("expected clamp to 1 and reverse, got t=%f dir=%f", s.t, s.dir)
	}
	s.Advance()
	s.Advance()
	if s.t != 0 || s.dir != 1 {
		t.Fatalf("expected clamp to 0 and reverse, got t=%f dir=%f", s.t, s.dir)
	}
}

func TestRandomizeResamplesOnPeriod(t *testing.T) {
	r := New(Style{Palette: testPalette, Kind: KindRandomize, Period: 3}, rand.New(rand.NewPCG(9, 9))).(*Randomize)
	r.Advance()
	r.Advance()
	if r.elapsed != 2 {
		t.Fatalf("elapsed = %d, want 2", r.elapsed)
	}
	r.Advance()
	if r.elapsed != 0 {
		t.Fatalf("elapsed should reset after period, got %d", r.elapsed)
	}
	if !within(r.Color(), testPalette) {
		t.Fatalf("resampled color %+v outside palette", r.Color())
	}
}

func TestStillIgnoresAdvance(t *testing.T) {
	a := New(Style{Palette: testPalette}, rand.New(rand.NewPCG(5, 5)))
	before := a.Color()
	for i := 0; i < 10; i++ {
		a.Advance()
	}
	if a.Color() != before {
		t.Fatal("still animator must not change color")
	}
}
