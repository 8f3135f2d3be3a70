// Package shader animates the display color of particles over time.
//
// An Animator is shared by every particle that picked it from the Cache, so
// advancing one animator recolors all of its particles at once.
package shader

import (
	"image/color"
	"math/rand/v2"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Animator produces a display color that may change once per tick.
type Animator interface {
	Advance()
	Color() color.RGBA
}

// Kind selects the animation behaviour of a Style.
type Kind uint8

const (
	// KindStill keeps a single color picked at creation.
	KindStill Kind = iota
	// KindShimmer sweeps back and forth between the palette endpoints.
	KindShimmer
	// KindRandomize re-samples the palette every Period ticks.
	KindRandomize
	// KindFlock re-samples the palette every flockResetFrames ticks.
	KindFlock
)

const flockResetFrames = 400

// Palette is the RGB box an animator samples from.
type Palette struct {
	From color.RGBA
	To   color.RGBA
}

// Style describes how a material's animators are built.
type Style struct {
	Palette Palette
	Kind    Kind
	// Speed is the fraction of the palette span a shimmer covers per tick.
	Speed float64
	// Period is the number of ticks between randomize re-samples.
	Period int
}

// New builds an animator for the style, drawing its initial color from r.
func New(s Style, r *rand.Rand) Animator {
	switch s.Kind {
	case KindShimmer:
		return &Shimmer{from: toColorful(s.Palette.From), to: toColorful(s.Palette.To), speed: s.Speed, t: r.Float64(), dir: 1}
	case KindRandomize:
		period := s.Period
		if period <= 0 {
			period = 1
		}
		return &Randomize{palette: s.Palette, period: period, rng: r, cur: sample(s.Palette, r)}
	case KindFlock:
		return &Flock{palette: s.Palette, rng: r, cur: sample(s.Palette, r)}
	default:
		return &Still{cur: sample(s.Palette, r)}
	}
}

// Still never changes color.
type Still struct {
	cur color.RGBA
}

// Advance is a no-op.
func (s *Still) Advance() {}

// Color returns the fixed color.
func (s *Still) Color() color.RGBA { return s.cur }

// Shimmer interpolates between two colors, reversing at each end.
type Shimmer struct {
	from, to colorful.Color
	speed    float64
	t        float64
	dir      float64
}

// Advance moves the interpolation point by one step.
func (s *Shimmer) Advance() {
	s.t += s.dir * s.speed
	switch {
	case s.t >= 1:
		s.t = 1
		s.dir = -1
	case s.t <= 0:
		s.t = 0
		s.dir = 1
	}
}

// Color returns the current blend of the two endpoints.
func (s *Shimmer) Color() color.RGBA {
	return toRGBA(s.from.BlendRgb(s.to, s.t))
}

// Randomize jumps to a fresh random color every period ticks.
type Randomize struct {
	palette Palette
	period  int
	elapsed int
	rng     *rand.Rand
	cur     color.RGBA
}

// Advance counts ticks and re-samples once the period has elapsed.
func (r *Randomize) Advance() {
	r.elapsed++
	if r.elapsed >= r.period {
		r.elapsed = 0
		r.cur = sample(r.palette, r.rng)
	}
}

// Color returns the most recent sample.
func (r *Randomize) Color() color.RGBA { return r.cur }

// Flock holds a color for a long stretch so swarms read as one group.
type Flock struct {
	palette Palette
	frame   int
	rng     *rand.Rand
	cur     color.RGBA
}

// Advance re-samples the color every flockResetFrames ticks.
func (f *Flock) Advance() {
	if f.frame == flockResetFrames {
		f.cur = sample(f.palette, f.rng)
		f.frame = 0
	}
	f.frame++
}

// Color returns the current flock color.
func (f *Flock) Color() color.RGBA { return f.cur }

func sample(p Palette, r *rand.Rand) color.RGBA {
	from, to := toColorful(p.From), toColorful(p.To)
	c := colorful.Color{
		R: from.R + (to.R-from.R)*r.Float64(),
		G: from.G + (to.G-from.G)*r.Float64(),
		B: from.B + (to.B-from.B)*r.Float64(),
	}
	return toRGBA(c)
}

func toColorful(c color.RGBA) colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

func toRGBA(c colorful.Color) color.RGBA {
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
