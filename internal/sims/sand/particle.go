package sand

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"

	"atlantis/internal/shader"
)

// Particle is one cell occupant. Shared attributes live on the struct; the
// per-family state blocks are only meaningful for their own family.
//
// The grid cell holding a particle owns it. X and Y always equal that
// cell's coordinates in whichever frame (global grid or chunk) currently
// holds the particle.
type Particle struct {
	Material Material
	X, Y     int

	Velocity   mgl64.Vec2
	Gravity    float64
	Flammable  bool
	BurnChance int
	Explosive  bool
	Gas        bool
	// Life is the remaining lifetime in ticks for finite materials.
	Life int
	// Spread is how many cells a fluid may disperse sideways in one move.
	Spread int

	anim  shader.Animator
	stamp uint64

	gas    gasState
	fire   fireState
	travel travelState
	boid   boidState
}

type gasState struct {
	delay int
	since int
}

type fireState struct {
	falling bool
	smoked  bool
}

type travelState struct {
	pos     mgl64.Vec2
	carried *Particle
}

type boidState struct {
	frame   int
	heading offset
	doomed  bool
	tint    color.RGBA
	tinted  bool
}

type offset struct{ dx, dy int }

var (
	// dirs4 is the von Neumann neighborhood in scan order: down, up, left, right.
	dirs4 = [4]offset{{0, 1}, {0, -1}, {-1, 0}, {1, 0}}
	dirs8 = [8]offset{{0, -1}, {0, 1}, {-1, 0}, {1, 0}, {-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
)

// Color reports the particle's current display color.
func (p *Particle) Color() color.RGBA {
	switch {
	case p.Material == Travelling && p.travel.carried != nil:
		return p.travel.carried.Color()
	case p.Material == Boid && p.boid.tinted:
		return p.boid.tint
	case p.anim != nil:
		return p.anim.Color()
	}
	return color.RGBA{A: 255}
}

// Carried returns the particle a projectile will settle into.
func (p *Particle) Carried() *Particle { return p.travel.carried }

// toLocal shifts the particle into the frame of a chunk whose first column is
// the global column offset.
func (p *Particle) toLocal(offset int) {
	p.X -= offset
	p.travel.pos[0] -= float64(offset)
}

// toGlobal undoes toLocal.
func (p *Particle) toGlobal(offset int) {
	p.X += offset
	p.travel.pos[0] += float64(offset)
}

// setLocal places the particle at global column x inside the chunk frame
// starting at offset, keeping its continuous position consistent.
func (p *Particle) setLocal(x, offset int) {
	shift := float64(x - offset - p.X)
	p.X = x - offset
	p.travel.pos[0] += shift
}
