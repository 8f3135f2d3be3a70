package sand

import (
	"math/rand/v2"
	"sync/atomic"

	"github.com/go-gl/mathgl/mgl64"

	"atlantis/internal/core"
	"atlantis/internal/shader"
)

const defaultGravity = 9.8

// Env is the simulation context shared by every frame of a tick: tuning
// parameters, the color-animator cache and the boid population counter.
// The counter is atomic because chunks update concurrently.
type Env struct {
	Params  Params
	shaders *shader.Cache
	boids   atomic.Int64
}

// NewEnv builds a context with its own shader cache.
func NewEnv(p Params, seed uint64) *Env {
	return &Env{Params: p, shaders: shader.NewCache(p.ShaderVariants, seed)}
}

// BoidCount reports the number of live boids (including ones doomed by the cap
// that have not yet run their first update).
func (e *Env) BoidCount() int { return int(e.boids.Load()) }

// Shaders exposes the color-animator cache.
func (e *Env) Shaders() *shader.Cache { return e.shaders }

func (e *Env) reset(seed uint64) {
	e.boids.Store(0)
	e.shaders.Reset(seed)
}

// newParticle builds an unplaced particle of material m. Particles created
// during tick are stamped with it so they first update on the next tick.
func (e *Env) newParticle(r *rand.Rand, m Material, x, y int, tick uint64) *Particle {
	if !m.Valid() {
		return nil
	}
	p := &Particle{Material: m, X: x, Y: y, Gravity: defaultGravity, Spread: 1, stamp: tick}
	prm := &e.Params

	switch m {
	case Mulch:
		p.Flammable, p.BurnChance = true, 100
	case Gunpowder:
		p.Flammable, p.Explosive = true, true
	case Water:
		p.Spread = 3
	case Acid:
		p.Flammable, p.BurnChance, p.Spread = true, 10, 2
	case Oil:
		p.Flammable, p.BurnChance, p.Spread = true, 2, 2
	case Slime:
		p.Explosive = true
	case Chaos:
		p.Spread = 5
	case Void:
		p.Spread = 3
		p.Life = prm.VoidLife
	case Steam, Smoke, MysteriousVapor:
		p.Gas = true
		p.Life = core.IntRange(r, prm.GasLifeMin, prm.GasLifeMax)
		p.gas.delay = prm.GasMoveDelay
	case Grassium:
		p.Gas = true
		p.Flammable, p.BurnChance = true, prm.GrassiumBurnChance
		p.Life = core.IntRange(r, prm.GrassiumLifeMin, prm.GrassiumLifeMax)
		p.gas.delay = prm.GasMoveDelay
	case Fire:
		p.Life = core.IntRange(r, prm.FireLifeMin, prm.FireLifeMax)
	case Wood, Plant:
		p.Flammable, p.BurnChance = true, 25
	case Travelling:
		p.Gravity = prm.ProjectileGravity
		p.travel.pos = mgl64.Vec2{float64(x), float64(y)}
		return p
	case Boid:
		p.Flammable, p.BurnChance = true, prm.BoidBurnChance
		p.boid.heading = dirs8[r.IntN(len(dirs8))]
	}

	info := materials[m]
	p.anim = e.shaders.Get(r, info.name, info.style)
	return p
}

// admit does the bookkeeping for a new particle entering the grid. Boids
// past the population cap are doomed and remove themselves on their first
// update.
func (e *Env) admit(p *Particle) {
	if p.Material == Boid && e.boids.Add(1) > int64(e.Params.BoidCap) {
		p.boid.doomed = true
	}
}

// release does the bookkeeping for a particle leaving the grid for good.
func (e *Env) release(p *Particle) {
	if p == nil {
		return
	}
	switch p.Material {
	case Boid:
		e.boids.Add(-1)
	case Travelling:
		e.release(p.travel.carried)
	}
}

// Frame is the context for one scan over a grid: the whole world in serial
// mode, or a single chunk inside a worker. Each frame owns its RNG.
type Frame struct {
	g    *Grid
	rng  *rand.Rand
	env  *Env
	tick uint64
}

// NewFrame binds an environment to a grid for a single pass.
func NewFrame(env *Env, g *Grid, rng *rand.Rand, tick uint64) *Frame {
	return &Frame{g: g, rng: rng, env: env, tick: tick}
}

// Grid returns the grid the frame operates on.
func (f *Frame) Grid() *Grid { return f.g }

func (f *Frame) spawn(m Material, x, y int) *Particle {
	return f.env.newParticle(f.rng, m, x, y, f.tick)
}

// place puts a newly built particle into the empty cell (x, y).
func (f *Frame) place(x, y int, p *Particle) {
	f.g.put(x, y, p)
	f.env.admit(p)
}

// remove deletes p from the grid. It is the only destructor path.
func (f *Frame) remove(p *Particle) {
	if p == nil || f.g.At(p.X, p.Y) != p {
		return
	}
	f.g.take(p.X, p.Y)
	f.env.release(p)
}

// replace deletes p and puts a fresh particle of material m in its cell.
func (f *Frame) replace(p *Particle, m Material) *Particle {
	if p == nil || f.g.At(p.X, p.Y) != p {
		return nil
	}
	x, y := p.X, p.Y
	f.remove(p)
	q := f.spawn(m, x, y)
	f.place(x, y, q)
	return q
}

// fill puts a new particle of material m into (x, y), deleting any occupant.
func (f *Frame) fill(x, y int, m Material) *Particle {
	if !f.g.InBounds(x, y) {
		return nil
	}
	if old := f.g.At(x, y); old != nil {
		f.remove(old)
	}
	q := f.spawn(m, x, y)
	f.place(x, y, q)
	return q
}

func (f *Frame) chance(odds int) bool {
	if odds <= 1 {
		return true
	}
	return f.rng.IntN(odds) == 0
}
