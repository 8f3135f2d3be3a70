package sand

import (
	"math"
	"slices"

	"github.com/go-gl/mathgl/mgl64"
)

// updateBoid moves a swarm member one step, preferring separation, then
// alignment, then cohesion over its own remembered heading.
func (f *Frame) updateBoid(p *Particle) {
	b := &p.boid
	if b.doomed {
		f.remove(p)
		return
	}
	if b.frame >= f.env.Params.BoidSpeed {
		b.frame = 0
		return
	}
	b.frame++

	surrounded := true
	for _, d := range dirs4 {
		if f.g.Vacant(p, d.dx, d.dy) || f.g.Touches(p, d.dx, d.dy, Boid) {
			surrounded = false
			break
		}
	}
	if surrounded {
		f.remove(p)
		return
	}

	flock := f.flockmates(p)
	if len(flock) > 0 {
		b.tint = flock[f.rng.IntN(len(flock))].Color()
		b.tinted = true
	} else {
		b.tinted = false
	}

	heading := b.heading
	if s := separation(p, flock, f.env.Params.BoidSeparation); s != (offset{}) {
		heading = s
	} else if a := alignment(flock); a != (offset{}) {
		heading = a
	} else if c := cohesion(p, flock); c != (offset{}) {
		heading = c
	}

	valid := f.validHeadings(p)
	if !slices.Contains(valid, heading) {
		if len(valid) > 0 {
			b.heading = valid[f.rng.IntN(len(valid))]
		} else {
			b.heading = dirs8[f.rng.IntN(len(dirs8))]
		}
		heading = b.heading
	}
	f.g.Move(p, heading.dx, heading.dy)
}

// flockmates lists the other boids inside the flock radius square.
func (f *Frame) flockmates(p *Particle) []*Particle {
	r := f.env.Params.BoidFlockRadius
	var out []*Particle
	for i := -r; i <= r; i++ {
		for j := -r; j <= r; j++ {
			n := f.g.At(p.X+i, p.Y+j)
			if n != nil && n != p && n.Material == Boid {
				out = append(out, n)
			}
		}
	}
	return out
}

// obstacleNearby reports any non-boid particle inside the avoidance square.
func (f *Frame) obstacleNearby(p *Particle) bool {
	r := f.env.Params.BoidAvoidRadius
	for i := -r; i <= r; i++ {
		for j := -r; j <= r; j++ {
			n := f.g.At(p.X+i, p.Y+j)
			if n != nil && n.Material != Boid {
				return true
			}
		}
	}
	return false
}

// validHeadings lists the 8-neighborhood moves that land on an empty cell
// while no obstacle is close by.
func (f *Frame) validHeadings(p *Particle) []offset {
	if f.obstacleNearby(p) {
		return nil
	}
	var out []offset
	for _, d := range dirs8 {
		if f.g.Vacant(p, d.dx, d.dy) {
			out = append(out, d)
		}
	}
	return out
}

func separation(p *Particle, flock []*Particle, minDist float64) offset {
	var steer mgl64.Vec2
	self := mgl64.Vec2{float64(p.X), float64(p.Y)}
	for _, n := range flock {
		diff := self.Sub(mgl64.Vec2{float64(n.X), float64(n.Y)})
		if d := diff.Len(); d > 0 && d < minDist {
			steer = steer.Add(diff.Mul(1 / d))
		}
	}
	return truncate(steer)
}

func alignment(flock []*Particle) offset {
	if len(flock) == 0 {
		return offset{}
	}
	var sum mgl64.Vec2
	for _, n := range flock {
		sum = sum.Add(mgl64.Vec2{float64(n.boid.heading.dx), float64(n.boid.heading.dy)})
	}
	return truncate(sum.Mul(1 / float64(len(flock))))
}

func cohesion(p *Particle, flock []*Particle) offset {
	if len(flock) == 0 {
		return offset{}
	}
	var centre mgl64.Vec2
	for _, n := range flock {
		centre = centre.Add(mgl64.Vec2{float64(n.X), float64(n.Y)})
	}
	centre = centre.Mul(1 / float64(len(flock)))
	toward := centre.Sub(mgl64.Vec2{float64(p.X), float64(p.Y)})
	if l := toward.Len(); l > 0 {
		toward = toward.Mul(1 / l)
	}
	return truncate(toward)
}

// truncate converts a steering vector to a grid step, rounding toward zero.
func truncate(v mgl64.Vec2) offset {
	return offset{int(math.Trunc(v[0])), int(math.Trunc(v[1]))}
}
