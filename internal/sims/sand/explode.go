package sand

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"atlantis/internal/core"
)

// Explode resolves a single-tick blast centred on (x, y).
//
// Every occupant within radius is cleared. Cleared particles that are not
// explosive, gaseous or fire are, one time in FlingOdds, relaunched as a
// projectile moving away from the centre. Empty cells on the rim become
// fire, and cells further than one cell from the centre push a puff of the
// emission material two cells outward. Nothing beyond radius+2 is touched.
func (f *Frame) Explode(x, y, radius int, emission Material) {
	if radius < 0 {
		return
	}
	r := float64(radius)
	for i := -radius; i <= radius; i++ {
		for j := -radius; j <= radius; j++ {
			tx, ty := x+i, y+j
			if !f.g.InBounds(tx, ty) {
				continue
			}
			d := math.Hypot(float64(i), float64(j))
			if d > r {
				continue
			}
			var dir mgl64.Vec2
			if d > 0 {
				dir = mgl64.Vec2{float64(i) / d, float64(j) / d}
			}

			if old := f.g.take(tx, ty); old != nil {
				if !old.Explosive && !old.Gas && old.Material != Fire && f.chance(f.env.Params.FlingOdds) {
					force := core.FloatRange(f.rng, 0.5, 1.5)
					f.g.put(tx, ty, f.launch(tx, ty, dir, force, old))
				} else {
					f.env.release(old)
				}
			}

			if d >= r-0.5 && d <= r+0.5 && f.g.At(tx, ty) == nil {
				f.place(tx, ty, f.spawn(Fire, tx, ty))
			}

			if d > 1 && emission.Valid() {
				push := dir.Mul(2)
				nx, ny := tx+int(push[0]), ty+int(push[1])
				if f.g.InBounds(nx, ny) && f.g.At(nx, ny) == nil {
					f.place(nx, ny, f.spawn(emission, nx, ny))
				}
			}
		}
	}
}

// launch wraps carried in a projectile at (x, y) flying along dir.
func (f *Frame) launch(x, y int, dir mgl64.Vec2, force float64, carried *Particle) *Particle {
	p := f.spawn(Travelling, x, y)
	if l := dir.Len(); l > 0 {
		dir = dir.Mul(1 / l)
	}
	p.Velocity = dir.Mul(force)
	p.travel.carried = carried
	return p
}
