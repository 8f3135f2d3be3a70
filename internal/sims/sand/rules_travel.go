package sand

import "math"

// updateTravelling advances a projectile along its continuous path. Once the
// next cell is blocked or off the grid, the projectile lands: the particle it
// carried takes its cell, with rock shattering to gravel and wood to mulch.
func (f *Frame) updateTravelling(p *Particle) {
	p.Velocity[1] += p.Gravity * f.env.Params.ProjectileDT
	next := p.travel.pos.Add(p.Velocity)
	tx, ty := int(math.Floor(next[0])), int(math.Floor(next[1]))

	if f.g.InBounds(tx, ty) {
		switch occ := f.g.At(tx, ty); occ {
		case p:
			p.travel.pos = next
			return
		case nil:
			p.travel.pos = next
			f.g.take(p.X, p.Y)
			f.g.put(tx, ty, p)
			return
		}
	}
	f.land(p)
}

// land replaces the projectile with what it carried.
func (f *Frame) land(p *Particle) {
	x, y := p.X, p.Y
	carried := p.travel.carried
	p.travel.carried = nil
	f.g.take(x, y)
	if carried == nil {
		return
	}

	var settled *Particle
	switch carried.Material {
	case Rock:
		settled = f.spawn(Gravel, x, y)
	case Wood:
		settled = f.spawn(Mulch, x, y)
	default:
		settled = carried
		settled.stamp = f.tick
	}
	if settled == carried {
		f.g.put(x, y, settled)
		return
	}
	f.env.release(carried)
	f.place(x, y, settled)
}
