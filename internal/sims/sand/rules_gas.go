package sand

// updateGas is the shared gas rule. Gases burn down their lifetime, rise
// through fire and open air once every delay ticks, drift sideways when
// capped, and bubble up through denser material in between.
func (f *Frame) updateGas(p *Particle) {
	p.Life--
	if p.Life <= 0 {
		f.remove(p)
		return
	}

	if p.gas.since >= p.gas.delay {
		p.gas.since = 0
		if f.g.Touches(p, 0, -1, Fire) {
			f.g.swapWith(p, 0, -1)
			return
		}
		if f.g.Move(p, 0, -1) {
			return
		}
		if f.rng.IntN(2) == 0 && f.g.Move(p, -1, 0) {
			return
		}
		if f.g.Move(p, 1, 0) {
			return
		}
	}

	if above := f.g.neighbor(p, 0, -1); above != nil && denseForGas(above.Material) {
		f.g.Swap(p, above)
		return
	}
	p.gas.since++
}

// updateSteam may condense back into water on its last tick.
func (f *Frame) updateSteam(p *Particle) {
	if p.Life == 1 && f.rng.IntN(2) == 1 {
		f.replace(p, Water)
		return
	}
	f.updateGas(p)
}

// updateVapor corrodes rock above it and seeds plants on wood, mulch and
// plant, condensing into a plant itself when it does.
func (f *Frame) updateVapor(p *Particle) {
	if f.g.Touches(p, 0, -1, Rock) {
		if f.rng.IntN(6) == 3 {
			f.remove(f.g.neighbor(p, 0, -1))
		}
		return
	}
	for _, m := range [...]Material{Wood, Mulch, Plant} {
		for _, d := range [...]offset{{0, -1}, {-1, 0}, {1, 0}} {
			if !f.g.Touches(p, d.dx, d.dy, m) {
				continue
			}
			if m != Plant {
				f.replace(f.g.neighbor(p, d.dx, d.dy), Plant)
			}
			f.replace(p, Plant)
			return
		}
	}
	f.updateGas(p)
}

// updateGrassium hatches a boid when it meets steam, consuming the steam.
func (f *Frame) updateGrassium(p *Particle) {
	for _, d := range dirs4 {
		if f.g.Touches(p, d.dx, d.dy, Steam) {
			f.remove(f.g.neighbor(p, d.dx, d.dy))
			f.replace(p, Boid)
			return
		}
	}
	f.updateGas(p)
}
