package sand

// updateFire burns down its lifetime, puffs smoke once, ignites or detonates
// its neighbors, is quenched by water, and eventually starts to fall.
func (f *Frame) updateFire(p *Particle) {
	p.Life--
	if p.Life <= 0 {
		f.remove(p)
		return
	}

	if !p.fire.smoked && p.Y > 0 && f.g.Vacant(p, 0, -1) {
		f.place(p.X, p.Y-1, f.spawn(Smoke, p.X, p.Y-1))
		p.fire.smoked = true
		return
	}

	for _, d := range dirs4 {
		if !f.g.Flammable(p, d.dx, d.dy) {
			continue
		}
		n := f.g.neighbor(p, d.dx, d.dy)
		if n.Material == Gunpowder {
			f.Explode(n.X, n.Y, f.env.Params.GunpowderBlastRadius, Smoke)
			return
		}
		if n.BurnChance > 0 && f.rng.IntN(n.BurnChance) == 0 {
			f.replace(n, Fire)
		}
		return
	}

	for _, d := range dirs4 {
		if !f.g.Touches(p, d.dx, d.dy, Water) {
			continue
		}
		if f.rng.IntN(4) == 1 {
			f.remove(f.g.neighbor(p, d.dx, d.dy))
		}
		f.replace(p, Steam)
		return
	}

	if p.fire.falling || f.chance(f.env.Params.FireFallOdds) {
		p.fire.falling = true
		if f.g.Move(p, 0, 1) || f.g.Move(p, -1, 1) {
			return
		}
		f.g.Move(p, 1, 1)
	}
}
