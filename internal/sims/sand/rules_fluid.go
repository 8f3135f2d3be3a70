package sand

// flow is the shared fluid rule. In order it tries to: sink below rising
// gas, let buried granular material sink through, fall, slide diagonally,
// then spread sideways. The sideways scan starts on a random side each call.
// It reports whether anything moved.
func (f *Frame) flow(p *Particle) bool {
	if below := f.g.neighbor(p, 0, 1); below != nil && below.Gas {
		f.g.Swap(p, below)
		return true
	}
	if above := f.g.neighbor(p, 0, -1); above != nil && isGranular(above.Material) {
		f.g.Swap(p, above)
		return true
	}
	if f.g.Move(p, 0, 1) {
		return true
	}

	left, right := f.g.Vacant(p, -1, 1), f.g.Vacant(p, 1, 1)
	switch {
	case left && right:
		if f.rng.Float64() < f.env.Params.DiagonalBias {
			return f.g.Move(p, -1, 1)
		}
		return f.g.Move(p, 1, 1)
	case left:
		return f.g.Move(p, -1, 1)
	case right:
		return f.g.Move(p, 1, 1)
	}

	side := 1
	if f.rng.IntN(2) == 0 {
		side = -1
	}
	for _, dx := range [2]int{side, -side} {
		if f.disperse(p, dx, 0) || f.g.Flow(p, dx, 0) {
			return true
		}
	}
	return false
}

// sink lets p trade places with lighter fluids below or beside it. Sideways
// swaps with its own material are allowed so layered pools keep mixing.
func (f *Frame) sink(p *Particle, lighter ...Material) bool {
	for _, m := range lighter {
		if f.g.Touches(p, 0, 1, m) {
			f.g.swapWith(p, 0, 1)
		}
	}
	var moves []offset
	for _, dy := range [2]int{1, 0} {
		for _, m := range lighter {
			if f.g.Touches(p, -1, dy, m) {
				moves = append(moves, offset{-1, dy})
			}
			if f.g.Touches(p, 1, dy, m) {
				moves = append(moves, offset{1, dy})
			}
		}
		if dy == 0 {
			if f.g.Touches(p, -1, 0, p.Material) {
				moves = append(moves, offset{-1, 0})
			}
			if f.g.Touches(p, 1, 0, p.Material) {
				moves = append(moves, offset{1, 0})
			}
		}
	}
	if len(moves) == 0 {
		return false
	}
	d := moves[f.rng.IntN(len(moves))]
	f.g.swapWith(p, d.dx, d.dy)
	return true
}

// updateWater flows, dilutes acid beneath it and sinks below oil.
func (f *Frame) updateWater(p *Particle) {
	f.flow(p)
	if f.g.Touches(p, 0, 1, Acid) {
		f.replace(f.g.neighbor(p, 0, 1), Water)
		return
	}
	f.sink(p, Oil)
}

// updateAcid eats wood and mulch, is diluted by water and turns plants
// into grassium.
func (f *Frame) updateAcid(p *Particle) {
	for _, m := range [...]Material{Wood, Mulch} {
		if f.g.Touches(p, 0, 1, m) {
			f.remove(f.g.neighbor(p, 0, 1))
			return
		}
	}
	if f.g.Touches(p, 0, 1, Water) {
		f.replace(p, Water)
		return
	}
	if f.g.Touches(p, 0, 1, Plant) {
		f.replace(f.g.neighbor(p, 0, 1), Grassium)
	}
	f.flow(p)
}

// updateOil curdles into slime on contact with acid, consuming the acid.
func (f *Frame) updateOil(p *Particle) {
	for _, d := range dirs4 {
		if f.g.Touches(p, d.dx, d.dy, Acid) {
			f.remove(f.g.neighbor(p, d.dx, d.dy))
			f.replace(p, Slime)
			return
		}
	}
	f.flow(p)
}

// updateSlime drops freely but spreads only occasionally, and detonates when
// it touches granular material.
func (f *Frame) updateSlime(p *Particle) {
	if f.g.Move(p, 0, 1) {
		return
	}
	if f.rng.IntN(6) == 4 {
		f.flow(p)
		if f.sink(p, Oil, Water, Acid) {
			return
		}
	}
	for _, m := range [...]Material{Gravel, Sand, Mulch} {
		for _, d := range dirs4 {
			if f.g.Touches(p, d.dx, d.dy, m) {
				f.Explode(p.X, p.Y, f.env.Params.SlimeBlastRadius, MysteriousVapor)
				return
			}
		}
	}
}

// updateChaos rerolls every non-chaos neighbor into a random member of that
// neighbor's category, then flows.
func (f *Frame) updateChaos(p *Particle) {
	for _, d := range dirs4 {
		n := f.g.neighbor(p, d.dx, d.dy)
		if n == nil || n.Material == Chaos {
			continue
		}
		pool := chaosRegistry.membersFor(n.Material)
		f.replace(n, pool[f.rng.IntN(len(pool))])
	}
	f.flow(p)
}

// updateVoid ages, annihilates itself together with the first foreign
// neighbor it touches, and vanishes when boxed in by walls or other void.
func (f *Frame) updateVoid(p *Particle) {
	if p.Life <= 0 {
		f.remove(p)
		return
	}
	p.Life--

	enclosed := true
	for _, d := range dirs4 {
		if !f.g.InBounds(p.X+d.dx, p.Y+d.dy) {
			continue
		}
		n := f.g.neighbor(p, d.dx, d.dy)
		if n == nil {
			enclosed = false
			continue
		}
		if n.Material != Void {
			f.remove(n)
			f.remove(p)
			return
		}
	}
	if enclosed {
		f.remove(p)
		return
	}
	f.flow(p)
}
