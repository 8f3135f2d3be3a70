package sand

// anyMaterial is the "no constraint" probe target for move.
const anyMaterial Material = 0xff

// move is the shared relocation primitive.
//
//   - want == Empty: reports whether the target is vacant, never mutates.
//   - vacant target: relocates p iff want == anyMaterial.
//   - fluid and the occupant shares p's material: succeeds without moving
//     iff want == anyMaterial, so a fluid can "flow past" itself.
//   - otherwise succeeds iff the occupant's material equals want.
//
// Out-of-bounds targets always fail.
func (g *Grid) move(p *Particle, dx, dy int, want Material, fluid bool) bool {
	tx, ty := p.X+dx, p.Y+dy
	if !g.InBounds(tx, ty) {
		return false
	}
	target := g.At(tx, ty)
	if want == Empty {
		return target == nil
	}
	if target == nil {
		if want != anyMaterial {
			return false
		}
		g.take(p.X, p.Y)
		g.put(tx, ty, p)
		return true
	}
	if fluid && target.Material == p.Material {
		return want == anyMaterial
	}
	return want != anyMaterial && target.Material == want
}

// Move relocates p by (dx, dy) when the target is vacant.
func (g *Grid) Move(p *Particle, dx, dy int) bool {
	return g.move(p, dx, dy, anyMaterial, false)
}

// Vacant reports whether the cell at offset (dx, dy) from p is empty.
func (g *Grid) Vacant(p *Particle, dx, dy int) bool {
	return g.move(p, dx, dy, Empty, false)
}

// Touches reports whether the neighbor at (dx, dy) is made of m.
func (g *Grid) Touches(p *Particle, dx, dy int, m Material) bool {
	return g.move(p, dx, dy, m, false)
}

// Flow moves p like Move but also succeeds, in place, when the target holds
// the same fluid.
func (g *Grid) Flow(p *Particle, dx, dy int) bool {
	return g.move(p, dx, dy, anyMaterial, true)
}

// Swap exchanges the cells and coordinates of a and b. It is a no-op when
// either particle is missing.
func (g *Grid) Swap(a, b *Particle) {
	if a == nil || b == nil {
		return
	}
	ax, ay, bx, by := a.X, a.Y, b.X, b.Y
	g.put(bx, by, a)
	g.put(ax, ay, b)
}

// Flammable reports whether the neighbor at (dx, dy) exists and can ignite.
func (g *Grid) Flammable(p *Particle, dx, dy int) bool {
	n := g.At(p.X+dx, p.Y+dy)
	return n != nil && n.Flammable
}

// neighbor returns the occupant at offset (dx, dy) from p.
func (g *Grid) neighbor(p *Particle, dx, dy int) *Particle {
	return g.At(p.X+dx, p.Y+dy)
}

// swapWith exchanges p with its neighbor at (dx, dy).
func (g *Grid) swapWith(p *Particle, dx, dy int) {
	g.Swap(p, g.neighbor(p, dx, dy))
}

// disperse jumps a fluid up to Spread cells sideways in one move. The jump
// aborts if any cell on the way holds a different material, and randomly
// skips one time in six so thick pools still ripple.
func (f *Frame) disperse(p *Particle, dx, dy int) bool {
	if p.Spread <= 1 || f.rng.IntN(6) == 1 {
		return false
	}
	tx, ty := p.X+dx*p.Spread, p.Y+dy*p.Spread
	if !f.g.InBounds(tx, ty) {
		return false
	}
	for i := 1; i < p.Spread; i++ {
		n := f.g.At(p.X+dx*i, p.Y+dy*i)
		if n != nil && n.Material != p.Material {
			return false
		}
	}
	if f.g.At(tx, ty) != nil {
		return false
	}
	f.g.take(p.X, p.Y)
	f.g.put(tx, ty, p)
	return true
}

// fall tries straight down, then both diagonals in random order.
func (f *Frame) fall(p *Particle) bool {
	if f.g.Move(p, 0, 1) {
		return true
	}
	side := 1
	if f.rng.IntN(2) == 0 {
		side = -1
	}
	if f.g.Move(p, side, 1) {
		return true
	}
	return f.g.Move(p, -side, 1)
}
