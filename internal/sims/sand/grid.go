package sand

// Grid is a fixed-size rectangle of cells, each empty or owning exactly one
// particle. Every accessor is bounds-checked; out-of-range reads return nil
// and out-of-range writes are ignored.
type Grid struct {
	W, H  int
	cells []*Particle
}

// NewGrid allocates an empty grid.
func NewGrid(w, h int) *Grid {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Grid{W: w, H: h, cells: make([]*Particle, w*h)}
}

// InBounds reports whether (x, y) addresses a cell.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// At returns the particle at (x, y), or nil when empty or out of range.
func (g *Grid) At(x, y int) *Particle {
	if !g.InBounds(x, y) {
		return nil
	}
	return g.cells[y*g.W+x]
}

// put stores p at (x, y) and stamps the coordinates onto p in the same step.
func (g *Grid) put(x, y int, p *Particle) {
	if !g.InBounds(x, y) {
		return
	}
	g.cells[y*g.W+x] = p
	if p != nil {
		p.X, p.Y = x, y
	}
}

// take empties (x, y) and returns what was there.
func (g *Grid) take(x, y int) *Particle {
	if !g.InBounds(x, y) {
		return nil
	}
	i := y*g.W + x
	p := g.cells[i]
	g.cells[i] = nil
	return p
}

// Count returns the number of occupied cells.
func (g *Grid) Count() int {
	n := 0
	for _, p := range g.cells {
		if p != nil {
			n++
		}
	}
	return n
}

// CountOf returns the number of particles of material m.
func (g *Grid) CountOf(m Material) int {
	n := 0
	for _, p := range g.cells {
		if p != nil && p.Material == m {
			n++
		}
	}
	return n
}

// Each calls fn for every occupied cell in row-major order.
func (g *Grid) Each(fn func(p *Particle)) {
	for _, p := range g.cells {
		if p != nil {
			fn(p)
		}
	}
}

// Clear empties every cell.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = nil
	}
}

// Clone returns a deep copy of the grid. Animators are shared with the
// source because they belong to the shader cache, not the particle.
func (g *Grid) Clone() *Grid {
	out := NewGrid(g.W, g.H)
	for i, p := range g.cells {
		if p != nil {
			out.cells[i] = cloneParticle(p)
		}
	}
	return out
}

func cloneParticle(p *Particle) *Particle {
	c := *p
	if p.travel.carried != nil {
		c.travel.carried = cloneParticle(p.travel.carried)
	}
	return &c
}

// Consistent reports whether every particle's stored position matches the
// cell holding it and no particle occupies two cells.
func (g *Grid) Consistent() bool {
	seen := make(map[*Particle]struct{}, len(g.cells))
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			p := g.cells[y*g.W+x]
			if p == nil {
				continue
			}
			if p.X != x || p.Y != y {
				return false
			}
			if _, dup := seen[p]; dup {
				return false
			}
			seen[p] = struct{}{}
		}
	}
	return true
}

// LiveBoids counts boids on the grid, including those carried by
// travelling particles. It matches Env.BoidCount between ticks.
func (g *Grid) LiveBoids() int {
	n := 0
	g.Each(func(p *Particle) {
		for q := p; q != nil; q = q.Carried() {
			if q.Material == Boid {
				n++
			}
		}
	})
	return n
}
