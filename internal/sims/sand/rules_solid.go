package sand

// updateMulch grows plants out of touching slime before falling like sand.
func (f *Frame) updateMulch(p *Particle) {
	for _, d := range dirs4 {
		if f.g.Touches(p, d.dx, d.dy, Slime) {
			f.replace(f.g.neighbor(p, d.dx, d.dy), Plant)
			return
		}
	}
	f.fall(p)
}

// updatePlant turns touching water and mulch into more plant. Rock and Wood
// have no rule of their own; they change only through their neighbors.
func (f *Frame) updatePlant(p *Particle) {
	for _, m := range [...]Material{Water, Mulch} {
		for _, d := range dirs4 {
			if f.g.Touches(p, d.dx, d.dy, m) {
				f.replace(f.g.neighbor(p, d.dx, d.dy), Plant)
			}
		}
	}
}
