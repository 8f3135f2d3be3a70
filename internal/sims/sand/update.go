package sand

// update runs p's material rule at most once per tick.
func (f *Frame) update(p *Particle) {
	if p.stamp == f.tick {
		return
	}
	p.stamp = f.tick

	switch p.Material {
	case Sand, Gravel, Gunpowder:
		f.fall(p)
	case Mulch:
		f.updateMulch(p)
	case Water:
		f.updateWater(p)
	case Acid:
		f.updateAcid(p)
	case Oil:
		f.updateOil(p)
	case Slime:
		f.updateSlime(p)
	case Chaos:
		f.updateChaos(p)
	case Void:
		f.updateVoid(p)
	case Steam:
		f.updateSteam(p)
	case Smoke:
		f.updateGas(p)
	case MysteriousVapor:
		f.updateVapor(p)
	case Grassium:
		f.updateGrassium(p)
	case Fire:
		f.updateFire(p)
	case Travelling:
		f.updateTravelling(p)
	case Boid:
		f.updateBoid(p)
	case Plant:
		f.updatePlant(p)
	case Rock, Wood:
	}
}

// Scan updates every particle whose column lies in [lo, hi). Rows run bottom
// to top so falling material settles before the cells above it are visited;
// the column direction flips with row parity to avoid a sideways bias.
func (f *Frame) Scan(lo, hi int) {
	if lo < 0 {
		lo = 0
	}
	if hi > f.g.W {
		hi = f.g.W
	}
	for y := f.g.H - 1; y >= 0; y-- {
		if y%2 == 0 {
			for x := lo; x < hi; x++ {
				f.visit(x, y)
			}
			continue
		}
		for x := hi - 1; x >= lo; x-- {
			f.visit(x, y)
		}
	}
}

func (f *Frame) visit(x, y int) {
	if p := f.g.At(x, y); p != nil {
		f.update(p)
	}
}
