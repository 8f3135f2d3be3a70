package sand

// Scene names accepted by Config.Scene.
const (
	SceneEmpty = "empty"
	SceneDemo  = "demo"
)

// buildScene lays out the named scene on an empty grid.
func (f *Frame) buildScene(name string) {
	if name != SceneDemo {
		return
	}
	w, h := f.g.W, f.g.H
	if w < 8 || h < 8 {
		return
	}

	floor := h - 1
	for x := 0; x < w; x++ {
		f.fill(x, floor, Rock)
	}

	// Wood pillar left of centre with a gunpowder pocket at its foot.
	px := w / 4
	for y := floor - h/3; y < floor; y++ {
		f.fill(px, y, Wood)
	}
	for x := px + 1; x <= px+3 && x < w; x++ {
		f.fill(x, floor-1, Gunpowder)
	}

	// Basin on the right for water with an oil film.
	bl, br := w/2+w/8, w-2
	for y := floor - h/5; y < floor; y++ {
		f.fill(bl, y, Rock)
		f.fill(br, y, Rock)
	}
	for y := floor - h/8; y < floor; y++ {
		for x := bl + 1; x < br; x++ {
			f.fill(x, y, Water)
		}
	}
	for x := bl + 1; x < br; x++ {
		f.fill(x, floor-h/8-1, Oil)
	}

	// Sand heap dropped from the sky between pillar and basin.
	cx := (px + bl) / 2
	for y := 2; y < 2+h/6; y++ {
		for x := cx - 3; x <= cx+3; x++ {
			f.fill(x, y, Sand)
		}
	}
}
