package sand

import "testing"

func TestMovePrimitives(t *testing.T) {
	f := newTestFrame(3, 3)
	g := f.g
	p := f.fill(1, 1, Sand)

	if !g.Vacant(p, 0, 1) {
		t.Fatal("cell below should be vacant")
	}
	if g.At(1, 1) != p || g.At(1, 2) != nil {
		t.Fatal("vacancy probe must not move the particle")
	}
	if !g.Move(p, 0, 1) {
		t.Fatal("move into an empty cell should succeed")
	}
	if g.At(1, 1) != nil || g.At(1, 2) != p || p.X != 1 || p.Y != 2 {
		t.Fatalf("particle not relocated correctly: at (%d,%d)", p.X, p.Y)
	}
	if g.Move(p, 0, 1) {
		t.Fatal("move out of bounds should fail")
	}

	w := f.fill(0, 2, Water)
	if !g.Touches(p, -1, 0, Water) {
		t.Fatal("Touches should detect the water neighbor")
	}
	if g.Touches(p, -1, 0, Rock) {
		t.Fatal("Touches should reject a non-matching material")
	}
	if g.Move(p, -1, 0) {
		t.Fatal("move into an occupied cell should fail")
	}
	if g.At(0, 2) != w || g.At(1, 2) != p {
		t.Fatal("failed move must not mutate the grid")
	}
	assertGridInvariant(t, g)
}

func TestFlowPastSameFluid(t *testing.T) {
	f := newTestFrame(3, 1)
	g := f.g
	a := f.fill(0, 0, Water)
	b := f.fill(1, 0, Water)
	f.fill(2, 0, Oil)

	if !g.Flow(a, 1, 0) {
		t.Fatal("flowing into the same fluid should report success")
	}
	if g.At(0, 0) != a || g.At(1, 0) != b {
		t.Fatal("flowing past the same fluid must not relocate either particle")
	}
	if g.Flow(b, 1, 0) {
		t.Fatal("flowing into a different material should fail")
	}
	if g.Move(a, 1, 0) {
		t.Fatal("plain move into the same fluid should fail")
	}
}

func TestSwap(t *testing.T) {
	f := newTestFrame(2, 2)
	g := f.g
	a := f.fill(0, 0, Sand)
	b := f.fill(1, 1, Water)

	g.Swap(a, b)
	if g.At(1, 1) != a || g.At(0, 0) != b {
		t.Fatal("Swap should exchange cells")
	}
	if a.X != 1 || a.Y != 1 || b.X != 0 || b.Y != 0 {
		t.Fatal("Swap should exchange coordinates")
	}

	g.Swap(a, nil)
	if g.At(1, 1) != a || a.X != 1 || a.Y != 1 {
		t.Fatal("Swap with a missing particle should be a no-op")
	}
	assertGridInvariant(t, g)
}

func TestFlammableProbe(t *testing.T) {
	f := newTestFrame(3, 1)
	p := f.fill(1, 0, Fire)
	f.fill(0, 0, Wood)
	f.fill(2, 0, Rock)

	if !f.g.Flammable(p, -1, 0) {
		t.Fatal("wood should be flammable")
	}
	if f.g.Flammable(p, 1, 0) {
		t.Fatal("rock should not be flammable")
	}
	if f.g.Flammable(p, 0, 1) {
		t.Fatal("out-of-range neighbor should not be flammable")
	}
}

func TestDisperse(t *testing.T) {
	f := newTestFrame(8, 1)
	p := f.fill(0, 0, Water)
	f.fill(2, 0, Sand)
	if f.disperse(p, 1, 0) {
		t.Fatal("dispersal through a different material should abort")
	}

	f = newTestFrame(8, 1)
	p = f.fill(0, 0, Water)
	moved := false
	for i := 0; i < 40 && !moved; i++ {
		moved = f.disperse(p, 1, 0)
	}
	if !moved {
		t.Fatal("dispersal over open cells never succeeded")
	}
	if p.X != p.Spread || f.g.At(p.Spread, 0) != p {
		t.Fatalf("expected jump of %d cells, particle at x=%d", p.Spread, p.X)
	}

	sand := f.fill(5, 0, Sand)
	if f.disperse(sand, 1, 0) {
		t.Fatal("granular material must not disperse")
	}
}

func TestGridClone(t *testing.T) {
	f := newTestFrame(4, 4)
	f.fill(1, 1, Sand)
	proj := f.launch(2, 2, [2]float64{1, 0}, 1, f.spawn(Rock, 2, 2))
	f.g.put(2, 2, proj)

	c := f.g.Clone()
	if c.Count() != 2 {
		t.Fatalf("clone count = %d, want 2", c.Count())
	}
	if c.At(1, 1) == f.g.At(1, 1) {
		t.Fatal("clone must not share particles")
	}
	if c.At(2, 2).Carried() == proj.Carried() {
		t.Fatal("clone must deep-copy carried particles")
	}
	assertGridInvariant(t, c)
}

func TestCoordinateRemap(t *testing.T) {
	f := newTestFrame(20, 4)
	p := f.spawn(Travelling, 12, 1)
	p.toLocal(10)
	if p.X != 2 || p.travel.pos[0] != 2 {
		t.Fatalf("toLocal gave x=%d pos=%v", p.X, p.travel.pos)
	}
	p.toGlobal(10)
	if p.X != 12 || p.travel.pos[0] != 12 {
		t.Fatalf("toGlobal gave x=%d pos=%v", p.X, p.travel.pos)
	}
	p.setLocal(15, 10)
	if p.X != 5 || p.travel.pos[0] != 5 {
		t.Fatalf("setLocal gave x=%d pos=%v", p.X, p.travel.pos)
	}
}
