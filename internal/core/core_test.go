package core

import (
	"slices"
	"testing"
	"time"
)

func TestByteGridBounds(t *testing.T) {
	g := NewByteGrid(4, 3)
	g.Set(3, 2, 7)
	g.Set(4, 0, 9)
	g.Set(-1, 1, 9)

	if got := g.At(3, 2); got != 7 {
		t.Fatalf("At(3,2) = %d, want 7", got)
	}
	if got := g.At(4, 0); got != 0 {
		t.Fatalf("out-of-range read = %d, want 0", got)
	}
	for i, v := range g.Cells() {
		if i != g.Index(3, 2) && v != 0 {
			t.Fatalf("out-of-range write leaked into cell %d", i)
		}
	}

	g.Clear()
	if g.At(3, 2) != 0 {
		t.Fatal("Clear should zero every cell")
	}
}

func TestNewByteGridClampsDimensions(t *testing.T) {
	g := NewByteGrid(0, -3)
	if g.W != 1 || g.H != 1 || len(g.Cells()) != 1 {
		t.Fatalf("expected 1x1 grid, got %dx%d (%d cells)", g.W, g.H, len(g.Cells()))
	}
}

func TestRNGDeterministic(t *testing.T) {
	a := NewRNG(42)
	b := NewRNG(42)
	var sa, sb []uint64
	for i := 0; i < 32; i++ {
		sa = append(sa, a.Uint64())
		sb = append(sb, b.Uint64())
	}
	if !slices.Equal(sa, sb) {
		t.Fatal("same seed must produce the same sequence")
	}
}

func TestIntRange(t *testing.T) {
	r := NewRNG(42).Source()
	for i := 0; i < 100; i++ {
		if v := IntRange(r, 3, 9); v < 3 || v > 9 {
			t.Fatalf("IntRange produced %d outside [3,9]", v)
		}
	}
	if got := IntRange(r, 5, 2); got != 5 {
		t.Fatalf("inverted range should return lo, got %d", got)
	}
}

func TestFloatRange(t *testing.T) {
	r := Child(1, 2)
	for i := 0; i < 100; i++ {
		v := FloatRange(r, 0.5, 1.5)
		if v < 0.5 || v >= 1.5 {
			t.Fatalf("FloatRange produced %f", v)
		}
	}
}

func TestFixedStepPacing(t *testing.T) {
	clock := time.Unix(0, 0)
	fs := NewFixedStep(10)
	fs.now = func() time.Time { return clock }

	if !fs.ShouldStep() {
		t.Fatal("first call should step immediately")
	}
	if fs.ShouldStep() {
		t.Fatal("no time passed; should not step")
	}
	clock = clock.Add(100 * time.Millisecond)
	if !fs.ShouldStep() {
		t.Fatal("one interval elapsed; should step")
	}

	clock = clock.Add(10 * time.Second)
	steps := 0
	for fs.ShouldStep() {
		steps++
	}
	if steps != maxBacklog {
		t.Fatalf("backlog should cap at %d steps, got %d", maxBacklog, steps)
	}
}

func TestParameterSnapshotLookup(t *testing.T) {
	snap := ParameterSnapshot{Groups: []ParameterGroup{
		{Name: "A", Params: []Parameter{{Key: "w", Value: "100"}}},
		{Name: "B", Params: []Parameter{{Key: "seed", Value: "7"}}},
	}}
	p, ok := snap.Lookup("seed")
	if !ok || p.Value != "7" {
		t.Fatalf("Lookup(seed) = %+v, %v", p, ok)
	}
	if _, ok := snap.Lookup("missing"); ok {
		t.Fatal("missing key should not be found")
	}
}

func TestRegisterIgnoresInvalid(t *testing.T) {
	before := len(Sims())
	Register("", func(map[string]string) Sim { return nil })
	Register("nil-factory", nil)
	if len(Sims()) != before {
		t.Fatal("invalid registrations must be ignored")
	}
}
