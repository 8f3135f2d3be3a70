package app

import (
	"testing"

	"atlantis/internal/sims/sand"
)

func TestMaterialHotkeys(t *testing.T) {
	cases := map[rune]sand.Material{
		's': sand.Sand, 'W': sand.Water, 'r': sand.Rock, 'a': sand.Acid, 't': sand.Wood,
		'f': sand.Fire, 'g': sand.Gunpowder, 'o': sand.Oil, 'c': sand.Chaos, 'V': sand.Void,
	}
	for r, want := range cases {
		if got, ok := MaterialForKey(r); !ok || got != want {
			t.Fatalf("key %q = %v, want %v", r, got, want)
		}
	}
	if _, ok := MaterialForKey('z'); ok {
		t.Fatal("unbound key should not select a material")
	}
}

func TestBrush(t *testing.T) {
	b := NewBrush("no-such-thing")
	if b.Material != sand.Sand || b.Radius != 1 {
		t.Fatalf("default brush = %+v", b)
	}
	for i := 0; i < 20; i++ {
		b.HandleRune('+')
	}
	if b.Radius != sand.MaxBrush {
		t.Fatalf("radius = %d, want clamp at %d", b.Radius, sand.MaxBrush)
	}
	for i := 0; i < 20; i++ {
		b.HandleRune('-')
	}
	if b.Radius != 1 {
		t.Fatalf("radius = %d, want clamp at 1", b.Radius)
	}
	if !b.HandleRune('o') || b.Material != sand.Oil {
		t.Fatal("hotkey should select oil")
	}
	if b.HandleRune('x') {
		t.Fatal("unbound rune should not be consumed")
	}
}

func TestNextMaterialWraps(t *testing.T) {
	all := sand.Materials()
	if NextMaterial(all[len(all)-1], 1) != all[0] {
		t.Fatal("cycling forward should wrap to the first material")
	}
	if NextMaterial(all[0], -1) != all[len(all)-1] {
		t.Fatal("cycling backward should wrap to the last material")
	}
}
