package app

import (
	"unicode"

	"atlantis/internal/sims/sand"
)

// materialKeys maps typed characters to the materials they select.
var materialKeys = map[rune]sand.Material{
	's': sand.Sand,
	'w': sand.Water,
	'r': sand.Rock,
	'a': sand.Acid,
	't': sand.Wood,
	'f': sand.Fire,
	'g': sand.Gunpowder,
	'o': sand.Oil,
	'c': sand.Chaos,
	'v': sand.Void,
}

// MaterialForKey resolves a material hotkey, ignoring case.
func MaterialForKey(r rune) (sand.Material, bool) {
	m, ok := materialKeys[unicode.ToLower(r)]
	return m, ok
}

// NextMaterial cycles through every placeable material in declaration order.
func NextMaterial(m sand.Material, dir int) sand.Material {
	all := sand.Materials()
	idx := 0
	for i, v := range all {
		if v == m {
			idx = i
			break
		}
	}
	idx = (idx + dir) % len(all)
	if idx < 0 {
		idx += len(all)
	}
	return all[idx]
}

// Brush holds the selected material and radius shared by the front-ends.
type Brush struct {
	Material sand.Material
	Radius   int
}

// NewBrush selects the named material, falling back to sand.
func NewBrush(name string) Brush {
	m, ok := sand.ParseMaterial(name)
	if !ok {
		m = sand.Sand
	}
	return Brush{Material: m, Radius: 1}
}

// Grow changes the radius by delta within [1, sand.MaxBrush].
func (b *Brush) Grow(delta int) {
	b.Radius = sand.ClampBrush(b.Radius + delta)
}

// HandleRune applies a typed character: a material hotkey, '[' and ']' to
// cycle materials, '+' and '-' to resize. It reports whether the rune was
// consumed.
func (b *Brush) HandleRune(r rune) bool {
	if m, ok := MaterialForKey(r); ok {
		b.Material = m
		return true
	}
	switch r {
	case ']':
		b.Material = NextMaterial(b.Material, 1)
	case '[':
		b.Material = NextMaterial(b.Material, -1)
	case '+', '=':
		b.Grow(1)
	case '-', '_':
		b.Grow(-1)
	default:
		return false
	}
	return true
}
