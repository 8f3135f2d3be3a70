package sand

import (
	"image/color"
	"strings"

	"atlantis/internal/shader"
)

// Material is the behaviour tag of a particle. The zero value marks an empty
// cell in snapshots and as a probe target.
type Material uint8

const (
	Empty Material = iota
	Sand
	Gravel
	Mulch
	Gunpowder
	Water
	Acid
	Oil
	Slime
	Chaos
	Void
	Steam
	Smoke
	MysteriousVapor
	Grassium
	Fire
	Rock
	Wood
	Plant
	Travelling
	Boid

	materialCount
)

// Family groups materials that share a base update rule.
type Family uint8

const (
	FamilyNone Family = iota
	FamilyGranular
	FamilyFluid
	FamilyGas
	FamilyFire
	FamilySolid
	FamilyTravelling
	FamilyBoid
)

type materialInfo struct {
	name   string
	family Family
	style  shader.Style
}

func rgb(r, g, b uint8) color.RGBA { return color.RGBA{R: r, G: g, B: b, A: 255} }

func still(a, b color.RGBA) shader.Style {
	return shader.Style{Palette: shader.Palette{From: a, To: b}, Kind: shader.KindStill}
}

func shimmer(a, b color.RGBA, speed float64) shader.Style {
	return shader.Style{Palette: shader.Palette{From: a, To: b}, Kind: shader.KindShimmer, Speed: speed}
}

func randomize(a, b color.RGBA, period int) shader.Style {
	return shader.Style{Palette: shader.Palette{From: a, To: b}, Kind: shader.KindRandomize, Period: period}
}

var materials = [materialCount]materialInfo{
	Empty:           {name: "Empty"},
	Sand:            {"Sand", FamilyGranular, still(rgb(255, 232, 168), rgb(255, 209, 82))},
	Gravel:          {"Gravel", FamilyGranular, still(rgb(110, 110, 110), rgb(153, 153, 153))},
	Mulch:           {"Mulch", FamilyGranular, still(rgb(69, 40, 21), rgb(156, 71, 16))},
	Gunpowder:       {"Gunpowder", FamilyGranular, still(rgb(201, 190, 167), rgb(145, 120, 112))},
	Water:           {"Water", FamilyFluid, shimmer(rgb(0, 119, 190), rgb(6, 88, 138), 0.01)},
	Acid:            {"Acid", FamilyFluid, shimmer(rgb(40, 166, 33), rgb(93, 184, 61), 0.01)},
	Oil:             {"Oil", FamilyFluid, shimmer(rgb(201, 116, 60), rgb(150, 73, 23), 0.02)},
	Slime:           {"Slime", FamilyFluid, shimmer(rgb(218, 16, 222), rgb(189, 21, 102), 0.02)},
	Chaos:           {"Chaos", FamilyFluid, shimmer(rgb(252, 249, 136), rgb(250, 242, 5), 0.02)},
	Void:            {"Void", FamilyFluid, shimmer(rgb(0, 92, 105), rgb(0, 223, 255), 0.02)},
	Steam:           {"Steam", FamilyGas, shimmer(rgb(207, 207, 207), rgb(230, 230, 230), 0.01)},
	Smoke:           {"Smoke", FamilyGas, randomize(rgb(110, 110, 110), rgb(153, 153, 153), 2)},
	MysteriousVapor: {"MysteriousVapor", FamilyGas, shimmer(rgb(255, 0, 0), rgb(0, 255, 208), 0.02)},
	Grassium:        {"Grassium", FamilyGas, randomize(rgb(69, 252, 3), rgb(71, 255, 188), 1)},
	Fire:            {"Fire", FamilyFire, randomize(rgb(237, 71, 38), rgb(237, 164, 38), 5)},
	Rock:            {"Rock", FamilySolid, still(rgb(71, 71, 71), rgb(80, 80, 80))},
	Wood:            {"Wood", FamilySolid, still(rgb(41, 26, 23), rgb(79, 67, 47))},
	Plant:           {"Plant", FamilySolid, still(rgb(76, 212, 15), rgb(46, 125, 9))},
	Travelling:      {name: "Travelling", family: FamilyTravelling},
	Boid: {"Boid", FamilyBoid, shader.Style{
		Palette: shader.Palette{From: rgb(255, 191, 205), To: rgb(255, 31, 80)},
		Kind:    shader.KindFlock,
	}},
}

// String returns the material's display name.
func (m Material) String() string {
	if m >= materialCount {
		return "Unknown"
	}
	return materials[m].name
}

// Family reports which base rule the material falls back to.
func (m Material) Family() Family {
	if m >= materialCount {
		return FamilyNone
	}
	return materials[m].family
}

// Valid reports whether m names a placeable material.
func (m Material) Valid() bool { return m > Empty && m < materialCount }

// Materials lists every placeable material in declaration order.
func Materials() []Material {
	out := make([]Material, 0, materialCount-1)
	for m := Empty + 1; m < materialCount; m++ {
		out = append(out, m)
	}
	return out
}

// ParseMaterial resolves a case-insensitive material name. Underscores and
// dashes are ignored so "mysterious_vapor" matches MysteriousVapor.
func ParseMaterial(name string) (Material, bool) {
	key := normalizeName(name)
	if key == "" {
		return Empty, false
	}
	for m := Empty + 1; m < materialCount; m++ {
		if normalizeName(materials[m].name) == key {
			return m, true
		}
	}
	return Empty, false
}

func normalizeName(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer("_", "", "-", "", " ", "").Replace(s)
}

// Registry lists the concrete members of each material category. Chaos
// transmutes a neighbor into a random member of the neighbor's category.
type Registry struct {
	Gases  []Material
	Sands  []Material
	Fluids []Material
	Solids []Material
}

// chaosRegistry is built once at package init; Chaos is excluded from the
// fluid list so it never clones itself.
var chaosRegistry = buildRegistry()

func buildRegistry() Registry {
	var r Registry
	for _, m := range Materials() {
		switch m.Family() {
		case FamilyGas:
			r.Gases = append(r.Gases, m)
		case FamilyGranular:
			r.Sands = append(r.Sands, m)
		case FamilyFluid:
			if m != Chaos {
				r.Fluids = append(r.Fluids, m)
			}
		}
	}
	r.Solids = []Material{Rock, Wood}
	return r
}

// CategoryRegistry exposes the static category lists.
func CategoryRegistry() Registry { return chaosRegistry }

// membersFor returns the transmutation pool for a neighbor of material m.
func (r Registry) membersFor(m Material) []Material {
	switch m.Family() {
	case FamilyGas:
		return r.Gases
	case FamilyGranular:
		return r.Sands
	case FamilyFluid:
		return r.Fluids
	default:
		return r.Solids
	}
}

func isGranular(m Material) bool { return m.Family() == FamilyGranular }

// denseForGas lists what a rising gas bubbles up through.
func denseForGas(m Material) bool {
	switch m {
	case Sand, Gunpowder, Mulch, Gravel, Water, Acid, Slime, Oil, Fire:
		return true
	}
	return false
}

// BasePalette returns one representative color per material tag, indexed
// by tag, for renderers that only see Cells.
func BasePalette() []color.RGBA {
	out := make([]color.RGBA, materialCount)
	out[Empty] = color.RGBA{A: 255}
	for m := Empty + 1; m < materialCount; m++ {
		out[m] = materials[m].style.Palette.From
	}
	out[Travelling] = rgb(200, 200, 200)
	return out
}
