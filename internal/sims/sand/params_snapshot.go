package sand

import (
	"strconv"

	"atlantis/internal/core"
)

func (w *World) Parameters() core.ParameterSnapshot {
	params := w.env.Params
	groups := []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("w", "Width", w.cfg.Width),
				intParam("h", "Height", w.cfg.Height),
				int64Param("seed", "Seed", w.cfg.Seed),
				intParam("chunks", "Chunks", w.cfg.Chunks),
				boolParam("parallel", "Parallel", w.sched != nil),
				{Key: "scene", Label: "Scene", Type: core.ParamTypeString, Value: w.cfg.Scene},
				intParam("shader_variants", "Shader variants", params.ShaderVariants),
			},
		},
		{
			Name: "Lifetimes",
			Params: []core.Parameter{
				intParam("fire_life_min", "Fire life min", params.FireLifeMin),
				intParam("fire_life_max", "Fire life max", params.FireLifeMax),
				intParam("fire_fall_odds", "Fire fall odds", params.FireFallOdds),
				intParam("gas_life_min", "Gas life min", params.GasLifeMin),
				intParam("gas_life_max", "Gas life max", params.GasLifeMax),
				intParam("gas_move_delay", "Gas move delay", params.GasMoveDelay),
				intParam("grassium_life_min", "Grassium life min", params.GrassiumLifeMin),
				intParam("grassium_life_max", "Grassium life max", params.GrassiumLifeMax),
				intParam("grassium_burn_chance", "Grassium burn chance", params.GrassiumBurnChance),
				intParam("void_life", "Void life", params.VoidLife),
			},
		},
		{
			Name: "Blasts",
			Params: []core.Parameter{
				intParam("gunpowder_blast_radius", "Gunpowder blast radius", params.GunpowderBlastRadius),
				intParam("slime_blast_radius", "Slime blast radius", params.SlimeBlastRadius),
				intParam("fling_odds", "Fling odds", params.FlingOdds),
				floatParam("projectile_gravity", "Projectile gravity", params.ProjectileGravity),
				floatParam("projectile_dt", "Projectile dt", params.ProjectileDT),
			},
		},
		{
			Name: "Boids",
			Params: []core.Parameter{
				intParam("boid_cap", "Boid cap", params.BoidCap),
				intParam("boid_flock_radius", "Boid flock radius", params.BoidFlockRadius),
				intParam("boid_avoid_radius", "Boid avoid radius", params.BoidAvoidRadius),
				floatParam("boid_separation", "Boid separation", params.BoidSeparation),
				intParam("boid_speed", "Boid speed", params.BoidSpeed),
				intParam("boid_burn_chance", "Boid burn chance", params.BoidBurnChance),
			},
		},
		{
			Name: "Flow",
			Params: []core.Parameter{
				floatParam("diagonal_bias", "Diagonal bias", params.DiagonalBias),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the HUD-adjustable tunables.
func (w *World) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		intControl("fire_life_min", "Fire life min", 10, 1),
		intControl("fire_life_max", "Fire life max", 10, 1),
		intControl("gas_life_min", "Gas life min", 10, 1),
		intControl("gas_life_max", "Gas life max", 10, 1),
		intControl("gas_move_delay", "Gas move delay", 1, 0),
		intControl("void_life", "Void life", 10, 0),
		intControl("gunpowder_blast_radius", "Gunpowder blast radius", 1, 0),
		intControl("slime_blast_radius", "Slime blast radius", 1, 0),
		intControl("fling_odds", "Fling odds", 1, 1),
		intControl("boid_cap", "Boid cap", 10, 0),
		intControl("boid_speed", "Boid speed", 1, 0),
		{Key: "diagonal_bias", Label: "Diagonal bias", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1, HasMin: true, HasMax: true},
		{Key: "projectile_gravity", Label: "Projectile gravity", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, HasMin: true},
	}
}

// SetIntParameter updates an integer tunable; it reports false for unknown
// keys and rejected values. Lifetime ranges stay ordered.
func (w *World) SetIntParameter(key string, value int) bool {
	p := &w.env.Params
	ref, lower := intRef(p, key)
	if ref == nil || value < lower {
		return false
	}
	*ref = value
	switch key {
	case "fire_life_min", "fire_life_max":
		p.FireLifeMin, p.FireLifeMax = orderedRange(key == "fire_life_min", p.FireLifeMin, p.FireLifeMax)
	case "gas_life_min", "gas_life_max":
		p.GasLifeMin, p.GasLifeMax = orderedRange(key == "gas_life_min", p.GasLifeMin, p.GasLifeMax)
	case "grassium_life_min", "grassium_life_max":
		p.GrassiumLifeMin, p.GrassiumLifeMax = orderedRange(key == "grassium_life_min", p.GrassiumLifeMin, p.GrassiumLifeMax)
	}
	w.cfg.Params = *p
	return true
}

// SetFloatParameter updates a floating point tunable.
func (w *World) SetFloatParameter(key string, value float64) bool {
	p := &w.env.Params
	switch key {
	case "diagonal_bias":
		if value < 0 || value > 1 {
			return false
		}
		p.DiagonalBias = value
	case "boid_separation":
		if value < 0 {
			return false
		}
		p.BoidSeparation = value
	case "projectile_gravity":
		if value < 0 {
			return false
		}
		p.ProjectileGravity = value
	case "projectile_dt":
		if value < 0 {
			return false
		}
		p.ProjectileDT = value
	default:
		return false
	}
	w.cfg.Params = *p
	return true
}

func intRef(p *Params, key string) (*int, int) {
	switch key {
	case "fire_life_min":
		return &p.FireLifeMin, 1
	case "fire_life_max":
		return &p.FireLifeMax, 1
	case "fire_fall_odds":
		return &p.FireFallOdds, 1
	case "gas_life_min":
		return &p.GasLifeMin, 1
	case "gas_life_max":
		return &p.GasLifeMax, 1
	case "gas_move_delay":
		return &p.GasMoveDelay, 0
	case "grassium_life_min":
		return &p.GrassiumLifeMin, 1
	case "grassium_life_max":
		return &p.GrassiumLifeMax, 1
	case "grassium_burn_chance":
		return &p.GrassiumBurnChance, 0
	case "void_life":
		return &p.VoidLife, 0
	case "gunpowder_blast_radius":
		return &p.GunpowderBlastRadius, 0
	case "slime_blast_radius":
		return &p.SlimeBlastRadius, 0
	case "fling_odds":
		return &p.FlingOdds, 1
	case "boid_cap":
		return &p.BoidCap, 0
	case "boid_flock_radius":
		return &p.BoidFlockRadius, 0
	case "boid_avoid_radius":
		return &p.BoidAvoidRadius, 0
	case "boid_speed":
		return &p.BoidSpeed, 0
	case "boid_burn_chance":
		return &p.BoidBurnChance, 0
	}
	return nil, 0
}

// orderedRange keeps lo <= hi, moving whichever bound was not just edited.
func orderedRange(editedLo bool, lo, hi int) (int, int) {
	if lo <= hi {
		return lo, hi
	}
	if editedLo {
		return lo, lo
	}
	return hi, hi
}

func intControl(key, label string, step, lower float64) core.ParameterControl {
	return core.ParameterControl{Key: key, Label: label, Type: core.ParamTypeInt, Step: step, Min: lower, HasMin: true}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}

func boolParam(key, label string, value bool) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeBool,
		Value: strconv.FormatBool(value),
	}
}
