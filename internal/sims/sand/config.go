package sand

import (
	"strconv"
	"strings"
)

// Params holds the tunable lifetimes, blast sizes and swarm settings.
type Params struct {
	FireLifeMin  int
	FireLifeMax  int
	FireFallOdds int

	GasLifeMin         int
	GasLifeMax         int
	GasMoveDelay       int
	GrassiumLifeMin    int
	GrassiumLifeMax    int
	GrassiumBurnChance int
	VoidLife           int

	GunpowderBlastRadius int
	SlimeBlastRadius     int
	FlingOdds            int

	BoidCap         int
	BoidFlockRadius int
	BoidAvoidRadius int
	BoidSeparation  float64
	BoidSpeed       int
	BoidBurnChance  int

	DiagonalBias      float64
	ShaderVariants    int
	ProjectileGravity float64
	ProjectileDT      float64
}

// Config controls the sandbox dimensions and scheduling mode.
type Config struct {
	Width  int
	Height int

	Seed int64

	// Chunks is the number of vertical bands the world is split into when
	// Parallel is set. Values below 1 are treated as 1.
	Chunks   int
	Parallel bool

	// Scene names the layout Reset builds: "empty" or "demo".
	Scene string

	Params Params
}

// DefaultParams returns the stock material tuning.
func DefaultParams() Params {
	return Params{
		FireLifeMin:  100,
		FireLifeMax:  400,
		FireFallOdds: 201,

		GasLifeMin:         200,
		GasLifeMax:         500,
		GasMoveDelay:       2,
		GrassiumLifeMin:    8000,
		GrassiumLifeMax:    10000,
		GrassiumBurnChance: 5,
		VoidLife:           170,

		GunpowderBlastRadius: 5,
		SlimeBlastRadius:     20,
		FlingOdds:            3,

		BoidCap:         100,
		BoidFlockRadius: 4,
		BoidAvoidRadius: 2,
		BoidSeparation:  2,
		BoidSpeed:       2,
		BoidBurnChance:  3,

		DiagonalBias:      0.5,
		ShaderVariants:    5,
		ProjectileGravity: 0.2,
		ProjectileDT:      0.016,
	}
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:  100,
		Height: 100,
		Seed:   1337,
		Chunks: 10,
		Scene:  SceneEmpty,
		Params: DefaultParams(),
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Unparseable or out-of-range values keep their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["chunks"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Chunks = parsed
		}
	}
	if v, ok := cfg["parallel"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Parallel = parsed
		}
	}
	if v, ok := cfg["scene"]; ok {
		if s := strings.ToLower(strings.TrimSpace(v)); s == SceneEmpty || s == SceneDemo {
			c.Scene = s
		}
	}

	p := &c.Params
	intKey(cfg, "fire_life_min", 1, &p.FireLifeMin)
	intKey(cfg, "fire_life_max", 1, &p.FireLifeMax)
	if p.FireLifeMax < p.FireLifeMin {
		p.FireLifeMax = p.FireLifeMin
	}
	intKey(cfg, "fire_fall_odds", 1, &p.FireFallOdds)
	intKey(cfg, "gas_life_min", 1, &p.GasLifeMin)
	intKey(cfg, "gas_life_max", 1, &p.GasLifeMax)
	if p.GasLifeMax < p.GasLifeMin {
		p.GasLifeMax = p.GasLifeMin
	}
	intKey(cfg, "gas_move_delay", 0, &p.GasMoveDelay)
	intKey(cfg, "grassium_life_min", 1, &p.GrassiumLifeMin)
	intKey(cfg, "grassium_life_max", 1, &p.GrassiumLifeMax)
	if p.GrassiumLifeMax < p.GrassiumLifeMin {
		p.GrassiumLifeMax = p.GrassiumLifeMin
	}
	intKey(cfg, "grassium_burn_chance", 0, &p.GrassiumBurnChance)
	intKey(cfg, "void_life", 0, &p.VoidLife)
	intKey(cfg, "gunpowder_blast_radius", 0, &p.GunpowderBlastRadius)
	intKey(cfg, "slime_blast_radius", 0, &p.SlimeBlastRadius)
	intKey(cfg, "fling_odds", 1, &p.FlingOdds)
	intKey(cfg, "boid_cap", 0, &p.BoidCap)
	intKey(cfg, "boid_flock_radius", 0, &p.BoidFlockRadius)
	intKey(cfg, "boid_avoid_radius", 0, &p.BoidAvoidRadius)
	floatKey(cfg, "boid_separation", 0, &p.BoidSeparation)
	intKey(cfg, "boid_speed", 0, &p.BoidSpeed)
	intKey(cfg, "boid_burn_chance", 0, &p.BoidBurnChance)
	floatKey(cfg, "diagonal_bias", 0, &p.DiagonalBias)
	if p.DiagonalBias > 1 {
		p.DiagonalBias = 1
	}
	intKey(cfg, "shader_variants", 1, &p.ShaderVariants)
	floatKey(cfg, "projectile_gravity", 0, &p.ProjectileGravity)
	floatKey(cfg, "projectile_dt", 0, &p.ProjectileDT)
	return c
}

func intKey(cfg map[string]string, key string, min int, dst *int) {
	v, ok := cfg[key]
	if !ok {
		return
	}
	if parsed, err := strconv.Atoi(v); err == nil && parsed >= min {
		*dst = parsed
	}
}

func floatKey(cfg map[string]string, key string, min float64, dst *float64) {
	v, ok := cfg[key]
	if !ok {
		return
	}
	if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= min {
		*dst = parsed
	}
}
