package app

import (
	"flag"
	"fmt"
	"sort"
	"strings"
)

// Config represents the command-line parameters shared by the front-ends.
type Config struct {
	Scale int
	TPS   int
	Seed  int64

	// Material is the name of the material selected at startup.
	Material string

	// Sets collects -set key=value overrides forwarded to the sim's FromMap.
	Sets Overrides
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Scale: 6, TPS: 60, Seed: 42, Material: "sand", Sets: Overrides{}}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.StringVar(&c.Material, "material", c.Material, "material selected at startup")
	if c.Sets == nil {
		c.Sets = Overrides{}
	}
	fs.Var(c.Sets, "set", "sim option as key=value (repeatable), e.g. -set parallel=true")
}

// SimConfig returns the overrides as the string map sim factories take. The
// -seed flag is included unless an explicit seed override was given.
func (c *Config) SimConfig() map[string]string {
	out := make(map[string]string, len(c.Sets)+1)
	out["seed"] = fmt.Sprint(c.Seed)
	for k, v := range c.Sets {
		out[k] = v
	}
	return out
}

// Overrides is a repeatable key=value flag.
type Overrides map[string]string

// String renders the overrides in key order.
func (o Overrides) String() string {
	keys := make([]string, 0, len(o))
	for k := range o {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+"="+o[k])
	}
	return strings.Join(parts, ",")
}

// Set parses one key=value pair.
func (o Overrides) Set(s string) error {
	key, value, ok := strings.Cut(s, "=")
	key = strings.TrimSpace(key)
	if !ok || key == "" {
		return fmt.Errorf("override %q: want key=value", s)
	}
	o[key] = strings.TrimSpace(value)
	return nil
}
