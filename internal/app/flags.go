package app

import (
	"flag"
	"fmt"
	"sort"
	"strings"

	"life3d/pkg/sims/life3d"
)

// Overrides collects repeatable key=value flags for life3d.Config.Apply.
type Overrides map[string]string

func (o Overrides) String() string {
	parts := make([]string, 0, len(o))
	for k, v := range o {
		parts = append(parts, k+"="+v)
	}
	sort.Strings(parts)
	return strings.Join(parts, ",")
}

// Set records a single key=value pair.
func (o Overrides) Set(value string) error {
	key, val, ok := strings.Cut(value, "=")
	if !ok || key == "" {
		return fmt.Errorf("override %q is not in key=value form", value)
	}
	o[key] = val
	return nil
}

// BindLife attaches the volume flags shared by every command to fs.
func BindLife(fs *flag.FlagSet, c *life3d.Config) {
	fs.IntVar(&c.Width, "w", c.Width, "volume width")
	fs.IntVar(&c.Height, "h", c.Height, "volume height")
	fs.IntVar(&c.Depth, "d", c.Depth, "volume depth")
	fs.Float64Var(&c.Rate, "rate", c.Rate, "probability a cell starts alive")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the initial population")
}

// BindOverrides registers the repeatable -set flag on fs.
func BindOverrides(fs *flag.FlagSet, o Overrides) {
	fs.Var(o, "set", "volume parameter override in key=value form (repeatable)")
}

// Config represents the command-line parameters for the viewer.
type Config struct {
	Volume    life3d.Config
	Overrides Overrides
	Scale     int
	TPS       int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Volume:    life3d.DefaultConfig(),
		Overrides: Overrides{},
		Scale:     24,
		TPS:       4,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	BindLife(fs, &c.Volume)
	BindOverrides(fs, c.Overrides)
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixels per cell")
	fs.IntVar(&c.TPS, "tps", c.TPS, "generations per second while autoplaying")
}

// Life returns the engine configuration with any -set overrides applied.
func (c *Config) Life() life3d.Config {
	return c.Volume.Apply(c.Overrides)
}
