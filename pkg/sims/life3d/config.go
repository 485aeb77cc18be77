package life3d

import (
	"fmt"
	"strconv"
)

// Config holds parameters for a life3d volume.
type Config struct {
	Width  int
	Height int
	Depth  int
	Rate   float64
	Seed   int64
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: 20, Height: 20, Depth: 20, Rate: 0.5, Seed: 42}
}

// Apply returns c with the flag-style keys w, h, d, rate and seed from cfg
// applied. Malformed or out-of-range values leave the current value in place.
func (c Config) Apply(cfg map[string]string) Config {
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
	if v, ok := cfg["d"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Depth = parsed
		}
	}
	if v, ok := cfg["rate"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Rate = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	return c
}

// Validate reports whether the config describes a constructible volume.
func (c Config) Validate() error {
	if err := checkDimensions(c.Width, c.Height, c.Depth); err != nil {
		return err
	}
	if !(c.Rate >= 0 && c.Rate <= 1) {
		return fmt.Errorf("%w: got %v", ErrInvalidRate, c.Rate)
	}
	return nil
}
