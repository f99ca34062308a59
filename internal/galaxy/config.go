package galaxy

import (
	"fmt"
	"strconv"

	"github.com/lucasb-eyer/go-colorful"
)

// Params holds the tunable shape and color of the galaxy.
type Params struct {
	Count           int
	Radius          float64
	Branches        int
	Randomness      float64
	RandomnessPower float64
	InsideColor     colorful.Color
	OutsideColor    colorful.Color
}

// Config bundles the generation parameters with the seed and display inputs.
type Config struct {
	Seed int64

	// PixelRatio multiplies BaseSize for the size uniform.
	PixelRatio float64

	Params Params
}

// BaseSize is the point size before the pixel ratio is applied.
const BaseSize = 30

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Seed:       1337,
		PixelRatio: 1,
		Params: Params{
			Count:           100000,
			Radius:          5,
			Branches:        3,
			Randomness:      0.2,
			RandomnessPower: 3,
			InsideColor:     mustHex("#ff6030"),
			OutsideColor:    mustHex("#1b3984"),
		},
	}
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// ParseColor parses a "#rrggbb" or "#rgb" string.
func ParseColor(s string) (colorful.Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	return c, nil
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Unparseable values leave the default in place.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	c.Apply(cfg)
	return c
}

// Apply overrides fields of c from a string map.
func (c *Config) Apply(cfg map[string]string) {
	if cfg == nil {
		return
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["pixel_ratio"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.PixelRatio = parsed
		}
	}
	if v, ok := cfg[KeyCount]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.Count = parsed
		}
	}
	if v, ok := cfg[KeyRadius]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Params.Radius = parsed
		}
	}
	if v, ok := cfg[KeyBranches]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 1 {
			c.Params.Branches = parsed
		}
	}
	if v, ok := cfg[KeyRandomness]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Params.Randomness = parsed
		}
	}
	if v, ok := cfg[KeyRandomnessPower]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Params.RandomnessPower = parsed
		}
	}
	if v, ok := cfg[KeyInsideColor]; ok {
		if parsed, err := ParseColor(v); err == nil {
			c.Params.InsideColor = parsed
		}
	}
	if v, ok := cfg[KeyOutsideColor]; ok {
		if parsed, err := ParseColor(v); err == nil {
			c.Params.OutsideColor = parsed
		}
	}
}
