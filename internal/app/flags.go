package app

import (
	"flag"
	"fmt"
	"strings"

	"galaxy/internal/galaxy"
)

// Overrides collects repeatable key=value flags.
type Overrides map[string]string

func (o Overrides) String() string {
	parts := make([]string, 0, len(o))
	for k, v := range o {
		parts = append(parts, k+"="+v)
	}
	return strings.Join(parts, ",")
}

// Set parses one key=value pair.
func (o Overrides) Set(value string) error {
	key, val, ok := strings.Cut(value, "=")
	if !ok || key == "" {
		return fmt.Errorf("override %q: want key=value", value)
	}
	o[strings.TrimSpace(key)] = strings.TrimSpace(val)
	return nil
}

// Config represents the command-line parameters for the viewer.
type Config struct {
	Width    int
	Height   int
	TPS      int
	Seed     int64
	HUDWidth int
	Jitter   bool

	Overrides Overrides
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Width:     1280,
		Height:    800,
		TPS:       60,
		Seed:      galaxy.DefaultConfig().Seed,
		HUDWidth:  300,
		Jitter:    true,
		Overrides: Overrides{},
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "initial window width")
	fs.IntVar(&c.Height, "height", c.Height, "initial window height")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for galaxy generation")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "control panel width in pixels (0 hides it)")
	fs.BoolVar(&c.Jitter, "jitter", c.Jitter, "apply the per-particle randomness offset when drawing")
	fs.Var(c.Overrides, "set", "galaxy parameter override in key=value form (repeatable)")
}

// Galaxy builds the generator configuration from the flags.
func (c *Config) Galaxy(pixelRatio float64) galaxy.Config {
	cfg := galaxy.FromMap(c.Overrides)
	if _, ok := c.Overrides["seed"]; !ok {
		cfg.Seed = c.Seed
	}
	if pixelRatio > 0 {
		cfg.PixelRatio = pixelRatio
	}
	return cfg
}
