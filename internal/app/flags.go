package app

import (
	"flag"

	"tilelife/pkg/sims/life"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Life  life.Config
	Tile  int
	Panel int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Life: life.DefaultConfig(), Tile: 16, Panel: 180}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Life.Width, "w", c.Life.Width, "grid width in cells")
	fs.IntVar(&c.Life.Height, "h", c.Life.Height, "grid height in cells")
	fs.DurationVar(&c.Life.Period, "period", c.Life.Period, "simulated time between generations")
	fs.Int64Var(&c.Life.Seed, "seed", c.Life.Seed, "seed for the first board (0 = time based)")
	fs.BoolVar(&c.Life.Wrap, "wrap", c.Life.Wrap, "wrap neighbours around the edges")
	fs.IntVar(&c.Life.MaxCatchUp, "catchup", c.Life.MaxCatchUp, "max generations per frame (0 = unlimited)")
	fs.StringVar(&c.Life.Pattern, "pattern", c.Life.Pattern, "seed a named pattern instead of a random board")
	fs.Func("cfg", "comma separated key=value overrides (w, h, period, seed, wrap, max_catchup, pattern)", func(v string) error {
		kv, err := life.ParseOverrides(v)
		if err != nil {
			return err
		}
		c.Life = c.Life.Override(kv)
		return nil
	})
	fs.IntVar(&c.Tile, "tile", c.Tile, "pixels per cell")
	fs.IntVar(&c.Panel, "panel", c.Panel, "control panel width in pixels")
}
