package life

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"tilelife/internal/core"
	"tilelife/internal/patterns"
)

// Config controls the board and the step timer.
type Config struct {
	Width  int
	Height int
	Period time.Duration

	// Seed drives the initial board. Zero picks a time-based seed.
	Seed int64
	// Wrap switches neighbour lookup to toroidal edges.
	Wrap bool
	// MaxCatchUp caps steps per cycle; zero lets the scheduler catch up fully.
	MaxCatchUp int
	// Pattern, when set, seeds the named pattern instead of a random board.
	Pattern string
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:  32,
		Height: 32,
		Period: core.DefaultPeriod,
	}
}

// Override returns c with the entries of cfg applied on top. Keys are w, h,
// period, seed, wrap, max_catchup and pattern; unparsable values are ignored.
func (c Config) Override(cfg map[string]string) Config {
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
	if v, ok := cfg["period"]; ok {
		if parsed, err := time.ParseDuration(v); err == nil && parsed > 0 {
			c.Period = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["wrap"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Wrap = parsed
		}
	}
	if v, ok := cfg["max_catchup"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.MaxCatchUp = parsed
		}
	}
	if v, ok := cfg["pattern"]; ok {
		c.Pattern = v
	}
	return c
}

// ParseOverrides splits a comma separated key=value list, for example
// "w=64,period=100ms", into a map suitable for Override.
func ParseOverrides(s string) (map[string]string, error) {
	out := map[string]string{}
	for _, pair := range strings.Split(s, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		k, v, ok := strings.Cut(pair, "=")
		if !ok || k == "" {
			return nil, fmt.Errorf("override %q: want key=value", pair)
		}
		out[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}
	return out, nil
}

// Validate reports configuration that cannot produce a board.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("size %dx%d: %w", c.Width, c.Height, core.ErrInvalidSize)
	}
	if c.Period <= 0 {
		return fmt.Errorf("period %v must be positive", c.Period)
	}
	if c.MaxCatchUp < 0 {
		return fmt.Errorf("max catch-up %d must not be negative", c.MaxCatchUp)
	}
	if c.Pattern != "" {
		if _, ok := patterns.Lookup(c.Pattern); !ok {
			return fmt.Errorf("unknown pattern %q (have %v)", c.Pattern, patterns.Names())
		}
	}
	return nil
}
