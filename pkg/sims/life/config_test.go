package life

import (
	"errors"
	"testing"
	"time"

	"tilelife/internal/core"
)

func TestOverrideReplacesFields(t *testing.T) {
	c := DefaultConfig().Override(map[string]string{
		"w":           "64",
		"h":           "48",
		"period":      "100ms",
		"seed":        "12",
		"wrap":        "true",
		"max_catchup": "3",
		"pattern":     "toad",
	})
	if c.Width != 64 || c.Height != 48 {
		t.Fatalf("size=%dx%d want 64x48", c.Width, c.Height)
	}
	if c.Period != 100*time.Millisecond || c.Seed != 12 || !c.Wrap || c.MaxCatchUp != 3 || c.Pattern != "toad" {
		t.Fatalf("unexpected config %+v", c)
	}
	if err := c.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestOverrideIgnoresGarbage(t *testing.T) {
	c := DefaultConfig().Override(map[string]string{"w": "-3", "h": "x", "period": "soon", "max_catchup": "-1"})
	if c != DefaultConfig() {
		t.Fatalf("garbage should leave defaults, got %+v", c)
	}
}

func TestOverrideKeepsUnsetFields(t *testing.T) {
	base := DefaultConfig()
	base.Width, base.Seed = 80, 9
	c := base.Override(map[string]string{"h": "20"})
	if c.Width != 80 || c.Seed != 9 || c.Height != 20 {
		t.Fatalf("unexpected config %+v", c)
	}
}

func TestParseOverrides(t *testing.T) {
	kv, err := ParseOverrides(" w=64, period=100ms,,wrap=true ")
	if err != nil {
		t.Fatal(err)
	}
	if len(kv) != 3 || kv["w"] != "64" || kv["period"] != "100ms" || kv["wrap"] != "true" {
		t.Fatalf("unexpected pairs %v", kv)
	}
	if _, err := ParseOverrides("w=1,oops"); err == nil {
		t.Fatal("expected error for a pair without '='")
	}
}

func TestValidate(t *testing.T) {
	c := DefaultConfig()
	c.Width = 0
	if err := c.Validate(); !errors.Is(err, core.ErrInvalidSize) {
		t.Fatalf("expected ErrInvalidSize, got %v", err)
	}
	if _, err := New(c); err == nil {
		t.Fatal("New must fail fast on a degenerate grid")
	}

	c = DefaultConfig()
	c.Pattern = "no-such-thing"
	if err := c.Validate(); err == nil {
		t.Fatal("expected unknown pattern error")
	}

	c = DefaultConfig()
	c.Period = 0
	if err := c.Validate(); err == nil {
		t.Fatal("expected period error")
	}
}
