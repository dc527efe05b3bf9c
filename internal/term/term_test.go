package term

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"tilelife/internal/core"
	"tilelife/pkg/sims/life"
)

func TestRenderFieldFits(t *testing.T) {
	cells := []bool{
		true, false, false,
		false, true, false,
	}
	got := RenderField(cells, core.Size{W: 3, H: 2}, 10, 10, "#", ".", nil)
	if want := "#..\n.#."; got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestRenderFieldCropsWithNotice(t *testing.T) {
	cells := make([]bool, 5*4)
	cells[0] = true
	got := RenderField(cells, core.Size{W: 5, H: 4}, 3, 3, "#", ".", func(s string) string { return "!" + s })
	lines := strings.Split(got, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d: %q", len(lines), got)
	}
	if lines[0] != "#.." || lines[1] != "..." {
		t.Fatalf("unexpected rows %q", lines[:2])
	}
	if lines[2] != "!"+overflowNotice {
		t.Fatalf("last line %q should carry the notice", lines[2])
	}
}

func TestRenderFieldRejectsMismatchedCells(t *testing.T) {
	if got := RenderField(make([]bool, 3), core.Size{W: 2, H: 2}, 5, 5, "#", ".", nil); got != "" {
		t.Fatalf("expected empty output, got %q", got)
	}
}

func TestConsoleReportsEveryNth(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf, 2, false)
	size := core.Size{W: 2, H: 1}
	c.Refresh(core.Frame{Generation: 1, Size: size, Cells: []bool{true, false}})
	c.Refresh(core.Frame{Generation: 2, Size: size, Cells: []bool{true, true}, Changes: []core.CellChange{{X: 1, Alive: true}}})

	out := buf.String()
	if strings.Contains(out, "Generation 1:") {
		t.Fatalf("generation 1 should be skipped: %q", out)
	}
	if !strings.Contains(out, "Generation 2: 2 live, 1 changed") {
		t.Fatalf("missing generation 2 line: %q", out)
	}

	buf.Reset()
	c.Summary(map[string]interface{}{"Cycles": 7})
	if want := "  Cycles: 7\n  Last generation: 2\n  Live cells: 2\n"; !strings.HasSuffix(buf.String(), want) {
		t.Fatalf("summary %q should end with sorted %q", buf.String(), want)
	}
}

func TestConsoleHeaderSortsEachGroup(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf, 1, false)
	c.Header(core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{Name: "World", Params: []core.Parameter{
			{Key: "w", Label: "Width", Value: "8"},
			{Key: "h", Label: "Height", Value: "4"},
		}},
		{Name: "Timing", Params: []core.Parameter{
			{Key: "period", Label: "Period", Value: "250ms"},
		}},
	}})
	want := "Running configuration:\n  Height: 4\n  Width: 8\n  Period: 250ms\n"
	if got := buf.String(); got != want {
		t.Fatalf("header %q want %q", got, want)
	}
}

func TestRunHeadlessStopsWhenSettled(t *testing.T) {
	cfg := life.DefaultConfig()
	cfg.Width, cfg.Height = 6, 6
	cfg.Pattern = "block"
	sim, err := life.New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	res := RunHeadless(sim, 50, cfg.Period)
	if !res.Settled || res.Cycles != 1 || res.Generation != 1 {
		t.Fatalf("still life should settle after one step, got %+v", res)
	}
}

func TestRunHeadlessRunsOscillator(t *testing.T) {
	cfg := life.DefaultConfig()
	cfg.Width, cfg.Height = 7, 7
	cfg.Pattern = "blinker"
	sim, err := life.New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	res := RunHeadless(sim, 12, cfg.Period+time.Millisecond)
	if res.Settled || res.Cycles != 12 || res.Generation != 12 {
		t.Fatalf("blinker should run all cycles, got %+v", res)
	}
}
