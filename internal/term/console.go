package term

import (
	"fmt"
	"io"
	"sort"

	"tilelife/internal/core"

	"github.com/logrusorgru/aurora"
)

// Console is a text observer for headless runs. It reports every Nth
// committed generation and prints configuration and summaries as sorted
// key/value blocks.
type Console struct {
	out   io.Writer
	au    aurora.Aurora
	every int

	lastGeneration int
	lastLive       int
}

// NewConsole writes to out, reporting every nth generation. Colours are
// emitted only when color is set.
func NewConsole(out io.Writer, every int, color bool) *Console {
	if every <= 0 {
		every = 10
	}
	return &Console{out: out, au: aurora.NewAurora(color), every: every}
}

// Refresh implements core.Observer.
func (c *Console) Refresh(f core.Frame) {
	live := 0
	for _, a := range f.Cells {
		if a {
			live++
		}
	}
	c.lastGeneration = f.Generation
	c.lastLive = live
	if f.Reset {
		fmt.Fprintf(c.out, "  %s %d live cells\n", c.au.Cyan("board reset:"), live)
		return
	}
	if f.Generation%c.every == 0 {
		fmt.Fprintf(c.out, "  Generation %v: %v live, %v changed\n",
			c.au.Bold(f.Generation), live, len(f.Changes))
	}
}

// Header prints the running configuration.
func (c *Console) Header(p core.ParameterSnapshot) {
	fmt.Fprintln(c.out, c.au.Green("Running configuration:"))
	for _, g := range p.Groups {
		data := make(map[string]interface{}, len(g.Params))
		for _, prm := range g.Params {
			data[prm.Label] = prm.Value
		}
		c.printHashData(data)
	}
}

// Summary prints the final state of a run.
func (c *Console) Summary(extra map[string]interface{}) {
	data := map[string]interface{}{
		"Last generation": c.lastGeneration,
		"Live cells":      c.lastLive,
	}
	for k, v := range extra {
		data[k] = v
	}
	fmt.Fprintln(c.out, c.au.Red("\nFinished:"))
	c.printHashData(data)
}

func (c *Console) printHashData(d map[string]interface{}) {
	propNames := make([]string, 0, len(d))
	for k := range d {
		propNames = append(propNames, k)
	}
	sort.Strings(propNames)
	for _, propName := range propNames {
		fmt.Fprintf(c.out, "  %s: %v\n", propName, d[propName])
	}
}
