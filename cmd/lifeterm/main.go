package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"tilelife/internal/patterns"
	"tilelife/internal/term"
	"tilelife/pkg/sims/life"

	"github.com/integrii/flaggy"
)

type envOptions struct {
	interactive bool
	steps       int
	every       int
	mono        bool
}

func main() {
	eo, cfg := initOptions()

	sim, err := life.New(cfg)
	if err != nil {
		flaggy.ShowHelpAndExit(err.Error())
	}

	if eo.interactive {
		ui, err := term.NewUI(sim, 0)
		if err != nil {
			log.Fatal(err)
		}
		if err := ui.Run(); err != nil {
			log.Fatal(err)
		}
		return
	}

	console := term.NewConsole(os.Stdout, eo.every, !eo.mono)
	console.Header(sim.Parameters())
	sim.Subscribe(console)
	fmt.Println("\nSimulation started...")
	res := term.RunHeadless(sim, eo.steps, cfg.Period)
	console.Summary(map[string]interface{}{
		"Cycles":     res.Cycles,
		"Settled":    res.Settled,
		"Total time": res.Elapsed,
	})
}

func initOptions() (*envOptions, life.Config) {
	cfg := life.DefaultConfig()
	eo := &envOptions{steps: 1000, every: 10}

	flaggy.SetName("lifeterm")
	flaggy.SetDescription("Conway's Game of Life in the terminal")
	flaggy.DefaultParser.ShowHelpOnUnexpected = true
	flaggy.Int(&cfg.Width, "x", "width", "Width of the grid")
	flaggy.Int(&cfg.Height, "y", "height", "Height of the grid")
	flaggy.Duration(&cfg.Period, "i", "interval", "Time between generations, for example 250ms")
	flaggy.Int64(&cfg.Seed, "", "seed", "Seed for the first board (0 = time based)")
	flaggy.Bool(&cfg.Wrap, "w", "wrap", "Wrap neighbours around the edges")
	flaggy.Int(&cfg.MaxCatchUp, "", "catchup", "Max generations per cycle (0 = unlimited)")
	flaggy.String(&cfg.Pattern, "p", "pattern", "Seed pattern ["+strings.Join(patterns.Names(), "|")+"]")
	flaggy.DefaultParser.AdditionalHelpAppend = "\nPatterns:\n  " + strings.ReplaceAll(patterns.Usage(), "\n", "\n  ")
	flaggy.Bool(&eo.interactive, "n", "interactive", "Start interactive mode")
	flaggy.Int(&eo.steps, "s", "steps", "Headless mode: max cycles (stops early when settled)")
	flaggy.Int(&eo.every, "e", "every", "Headless mode: report every Nth generation")
	flaggy.Bool(&eo.mono, "m", "mono", "Headless mode: disable colours")
	flaggy.Parse()

	if err := cfg.Validate(); err != nil {
		flaggy.ShowHelpAndExit(err.Error())
	}
	return eo, cfg
}
