//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"tilelife/internal/app"
	"tilelife/pkg/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	sim, err := life.New(cfg.Life)
	if err != nil {
		log.Fatalf("life: %v", err)
	}
	log.Printf("life %dx%d, period %v", cfg.Life.Width, cfg.Life.Height, cfg.Life.Period)

	game := app.New(sim, cfg.Tile, cfg.Panel)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("Cellular Automata")
	ebiten.SetWindowSize(max(w, 1280), max(h, 720))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
