//go:build ebiten

package app

import (
	"tilelife/internal/core"
	"tilelife/internal/render"
	"tilelife/internal/ui"
	"tilelife/pkg/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const minPanelHeight = 260

// Game adapts a Life simulation to the ebiten.Game interface. Every Update is
// one simulation cycle.
type Game struct {
	sim   *life.Life
	ctrl  core.ControlState
	clock *core.Clock

	tracker *render.Tracker
	painter *render.GridPainter
	panel   *ui.Panel
	palette render.Palette

	tile       int
	panelWidth int
}

// New constructs a Game for the provided simulation.
func New(sim *life.Life, tile, panelWidth int) *Game {
	tracker := render.NewTracker(sim.Size(), render.DefaultPalette)
	tracker.Sync(sim.Cells())
	sim.Subscribe(tracker)
	return &Game{
		sim:        sim,
		clock:      core.NewClock(),
		tracker:    tracker,
		painter:    render.NewGridPainter(tracker),
		panel:      ui.NewPanel(sim, panelWidth),
		palette:    render.DefaultPalette,
		tile:       tile,
		panelWidth: panelWidth,
	}
}

// Update maps input to control flags and runs one cycle.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.ctrl.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.ctrl.RequestRestart()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.ctrl.RequestClear()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.ctrl.RequestStep()
	}

	boardW, _ := g.painter.Bounds(g.tile)
	g.panel.Update(boardW, &g.ctrl)

	g.sim.Cycle(g.clock.Tick(), &g.ctrl)
	return nil
}

// Draw renders the last committed generation and the control panel.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.palette.Background)
	g.painter.Draw(screen, 0, 0, g.tile)
	_, h := g.Layout(0, 0)
	g.panel.Draw(screen, h)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.painter.Bounds(g.tile)
	if h < minPanelHeight {
		h = minPanelHeight
	}
	return w + g.panelWidth, h
}
