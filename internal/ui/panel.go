//go:build ebiten

package ui

import (
	"fmt"
	"image"
	"image/color"

	"tilelife/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

type parameterProvider interface {
	Parameters() core.ParameterSnapshot
}

// Panel is the "Simulator Controls" window drawn beside the board. Clicking a
// button only sets control flags; the simulation applies them next cycle.
type Panel struct {
	params  parameterProvider
	width   int
	panel   *ebiten.Image
	pixel   *ebiten.Image
	buttons []button

	offsetX  int
	paused   bool
	snapshot core.ParameterSnapshot
}

// NewPanel constructs a panel of the given width reading status from params.
func NewPanel(params parameterProvider, width int) *Panel {
	if width < 0 {
		width = 0
	}
	p := &Panel{params: params, width: width, buttons: layoutButtons(width)}
	p.pixel = ebiten.NewImage(1, 1)
	p.pixel.Fill(color.White)
	return p
}

// Update handles clicks and refreshes the status snapshot.
func (p *Panel) Update(offsetX int, ctrl *core.ControlState) {
	if p == nil {
		return
	}
	p.offsetX = offsetX
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		if mx >= offsetX {
			hitTest(p.buttons, mx-offsetX, my).Apply(ctrl)
		}
	}
	p.paused = ctrl.Paused()
	if p.params != nil {
		p.snapshot = p.params.Parameters()
	}
}

// Draw paints the panel anchored at the current offset.
func (p *Panel) Draw(screen *ebiten.Image, height int) {
	if p == nil || p.width <= 0 || height <= 0 {
		return
	}
	if p.panel == nil || p.panel.Bounds().Dy() != height {
		p.panel = ebiten.NewImage(p.width, height)
	}
	p.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})

	face := basicfont.Face7x13
	text.Draw(p.panel, "Simulator Controls", face, panelPadding, panelPadding+headerBaseline, color.RGBA{R: 200, G: 200, B: 210, A: 255})
	for _, b := range p.buttons {
		label := b.label
		if b.action == ActionTogglePause && p.paused {
			label = "Resume"
		}
		p.drawButton(b.rect, label)
	}

	y := controlsTop + len(p.buttons)*lineHeight + headerBaseline
	for _, key := range []string{"generation", "live", "period"} {
		if v, ok := p.snapshot.Lookup(key); ok {
			text.Draw(p.panel, fmt.Sprintf("%s: %s", key, v), face, panelPadding, y, color.RGBA{R: 160, G: 160, B: 170, A: 255})
			y += headerBaseline
		}
	}
	if p.paused {
		text.Draw(p.panel, "PAUSED", face, panelPadding, y+headerBaseline, color.RGBA{R: 187, G: 68, B: 48, A: 255})
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(p.offsetX), 0)
	screen.DrawImage(p.panel, op)
}

func (p *Panel) drawButton(rect image.Rectangle, label string) {
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(bg)
	p.panel.DrawImage(p.pixel, op)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(p.panel, label, face, x, y, fg)
}
