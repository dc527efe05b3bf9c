package term

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"time"

	"tilelife/internal/core"
	"tilelife/pkg/sims/life"

	"github.com/jroimartin/gocui"
	"github.com/logrusorgru/aurora"
)

type keyBinding struct {
	key     interface{}
	name    string
	descr   string
	handler func(v *gocui.View) error
}

// UI is an interactive terminal host. The simulation is only touched from the
// gocui main loop: key handlers set control flags, and a ticker posts one
// cycle per tick through Gui.Update.
type UI struct {
	sim   *life.Life
	ctrl  core.ControlState
	clock *core.Clock
	tick  time.Duration

	g *gocui.Gui
	k []keyBinding

	liveFiller string
	deadFiller string
	last       life.CycleResult
}

// NewUI creates the terminal UI. tick is the host cycle interval, independent
// of the simulation period.
func NewUI(sim *life.Life, tick time.Duration) (*UI, error) {
	if tick <= 0 {
		tick = 30 * time.Millisecond
	}
	t := &UI{
		sim:        sim,
		clock:      core.NewClock(),
		tick:       tick,
		liveFiller: aurora.Red("█").String(),
		deadFiller: "░",
	}
	g, err := gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		return nil, fmt.Errorf("terminal: %w", err)
	}
	t.g = g
	t.k = []keyBinding{
		{gocui.KeyCtrlC, "^C", "Exit", t.cmdQuit},
		{'r', "R", "Restart", t.cmdRestart},
		{'c', "C", "Clear", t.cmdClear},
		{'p', "P", "Toggle pause", t.cmdPause},
		{'n', "N", "Step", t.cmdStep},
	}
	t.g.SetManagerFunc(t.layout)
	if err := t.initKeyBindings(); err != nil {
		t.g.Close()
		return nil, err
	}
	return t, nil
}

func (t *UI) initKeyBindings() error {
	for _, kb := range t.k {
		h := kb.handler
		if err := t.g.SetKeybinding("", kb.key, gocui.ModNone, func(_ *gocui.Gui, v *gocui.View) error { return h(v) }); err != nil {
			return fmt.Errorf("terminal: binding %s: %w", kb.name, err)
		}
	}
	return nil
}

// Run blocks until the user quits.
func (t *UI) Run() error {
	defer t.g.Close()
	done := make(chan struct{})
	defer close(done)
	go func() {
		ticker := time.NewTicker(t.tick)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				t.g.Update(t.cycle)
			}
		}
	}()
	if err := t.g.MainLoop(); err != nil && !errors.Is(err, gocui.ErrQuit) {
		return err
	}
	return nil
}

func (t *UI) cycle(g *gocui.Gui) error {
	t.last = t.sim.Cycle(t.clock.Tick(), &t.ctrl)
	t.renderField(g)
	t.renderStatus(g)
	return nil
}

func (t *UI) renderField(g *gocui.Gui) {
	v, err := g.View("battlefield")
	if err != nil {
		return
	}
	v.Clear()
	maxW, maxH := v.Size()
	notice := func(s string) string { return aurora.Red(s).BgBlack().String() }
	fmt.Fprint(v, RenderField(t.sim.Cells(), t.sim.Size(), maxW, maxH, t.liveFiller, t.deadFiller, notice))
}

func (t *UI) renderStatus(g *gocui.Gui) {
	v, err := g.View("status")
	if err != nil {
		return
	}
	v.Clear()
	p := t.sim.Parameters()
	gen, _ := p.Lookup("generation")
	live, _ := p.Lookup("live")
	mode := aurora.Colorize("running", aurora.CyanFg).String()
	if t.ctrl.Paused() {
		mode = aurora.Colorize("paused", aurora.BlueFg).String()
	}
	fmt.Fprintln(v, renderProp("Generation", "%v", gen))
	fmt.Fprintln(v, renderProp("Live cells", "%v", live))
	fmt.Fprintln(v, renderProp("Last command", "%v", t.last.Command))
	fmt.Fprintln(v, renderProp("Mode", "%v", mode))
}

func (t *UI) renderConfiguration(g *gocui.Gui) {
	v, err := g.View("configuration")
	if err != nil {
		return
	}
	v.Clear()
	for _, grp := range t.sim.Parameters().Groups {
		if grp.Name == "Status" {
			continue
		}
		for _, prm := range grp.Params {
			fmt.Fprintln(v, renderProp(prm.Label, "%v", prm.Value))
		}
	}
}

func renderProp(name string, valueformat string, values ...interface{}) string {
	return fmt.Sprintf(" "+aurora.Colorize(name, aurora.GreenFg).String()+": "+valueformat, values...)
}

func (t *UI) layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()
	leftColumnWidth := 28
	minWindowHeight := 20

	if maxY < minWindowHeight {
		if err := t.headerLayout(g, maxY, "Terminal height too small"); err != nil {
			return err
		}
		_ = g.DeleteView("configuration")
		_ = g.DeleteView("status")
		_ = g.DeleteView("battlefield")
		return nil
	}
	if err := t.headerLayout(g, 3, "Cellular Automata"); err != nil {
		return err
	}

	if v, err := g.SetView("configuration", 0, 3, leftColumnWidth, 3+(maxY-5-3)/2); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Title = "Configuration"
		t.renderConfiguration(g)
	}
	if v, err := g.SetView("status", 0, 3+(maxY-5-3)/2+1, leftColumnWidth, maxY-5); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Title = "Status"
	}
	t.renderStatus(g)
	if v, err := g.SetView("battlefield", leftColumnWidth+1, 3, maxX-1, maxY-5); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Title = "Simulation"
	}
	t.renderField(g)

	if v, err := g.SetView("help", -1, maxY-5, maxX, maxY-3); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Frame = false
		var b bytes.Buffer
		b.WriteString("KEYBINDINGS: ")
		for i, k := range t.k {
			if i != 0 {
				b.WriteString(", ")
			}
			b.WriteString(aurora.Green(k.name).String())
			b.WriteString(": ")
			b.WriteString(k.descr)
		}
		fmt.Fprintln(v, b.String())
	}
	return nil
}

func (t *UI) headerLayout(g *gocui.Gui, height int, text string) error {
	maxX, _ := g.Size()
	v, err := g.SetView("header", -1, -1, maxX+1, height)
	if err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Frame = false
		v.BgColor = gocui.ColorCyan
		v.FgColor = gocui.ColorBlack
	}
	v.Clear()
	pad := (maxX - len(text)) / 2
	if pad < 0 {
		pad = 0
	}
	fmt.Fprintln(v, strings.Repeat("\n", height/2)+strings.Repeat(" ", pad)+text)
	return nil
}

func (t *UI) cmdQuit(_ *gocui.View) error {
	return gocui.ErrQuit
}

func (t *UI) cmdRestart(_ *gocui.View) error {
	t.ctrl.RequestRestart()
	return nil
}

func (t *UI) cmdClear(_ *gocui.View) error {
	t.ctrl.RequestClear()
	return nil
}

func (t *UI) cmdPause(_ *gocui.View) error {
	t.ctrl.TogglePause()
	return nil
}

func (t *UI) cmdStep(_ *gocui.View) error {
	t.ctrl.RequestStep()
	return nil
}
