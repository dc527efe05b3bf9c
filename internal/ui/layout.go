package ui

import (
	"image"

	"tilelife/internal/core"
)

// Action is what a panel button asks the simulation to do.
type Action int

const (
	ActionNone Action = iota
	ActionRestart
	ActionClear
	ActionTogglePause
	ActionStep
)

// Apply writes the action into the control flags. Panels never touch the grid.
func (a Action) Apply(c *core.ControlState) {
	switch a {
	case ActionRestart:
		c.RequestRestart()
	case ActionClear:
		c.RequestClear()
	case ActionTogglePause:
		c.TogglePause()
	case ActionStep:
		c.RequestStep()
	}
}

type button struct {
	label  string
	action Action
	rect   image.Rectangle
}

// layoutButtons stacks one button per action under the panel title.
func layoutButtons(width int) []button {
	defs := []struct {
		label  string
		action Action
	}{
		{"Restart", ActionRestart},
		{"Clear", ActionClear},
		{"Toggle Pause", ActionTogglePause},
		{"Step", ActionStep},
	}
	buttons := make([]button, len(defs))
	for i, d := range defs {
		top := controlsTop + i*lineHeight
		buttons[i] = button{
			label:  d.label,
			action: d.action,
			rect:   image.Rect(panelPadding, top, width-panelPadding, top+buttonHeight),
		}
	}
	return buttons
}

// hitTest returns the action under panel-local point (x, y).
func hitTest(buttons []button, x, y int) Action {
	for _, b := range buttons {
		if pointInRect(x, y, b.rect) {
			return b.action
		}
	}
	return ActionNone
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}

const (
	panelPadding   = 12
	lineHeight     = 34
	buttonHeight   = 26
	headerBaseline = 18
	controlsTop    = panelPadding + headerBaseline + 14
)
