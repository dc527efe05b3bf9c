package ui

import (
	"testing"

	"tilelife/internal/core"
)

func TestHitTestFindsButtons(t *testing.T) {
	buttons := layoutButtons(200)
	for _, b := range buttons {
		cx := (b.rect.Min.X + b.rect.Max.X) / 2
		cy := (b.rect.Min.Y + b.rect.Max.Y) / 2
		if got := hitTest(buttons, cx, cy); got != b.action {
			t.Fatalf("click on %q hit %v, want %v", b.label, got, b.action)
		}
	}
	if got := hitTest(buttons, 0, 0); got != ActionNone {
		t.Fatalf("click on padding hit %v", got)
	}
	if got := hitTest(buttons, 100, buttons[0].rect.Max.Y+1); got != ActionNone {
		t.Fatalf("click between buttons hit %v", got)
	}
}

func TestActionsOnlyWriteFlags(t *testing.T) {
	var c core.ControlState
	ActionRestart.Apply(&c)
	ActionClear.Apply(&c)
	ActionTogglePause.Apply(&c)
	ActionNone.Apply(&c)
	if !c.RestartRequested() || !c.ClearRequested() || !c.Paused() {
		t.Fatal("expected restart, clear and pause to be set")
	}
	ActionStep.Apply(&c)
	if !c.TakeStep() {
		t.Fatal("expected step request")
	}
	ActionTogglePause.Apply(&c)
	if c.Paused() {
		t.Fatal("second toggle should resume")
	}
}
