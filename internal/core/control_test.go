package core

import "testing"

func fixedSeed(seed int64) *Gateway {
	return &Gateway{Seed: func() int64 { return seed }}
}

func TestGatewayRestartConsumesFlag(t *testing.T) {
	g, _ := NewGrid(8, 8)
	var c ControlState
	c.RequestRestart()

	if cmd := fixedSeed(5).Apply(g, &c); cmd != CommandRestart {
		t.Fatalf("cmd=%v want restart", cmd)
	}
	if c.RestartRequested() {
		t.Fatal("restart flag must be consumed")
	}
	if g.LiveCount() == 0 {
		t.Fatal("restart should populate the grid")
	}
	if cmd := fixedSeed(5).Apply(g, &c); cmd != CommandNone {
		t.Fatalf("second Apply ran %v, expected nothing", cmd)
	}
}

func TestGatewayClearConsumesFlag(t *testing.T) {
	g, _ := NewGrid(8, 8)
	g.Randomize(1)
	var c ControlState
	c.RequestClear()

	if cmd := fixedSeed(0).Apply(g, &c); cmd != CommandClear {
		t.Fatalf("cmd=%v want clear", cmd)
	}
	if c.ClearRequested() {
		t.Fatal("clear flag must be consumed")
	}
	if g.LiveCount() != 0 {
		t.Fatal("grid must be empty after clear")
	}
}

func TestGatewayRestartBeatsClear(t *testing.T) {
	g, _ := NewGrid(8, 8)
	var c ControlState
	c.RequestRestart()
	c.RequestClear()
	gw := fixedSeed(9)

	if cmd := gw.Apply(g, &c); cmd != CommandRestart {
		t.Fatalf("first cycle ran %v, want restart", cmd)
	}
	if !c.ClearRequested() {
		t.Fatal("clear should remain pending behind the restart")
	}
	if cmd := gw.Apply(g, &c); cmd != CommandClear {
		t.Fatalf("second cycle ran %v, want clear", cmd)
	}
}

func TestGatewayIgnoresPause(t *testing.T) {
	g, _ := NewGrid(4, 4)
	var c ControlState
	c.TogglePause()
	c.RequestClear()
	fixedSeed(0).Apply(g, &c)
	if !c.Paused() {
		t.Fatal("gateway must not reset pause")
	}
	c.TogglePause()
	if c.Paused() {
		t.Fatal("toggle should resume")
	}
}

func TestTakeStepIsOneShot(t *testing.T) {
	var c ControlState
	c.RequestStep()
	if !c.TakeStep() {
		t.Fatal("expected pending step")
	}
	if c.TakeStep() {
		t.Fatal("step request must be consumed")
	}
}
