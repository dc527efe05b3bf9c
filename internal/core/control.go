package core

import "time"

// ControlState is the command surface shared with the GUI. Restart, clear and
// step requests are one-shot and consumed by the simulation within the cycle
// that observes them; pause persists until toggled again.
type ControlState struct {
	restartRequested bool
	clearRequested   bool
	stepRequested    bool
	paused           bool
}

// RequestRestart asks for a fresh random board on the next cycle.
func (c *ControlState) RequestRestart() { c.restartRequested = true }

// RequestClear asks for an empty board on the next cycle.
func (c *ControlState) RequestClear() { c.clearRequested = true }

// RequestStep asks for exactly one generation on the next cycle, even while paused.
func (c *ControlState) RequestStep() { c.stepRequested = true }

// TogglePause flips between running and paused.
func (c *ControlState) TogglePause() { c.paused = !c.paused }

// Paused reports whether the scheduler is frozen.
func (c *ControlState) Paused() bool { return c.paused }

// RestartRequested reports a pending restart.
func (c *ControlState) RestartRequested() bool { return c.restartRequested }

// ClearRequested reports a pending clear.
func (c *ControlState) ClearRequested() bool { return c.clearRequested }

// TakeStep consumes a pending single-step request.
func (c *ControlState) TakeStep() bool {
	s := c.stepRequested
	c.stepRequested = false
	return s
}

// Command identifies what the gateway did in a cycle.
type Command int

const (
	// CommandNone means no one-shot request was pending.
	CommandNone Command = iota
	// CommandRestart means the board was re-randomized.
	CommandRestart
	// CommandClear means every cell was killed.
	CommandClear
)

func (c Command) String() string {
	switch c {
	case CommandRestart:
		return "restart"
	case CommandClear:
		return "clear"
	default:
		return "none"
	}
}

// Gateway applies pending restart/clear requests to a grid.
type Gateway struct {
	// Seed yields the seed for each restart.
	Seed func() int64
}

// NewGateway returns a Gateway seeding restarts from the wall clock.
func NewGateway() *Gateway {
	return &Gateway{Seed: func() int64 { return time.Now().UnixNano() }}
}

// Apply consumes at most one one-shot request. Restart wins over clear; a
// clear requested alongside it stays pending for the following cycle. Pause
// is not touched.
func (gw *Gateway) Apply(g *Grid, c *ControlState) Command {
	switch {
	case c.restartRequested:
		g.Randomize(gw.Seed())
		c.restartRequested = false
		return CommandRestart
	case c.clearRequested:
		g.Clear()
		c.clearRequested = false
		return CommandClear
	}
	return CommandNone
}
