package term

import (
	"time"

	"tilelife/internal/core"
	"tilelife/pkg/sims/life"
)

// RunResult summarizes a headless run.
type RunResult struct {
	Cycles     int
	Generation int
	// Settled is set when the board died out or a step changed nothing.
	Settled bool
	Elapsed time.Duration
}

// RunHeadless drives up to cycles host cycles of delta each, stopping early
// once the board settles.
func RunHeadless(sim *life.Life, cycles int, delta time.Duration) RunResult {
	settled := false
	sim.Subscribe(core.ObserverFunc(func(f core.Frame) {
		if f.Reset {
			return
		}
		if len(f.Changes) == 0 {
			settled = true
		}
	}))

	var ctrl core.ControlState
	start := time.Now()
	res := RunResult{}
	for res.Cycles < cycles && !settled {
		r := sim.Cycle(delta, &ctrl)
		res.Cycles++
		res.Generation = r.Generation
	}
	res.Settled = settled
	res.Elapsed = time.Since(start)
	return res
}
