package life

import (
	"strconv"
	"time"

	"tilelife/internal/core"
	"tilelife/internal/patterns"
)

// Life runs Conway's Game of Life on a fixed-size grid, stepping on a fixed
// period and applying GUI commands at the start of every cycle.
type Life struct {
	cfg Config

	grid    *core.Grid
	nb      core.Neighborhood
	sched   *core.Scheduler
	gateway *core.Gateway

	observers  []core.Observer
	generation int
	seed       int64
}

// CycleResult summarizes one host cycle.
type CycleResult struct {
	Command    core.Command
	Steps      int
	Generation int
	Paused     bool
}

// New builds a simulation from cfg and seeds its first board.
func New(cfg Config) (*Life, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	grid, err := core.NewGrid(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}
	l := &Life{
		cfg:     cfg,
		grid:    grid,
		nb:      core.Neighborhood{Size: grid.Size(), Wrap: cfg.Wrap},
		sched:   core.NewScheduler(cfg.Period, cfg.MaxCatchUp),
		gateway: core.NewGateway(),
	}
	l.SetSeedSource(l.gateway.Seed)
	if cfg.Pattern != "" {
		l.seed = cfg.Seed
		p, _ := patterns.Lookup(cfg.Pattern)
		if err := patterns.PlaceCentered(grid, p); err != nil {
			return nil, err
		}
		return l, nil
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	l.Reset(seed)
	return l, nil
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return l.grid.Size() }

// Cells exposes the committed generation.
func (l *Life) Cells() []bool { return l.grid.Cells() }

// Grid exposes the underlying board for seeding and inspection.
func (l *Life) Grid() *core.Grid { return l.grid }

// Generation returns the number of steps since the last restart or clear.
func (l *Life) Generation() int { return l.generation }

// Scheduler exposes the step timer.
func (l *Life) Scheduler() *core.Scheduler { return l.sched }

// SetSeedSource replaces the source of restart seeds.
func (l *Life) SetSeedSource(fn func() int64) {
	l.gateway.Seed = func() int64 {
		l.seed = fn()
		return l.seed
	}
}

// Subscribe registers an observer for committed generations.
func (l *Life) Subscribe(o core.Observer) {
	if o == nil {
		return
	}
	l.observers = append(l.observers, o)
}

// Reset randomizes the board using the provided seed.
func (l *Life) Reset(seed int64) {
	l.seed = seed
	l.grid.Randomize(seed)
	l.generation = 0
	l.notifyReset()
}

// Clear kills every cell.
func (l *Life) Clear() {
	l.grid.Clear()
	l.generation = 0
	l.notifyReset()
}

// Cycle runs one host cycle: pending commands first, then as many steps as
// the scheduler releases for delta. A single-step request runs one step when
// the scheduler released none.
func (l *Life) Cycle(delta time.Duration, ctrl *core.ControlState) CycleResult {
	cmd := l.gateway.Apply(l.grid, ctrl)
	if cmd != core.CommandNone {
		l.generation = 0
		l.notifyReset()
	}

	steps := l.sched.Advance(delta, ctrl.Paused())
	if ctrl.TakeStep() && steps == 0 {
		steps = 1
	}
	for i := 0; i < steps; i++ {
		l.Step()
	}
	return CycleResult{Command: cmd, Steps: steps, Generation: l.generation, Paused: ctrl.Paused()}
}

// Step advances the simulation by one generation.
func (l *Life) Step() {
	l.step(nil)
}

// step evaluates cells in the given index order, or row-major when order is
// nil, then commits. Results do not depend on the order.
func (l *Life) step(order []int) {
	l.grid.BeginComputation()
	if order == nil {
		for i := range l.grid.Cells() {
			core.EvaluateCell(l.grid, l.nb, i)
		}
	} else {
		for _, i := range order {
			core.EvaluateCell(l.grid, l.nb, i)
		}
	}
	changes := l.grid.Commit()
	l.generation++
	l.notify(core.Frame{
		Generation: l.generation,
		Size:       l.grid.Size(),
		Cells:      l.grid.Cells(),
		Changes:    changes,
	})
}

func (l *Life) notifyReset() {
	l.notify(core.Frame{
		Generation: l.generation,
		Size:       l.grid.Size(),
		Reset:      true,
		Cells:      l.grid.Cells(),
	})
}

func (l *Life) notify(f core.Frame) {
	for _, o := range l.observers {
		o.Refresh(f)
	}
}

// Parameters reports the running configuration and live statistics.
func (l *Life) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("w", "Width", l.cfg.Width),
				intParam("h", "Height", l.cfg.Height),
				{Key: "wrap", Label: "Wrap edges", Type: core.ParamTypeBool, Value: strconv.FormatBool(l.cfg.Wrap)},
				{Key: "seed", Label: "Seed", Type: core.ParamTypeInt, Value: strconv.FormatInt(l.seed, 10)},
			},
		},
		{
			Name: "Timing",
			Params: []core.Parameter{
				{Key: "period", Label: "Period", Type: core.ParamTypeDuration, Value: l.sched.Period().String()},
				intParam("max_catchup", "Max catch-up", l.cfg.MaxCatchUp),
			},
		},
		{
			Name: "Status",
			Params: []core.Parameter{
				intParam("generation", "Generation", l.generation),
				intParam("live", "Live cells", l.grid.LiveCount()),
			},
		},
	}}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}
