package core

import "time"

// DefaultPeriod is the simulated time between generations.
const DefaultPeriod = 250 * time.Millisecond

// Scheduler accumulates elapsed time and decides how many steps are due.
type Scheduler struct {
	period      time.Duration
	accumulator time.Duration
	maxCatchUp  int
}

// NewScheduler constructs a Scheduler firing once per period. A non-positive
// period falls back to DefaultPeriod. maxCatchUp caps the steps released by a
// single Advance; zero means no cap.
func NewScheduler(period time.Duration, maxCatchUp int) *Scheduler {
	s := &Scheduler{}
	s.SetPeriod(period)
	if maxCatchUp > 0 {
		s.maxCatchUp = maxCatchUp
	}
	return s
}

// SetPeriod changes the step period. It is safe to call from the main loop.
func (s *Scheduler) SetPeriod(period time.Duration) {
	if period <= 0 {
		period = DefaultPeriod
	}
	s.period = period
}

// Period returns the configured step period.
func (s *Scheduler) Period() time.Duration { return s.period }

// Accumulated returns the time banked towards the next step.
func (s *Scheduler) Accumulated() time.Duration { return s.accumulator }

// Advance banks delta and returns how many steps are due. While paused nothing
// is banked and no step is released. When the catch-up cap is reached the
// remaining backlog is dropped to below one period.
func (s *Scheduler) Advance(delta time.Duration, paused bool) int {
	if paused || delta <= 0 {
		return 0
	}
	s.accumulator += delta
	steps := 0
	for s.accumulator >= s.period {
		s.accumulator -= s.period
		steps++
		if s.maxCatchUp > 0 && steps == s.maxCatchUp {
			s.accumulator %= s.period
			break
		}
	}
	return steps
}

// Clock measures wall time between successive host cycles.
type Clock struct {
	now  func() time.Time
	last time.Time
}

// NewClock returns a Clock backed by time.Now.
func NewClock() *Clock { return &Clock{now: time.Now} }

// Tick returns the time since the previous Tick. The first call returns zero.
func (c *Clock) Tick() time.Duration {
	now := c.now()
	if c.last.IsZero() {
		c.last = now
	}
	delta := now.Sub(c.last)
	c.last = now
	return delta
}
