// Package countdown implements the timer state machine: a remaining-time
// value that decreases by measured wall-clock intervals while running,
// freezes while paused, and pins at zero once expired.
package countdown

import "time"

// State is the lifecycle state of a countdown clock.
type State int

const (
	Running State = iota
	Paused
	Expired
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Paused:
		return "paused"
	case Expired:
		return "expired"
	default:
		return "unknown"
	}
}

// Clock counts a fixed duration down to zero. It is not safe for concurrent
// use; the render loop owns it exclusively.
type Clock struct {
	remaining time.Duration
	state     State
}

// New creates a clock counting down from d. A zero (or negative) duration
// starts in the terminal Expired state.
func New(d time.Duration) *Clock {
	if d <= 0 {
		return &Clock{state: Expired}
	}
	return &Clock{remaining: d, state: Running}
}

// Tick advances the countdown by the wall-clock time elapsed since the
// previous tick. Decrementing by measured elapsed time rather than a fixed
// per-frame amount keeps the countdown accurate under variable frame rates.
// Remaining time clamps at zero; reaching zero transitions to Expired.
// Tick is a no-op while Paused or Expired, and ignores negative elapsed.
func (c *Clock) Tick(elapsed time.Duration) {
	if c.state != Running || elapsed < 0 {
		return
	}
	c.remaining -= elapsed
	if c.remaining <= 0 {
		c.remaining = 0
		c.state = Expired
	}
}

// TogglePause switches between Running and Paused. Expired is terminal, so
// toggling an expired clock does nothing.
func (c *Clock) TogglePause() {
	switch c.state {
	case Running:
		c.state = Paused
	case Paused:
		c.state = Running
	}
}

// Remaining returns the time left on the clock. Never negative.
func (c *Clock) Remaining() time.Duration {
	return c.remaining
}

// State returns the current lifecycle state.
func (c *Clock) State() State {
	return c.state
}
