// Package clock abstracts the time source so the render loop can be driven
// deterministically in tests.
package clock

import "time"

// Clock provides the current time.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now()
}

// System is the default wall-clock implementation.
var System Clock = realClock{}

// Mock is a controllable clock for tests. Time only moves when Advance or
// Set is called.
type Mock struct {
	current time.Time
}

// NewMock creates a Mock set to the given time.
func NewMock(t time.Time) *Mock {
	return &Mock{current: t}
}

// Now returns the mock's current time.
func (m *Mock) Now() time.Time {
	return m.current
}

// Advance moves the clock forward by d.
func (m *Mock) Advance(d time.Duration) {
	m.current = m.current.Add(d)
}

// Set moves the clock to a specific time.
func (m *Mock) Set(t time.Time) {
	m.current = t
}
