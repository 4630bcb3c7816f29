// Package clock abstracts time.Now so the menu bar clock and double-click
// detection can be driven by a fixed time in tests.
package clock

import "time"

// Clock is an interface for time operations
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock implements Clock using the system time
type RealClock struct{}

// Now returns the current time from the system clock
func (RealClock) Now() time.Time {
	return time.Now()
}

// Ensure RealClock implements Clock.
var _ Clock = RealClock{}

// Manual is a Clock that only moves when told to
type Manual struct {
	T time.Time
}

// Now returns the manual time
func (m *Manual) Now() time.Time {
	return m.T
}

// Advance moves the clock forward
func (m *Manual) Advance(d time.Duration) {
	m.T = m.T.Add(d)
}
