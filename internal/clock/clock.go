// Package clock centralizes wall-clock access so that every "today" window in
// the system comes from a single injectable source. Services receive a Clock;
// tests inject a fixed one and get deterministic day windows.
package clock

import "time"

type Clock interface {
	Now() time.Time
}

// System reads the real wall clock.
type System struct{}

func (System) Now() time.Time { return time.Now() }

// Fixed always returns the same instant.
type Fixed struct{ T time.Time }

func (f Fixed) Now() time.Time { return f.T }

// DayWindow returns the inclusive [start, end] bounds of t's calendar day in
// t's location.
func DayWindow(t time.Time) (time.Time, time.Time) {
	y, m, d := t.Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, t.Location())
	end := start.Add(24*time.Hour - time.Nanosecond)
	return start, end
}
