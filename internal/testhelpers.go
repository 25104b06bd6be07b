package internal

import (
	"time"
)

// CreateTestSession creates a completed work session for tests
func CreateTestSession(project string, start time.Time, length time.Duration) Session {
	return Session{
		Project:     project,
		Description: "test session",
		Kind:        KindWork,
		Start:       start,
		End:         start.Add(length),
	}
}

// CreateTestSessionKind creates a completed session of the given kind
func CreateTestSessionKind(project string, kind Kind, start time.Time, length time.Duration) Session {
	return Session{
		Project: project,
		Kind:    kind,
		Start:   start,
		End:     start.Add(length),
	}
}

// TestClock is a controllable clock for engine tests
type TestClock struct {
	Current time.Time
}

// Now returns the clock's current instant
func (c *TestClock) Now() time.Time {
	return c.Current
}

// Advance moves the clock forward by d
func (c *TestClock) Advance(d time.Duration) {
	c.Current = c.Current.Add(d)
}
