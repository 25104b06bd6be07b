package internal

import (
	"fmt"
	"time"
)

// Kind identifies what a timer or session was tracking.
type Kind string

const (
	KindWork      Kind = "work"
	KindPomodoro  Kind = "pomodoro"
	KindBreak     Kind = "break"
	KindLongBreak Kind = "long-break"
)

// Sentinel project names used for sessions that are not tied to a
// user-supplied project.
const (
	PomodoroProject  = "Pomodoro"
	BreakProject     = "Break"
	LongBreakProject = "Long Break"
)

// ValidKind reports whether k is one of the known kinds.
func ValidKind(k Kind) bool {
	switch k {
	case KindWork, KindPomodoro, KindBreak, KindLongBreak:
		return true
	}
	return false
}

// Label returns a human-readable name for the kind.
func (k Kind) Label() string {
	switch k {
	case KindWork:
		return "Work Session"
	case KindPomodoro:
		return "Pomodoro"
	case KindBreak:
		return "Short Break"
	case KindLongBreak:
		return "Long Break"
	}
	return "Timer"
}

// Session is a completed, immutable timer record.
type Session struct {
	Project     string    `json:"project"`
	Description string    `json:"description"`
	Kind        Kind      `json:"kind"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
}

// Duration returns the full-precision length of the session.
func (s Session) Duration() time.Duration {
	return s.End.Sub(s.Start)
}

// Validate checks the invariants a stored session must satisfy.
func (s Session) Validate() error {
	if s.Project == "" {
		return fmt.Errorf("session has empty project")
	}
	if !ValidKind(s.Kind) {
		return fmt.Errorf("session has unknown kind %q", s.Kind)
	}
	if s.Start.IsZero() || s.End.IsZero() {
		return fmt.Errorf("session has zero timestamp")
	}
	if s.End.Before(s.Start) {
		return fmt.Errorf("session ends before it starts (%s < %s)",
			s.End.Format(time.RFC3339), s.Start.Format(time.RFC3339))
	}
	return nil
}

// ActiveTimer is the single in-flight timer. It is never persisted; only
// the session derived from it on stop survives.
type ActiveTimer struct {
	Kind        Kind
	Project     string
	Description string
	Start       time.Time
	// Target is the intended length for pomodoro and break timers. It is
	// display-only: the timer keeps running past it until stopped.
	// Zero for work timers.
	Target time.Duration
}

// Elapsed returns how long the timer has been running as of now.
func (t *ActiveTimer) Elapsed(now time.Time) time.Duration {
	return now.Sub(t.Start)
}

// Remaining returns the time left until the target, negative once the
// timer has run past it. Meaningless for work timers (Target == 0).
func (t *ActiveTimer) Remaining(now time.Time) time.Duration {
	return t.Target - t.Elapsed(now)
}

// session converts the timer into its completed session record.
func (t *ActiveTimer) session(end time.Time) Session {
	return Session{
		Project:     t.Project,
		Description: t.Description,
		Kind:        t.Kind,
		Start:       t.Start,
		End:         end,
	}
}
