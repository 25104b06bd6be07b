package internal

import (
	"strings"
	"time"
)

// Engine owns the single active-timer slot and the start/status/stop
// protocol. It holds no durable state of its own: stopping a timer commits
// the derived session into the store, and a process exit with a timer
// running loses that timer's time.
//
// Engines are plain values wired to a store; there is no package-level
// instance, so tests can run several side by side.
type Engine struct {
	store  *Store
	config Config
	active *ActiveTimer

	// now is swapped out in tests.
	now func() time.Time
}

// StartResult describes the outcome of a start operation: the timer now
// running, and the session committed on the auto-stop path when a previous
// timer was superseded.
type StartResult struct {
	Timer   ActiveTimer
	Stopped *Session
}

// TimerStatus is a read-only snapshot of the running timer.
type TimerStatus struct {
	Timer   ActiveTimer
	Elapsed time.Duration
}

// NewEngine creates an engine committing into store, with targets taken
// from config.
func NewEngine(store *Store, config Config) *Engine {
	return &Engine{
		store:  store,
		config: config,
		now:    time.Now,
	}
}

// StartWork starts a work timer for project. The project name is trimmed
// and must be non-empty; description is optional. A running timer is
// stopped and committed first.
func (e *Engine) StartWork(project, description string) (*StartResult, error) {
	project = strings.TrimSpace(project)
	if project == "" {
		return nil, &InvalidArgumentError{Arg: "project", Reason: "project name must not be empty"}
	}
	return e.start(ActiveTimer{
		Kind:        KindWork,
		Project:     project,
		Description: strings.TrimSpace(description),
	})
}

// StartPomodoro starts a pomodoro timer. A running timer is stopped and
// committed first.
func (e *Engine) StartPomodoro() (*StartResult, error) {
	return e.start(ActiveTimer{
		Kind:    KindPomodoro,
		Project: PomodoroProject,
		Target:  e.config.PomodoroTarget(),
	})
}

// StartBreak starts a short break timer. A running timer is stopped and
// committed first.
func (e *Engine) StartBreak() (*StartResult, error) {
	return e.start(ActiveTimer{
		Kind:    KindBreak,
		Project: BreakProject,
		Target:  e.config.ShortBreakTarget(),
	})
}

// StartLongBreak starts a long break timer. A running timer is stopped and
// committed first.
func (e *Engine) StartLongBreak() (*StartResult, error) {
	return e.start(ActiveTimer{
		Kind:    KindLongBreak,
		Project: LongBreakProject,
		Target:  e.config.LongBreakTarget(),
	})
}

// start is the single compound transition behind every Start*. Arguments
// are validated by the callers before it runs, so a running timer is never
// committed on behalf of a start that would then fail. The superseded
// session's end and the new timer's start are the same instant.
//
// If committing the old timer fails, the old timer stays active and the
// new one is not installed.
func (e *Engine) start(next ActiveTimer) (*StartResult, error) {
	now := e.now()

	var stopped *Session
	if e.active != nil {
		sess := e.active.session(now)
		if err := e.store.Append(sess); err != nil {
			return nil, err
		}
		stopped = &sess
	}

	next.Start = now
	e.active = &next

	return &StartResult{Timer: next, Stopped: stopped}, nil
}

// Status reports the running timer and its elapsed time without mutating
// anything. It returns a NoActiveTimerError when idle.
func (e *Engine) Status() (*TimerStatus, error) {
	if e.active == nil {
		return nil, &NoActiveTimerError{}
	}
	return &TimerStatus{
		Timer:   *e.active,
		Elapsed: e.active.Elapsed(e.now()),
	}, nil
}

// Stop ends the running timer, commits its session to the store, and
// returns the committed session. Stopping while idle is a
// NoActiveTimerError. If the commit fails the timer stays active so the
// in-progress time is not lost.
func (e *Engine) Stop() (*Session, error) {
	if e.active == nil {
		return nil, &NoActiveTimerError{}
	}

	sess := e.active.session(e.now())
	if err := e.store.Append(sess); err != nil {
		return nil, err
	}

	e.active = nil
	return &sess, nil
}

// Running reports whether a timer is active.
func (e *Engine) Running() bool {
	return e.active != nil
}
