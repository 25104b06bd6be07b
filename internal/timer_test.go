package internal

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/iksnae/tempo/testutil"
)

func newTestEngine(t *testing.T) (*Engine, *Store, *TestClock) {
	t.Helper()
	dir := testutil.CreateTempDir(t)
	store, err := OpenStore(filepath.Join(dir, "sessions.json"))
	if err != nil {
		t.Fatalf("OpenStore() error = %v", err)
	}

	clock := &TestClock{Current: time.Date(2025, 3, 10, 9, 0, 0, 0, time.Local)}
	engine := NewEngine(store, DefaultConfig())
	engine.now = clock.Now
	return engine, store, clock
}

func TestEngine_StartWorkAndStop(t *testing.T) {
	engine, store, clock := newTestEngine(t)
	start := clock.Current

	res, err := engine.StartWork("Alpha", "desc")
	if err != nil {
		t.Fatalf("StartWork() error = %v", err)
	}
	if res.Stopped != nil {
		t.Errorf("StartWork() from idle Stopped = %+v, want nil", res.Stopped)
	}
	if !res.Timer.Start.Equal(start) {
		t.Errorf("Timer.Start = %v, want %v", res.Timer.Start, start)
	}
	if res.Timer.Target != 0 {
		t.Errorf("work Timer.Target = %v, want 0", res.Timer.Target)
	}

	clock.Advance(15 * time.Minute)

	sess, err := engine.Stop()
	if err != nil {
		t.Fatalf("Stop() error = %v", err)
	}
	if sess.Project != "Alpha" || sess.Description != "desc" || sess.Kind != KindWork {
		t.Errorf("Stop() session = %+v, want Alpha/desc/work", sess)
	}
	if sess.Duration() != 15*time.Minute {
		t.Errorf("Stop() duration = %v, want 15m", sess.Duration())
	}

	if engine.Running() {
		t.Error("Running() after Stop() = true, want false")
	}

	totals := store.ListProjects()
	if len(totals) != 1 || totals[0].Project != "Alpha" || totals[0].Total != 15*time.Minute {
		t.Errorf("ListProjects() = %+v, want [Alpha 15m]", totals)
	}
}

func TestEngine_StartWork_Validation(t *testing.T) {
	tests := []struct {
		name    string
		project string
	}{
		{name: "empty", project: ""},
		{name: "blank", project: "   "},
		{name: "tabs", project: "\t\t"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine, store, _ := newTestEngine(t)

			_, err := engine.StartWork(tt.project, "")
			var invalid *InvalidArgumentError
			if !errors.As(err, &invalid) {
				t.Errorf("StartWork(%q) error = %v, want InvalidArgumentError", tt.project, err)
			}
			if engine.Running() {
				t.Error("Running() after failed start = true, want false")
			}
			if store.Len() != 0 {
				t.Errorf("store Len() after failed start = %d, want 0", store.Len())
			}
		})
	}
}

func TestEngine_StartWork_TrimsProject(t *testing.T) {
	engine, _, _ := newTestEngine(t)

	res, err := engine.StartWork("  Alpha  ", "  trailing  ")
	if err != nil {
		t.Fatalf("StartWork() error = %v", err)
	}
	if res.Timer.Project != "Alpha" {
		t.Errorf("Timer.Project = %q, want %q", res.Timer.Project, "Alpha")
	}
	if res.Timer.Description != "trailing" {
		t.Errorf("Timer.Description = %q, want %q", res.Timer.Description, "trailing")
	}
}

func TestEngine_AutoStop(t *testing.T) {
	engine, store, clock := newTestEngine(t)
	t0 := clock.Current

	if _, err := engine.StartPomodoro(); err != nil {
		t.Fatalf("StartPomodoro() error = %v", err)
	}

	clock.Advance(5 * time.Minute)

	res, err := engine.StartBreak()
	if err != nil {
		t.Fatalf("StartBreak() error = %v", err)
	}

	// The superseded pomodoro must be committed before the break starts.
	if res.Stopped == nil {
		t.Fatal("StartBreak() while running Stopped = nil, want committed pomodoro")
	}
	if res.Stopped.Kind != KindPomodoro {
		t.Errorf("Stopped.Kind = %q, want %q", res.Stopped.Kind, KindPomodoro)
	}
	if res.Stopped.Duration() != 5*time.Minute {
		t.Errorf("Stopped duration = %v, want 5m", res.Stopped.Duration())
	}

	// The committed end and the new start are the same instant.
	if !res.Stopped.End.Equal(res.Timer.Start) {
		t.Errorf("Stopped.End = %v, Timer.Start = %v, want equal", res.Stopped.End, res.Timer.Start)
	}
	if !res.Timer.Start.Equal(t0.Add(5 * time.Minute)) {
		t.Errorf("Timer.Start = %v, want %v", res.Timer.Start, t0.Add(5*time.Minute))
	}
	if res.Timer.Kind != KindBreak {
		t.Errorf("Timer.Kind = %q, want %q", res.Timer.Kind, KindBreak)
	}

	if store.Len() != 1 {
		t.Errorf("store Len() = %d, want 1", store.Len())
	}
}

func TestEngine_AutoStop_InvalidArgsLeaveTimerUncommitted(t *testing.T) {
	engine, store, clock := newTestEngine(t)

	if _, err := engine.StartWork("Alpha", ""); err != nil {
		t.Fatalf("StartWork() error = %v", err)
	}
	clock.Advance(10 * time.Minute)

	// New-timer validation happens before the old timer is committed, so a
	// bad start leaves both the store and the running timer untouched.
	_, err := engine.StartWork("", "")
	var invalid *InvalidArgumentError
	if !errors.As(err, &invalid) {
		t.Fatalf("StartWork(\"\") error = %v, want InvalidArgumentError", err)
	}

	if store.Len() != 0 {
		t.Errorf("store Len() = %d, want 0 (old timer must not be committed)", store.Len())
	}
	status, err := engine.Status()
	if err != nil {
		t.Fatalf("Status() error = %v", err)
	}
	if status.Timer.Project != "Alpha" {
		t.Errorf("active project = %q, want %q", status.Timer.Project, "Alpha")
	}
}

func TestEngine_Status(t *testing.T) {
	engine, store, clock := newTestEngine(t)

	if _, err := engine.StartWork("Alpha", ""); err != nil {
		t.Fatalf("StartWork() error = %v", err)
	}
	start := clock.Current

	clock.Advance(90 * time.Second)

	// Repeated status calls mutate nothing.
	for i := 0; i < 5; i++ {
		status, err := engine.Status()
		if err != nil {
			t.Fatalf("Status() call %d error = %v", i, err)
		}
		if status.Elapsed != 90*time.Second {
			t.Errorf("Status() call %d Elapsed = %v, want 90s", i, status.Elapsed)
		}
		if !status.Timer.Start.Equal(start) {
			t.Errorf("Status() call %d Start = %v, want %v", i, status.Timer.Start, start)
		}
	}
	if store.Len() != 0 {
		t.Errorf("store Len() after status calls = %d, want 0", store.Len())
	}
}

func TestEngine_Status_Idle(t *testing.T) {
	engine, _, _ := newTestEngine(t)

	_, err := engine.Status()
	var idle *NoActiveTimerError
	if !errors.As(err, &idle) {
		t.Errorf("Status() while idle error = %v, want NoActiveTimerError", err)
	}
}

func TestEngine_Stop_Idle(t *testing.T) {
	engine, store, _ := newTestEngine(t)

	_, err := engine.Stop()
	var idle *NoActiveTimerError
	if !errors.As(err, &idle) {
		t.Errorf("Stop() while idle error = %v, want NoActiveTimerError", err)
	}
	if store.Len() != 0 {
		t.Errorf("store Len() = %d, want 0", store.Len())
	}
}

func TestEngine_Targets(t *testing.T) {
	engine, _, _ := newTestEngine(t)

	tests := []struct {
		name    string
		start   func() (*StartResult, error)
		kind    Kind
		project string
		target  time.Duration
	}{
		{"pomodoro", engine.StartPomodoro, KindPomodoro, PomodoroProject, 25 * time.Minute},
		{"short break", engine.StartBreak, KindBreak, BreakProject, 5 * time.Minute},
		{"long break", engine.StartLongBreak, KindLongBreak, LongBreakProject, 15 * time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := tt.start()
			if err != nil {
				t.Fatalf("start error = %v", err)
			}
			if res.Timer.Kind != tt.kind {
				t.Errorf("Kind = %q, want %q", res.Timer.Kind, tt.kind)
			}
			if res.Timer.Project != tt.project {
				t.Errorf("Project = %q, want %q", res.Timer.Project, tt.project)
			}
			if res.Timer.Target != tt.target {
				t.Errorf("Target = %v, want %v", res.Timer.Target, tt.target)
			}
		})
	}
}

func TestEngine_TargetDoesNotAutoStop(t *testing.T) {
	engine, store, clock := newTestEngine(t)

	if _, err := engine.StartPomodoro(); err != nil {
		t.Fatalf("StartPomodoro() error = %v", err)
	}

	// Run well past the 25 minute target; the timer must still be running.
	clock.Advance(40 * time.Minute)

	status, err := engine.Status()
	if err != nil {
		t.Fatalf("Status() error = %v", err)
	}
	if status.Elapsed != 40*time.Minute {
		t.Errorf("Elapsed = %v, want 40m", status.Elapsed)
	}
	if store.Len() != 0 {
		t.Errorf("store Len() = %d, want 0 (target must not auto-stop)", store.Len())
	}

	sess, err := engine.Stop()
	if err != nil {
		t.Fatalf("Stop() error = %v", err)
	}
	if sess.Duration() != 40*time.Minute {
		t.Errorf("Stop() duration = %v, want 40m", sess.Duration())
	}
}

func TestEngine_StopPersistFailureKeepsTimer(t *testing.T) {
	dir := testutil.CreateTempDir(t)
	store, err := OpenStore(filepath.Join(dir, "sessions.json"))
	if err != nil {
		t.Fatalf("OpenStore() error = %v", err)
	}
	clock := &TestClock{Current: time.Date(2025, 3, 10, 9, 0, 0, 0, time.Local)}
	engine := NewEngine(store, DefaultConfig())
	engine.now = clock.Now

	if _, err := engine.StartWork("Alpha", ""); err != nil {
		t.Fatalf("StartWork() error = %v", err)
	}
	clock.Advance(10 * time.Minute)

	// Break the backing medium, then try to stop.
	if err := os.RemoveAll(dir); err != nil {
		t.Fatalf("RemoveAll() error = %v", err)
	}

	_, err = engine.Stop()
	var persist *PersistenceError
	if !errors.As(err, &persist) {
		t.Fatalf("Stop() error = %v, want PersistenceError", err)
	}

	// The timer survives a failed commit so the in-progress time is not
	// lost; a later stop against a healthy store succeeds.
	if !engine.Running() {
		t.Fatal("Running() after failed Stop() = false, want true")
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("MkdirAll() error = %v", err)
	}
	clock.Advance(5 * time.Minute)
	sess, err := engine.Stop()
	if err != nil {
		t.Fatalf("Stop() retry error = %v", err)
	}
	if sess.Duration() != 15*time.Minute {
		t.Errorf("retry Stop() duration = %v, want 15m", sess.Duration())
	}
}

func TestEngine_SingleActiveTimer(t *testing.T) {
	engine, store, clock := newTestEngine(t)

	// A chain of starts: each one commits exactly one session and leaves
	// exactly one timer running.
	if _, err := engine.StartWork("Alpha", ""); err != nil {
		t.Fatalf("StartWork() error = %v", err)
	}
	clock.Advance(time.Minute)
	if _, err := engine.StartPomodoro(); err != nil {
		t.Fatalf("StartPomodoro() error = %v", err)
	}
	clock.Advance(time.Minute)
	if _, err := engine.StartBreak(); err != nil {
		t.Fatalf("StartBreak() error = %v", err)
	}
	clock.Advance(time.Minute)
	if _, err := engine.StartWork("Beta", ""); err != nil {
		t.Fatalf("StartWork() error = %v", err)
	}

	if store.Len() != 3 {
		t.Errorf("store Len() = %d, want 3", store.Len())
	}
	status, err := engine.Status()
	if err != nil {
		t.Fatalf("Status() error = %v", err)
	}
	if status.Timer.Project != "Beta" {
		t.Errorf("active project = %q, want Beta", status.Timer.Project)
	}

	// Every committed session has end >= start.
	for i, sess := range store.Sessions() {
		if sess.End.Before(sess.Start) {
			t.Errorf("session %d End %v before Start %v", i, sess.End, sess.Start)
		}
	}
}
