package internal

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Store is the durable collection of completed sessions. The whole history
// lives in a single JSON file that is rewritten atomically on every
// mutation, so the on-disk form is always a complete snapshot.
//
// The in-memory slice is only updated after a write succeeds
// (write-then-commit), so a failed write never leaves memory and disk
// disagreeing.
type Store struct {
	path     string
	sessions []Session
}

// ProjectTotal pairs a project name with its accumulated duration.
type ProjectTotal struct {
	Project string
	Total   time.Duration
}

// ProjectSessions groups a project's sessions for date-bucketed queries.
type ProjectSessions struct {
	Project  string
	Sessions []Session
}

// OpenStore loads the session history from path. A missing or empty file
// is treated as zero sessions; malformed existing data is a
// CorruptDataError rather than being silently discarded.
func OpenStore(path string) (*Store, error) {
	s := &Store{path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, &PersistenceError{Path: path, Op: "read", Err: err}
	}
	if len(data) == 0 {
		return s, nil
	}

	var sessions []Session
	if err := json.Unmarshal(data, &sessions); err != nil {
		return nil, &CorruptDataError{Path: path, Err: err}
	}
	for i, sess := range sessions {
		if err := sess.Validate(); err != nil {
			return nil, &CorruptDataError{Path: path, Err: fmt.Errorf("record %d: %w", i, err)}
		}
	}

	s.sessions = sessions
	return s, nil
}

// Path returns the location of the backing file.
func (s *Store) Path() string {
	return s.path
}

// Len returns the number of stored sessions.
func (s *Store) Len() int {
	return len(s.sessions)
}

// Sessions returns a copy of the full history in insertion order.
func (s *Store) Sessions() []Session {
	out := make([]Session, len(s.sessions))
	copy(out, s.sessions)
	return out
}

// Append writes session to the backing store. The in-memory collection is
// committed only after the file write succeeds.
func (s *Store) Append(session Session) error {
	if err := session.Validate(); err != nil {
		return &InvalidArgumentError{Arg: "session", Reason: err.Error()}
	}

	next := make([]Session, len(s.sessions), len(s.sessions)+1)
	copy(next, s.sessions)
	next = append(next, session)

	if err := s.write(next); err != nil {
		return err
	}

	s.sessions = next
	return nil
}

// ListProjects returns every distinct project with its accumulated
// duration, ordered by first appearance in the history.
func (s *Store) ListProjects() []ProjectTotal {
	index := make(map[string]int)
	var totals []ProjectTotal

	for _, sess := range s.sessions {
		i, ok := index[sess.Project]
		if !ok {
			i = len(totals)
			index[sess.Project] = i
			totals = append(totals, ProjectTotal{Project: sess.Project})
		}
		totals[i].Total += sess.Duration()
	}

	return totals
}

// SessionsForProject returns name's sessions oldest first. An unknown
// project yields an empty slice, not an error.
func (s *Store) SessionsForProject(name string) []Session {
	var out []Session
	for _, sess := range s.sessions {
		if sess.Project == name {
			out = append(out, sess)
		}
	}
	return out
}

// SessionsOnDate returns the sessions whose start falls on the given
// calendar date in date's location, grouped by project in order of first
// appearance.
func (s *Store) SessionsOnDate(date time.Time) []ProjectSessions {
	y, m, d := date.Date()
	loc := date.Location()

	index := make(map[string]int)
	var groups []ProjectSessions

	for _, sess := range s.sessions {
		sy, sm, sd := sess.Start.In(loc).Date()
		if sy != y || sm != m || sd != d {
			continue
		}
		i, ok := index[sess.Project]
		if !ok {
			i = len(groups)
			index[sess.Project] = i
			groups = append(groups, ProjectSessions{Project: sess.Project})
		}
		groups[i].Sessions = append(groups[i].Sessions, sess)
	}

	return groups
}

// DeleteProject removes every session for name, all or nothing. It returns
// the number of sessions removed, or a NotFoundError if the project has
// none.
func (s *Store) DeleteProject(name string) (int, error) {
	var kept []Session
	for _, sess := range s.sessions {
		if sess.Project != name {
			kept = append(kept, sess)
		}
	}

	deleted := len(s.sessions) - len(kept)
	if deleted == 0 {
		return 0, &NotFoundError{Project: name}
	}

	if err := s.write(kept); err != nil {
		return 0, err
	}

	s.sessions = kept
	return deleted, nil
}

// write replaces the backing file with a snapshot of sessions. The file is
// written to a temporary sibling first and renamed into place so a crash
// mid-write never leaves a partial record behind.
func (s *Store) write(sessions []Session) error {
	if sessions == nil {
		sessions = []Session{}
	}

	data, err := json.MarshalIndent(sessions, "", "  ")
	if err != nil {
		return &PersistenceError{Path: s.path, Op: "marshal", Err: err}
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".sessions-*.json")
	if err != nil {
		return &PersistenceError{Path: s.path, Op: "write", Err: err}
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return &PersistenceError{Path: s.path, Op: "write", Err: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return &PersistenceError{Path: s.path, Op: "write", Err: err}
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return &PersistenceError{Path: s.path, Op: "rename", Err: err}
	}

	return nil
}
