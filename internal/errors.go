package internal

import "fmt"

// InvalidArgumentError represents bad or missing user input
type InvalidArgumentError struct {
	Arg    string
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid argument %q: %s", e.Arg, e.Reason)
}

// NoActiveTimerError is returned by stop/status when nothing is running
type NoActiveTimerError struct{}

func (e *NoActiveTimerError) Error() string {
	return "no timer is currently running"
}

// NotFoundError represents a query or delete on an unknown project
type NotFoundError struct {
	Project string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no sessions found for project %q", e.Project)
}

// PersistenceError represents a failure writing the backing store
type PersistenceError struct {
	Path string
	Op   string // "marshal", "write", "rename"
	Err  error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence error: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// CorruptDataError represents malformed data in an existing backing store
type CorruptDataError struct {
	Path string
	Err  error
}

func (e *CorruptDataError) Error() string {
	return fmt.Sprintf("corrupt data in %s: %v", e.Path, e.Err)
}

func (e *CorruptDataError) Unwrap() error {
	return e.Err
}
