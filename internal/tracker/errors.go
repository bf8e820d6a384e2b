package tracker

import "errors"

// ErrAlreadyRunning is returned by Start when a session exists and force
// was not requested.
var ErrAlreadyRunning = errors.New("a task is already running")

// ErrNothingRunning is returned when an operation needs an active session
// and none exists.
var ErrNothingRunning = errors.New("no task is currently running")

// ErrAlreadyPaused is returned by Pause when the session is already paused.
var ErrAlreadyPaused = errors.New("task is already paused")

// ErrNotPaused is returned by Resume when the session is not paused.
var ErrNotPaused = errors.New("task is not paused")

// ErrEntryNotFound indicates a log index outside the day's bounds.
var ErrEntryNotFound = errors.New("log entry not found")

// ErrInvalidRange indicates an entry whose start would not precede its end.
var ErrInvalidRange = errors.New("start time must be before end time")
