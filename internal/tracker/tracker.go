// Package tracker owns the session state machine and the per-day log
// operations. It holds no hidden state: the clock and both stores are
// injected, and every mutation is persisted before the call returns.
package tracker

import (
	"time"

	"github.com/bneiser/timetrack/internal/model"
)

// Clock supplies wall-clock time. Each operation captures now exactly
// once so duration math stays consistent within a single command.
type Clock interface {
	Now() time.Time
}

// SessionStore persists the single live session. Load returns nil when
// no session is active; Clear removes the persisted record.
type SessionStore interface {
	Load() (*model.Session, error)
	Save(*model.Session) error
	Clear() error
}

// LogStore persists completed entries keyed by YYYY-MM-DD day.
type LogStore interface {
	Load(day string) ([]model.TimeEntry, error)
	Save(day string, entries []model.TimeEntry) error
	LoadAll() (map[string][]model.TimeEntry, error)
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	// Second precision keeps durations and the displayed clock in step.
	return time.Now().Truncate(time.Second)
}

// SystemClock returns the wall clock used outside tests.
func SystemClock() Clock {
	return systemClock{}
}
