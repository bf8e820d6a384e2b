package model

import (
	"strings"
	"time"
)

// Status is the persisted state of a live tracking session.
type Status string

const (
	StatusRunning Status = "running"
	StatusPaused  Status = "paused"
)

// TimeEntry represents a single completed interval of work.
type TimeEntry struct {
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
	Activity string    `json:"activity"`
	Notes    []string  `json:"notes"`
}

// Duration returns the length of the interval.
func (e TimeEntry) Duration() time.Duration {
	return e.End.Sub(e.Start)
}

// Session is the live tracking record stored in state.json.
// An absent file means no session is active.
type Session struct {
	Activity           string    `json:"activity"`
	StartedAt          time.Time `json:"started_at"`
	AccumulatedSeconds int64     `json:"accumulated_seconds"`
	Notes              []string  `json:"notes"`
	Status             Status    `json:"status"`
}

// Accumulated returns the time already counted toward the session
// from completed running segments.
func (s Session) Accumulated() time.Duration {
	return time.Duration(s.AccumulatedSeconds) * time.Second
}

// TimeLog is the top-level structure stored in timelog.json.
// Days maps a YYYY-MM-DD key to that day's entries in insertion order.
type TimeLog struct {
	Days map[string][]TimeEntry `json:"days"`
}

// DayKey renders the timelog map key for a date.
func DayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// Config is the structure stored in config.json.
type Config struct {
	Aliases map[string]string `json:"aliases"`
}

// Resolve expands an activity through the alias table. Unknown names
// pass through unchanged; lookup is case-insensitive on the alias.
func (c Config) Resolve(activity string) string {
	if full, ok := c.Aliases[strings.ToLower(activity)]; ok {
		return full
	}
	return activity
}

// Memo is one global note, independent of any tracked activity.
type Memo struct {
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// MemoList is the structure stored in memos.json.
type MemoList struct {
	Memos []Memo `json:"memos"`
}
