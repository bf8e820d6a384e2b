package tracker

import (
	"time"

	"github.com/bneiser/timetrack/internal/model"
)

// State describes the session state machine position.
type State uint8

const (
	// Idle means no session exists.
	Idle State = iota
	// Running means a session is actively accumulating time.
	Running
	// Paused means a session exists but time is not accumulating.
	Paused
)

// Machine is the session state machine. Transitions: Idle -> Running,
// Running <-> Paused, and any active state -> Idle via Stop.
type Machine struct {
	clock    Clock
	sessions SessionStore
	log      *DayLog
}

// NewMachine wires the state machine to its clock, session store and
// day log.
func NewMachine(clock Clock, sessions SessionStore, log *DayLog) *Machine {
	return &Machine{clock: clock, sessions: sessions, log: log}
}

// StartResult reports a successful Start. Stopped is non-nil when a
// previous session was force-stopped first.
type StartResult struct {
	Activity string
	Stopped  *StopResult
}

// StopResult reports the entry produced by a Stop and the day it was
// filed under.
type StopResult struct {
	Entry    model.TimeEntry
	Day      string
	Duration time.Duration
}

// StatusInfo is a snapshot of the current session, without mutation.
type StatusInfo struct {
	State     State
	Activity  string
	StartedAt time.Time
	Elapsed   time.Duration
	Notes     []string
}

// Start begins tracking a new activity. With force, an active session is
// stopped and logged first; without it, an active session is an error.
func (m *Machine) Start(activity string, force bool) (StartResult, error) {
	sess, err := m.sessions.Load()
	if err != nil {
		return StartResult{}, err
	}

	var stopped *StopResult
	if sess != nil {
		if !force {
			return StartResult{}, ErrAlreadyRunning
		}
		res, err := m.Stop()
		if err != nil {
			return StartResult{}, err
		}
		stopped = &res
	}

	now := m.clock.Now()
	fresh := &model.Session{
		Activity:  activity,
		StartedAt: now,
		Notes:     []string{},
		Status:    model.StatusRunning,
	}
	if err := m.sessions.Save(fresh); err != nil {
		return StartResult{}, err
	}
	return StartResult{Activity: activity, Stopped: stopped}, nil
}

// Stop ends the session from either active state, files a TimeEntry
// under the day containing the end time, and returns to Idle.
func (m *Machine) Stop() (StopResult, error) {
	sess, err := m.sessions.Load()
	if err != nil {
		return StopResult{}, err
	}
	if sess == nil {
		return StopResult{}, ErrNothingRunning
	}

	now := m.clock.Now()
	duration := sess.Accumulated()
	if sess.Status == model.StatusRunning {
		duration += now.Sub(sess.StartedAt)
	}

	entry := model.TimeEntry{
		Start:    now.Add(-duration),
		End:      now,
		Activity: sess.Activity,
		Notes:    sess.Notes,
	}
	day := model.DayKey(now)
	if _, err := m.log.Append(day, entry); err != nil {
		return StopResult{}, err
	}
	if err := m.sessions.Clear(); err != nil {
		return StopResult{}, err
	}
	return StopResult{Entry: entry, Day: day, Duration: duration}, nil
}

// Pause suspends a running session, banking the elapsed segment into the
// accumulated duration.
func (m *Machine) Pause() (StatusInfo, error) {
	sess, err := m.sessions.Load()
	if err != nil {
		return StatusInfo{}, err
	}
	if sess == nil {
		return StatusInfo{}, ErrNothingRunning
	}
	if sess.Status == model.StatusPaused {
		return StatusInfo{}, ErrAlreadyPaused
	}

	now := m.clock.Now()
	sess.AccumulatedSeconds += int64(now.Sub(sess.StartedAt) / time.Second)
	sess.Status = model.StatusPaused
	if err := m.sessions.Save(sess); err != nil {
		return StatusInfo{}, err
	}
	return m.snapshot(sess, now), nil
}

// Resume restarts a paused session with a fresh running segment.
func (m *Machine) Resume() (StatusInfo, error) {
	sess, err := m.sessions.Load()
	if err != nil {
		return StatusInfo{}, err
	}
	if sess == nil {
		return StatusInfo{}, ErrNothingRunning
	}
	if sess.Status != model.StatusPaused {
		return StatusInfo{}, ErrNotPaused
	}

	now := m.clock.Now()
	sess.StartedAt = now
	sess.Status = model.StatusRunning
	if err := m.sessions.Save(sess); err != nil {
		return StatusInfo{}, err
	}
	return m.snapshot(sess, now), nil
}

// AddNote appends a note to the active session.
func (m *Machine) AddNote(text string) (StatusInfo, error) {
	sess, err := m.sessions.Load()
	if err != nil {
		return StatusInfo{}, err
	}
	if sess == nil {
		return StatusInfo{}, ErrNothingRunning
	}

	sess.Notes = append(sess.Notes, text)
	if err := m.sessions.Save(sess); err != nil {
		return StatusInfo{}, err
	}
	return m.snapshot(sess, m.clock.Now()), nil
}

// Status returns a snapshot of the current session. Idle is reported as
// a normal snapshot, not an error.
func (m *Machine) Status() (StatusInfo, error) {
	sess, err := m.sessions.Load()
	if err != nil {
		return StatusInfo{}, err
	}
	if sess == nil {
		return StatusInfo{State: Idle}, nil
	}
	return m.snapshot(sess, m.clock.Now()), nil
}

func (m *Machine) snapshot(sess *model.Session, now time.Time) StatusInfo {
	info := StatusInfo{
		Activity:  sess.Activity,
		StartedAt: sess.StartedAt,
		Elapsed:   sess.Accumulated(),
		Notes:     sess.Notes,
	}
	if sess.Status == model.StatusRunning {
		info.State = Running
		info.Elapsed += now.Sub(sess.StartedAt)
	} else {
		info.State = Paused
	}
	return info
}
