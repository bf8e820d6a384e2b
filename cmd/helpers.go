package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/bneiser/timetrack/internal/storage"
	"github.com/bneiser/timetrack/internal/timeparse"
	"github.com/bneiser/timetrack/internal/tracker"
)

// app bundles the stores and the state machine for one command
// invocation.
type app struct {
	base     string
	clock    tracker.Clock
	machine  *tracker.Machine
	log      *tracker.DayLog
	logStore *storage.LogStore
	config   *storage.ConfigStore
	memos    *storage.MemoStore
}

func newApp() *app {
	base, err := storage.BaseDir()
	if err != nil {
		fail(err)
	}
	clock := tracker.SystemClock()
	logStore := storage.NewLogStore(base)
	log := tracker.NewDayLog(clock, logStore)
	return &app{
		base:     base,
		clock:    clock,
		machine:  tracker.NewMachine(clock, storage.NewSessionStore(base), log),
		log:      log,
		logStore: logStore,
		config:   storage.NewConfigStore(base),
		memos:    storage.NewMemoStore(base),
	}
}

// resolveActivity expands an activity through the alias table.
func (a *app) resolveActivity(activity string) string {
	cfg, err := a.config.Load()
	if err != nil {
		fail(err)
	}
	return cfg.Resolve(activity)
}

// fail reports a storage failure and exits.
func fail(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(2)
}

// reject reports a user-level problem and exits.
func reject(msg string) {
	fmt.Fprintln(os.Stderr, msg)
	os.Exit(1)
}

// exitOn maps a core error to its user-facing message. Precondition and
// parse failures exit 1; anything else is a storage failure.
func exitOn(err error) {
	var parseErr *timeparse.ParseError
	switch {
	case errors.Is(err, tracker.ErrAlreadyRunning):
		reject("❗ Error: A task is already running. Use --force to stop it and start fresh.")
	case errors.Is(err, tracker.ErrNothingRunning):
		reject("❗ No task is currently running.")
	case errors.Is(err, tracker.ErrAlreadyPaused):
		reject("❗ The task is already paused.")
	case errors.Is(err, tracker.ErrNotPaused):
		reject("❗ The task is not paused.")
	case errors.Is(err, tracker.ErrEntryNotFound):
		reject("❗ Error: No log entry with that ID for the given day.")
	case errors.Is(err, tracker.ErrInvalidRange):
		reject("❗ Error: The start time must be before the end time.")
	case errors.As(err, &parseErr):
		reject("❗ Error: " + parseErr.Error() + ".")
	default:
		fail(err)
	}
}

// describeStop renders the message for a completed entry.
func describeStop(res tracker.StopResult) string {
	return fmt.Sprintf("✅ Stopped tracking '%s'. Logged %s.",
		res.Entry.Activity, timeparse.FormatMinutes(res.Duration))
}

// promptDefault asks for a replacement value, keeping the current one on
// an empty answer. It returns "" for "keep".
func promptDefault(r *bufio.Reader, label, current string) string {
	fmt.Printf("%s [%s]: ", label, current)
	line, err := r.ReadString('\n')
	if err != nil {
		return ""
	}
	return strings.TrimSpace(line)
}
