package watch

import (
	"strings"
	"testing"
	"time"

	"github.com/bneiser/timetrack/internal/storage"
	"github.com/bneiser/timetrack/internal/tracker"
)

type stubClock struct {
	now time.Time
}

func (c *stubClock) Now() time.Time { return c.now }

func TestViewStates(t *testing.T) {
	base := t.TempDir()
	clock := &stubClock{now: time.Date(2025, 7, 26, 9, 0, 0, 0, time.Local)}
	log := tracker.NewDayLog(clock, storage.NewLogStore(base))
	machine := tracker.NewMachine(clock, storage.NewSessionStore(base), log)

	m := New(machine)
	if view := m.View(); !strings.Contains(view, "no task") {
		t.Errorf("idle view = %q, want no-task indicator", view)
	}

	if _, err := machine.Start("deep work", false); err != nil {
		t.Fatal(err)
	}
	clock.now = clock.now.Add(90 * time.Second)

	m = New(machine)
	view := m.View()
	if !strings.Contains(view, "deep work") {
		t.Errorf("running view = %q, want activity name", view)
	}
	if !strings.Contains(view, "00:01:30") {
		t.Errorf("running view = %q, want elapsed 00:01:30", view)
	}
}

func TestFormatElapsed(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "00:00:00"},
		{61 * time.Second, "00:01:01"},
		{3661 * time.Second, "01:01:01"},
	}
	for _, tt := range tests {
		if got := formatElapsed(tt.d); got != tt.want {
			t.Errorf("formatElapsed(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}
