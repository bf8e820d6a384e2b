package tracker_test

import (
	"errors"
	"testing"
	"time"

	"github.com/bneiser/timetrack/internal/model"
	"github.com/bneiser/timetrack/internal/storage"
	"github.com/bneiser/timetrack/internal/timeparse"
	"github.com/bneiser/timetrack/internal/tracker"
)

func newTestDayLog(t *testing.T) (*tracker.DayLog, *fakeClock) {
	t.Helper()
	clock := &fakeClock{now: time.Date(2025, 7, 26, 16, 0, 0, 0, time.Local)}
	return tracker.NewDayLog(clock, storage.NewLogStore(t.TempDir())), clock
}

func seedEntries(t *testing.T, log *tracker.DayLog, day string, activities ...string) {
	t.Helper()
	start := time.Date(2025, 7, 26, 9, 0, 0, 0, time.Local)
	for i, activity := range activities {
		entry := model.TimeEntry{
			Start:    start.Add(time.Duration(i) * time.Hour),
			End:      start.Add(time.Duration(i)*time.Hour + 30*time.Minute),
			Activity: activity,
			Notes:    []string{},
		}
		index, err := log.Append(day, entry)
		if err != nil {
			t.Fatalf("Append(%q): %v", activity, err)
		}
		if index != i {
			t.Fatalf("Append(%q) index = %d, want %d", activity, index, i)
		}
	}
}

func TestRemoveRenumbers(t *testing.T) {
	log, _ := newTestDayLog(t)
	day := "2025-07-26"
	seedEntries(t, log, day, "e0", "e1", "e2")

	removed, err := log.Remove(day, 0)
	if err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if removed.Activity != "e0" {
		t.Errorf("removed activity = %q, want %q", removed.Activity, "e0")
	}

	entries, _, err := log.Entries(day)
	if err != nil {
		t.Fatalf("Entries: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("entries after remove = %d, want 2", len(entries))
	}
	if entries[0].Activity != "e1" || entries[1].Activity != "e2" {
		t.Errorf("entries = [%s %s], want [e1 e2]", entries[0].Activity, entries[1].Activity)
	}

	// The shifted entries answer to their new indices.
	if removed, err := log.Remove(day, 1); err != nil || removed.Activity != "e2" {
		t.Errorf("Remove(1) = %q, %v; want e2, nil", removed.Activity, err)
	}
}

func TestRemoveOutOfRange(t *testing.T) {
	log, _ := newTestDayLog(t)
	day := "2025-07-26"
	seedEntries(t, log, day, "e0")

	for _, index := range []int{-1, 1, 99} {
		if _, err := log.Remove(day, index); !errors.Is(err, tracker.ErrEntryNotFound) {
			t.Errorf("Remove(%d) error = %v, want ErrEntryNotFound", index, err)
		}
	}
	if _, err := log.Remove("2025-01-01", 0); !errors.Is(err, tracker.ErrEntryNotFound) {
		t.Errorf("Remove on empty day error = %v, want ErrEntryNotFound", err)
	}
}

func TestEdit(t *testing.T) {
	log, _ := newTestDayLog(t)
	day := time.Date(2025, 7, 26, 0, 0, 0, 0, time.Local)
	seedEntries(t, log, model.DayKey(day), "old name")

	got, err := log.Edit(day, 0, tracker.EntryUpdate{
		Activity: "new name",
		Start:    "10:00",
		End:      "11:30",
	})
	if err != nil {
		t.Fatalf("Edit: %v", err)
	}
	if got.Activity != "new name" {
		t.Errorf("activity = %q, want %q", got.Activity, "new name")
	}
	if !got.Start.Equal(time.Date(2025, 7, 26, 10, 0, 0, 0, time.Local)) {
		t.Errorf("start = %v, want 10:00 on the 26th", got.Start)
	}
	if got.Duration() != 90*time.Minute {
		t.Errorf("duration = %v, want 90m", got.Duration())
	}
}

func TestEditKeepsOmittedFields(t *testing.T) {
	log, _ := newTestDayLog(t)
	day := time.Date(2025, 7, 26, 0, 0, 0, 0, time.Local)
	seedEntries(t, log, model.DayKey(day), "keep me")

	before, _, err := log.Entries(model.DayKey(day))
	if err != nil {
		t.Fatalf("Entries: %v", err)
	}

	got, err := log.Edit(day, 0, tracker.EntryUpdate{End: "12:00"})
	if err != nil {
		t.Fatalf("Edit: %v", err)
	}
	if got.Activity != "keep me" {
		t.Errorf("activity = %q, want unchanged", got.Activity)
	}
	if !got.Start.Equal(before[0].Start) {
		t.Errorf("start = %v, want unchanged %v", got.Start, before[0].Start)
	}
}

func TestEditRejectsInvertedRange(t *testing.T) {
	log, _ := newTestDayLog(t)
	day := time.Date(2025, 7, 26, 0, 0, 0, 0, time.Local)
	seedEntries(t, log, model.DayKey(day), "e0")

	before, _, err := log.Entries(model.DayKey(day))
	if err != nil {
		t.Fatalf("Entries: %v", err)
	}

	_, err = log.Edit(day, 0, tracker.EntryUpdate{Start: "11:00", End: "10:59"})
	if !errors.Is(err, tracker.ErrInvalidRange) {
		t.Fatalf("Edit error = %v, want ErrInvalidRange", err)
	}

	// The stored entry is untouched.
	after, _, err := log.Entries(model.DayKey(day))
	if err != nil {
		t.Fatalf("Entries: %v", err)
	}
	if !after[0].Start.Equal(before[0].Start) || !after[0].End.Equal(before[0].End) {
		t.Errorf("entry changed after rejected edit: %+v", after[0])
	}
}

func TestEditBadIndexAndParse(t *testing.T) {
	log, _ := newTestDayLog(t)
	day := time.Date(2025, 7, 26, 0, 0, 0, 0, time.Local)
	seedEntries(t, log, model.DayKey(day), "e0")

	if _, err := log.Edit(day, 5, tracker.EntryUpdate{}); !errors.Is(err, tracker.ErrEntryNotFound) {
		t.Errorf("Edit(5) error = %v, want ErrEntryNotFound", err)
	}

	_, err := log.Edit(day, 0, tracker.EntryUpdate{Start: "not a time"})
	var pe *timeparse.ParseError
	if !errors.As(err, &pe) {
		t.Errorf("Edit with bad start error = %v, want ParseError", err)
	}
}

func TestAdd(t *testing.T) {
	log, _ := newTestDayLog(t)

	// A bare time-of-day end resolves against the start's day.
	entry, day, err := log.Add("meeting", "yesterday 10am", "11:00", "")
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if day != "2025-07-25" {
		t.Errorf("filed under %s, want 2025-07-25", day)
	}
	if entry.Duration() != time.Hour {
		t.Errorf("duration = %v, want 1h", entry.Duration())
	}

	// Duration form: the end derives from the start.
	entry, day, err = log.Add("focus", "today 9:00", "", "2h15m")
	if err != nil {
		t.Fatalf("Add with --for: %v", err)
	}
	if day != "2025-07-26" {
		t.Errorf("filed under %s, want 2025-07-26", day)
	}
	if !entry.End.Equal(time.Date(2025, 7, 26, 11, 15, 0, 0, time.Local)) {
		t.Errorf("end = %v, want 11:15", entry.End)
	}
}

func TestAddRejectsInvertedRange(t *testing.T) {
	log, _ := newTestDayLog(t)

	_, _, err := log.Add("meeting", "today 11am", "today 10am", "")
	if !errors.Is(err, tracker.ErrInvalidRange) {
		t.Errorf("Add error = %v, want ErrInvalidRange", err)
	}
}

func TestBackdateFilesUnderEndDay(t *testing.T) {
	log, clock := newTestDayLog(t)
	clock.now = time.Date(2025, 7, 26, 0, 30, 0, 0, time.Local)

	entry, day, err := log.Backdate("late fix", 2*time.Hour)
	if err != nil {
		t.Fatalf("Backdate: %v", err)
	}
	// The interval reaches back into the 25th, but it is filed under the
	// day containing the end.
	if day != "2025-07-26" {
		t.Errorf("filed under %s, want 2025-07-26", day)
	}
	if !entry.Start.Equal(time.Date(2025, 7, 25, 22, 30, 0, 0, time.Local)) {
		t.Errorf("start = %v, want 22:30 on the 25th", entry.Start)
	}
}

func TestEntriesKeepStorageOrder(t *testing.T) {
	log, _ := newTestDayLog(t)
	day := "2025-07-26"

	// Append an entry that starts later, then one that starts earlier.
	late := model.TimeEntry{
		Start:    time.Date(2025, 7, 26, 15, 0, 0, 0, time.Local),
		End:      time.Date(2025, 7, 26, 16, 0, 0, 0, time.Local),
		Activity: "late",
		Notes:    []string{},
	}
	early := model.TimeEntry{
		Start:    time.Date(2025, 7, 26, 8, 0, 0, 0, time.Local),
		End:      time.Date(2025, 7, 26, 9, 0, 0, 0, time.Local),
		Activity: "early",
		Notes:    []string{},
	}
	if _, err := log.Append(day, late); err != nil {
		t.Fatal(err)
	}
	if _, err := log.Append(day, early); err != nil {
		t.Fatal(err)
	}

	entries, total, err := log.Entries(day)
	if err != nil {
		t.Fatalf("Entries: %v", err)
	}
	if entries[0].Activity != "late" || entries[1].Activity != "early" {
		t.Errorf("entries re-sorted: got [%s %s], want insertion order", entries[0].Activity, entries[1].Activity)
	}
	if total != 2*time.Hour {
		t.Errorf("total = %v, want 2h", total)
	}
}

func TestLastActivityAndNextName(t *testing.T) {
	log, _ := newTestDayLog(t)

	last, err := log.LastActivity()
	if err != nil {
		t.Fatalf("LastActivity: %v", err)
	}
	if last != "" {
		t.Errorf("LastActivity on empty log = %q, want empty", last)
	}

	seedEntries(t, log, "2025-07-25", "older")
	seedEntries(t, log, "2025-07-26", "newer a", "newer b")

	last, err = log.LastActivity()
	if err != nil {
		t.Fatalf("LastActivity: %v", err)
	}
	if last != "newer b" {
		t.Errorf("LastActivity = %q, want %q", last, "newer b")
	}

	tests := []struct {
		last string
		want string
	}{
		{"review", "review - 2"},
		{"review - 2", "review - 3"},
		{"review - 9", "review - 10"},
		{"sprint-42", "sprint-42 - 2"},
	}
	for _, tt := range tests {
		if got := tracker.NextActivityName(tt.last); got != tt.want {
			t.Errorf("NextActivityName(%q) = %q, want %q", tt.last, got, tt.want)
		}
	}
}
