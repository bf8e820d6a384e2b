package tracker

import (
	"regexp"
	"strconv"
	"time"

	"github.com/bneiser/timetrack/internal/model"
	"github.com/bneiser/timetrack/internal/timeparse"
)

// DayLog performs all mutations on the per-day entry collections.
// Entry indices are positions within a day, reassigned on removal; they
// are view positions, not stable identifiers.
type DayLog struct {
	clock Clock
	store LogStore
}

// NewDayLog wires the day log to its clock and store.
func NewDayLog(clock Clock, store LogStore) *DayLog {
	return &DayLog{clock: clock, store: store}
}

// Append adds an entry to the end of a day's log and returns its index.
func (l *DayLog) Append(day string, entry model.TimeEntry) (int, error) {
	entries, err := l.store.Load(day)
	if err != nil {
		return 0, err
	}
	index := len(entries)
	entries = append(entries, entry)
	if err := l.store.Save(day, entries); err != nil {
		return 0, err
	}
	return index, nil
}

// Entries returns a day's log in storage order plus the summed duration.
// Entries are deliberately not re-sorted by start time: the log reads in
// the order entries were recorded, so manual adds and edits may appear
// out of chronological order.
func (l *DayLog) Entries(day string) ([]model.TimeEntry, time.Duration, error) {
	entries, err := l.store.Load(day)
	if err != nil {
		return nil, 0, err
	}
	var total time.Duration
	for _, e := range entries {
		total += e.Duration()
	}
	return entries, total, nil
}

// Remove deletes the entry at index from a day's log. Later entries
// shift down by one position.
func (l *DayLog) Remove(day string, index int) (model.TimeEntry, error) {
	entries, err := l.store.Load(day)
	if err != nil {
		return model.TimeEntry{}, err
	}
	if index < 0 || index >= len(entries) {
		return model.TimeEntry{}, ErrEntryNotFound
	}
	removed := entries[index]
	entries = append(entries[:index], entries[index+1:]...)
	if err := l.store.Save(day, entries); err != nil {
		return model.TimeEntry{}, err
	}
	return removed, nil
}

// EntryUpdate carries the raw replacement values for Edit. Empty fields
// keep the entry's current value.
type EntryUpdate struct {
	Activity string
	Start    string
	End      string
}

// Edit rewrites the entry at index. Start and End are parsed with the
// entry's day as the reference, so a bare time of day lands on that day.
// The edit is rejected whole if the resulting start does not precede the
// end; the stored entry is untouched on any error.
func (l *DayLog) Edit(day time.Time, index int, upd EntryUpdate) (model.TimeEntry, error) {
	key := model.DayKey(day)
	entries, err := l.store.Load(key)
	if err != nil {
		return model.TimeEntry{}, err
	}
	if index < 0 || index >= len(entries) {
		return model.TimeEntry{}, ErrEntryNotFound
	}

	entry := entries[index]
	if upd.Activity != "" {
		entry.Activity = upd.Activity
	}
	if upd.Start != "" {
		start, err := timeparse.ParseTimestamp(upd.Start, day)
		if err != nil {
			return model.TimeEntry{}, err
		}
		entry.Start = start
	}
	if upd.End != "" {
		end, err := timeparse.ParseTimestamp(upd.End, day)
		if err != nil {
			return model.TimeEntry{}, err
		}
		entry.End = end
	}
	if !entry.Start.Before(entry.End) {
		return model.TimeEntry{}, ErrInvalidRange
	}

	entries[index] = entry
	if err := l.store.Save(key, entries); err != nil {
		return model.TimeEntry{}, err
	}
	return entry, nil
}

// Add records a retrospective entry. Exactly one of endText and forText
// must be set. The end parses with the start as its reference, so a bare
// time of day lands on the start's calendar day. The entry is filed
// under the day containing its start.
func (l *DayLog) Add(activity, startText, endText, forText string) (model.TimeEntry, string, error) {
	now := l.clock.Now()
	start, err := timeparse.ParseTimestamp(startText, now)
	if err != nil {
		return model.TimeEntry{}, "", err
	}

	var end time.Time
	if forText != "" {
		d, err := timeparse.ParseDuration(forText)
		if err != nil {
			return model.TimeEntry{}, "", err
		}
		end = start.Add(d)
	} else {
		end, err = timeparse.ParseTimestamp(endText, start)
		if err != nil {
			return model.TimeEntry{}, "", err
		}
	}
	if !start.Before(end) {
		return model.TimeEntry{}, "", ErrInvalidRange
	}

	entry := model.TimeEntry{Start: start, End: end, Activity: activity, Notes: []string{}}
	day := model.DayKey(start)
	if _, err := l.Append(day, entry); err != nil {
		return model.TimeEntry{}, "", err
	}
	return entry, day, nil
}

// Backdate records an entry ending now and starting the given duration
// earlier. It is filed under the day containing the end time, so an
// interval reaching back across midnight still lands on today's log.
func (l *DayLog) Backdate(activity string, d time.Duration) (model.TimeEntry, string, error) {
	now := l.clock.Now()
	entry := model.TimeEntry{
		Start:    now.Add(-d),
		End:      now,
		Activity: activity,
		Notes:    []string{},
	}
	day := model.DayKey(now)
	if _, err := l.Append(day, entry); err != nil {
		return model.TimeEntry{}, "", err
	}
	return entry, day, nil
}

var numberedSuffix = regexp.MustCompile(`(.+) - (\d+)$`)

// LastActivity returns the activity of the most recently filed entry
// across the whole history, or "" when the log is empty.
func (l *DayLog) LastActivity() (string, error) {
	days, err := l.store.LoadAll()
	if err != nil {
		return "", err
	}
	var lastDay string
	for day, entries := range days {
		if len(entries) > 0 && day > lastDay {
			lastDay = day
		}
	}
	if lastDay == "" {
		return "", nil
	}
	entries := days[lastDay]
	return entries[len(entries)-1].Activity, nil
}

// NextActivityName derives the follow-up name for a repeated activity:
// "review" becomes "review - 2", "review - 2" becomes "review - 3".
func NextActivityName(last string) string {
	if groups := numberedSuffix.FindStringSubmatch(last); groups != nil {
		n, err := strconv.Atoi(groups[2])
		if err == nil {
			return groups[1] + " - " + strconv.Itoa(n+1)
		}
	}
	return last + " - 2"
}
