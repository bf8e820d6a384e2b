// Package timeparse turns free-form date, time and duration strings into
// absolute timestamps and durations. Every command that accepts temporal
// input routes through this package so the accepted grammar cannot drift
// between commands.
package timeparse

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ParseError reports input that matched none of the accepted patterns,
// carrying the offending text for the user-facing message.
type ParseError struct {
	Input string
	Want  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse %q as %s", e.Input, e.Want)
}

// A matcher tries one pattern against the input. It reports false when the
// input is not in its grammar; matchers are tried in priority order.
type matcher func(text string, ref time.Time) (time.Time, bool)

var timestampMatchers = []matcher{
	matchRelativeDay,
	matchNumericDate,
	matchMonthNameDate,
	matchBareClock,
}

// ParseTimestamp resolves text into an absolute local timestamp. The
// reference time supplies the calendar day for relative keywords and for
// bare times of day. Accepted forms, in priority order:
//
//	today 10am / yesterday 14:30
//	25-07-2025 14:00 / 2025-07-25 14:00
//	July 25 2025 2:15pm
//	14:00 / 14:00:30 / 2:15pm
//
// A date without a time of day resolves to midnight.
func ParseTimestamp(text string, ref time.Time) (time.Time, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return time.Time{}, &ParseError{Input: text, Want: "timestamp"}
	}
	for _, m := range timestampMatchers {
		if t, ok := m(s, ref); ok {
			return t, nil
		}
	}
	return time.Time{}, &ParseError{Input: text, Want: "timestamp"}
}

var durationPattern = regexp.MustCompile(`^(?:(\d+)h)?(?:(\d+)m)?$`)

// ParseDuration parses durations of the form "2h15m", "1h" or "90m".
// At least one component is required and the total must be positive.
func ParseDuration(text string) (time.Duration, error) {
	s := strings.TrimSpace(strings.ToLower(text))
	groups := durationPattern.FindStringSubmatch(s)
	if groups == nil || (groups[1] == "" && groups[2] == "") {
		return 0, &ParseError{Input: text, Want: "duration (e.g. 2h15m, 1h, 90m)"}
	}
	var minutes int64
	if groups[1] != "" {
		h, err := strconv.ParseInt(groups[1], 10, 64)
		if err != nil {
			return 0, &ParseError{Input: text, Want: "duration (e.g. 2h15m, 1h, 90m)"}
		}
		minutes += h * 60
	}
	if groups[2] != "" {
		m, err := strconv.ParseInt(groups[2], 10, 64)
		if err != nil {
			return 0, &ParseError{Input: text, Want: "duration (e.g. 2h15m, 1h, 90m)"}
		}
		minutes += m
	}
	if minutes <= 0 {
		return 0, &ParseError{Input: text, Want: "non-zero duration"}
	}
	return time.Duration(minutes) * time.Minute, nil
}

// ParseDaySelector resolves "today", "yesterday" or a DD-MM-YYYY date to
// midnight of that calendar day.
func ParseDaySelector(text string, ref time.Time) (time.Time, error) {
	s := strings.TrimSpace(strings.ToLower(text))
	switch s {
	case "today":
		return StartOfDay(ref), nil
	case "yesterday":
		return StartOfDay(ref.AddDate(0, 0, -1)), nil
	}
	if d, m, y, ok := splitNumericDate(s); ok {
		if day, valid := makeDate(y, m, d, ref.Location()); valid {
			return day, nil
		}
	}
	return time.Time{}, &ParseError{Input: text, Want: "day (today, yesterday or DD-MM-YYYY)"}
}

// matchRelativeDay handles "today" and "yesterday", optionally followed by
// a time of day.
func matchRelativeDay(text string, ref time.Time) (time.Time, bool) {
	fields := strings.Fields(text)
	var day time.Time
	switch strings.ToLower(fields[0]) {
	case "today":
		day = StartOfDay(ref)
	case "yesterday":
		day = StartOfDay(ref.AddDate(0, 0, -1))
	default:
		return time.Time{}, false
	}
	return withClock(day, fields[1:])
}

// matchNumericDate handles DD-MM-YYYY and YYYY-MM-DD, optionally followed
// by a time of day.
func matchNumericDate(text string, ref time.Time) (time.Time, bool) {
	fields := strings.Fields(text)
	d, m, y, ok := splitNumericDate(fields[0])
	if !ok {
		return time.Time{}, false
	}
	day, valid := makeDate(y, m, d, ref.Location())
	if !valid {
		return time.Time{}, false
	}
	return withClock(day, fields[1:])
}

// matchMonthNameDate handles long-form dates like "July 25 2025",
// optionally followed by a time of day.
func matchMonthNameDate(text string, ref time.Time) (time.Time, bool) {
	fields := strings.Fields(text)
	if len(fields) < 3 {
		return time.Time{}, false
	}
	month, ok := monthByName[strings.ToLower(fields[0])]
	if !ok {
		return time.Time{}, false
	}
	d, err := strconv.Atoi(fields[1])
	if err != nil {
		return time.Time{}, false
	}
	y, err := strconv.Atoi(fields[2])
	if err != nil || y < 1000 {
		return time.Time{}, false
	}
	day, valid := makeDate(y, int(month), d, ref.Location())
	if !valid {
		return time.Time{}, false
	}
	return withClock(day, fields[3:])
}

// matchBareClock handles a lone time of day on the reference day.
func matchBareClock(text string, ref time.Time) (time.Time, bool) {
	return withClock(StartOfDay(ref), strings.Fields(text))
}

var (
	clock24Pattern = regexp.MustCompile(`^(\d{1,2}):(\d{2})(?::(\d{2}))?$`)
	clock12Pattern = regexp.MustCompile(`^(\d{1,2})(?::(\d{2}))?(am|pm)$`)
	datePatternDMY = regexp.MustCompile(`^(\d{1,2})-(\d{1,2})-(\d{4})$`)
	datePatternYMD = regexp.MustCompile(`^(\d{4})-(\d{1,2})-(\d{1,2})$`)
)

var monthByName = map[string]time.Month{
	"january": time.January, "february": time.February, "march": time.March,
	"april": time.April, "may": time.May, "june": time.June,
	"july": time.July, "august": time.August, "september": time.September,
	"october": time.October, "november": time.November, "december": time.December,
}

// withClock applies an optional time-of-day token to a midnight date.
// An empty rest leaves the date at midnight; anything unparseable fails.
func withClock(day time.Time, rest []string) (time.Time, bool) {
	if len(rest) == 0 {
		return day, true
	}
	if len(rest) != 1 {
		return time.Time{}, false
	}
	h, min, sec, ok := parseClock(rest[0])
	if !ok {
		return time.Time{}, false
	}
	return day.Add(time.Duration(h)*time.Hour +
		time.Duration(min)*time.Minute +
		time.Duration(sec)*time.Second), true
}

// parseClock accepts HH:MM[:SS] in 24-hour form and H[:MM]am|pm in
// 12-hour form, case-insensitive. Missing seconds and minutes are zero.
func parseClock(token string) (h, min, sec int, ok bool) {
	s := strings.ToLower(token)

	if groups := clock24Pattern.FindStringSubmatch(s); groups != nil {
		h, _ = strconv.Atoi(groups[1])
		min, _ = strconv.Atoi(groups[2])
		if groups[3] != "" {
			sec, _ = strconv.Atoi(groups[3])
		}
		if h > 23 || min > 59 || sec > 59 {
			return 0, 0, 0, false
		}
		return h, min, sec, true
	}

	if groups := clock12Pattern.FindStringSubmatch(s); groups != nil {
		h, _ = strconv.Atoi(groups[1])
		if groups[2] != "" {
			min, _ = strconv.Atoi(groups[2])
		}
		if h < 1 || h > 12 || min > 59 {
			return 0, 0, 0, false
		}
		if h == 12 {
			h = 0
		}
		if groups[3] == "pm" {
			h += 12
		}
		return h, min, 0, true
	}

	return 0, 0, 0, false
}

// splitNumericDate extracts day, month and year from DD-MM-YYYY or
// YYYY-MM-DD without validating the calendar.
func splitNumericDate(token string) (d, m, y int, ok bool) {
	if groups := datePatternDMY.FindStringSubmatch(token); groups != nil {
		d, _ = strconv.Atoi(groups[1])
		m, _ = strconv.Atoi(groups[2])
		y, _ = strconv.Atoi(groups[3])
		return d, m, y, true
	}
	if groups := datePatternYMD.FindStringSubmatch(token); groups != nil {
		y, _ = strconv.Atoi(groups[1])
		m, _ = strconv.Atoi(groups[2])
		d, _ = strconv.Atoi(groups[3])
		return d, m, y, true
	}
	return 0, 0, 0, false
}

// makeDate builds midnight of the given calendar day, rejecting values
// that time.Date would silently normalize (month 13, day 32).
func makeDate(y, m, d int, loc *time.Location) (time.Time, bool) {
	if m < 1 || m > 12 || d < 1 || d > 31 {
		return time.Time{}, false
	}
	t := time.Date(y, time.Month(m), d, 0, 0, 0, 0, loc)
	if t.Year() != y || t.Month() != time.Month(m) || t.Day() != d {
		return time.Time{}, false
	}
	return t, true
}

// StartOfDay returns midnight of the same calendar day.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay reports whether two times fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// FormatClock renders a timestamp the way the log displays it. The output
// re-parses through ParseTimestamp on the matching reference day.
func FormatClock(t time.Time) string {
	return t.Format("15:04:05")
}

// FormatMinutes renders a duration as whole minutes for a single entry,
// rounding to the nearest minute.
func FormatMinutes(d time.Duration) string {
	return fmt.Sprintf("%d min", int64(d.Round(time.Minute)/time.Minute))
}

// FormatTotal renders a daily total: bare minutes under an hour, "Xh Ym"
// from an hour up. Exact hours still show the minute part ("2h 0m").
func FormatTotal(d time.Duration) string {
	minutes := int64(d / time.Minute)
	if minutes < 60 {
		return fmt.Sprintf("%d minutes", minutes)
	}
	return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
}
