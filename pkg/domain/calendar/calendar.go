// Package calendar provides the date primitives shared by every analytics
// component: flexible parsing, day enumeration, business-day counting and
// range overlap. No other package re-implements date math.
package calendar

import (
	"strings"
	"time"
)

// dateLayouts are tried in order by ParseDate. Entity exports carry dates in
// several legacy shapes: bare dates, RFC3339 timestamps with and without
// fractional seconds, and timezone-naive timestamps.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006/01/02",
	"01/02/2006",
}

// ParseDate parses a date-like string into a day-granular time.Time in UTC.
// It never fails loudly: the second return value reports whether the input
// was parseable. Time-of-day components are discarded because the entity
// model has no time-of-day semantics.
func ParseDate(value string) (time.Time, bool) {
	s := strings.TrimSpace(value)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return DayOf(t), true
		}
	}
	return time.Time{}, false
}

// DayOf truncates a timestamp to its calendar day in UTC.
func DayOf(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// EndOfDay returns the last instant of the calendar day containing t.
func EndOfDay(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), time.UTC)
}

// EnumerateDays returns the inclusive daily sequence from start to end.
// It returns nil when either date is the zero value or end precedes start.
func EnumerateDays(start, end time.Time) []time.Time {
	if start.IsZero() || end.IsZero() {
		return nil
	}
	first := DayOf(start)
	last := DayOf(end)
	if last.Before(first) {
		return nil
	}
	days := make([]time.Time, 0, int(last.Sub(first).Hours()/24)+1)
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// BusinessDaysInclusive counts Monday through Friday days in [start, end],
// both ends inclusive. Zero for invalid or inverted ranges.
func BusinessDaysInclusive(start, end time.Time) int {
	count := 0
	for _, d := range EnumerateDays(start, end) {
		switch d.Weekday() {
		case time.Saturday, time.Sunday:
		default:
			count++
		}
	}
	return count
}

// OverlapDays returns the number of calendar days (inclusive) shared by the
// ranges [aStart, aEnd] and [bStart, bEnd]. Disjoint or invalid ranges
// overlap on zero days.
func OverlapDays(aStart, aEnd, bStart, bEnd time.Time) int {
	if aStart.IsZero() || aEnd.IsZero() || bStart.IsZero() || bEnd.IsZero() {
		return 0
	}
	start := DayOf(aStart)
	if b := DayOf(bStart); b.After(start) {
		start = b
	}
	end := DayOf(aEnd)
	if b := DayOf(bEnd); b.Before(end) {
		end = b
	}
	if end.Before(start) {
		return 0
	}
	return int(end.Sub(start).Hours()/24) + 1
}
