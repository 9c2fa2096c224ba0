// Package booking is the availability and pricing evaluator. It is a pure,
// synchronous computation over snapshots the caller already fetched: no I/O,
// no clock reads, no retained state between calls.
package booking

import (
	"fmt"
	"time"
)

// DateLayout is the storage and wire format for calendar dates.
const DateLayout = "2006-01-02"

// ParseDate converts a yyyy-mm-dd string into a UTC time at midnight.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected yyyy-mm-dd: %w", s, err)
	}
	return t, nil
}

// FormatDate renders a time as a yyyy-mm-dd string.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// StartOfDay truncates t to 00:00:00.000 in its location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// EndOfDay pushes t to 23:59:59.999999999 in its location.
func EndOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}

// Overlaps reports whether the closed day intervals [aStart, aEnd] and
// [bStart, bEnd] intersect. Bounds are normalized to day granularity first so
// that timestamps inside the same calendar day cannot produce off-by-one
// results.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	as, ae := StartOfDay(aStart), EndOfDay(aEnd)
	bs, be := StartOfDay(bStart), EndOfDay(bEnd)
	return !as.After(be) && !ae.Before(bs)
}

// DaysBetween returns the number of whole rental days between start and end,
// rounding partial days up. Returns 0 whenever end is not after start.
func DaysBetween(start, end time.Time) int {
	diff := end.Sub(start)
	if diff <= 0 {
		return 0
	}
	const day = 24 * time.Hour
	days := int(diff / day)
	if diff%day > 0 {
		days++
	}
	return days
}
