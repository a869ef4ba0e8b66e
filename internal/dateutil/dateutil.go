// Package dateutil provides calendar-day helpers for study tracking.
//
// All day strings are ISO "YYYY-MM-DD" sliced in UTC, matching the format
// the web client has always written, so day boundaries are stable across
// host timezones.
package dateutil

import (
	"time"

	"github.com/pkg/errors"
)

// DayFormat is the canonical day-string layout.
const DayFormat = "2006-01-02"

// Clock supplies the current time. Production code uses SystemClock;
// tests inject FixedClock to pin "today".
type Clock interface {
	Now() time.Time
}

// SystemClock returns the wall-clock time.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

// FixedClock returns a constant time, for testing date-dependent logic.
type FixedClock struct {
	Time time.Time
}

func (c FixedClock) Now() time.Time {
	return c.Time
}

// Day formats a time as a UTC day string.
func Day(t time.Time) string {
	return t.UTC().Format(DayFormat)
}

// Today returns the current UTC day string.
func Today(c Clock) string {
	return Day(c.Now())
}

// Yesterday returns the day string one calendar day before today.
// The subtraction is date-only (AddDate), not a 24h offset.
func Yesterday(c Clock) string {
	return Day(c.Now().UTC().AddDate(0, 0, -1))
}

// ParseDay parses a day string into a UTC midnight time.
func ParseDay(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DayFormat, s, time.UTC)
	if err != nil {
		return time.Time{}, errors.Wrapf(err, "invalid day string %q", s)
	}
	return t, nil
}

// IsValidDay reports whether s is a well-formed day string.
func IsValidDay(s string) bool {
	_, err := ParseDay(s)
	return err == nil
}

// DaysBetween returns the whole calendar days from one day string to
// another. Both arguments must be valid day strings.
func DaysBetween(from, to string) (int, error) {
	a, err := ParseDay(from)
	if err != nil {
		return 0, err
	}
	b, err := ParseDay(to)
	if err != nil {
		return 0, err
	}
	// Both are UTC midnights, so the hour division is exact.
	return int(b.Sub(a).Hours() / 24), nil
}
