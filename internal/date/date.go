// Package date provides calendar-date and wall-clock time-of-day value types.
//
// Tasks are scheduled against local calendar days with no timezone component.
// Day preserves the YYYY-MM-DD wire format and orders identically to the
// lexicographic ordering of that string form.
package date

import (
	"encoding/json"
	"fmt"
	"time"
)

// Day is a calendar date with no time-of-day or timezone component.
// The zero value is "no date".
type Day struct {
	Year  int
	Month time.Month
	DayOf int
}

// ParseDay parses a YYYY-MM-DD string into a Day.
func ParseDay(s string) (Day, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Day{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return Day{Year: t.Year(), Month: t.Month(), DayOf: t.Day()}, nil
}

// DayOfTime returns the calendar day containing t in t's location.
func DayOfTime(t time.Time) Day {
	return Day{Year: t.Year(), Month: t.Month(), DayOf: t.Day()}
}

// Today returns the current local calendar day.
func Today() Day {
	return DayOfTime(time.Now())
}

// String returns the YYYY-MM-DD form.
func (d Day) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.DayOf)
}

// IsZero returns true if the day is unset.
func (d Day) IsZero() bool {
	return d == Day{}
}

// Time returns local midnight at the start of the day.
func (d Day) Time() time.Time {
	return time.Date(d.Year, d.Month, d.DayOf, 0, 0, 0, 0, time.Local)
}

// AddDays returns the day n calendar days after d (n may be negative).
func (d Day) AddDays(n int) Day {
	return DayOfTime(d.Time().AddDate(0, 0, n))
}

// Weekday returns the day of the week (Sunday = 0).
func (d Day) Weekday() time.Weekday {
	return d.Time().Weekday()
}

// Before reports whether d is earlier than other.
func (d Day) Before(other Day) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.DayOf < other.DayOf
}

// After reports whether d is later than other.
func (d Day) After(other Day) bool {
	return other.Before(d)
}

// Equal reports whether d and other are the same calendar day.
func (d Day) Equal(other Day) bool {
	return d == other
}

// MarshalJSON serializes the day as a YYYY-MM-DD string, or "" when unset.
func (d Day) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return json.Marshal("")
	}
	return json.Marshal(d.String())
}

// UnmarshalJSON accepts a YYYY-MM-DD string. An empty string yields the zero Day.
func (d *Day) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		*d = Day{}
		return nil
	}
	parsed, err := ParseDay(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
