package date

import (
	"encoding/json"
	"fmt"
)

// TimeOfDay is a wall-clock time in 24-hour HH:MM form.
// The zero value is "no time set" and serializes as an empty string.
type TimeOfDay struct {
	Hour   int
	Minute int
	set    bool
}

// NewTimeOfDay constructs a TimeOfDay from hour and minute.
// Values outside the clock range wrap into it.
func NewTimeOfDay(hour, minute int) TimeOfDay {
	hour += minute / 60
	minute %= 60
	if minute < 0 {
		minute += 60
		hour--
	}
	hour %= 24
	if hour < 0 {
		hour += 24
	}
	return TimeOfDay{Hour: hour, Minute: minute, set: true}
}

// ParseTimeOfDay parses an HH:MM string.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	var h, m int
	if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
		return TimeOfDay{}, fmt.Errorf("parse time %q: %w", s, err)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return TimeOfDay{}, fmt.Errorf("time %q out of range", s)
	}
	return TimeOfDay{Hour: h, Minute: m, set: true}, nil
}

// IsZero returns true if no time is set.
func (t TimeOfDay) IsZero() bool {
	return !t.set
}

// String returns the HH:MM form, or "" when unset.
func (t TimeOfDay) String() string {
	if !t.set {
		return ""
	}
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// AddMinutes returns the time n minutes later, wrapping within the same day.
// No day-rollover is tracked since only the time-of-day is stored.
func (t TimeOfDay) AddMinutes(n int) TimeOfDay {
	if !t.set {
		return t
	}
	return NewTimeOfDay(t.Hour, t.Minute+n)
}

// MarshalJSON serializes the time as an HH:MM string, or "" when unset.
func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON accepts an HH:MM string. An empty string yields the zero value.
func (t *TimeOfDay) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		*t = TimeOfDay{}
		return nil
	}
	parsed, err := ParseTimeOfDay(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
