package date

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDay(t *testing.T) {
	d, err := ParseDay("2026-08-30")
	if err != nil {
		t.Fatalf("ParseDay failed: %v", err)
	}
	if d.Year != 2026 || d.Month != time.August || d.DayOf != 30 {
		t.Errorf("got %v, want 2026-08-30", d)
	}
	if d.String() != "2026-08-30" {
		t.Errorf("String() = %q, want 2026-08-30", d.String())
	}
}

func TestParseDayInvalid(t *testing.T) {
	for _, s := range []string{"", "not-a-date", "2026-13-01", "2026/08/30"} {
		if _, err := ParseDay(s); err == nil {
			t.Errorf("ParseDay(%q) should fail", s)
		}
	}
}

func TestDayOrdering(t *testing.T) {
	// Ordering must match lexicographic ordering of the string form.
	days := []string{"2025-12-31", "2026-01-01", "2026-08-29", "2026-08-30"}
	for i := 0; i < len(days)-1; i++ {
		a, _ := ParseDay(days[i])
		b, _ := ParseDay(days[i+1])
		if !a.Before(b) {
			t.Errorf("%s should be before %s", a, b)
		}
		if !b.After(a) {
			t.Errorf("%s should be after %s", b, a)
		}
		if a.Equal(b) {
			t.Errorf("%s should not equal %s", a, b)
		}
	}
}

func TestDayAddDays(t *testing.T) {
	d, _ := ParseDay("2026-08-30")
	if got := d.AddDays(2).String(); got != "2026-09-01" {
		t.Errorf("AddDays(2) = %s, want 2026-09-01", got)
	}
	if got := d.AddDays(-30).String(); got != "2026-07-31" {
		t.Errorf("AddDays(-30) = %s, want 2026-07-31", got)
	}
}

func TestDayJSONRoundTrip(t *testing.T) {
	d, _ := ParseDay("2026-02-28")
	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `"2026-02-28"` {
		t.Errorf("marshaled as %s", data)
	}
	var back Day
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !back.Equal(d) {
		t.Errorf("round trip mismatch: %v != %v", back, d)
	}
}

func TestZeroDayJSON(t *testing.T) {
	data, err := json.Marshal(Day{})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `""` {
		t.Errorf("zero day marshaled as %s, want \"\"", data)
	}
	var d Day
	if err := json.Unmarshal([]byte(`""`), &d); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !d.IsZero() {
		t.Error("expected zero day")
	}
}

func TestParseTimeOfDay(t *testing.T) {
	tod, err := ParseTimeOfDay("09:05")
	if err != nil {
		t.Fatalf("ParseTimeOfDay failed: %v", err)
	}
	if tod.String() != "09:05" {
		t.Errorf("String() = %q, want 09:05", tod.String())
	}

	for _, s := range []string{"24:00", "12:60", "-1:30", "noon"} {
		if _, err := ParseTimeOfDay(s); err == nil {
			t.Errorf("ParseTimeOfDay(%q) should fail", s)
		}
	}
}

func TestAddMinutesWraps(t *testing.T) {
	cases := []struct {
		in   string
		mins int
		want string
	}{
		{"10:00", 60, "11:00"},
		{"23:30", 60, "00:30"},
		{"23:59", 1, "00:00"},
		{"00:45", 30, "01:15"},
	}
	for _, tc := range cases {
		tod, err := ParseTimeOfDay(tc.in)
		if err != nil {
			t.Fatalf("parse %q: %v", tc.in, err)
		}
		if got := tod.AddMinutes(tc.mins).String(); got != tc.want {
			t.Errorf("%s + %dmin = %s, want %s", tc.in, tc.mins, got, tc.want)
		}
	}
}

func TestZeroTimeOfDay(t *testing.T) {
	var tod TimeOfDay
	if !tod.IsZero() {
		t.Error("zero value should be unset")
	}
	if tod.String() != "" {
		t.Errorf("zero String() = %q, want empty", tod.String())
	}
	if !tod.AddMinutes(60).IsZero() {
		t.Error("AddMinutes on unset time should stay unset")
	}
}
