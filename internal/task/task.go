// Package task defines the task entity for agenda.
package task

import (
	"encoding/json"

	"github.com/mfield/agenda/internal/date"
)

// Status represents the current state of a task.
type Status string

const (
	StatusNotStarted Status = "NOT_STARTED"
	StatusInProgress Status = "IN_PROGRESS"
	StatusCompleted  Status = "COMPLETED"
)

// ValidStatuses returns all valid status values.
func ValidStatuses() []Status {
	return []Status{StatusNotStarted, StatusInProgress, StatusCompleted}
}

// IsValidStatus returns true if the status is a valid status value.
func IsValidStatus(s Status) bool {
	switch s {
	case StatusNotStarted, StatusInProgress, StatusCompleted:
		return true
	default:
		return false
	}
}

// FallbackEndTime is the end time assumed when a task is created with
// neither a start nor an end time.
var FallbackEndTime = date.NewTimeOfDay(10, 0)

// DefaultDurationMinutes is the assumed task length when no end time is given.
const DefaultDurationMinutes = 60

// Task represents a unit of work scheduled on a calendar day.
//
// ID and both timestamps are assigned by the store at creation; callers never
// supply them. Fields the core does not interpret (title, notes, UI-only data)
// ride along in Extra and round-trip through serialization unchanged.
type Task struct {
	// ID is the unique identifier, immutable after creation.
	ID string `json:"id"`

	// Date is the calendar day the task is scheduled on.
	Date date.Day `json:"date"`

	// StartTime and EndTime bound the task within the day.
	StartTime date.TimeOfDay `json:"startTime"`
	EndTime   date.TimeOfDay `json:"endTime"`

	// Status is the current progress state.
	Status Status `json:"status"`

	// Subtasks is an ordered list of sub-items, opaque to the core.
	Subtasks []json.RawMessage `json:"subtasks"`

	// CreatedAt and UpdatedAt are millisecond epoch timestamps.
	// CreatedAt is set once; UpdatedAt is refreshed on every update.
	CreatedAt int64 `json:"createdAt"`
	UpdatedAt int64 `json:"updatedAt"`

	// Extra holds opaque payload fields carried through unchanged.
	Extra map[string]json.RawMessage `json:"-"`
}

// ApplyDefaults backfills fields the caller may omit at creation: an unset
// end time becomes the start time plus DefaultDurationMinutes (wrapping
// within the day), or FallbackEndTime when there is no start time either;
// an unset status becomes NOT_STARTED; nil subtasks become empty. The end
// time is always present afterwards.
func (t *Task) ApplyDefaults() {
	if t.EndTime.IsZero() {
		if t.StartTime.IsZero() {
			t.EndTime = FallbackEndTime
		} else {
			t.EndTime = t.StartTime.AddMinutes(DefaultDurationMinutes)
		}
	}
	if t.Status == "" {
		t.Status = StatusNotStarted
	}
	if t.Subtasks == nil {
		t.Subtasks = []json.RawMessage{}
	}
}

// Title returns the task title from the opaque payload, if present.
func (t *Task) Title() string {
	raw, ok := t.Extra["title"]
	if !ok {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}

// SetTitle stores a title in the opaque payload.
func (t *Task) SetTitle(title string) {
	t.SetExtraString("title", title)
}

// SetExtraString stores a string field in the opaque payload.
func (t *Task) SetExtraString(key, value string) {
	if t.Extra == nil {
		t.Extra = make(map[string]json.RawMessage)
	}
	data, _ := json.Marshal(value)
	t.Extra[key] = data
}
