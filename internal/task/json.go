package task

import (
	"encoding/json"
)

// knownFields are the task fields the core interprets. Everything else in a
// serialized record is opaque payload and lands in Extra.
var knownFields = map[string]bool{
	"id":        true,
	"date":      true,
	"startTime": true,
	"endTime":   true,
	"status":    true,
	"subtasks":  true,
	"createdAt": true,
	"updatedAt": true,
}

// taskAlias avoids marshal recursion.
type taskAlias Task

// MarshalJSON serializes the task with opaque payload fields folded back in
// at the top level, so records round-trip with no field renaming.
func (t Task) MarshalJSON() ([]byte, error) {
	data, err := json.Marshal(taskAlias(t))
	if err != nil {
		return nil, err
	}
	if len(t.Extra) == 0 {
		return data, nil
	}

	var merged map[string]json.RawMessage
	if err := json.Unmarshal(data, &merged); err != nil {
		return nil, err
	}
	for k, v := range t.Extra {
		if knownFields[k] {
			continue
		}
		merged[k] = v
	}
	return json.Marshal(merged)
}

// UnmarshalJSON deserializes the task, capturing unrecognized fields in Extra.
func (t *Task) UnmarshalJSON(data []byte) error {
	var alias taskAlias
	if err := json.Unmarshal(data, &alias); err != nil {
		return err
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	for k := range raw {
		if knownFields[k] {
			delete(raw, k)
		}
	}
	if len(raw) > 0 {
		alias.Extra = raw
	}

	*t = Task(alias)
	return nil
}
