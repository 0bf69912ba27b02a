// Package storage owns the persisted task collection for agenda.
//
// The collection is serialized as a single JSON value held under one fixed
// key in a get/set-by-key backend. Backends only implement that contract;
// all task semantics live in Store.
package storage

// TasksKey is the fixed key holding the entire serialized task collection.
const TasksKey = "agenda.tasks"

// Backend is a synchronous get/set-by-key byte store.
type Backend interface {
	// Get returns the value under key. The second result is false when the
	// key is absent.
	Get(key string) ([]byte, bool, error)

	// Set stores value under key, replacing any previous value.
	Set(key string, value []byte) error

	// Delete removes key if present. Absent keys are a no-op.
	Delete(key string) error

	// Close releases backend resources.
	Close() error
}
