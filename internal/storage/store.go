package storage

import (
	"encoding/json"
	"io"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/tidwall/gjson"

	"github.com/mfield/agenda/internal/errors"
	"github.com/mfield/agenda/internal/task"
)

// Store is the sole writer of the persisted task collection. Every mutating
// operation is a full read-modify-write of the collection under the store
// mutex, so callers always observe the collection before or after a whole
// mutation, never mid-write.
type Store struct {
	backend Backend
	mu      sync.Mutex
	logger  *log.Logger

	// now and newID are injectable for tests.
	now   func() time.Time
	newID func() string
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger for read-path warnings.
func WithLogger(l *log.Logger) Option {
	return func(s *Store) { s.logger = l }
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator overrides the task ID generator.
func WithIDGenerator(gen func() string) Option {
	return func(s *Store) { s.newID = gen }
}

// NewStore creates a task store over the given backend.
func NewStore(backend Backend, opts ...Option) *Store {
	s := &Store{
		backend: backend,
		logger:  log.New(io.Discard, "", 0),
		now:     time.Now,
		newID:   uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Close releases the underlying backend.
func (s *Store) Close() error {
	return s.backend.Close()
}

// GetAllTasks reads the full persisted collection. An absent key, a backend
// failure, or a malformed payload yields an empty collection with a logged
// warning; the caller never sees an error for a bad read.
func (s *Store) GetAllTasks() []task.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadLocked()
}

// CreateTask constructs a new record from input: a fresh unique ID, created
// and updated timestamps set to now, and defaults backfilled for end time,
// status, and subtasks. Any ID or timestamps supplied by the caller are
// ignored. The new record is appended, the collection persisted, and the
// record returned.
func (s *Store) CreateTask(input task.Task) (task.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tasks := s.loadLocked()

	now := s.now().UnixMilli()
	input.ID = s.newID()
	input.CreatedAt = now
	input.UpdatedAt = now
	input.ApplyDefaults()

	tasks = append(tasks, input)
	if err := s.persistLocked(tasks); err != nil {
		return task.Task{}, err
	}
	return input, nil
}

// UpdateTask replaces the record matching t.ID with the supplied fields plus
// a refreshed UpdatedAt, preserving the original CreatedAt. If no record
// matches, ErrTaskNotFound is returned and the collection is untouched.
func (s *Store) UpdateTask(t task.Task) (task.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tasks := s.loadLocked()
	for i := range tasks {
		if tasks[i].ID != t.ID {
			continue
		}
		t.CreatedAt = tasks[i].CreatedAt
		t.UpdatedAt = s.now().UnixMilli()
		tasks[i] = t
		if err := s.persistLocked(tasks); err != nil {
			return task.Task{}, err
		}
		return t, nil
	}
	return task.Task{}, errors.ErrTaskNotFound(t.ID)
}

// DeleteTask removes the record with the given ID. Deleting an absent ID is
// a no-op, not an error.
func (s *Store) DeleteTask(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tasks := s.loadLocked()
	kept := tasks[:0]
	for _, t := range tasks {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	return s.persistLocked(kept)
}

// loadLocked reads and parses the collection. Caller must hold s.mu.
func (s *Store) loadLocked() []task.Task {
	data, ok, err := s.backend.Get(TasksKey)
	if err != nil {
		s.logger.Printf("warning: read task collection: %v", err)
		return []task.Task{}
	}
	if !ok {
		return []task.Task{}
	}

	if !gjson.ValidBytes(data) {
		s.logger.Printf("warning: %v", errors.ErrStorageCorrupt())
		return []task.Task{}
	}

	var tasks []task.Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		s.logger.Printf("warning: %v", errors.ErrStorageCorrupt().WithCause(err))
		return []task.Task{}
	}
	return tasks
}

// persistLocked rewrites the full collection in one backend write.
// Caller must hold s.mu.
func (s *Store) persistLocked(tasks []task.Task) error {
	if tasks == nil {
		tasks = []task.Task{}
	}
	data, err := json.Marshal(tasks)
	if err != nil {
		return errors.Wrap(err, "serialize task collection")
	}
	if err := s.backend.Set(TasksKey, data); err != nil {
		return errors.Wrap(err, "persist task collection")
	}
	return nil
}
