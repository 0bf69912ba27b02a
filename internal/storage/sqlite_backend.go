package storage

import (
	"github.com/mfield/agenda/internal/db"
	"github.com/mfield/agenda/internal/errors"
)

// SQLiteBackend persists keys in a SQLite kv table.
type SQLiteBackend struct {
	kv *db.KV
}

// NewSQLiteBackend opens a SQLite-backed store at the given path.
func NewSQLiteBackend(path string) (*SQLiteBackend, error) {
	kv, err := db.Open(path)
	if err != nil {
		return nil, errors.ErrStorageUnavailable(path).WithCause(err)
	}
	return &SQLiteBackend{kv: kv}, nil
}

// NewInMemoryBackend opens an in-memory SQLite store for testing.
func NewInMemoryBackend() (*SQLiteBackend, error) {
	kv, err := db.OpenInMemory()
	if err != nil {
		return nil, errors.ErrStorageUnavailable(":memory:").WithCause(err)
	}
	return &SQLiteBackend{kv: kv}, nil
}

// Get returns the value under key.
func (b *SQLiteBackend) Get(key string) ([]byte, bool, error) {
	return b.kv.Get(key)
}

// Set stores value under key.
func (b *SQLiteBackend) Set(key string, value []byte) error {
	return b.kv.Set(key, value)
}

// Delete removes key if present.
func (b *SQLiteBackend) Delete(key string) error {
	return b.kv.Delete(key)
}

// Close releases the database connection.
func (b *SQLiteBackend) Close() error {
	return b.kv.Close()
}

var _ Backend = (*SQLiteBackend)(nil)
