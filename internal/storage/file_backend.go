package storage

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/mfield/agenda/internal/util"
)

// FileBackend persists each key as a JSON file in a data directory,
// written atomically. Key names map to file names with path separators
// replaced, so keys like "agenda.tasks" become agenda.tasks.json.
type FileBackend struct {
	dir string
}

// NewFileBackend creates a file-backed store rooted at dir.
func NewFileBackend(dir string) *FileBackend {
	return &FileBackend{dir: dir}
}

func (b *FileBackend) pathFor(key string) string {
	name := strings.ReplaceAll(key, string(os.PathSeparator), "_")
	return filepath.Join(b.dir, name+".json")
}

// Get returns the value under key.
func (b *FileBackend) Get(key string) ([]byte, bool, error) {
	data, err := os.ReadFile(b.pathFor(key))
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

// Set stores value under key with an atomic write.
func (b *FileBackend) Set(key string, value []byte) error {
	return util.AtomicWriteFile(b.pathFor(key), value, 0644)
}

// Delete removes key if present.
func (b *FileBackend) Delete(key string) error {
	err := os.Remove(b.pathFor(key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// Close is a no-op for the file backend.
func (b *FileBackend) Close() error {
	return nil
}

var _ Backend = (*FileBackend)(nil)
