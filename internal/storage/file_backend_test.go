package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mfield/agenda/internal/task"
)

func TestFileBackendRoundTrip(t *testing.T) {
	backend := NewFileBackend(t.TempDir())

	_, ok, err := backend.Get(TasksKey)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if ok {
		t.Error("ok = true before any Set")
	}

	if err := backend.Set(TasksKey, []byte("[]")); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	data, ok, err := backend.Get(TasksKey)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !ok || string(data) != "[]" {
		t.Errorf("Get = %q, %v", data, ok)
	}

	if err := backend.Delete(TasksKey); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if err := backend.Delete(TasksKey); err != nil {
		t.Fatalf("Delete of absent key failed: %v", err)
	}
}

func TestFileBackendPersistsAcrossInstances(t *testing.T) {
	dir := t.TempDir()

	store := NewStore(NewFileBackend(dir))
	created, err := store.CreateTask(task.Task{})
	if err != nil {
		t.Fatalf("CreateTask failed: %v", err)
	}
	store.Close()

	reopened := NewStore(NewFileBackend(dir))
	defer reopened.Close()
	all := reopened.GetAllTasks()
	if len(all) != 1 || all[0].ID != created.ID {
		t.Errorf("reopened store has %d tasks, want the created one", len(all))
	}
}

func TestFileBackendFileName(t *testing.T) {
	dir := t.TempDir()
	backend := NewFileBackend(dir)

	if err := backend.Set(TasksKey, []byte("[]")); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, TasksKey+".json")); err != nil {
		t.Errorf("expected %s.json in data dir: %v", TasksKey, err)
	}
}
