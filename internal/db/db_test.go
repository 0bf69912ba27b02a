package db

import (
	"path/filepath"
	"testing"
)

// openTestKV opens an in-memory database for testing.
func openTestKV(t *testing.T) *KV {
	t.Helper()
	kv, err := OpenInMemory()
	if err != nil {
		t.Fatalf("OpenInMemory failed: %v", err)
	}
	t.Cleanup(func() { kv.Close() })
	return kv
}

func TestGetAbsentKey(t *testing.T) {
	kv := openTestKV(t)

	value, ok, err := kv.Get("missing")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if ok {
		t.Error("ok = true for absent key")
	}
	if value != nil {
		t.Errorf("value = %q for absent key", value)
	}
}

func TestSetGetRoundTrip(t *testing.T) {
	kv := openTestKV(t)

	if err := kv.Set("agenda.tasks", []byte(`[{"id":"1"}]`)); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	value, ok, err := kv.Get("agenda.tasks")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !ok {
		t.Fatal("ok = false after Set")
	}
	if string(value) != `[{"id":"1"}]` {
		t.Errorf("value = %s", value)
	}
}

func TestSetReplaces(t *testing.T) {
	kv := openTestKV(t)

	if err := kv.Set("k", []byte("old")); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := kv.Set("k", []byte("new")); err != nil {
		t.Fatalf("second Set failed: %v", err)
	}

	value, _, err := kv.Get("k")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if string(value) != "new" {
		t.Errorf("value = %s, want new", value)
	}
}

func TestDeleteIsIdempotent(t *testing.T) {
	kv := openTestKV(t)

	if err := kv.Set("k", []byte("v")); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := kv.Delete("k"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if err := kv.Delete("k"); err != nil {
		t.Fatalf("second Delete failed: %v", err)
	}

	_, ok, err := kv.Get("k")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if ok {
		t.Error("key still present after Delete")
	}
}

func TestOpenCreatesParentDirectory(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "agenda.db")

	kv, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer kv.Close()

	if err := kv.Set("k", []byte("v")); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if kv.Path() != path {
		t.Errorf("Path() = %s, want %s", kv.Path(), path)
	}
}
