package config

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"

	agendaerrors "github.com/mfield/agenda/internal/errors"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Backend != BackendSQLite {
		t.Errorf("Backend = %s, want sqlite", cfg.Backend)
	}
	if cfg.TrendWindowDays != 14 {
		t.Errorf("TrendWindowDays = %d, want 14", cfg.TrendWindowDays)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()

	cfg := Default()
	cfg.Backend = BackendFile
	cfg.TrendWindowDays = 30
	if err := cfg.Save(dir); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Backend != BackendFile {
		t.Errorf("Backend = %s, want file", loaded.Backend)
	}
	if loaded.TrendWindowDays != 30 {
		t.Errorf("TrendWindowDays = %d, want 30", loaded.TrendWindowDays)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ConfigFileName)
	if err := os.WriteFile(path, []byte("backend: [nope"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(dir)
	if err == nil {
		t.Fatal("Load should fail on invalid YAML")
	}
	if !stderrors.Is(err, agendaerrors.ErrConfigInvalid("", "")) {
		t.Errorf("expected CONFIG_INVALID, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}

	cfg.Backend = "redis"
	if err := cfg.Validate(); err == nil {
		t.Error("unknown backend should fail validation")
	}

	cfg = Default()
	cfg.TrendWindowDays = 0
	if err := cfg.Validate(); err == nil {
		t.Error("zero trend window should fail validation")
	}
}

func TestResolveDataDirExplicit(t *testing.T) {
	cfg := Default()
	cfg.DataDir = "/tmp/custom-agenda"
	dir, err := cfg.ResolveDataDir()
	if err != nil {
		t.Fatalf("ResolveDataDir failed: %v", err)
	}
	if dir != "/tmp/custom-agenda" {
		t.Errorf("dir = %s", dir)
	}
}
