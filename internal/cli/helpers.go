// Package cli implements the agenda command-line interface.
// This file contains shared helper functions used across multiple commands.
package cli

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/mfield/agenda/internal/config"
	agendaerrors "github.com/mfield/agenda/internal/errors"
	"github.com/mfield/agenda/internal/storage"
	"github.com/mfield/agenda/internal/task"
)

// loadConfig resolves the effective configuration: config file values with
// flag/env overrides applied.
func loadConfig() (*config.Config, string, error) {
	dir := dataDir
	if dir == "" {
		dir = viper.GetString("data_dir")
	}
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, "", fmt.Errorf("resolve home directory: %w", err)
		}
		dir = filepath.Join(home, config.DataDirName)
	}

	cfg, err := config.Load(dir)
	if err != nil {
		return nil, "", err
	}
	if backend := viper.GetString("backend"); backend != "" {
		cfg.Backend = config.StorageBackend(backend)
		if err := cfg.Validate(); err != nil {
			return nil, "", err
		}
	}
	return cfg, dir, nil
}

// openStore opens the task store per the effective configuration.
// The caller must Close the returned store.
func openStore() (*storage.Store, error) {
	cfg, dir, err := loadConfig()
	if err != nil {
		return nil, err
	}

	var backend storage.Backend
	switch cfg.Backend {
	case config.BackendFile:
		backend = storage.NewFileBackend(dir)
	default:
		backend, err = storage.NewSQLiteBackend(filepath.Join(dir, "agenda.db"))
		if err != nil {
			return nil, err
		}
	}

	opts := []storage.Option{}
	if verbose {
		opts = append(opts, storage.WithLogger(log.New(os.Stderr, "agenda: ", 0)))
	}
	return storage.NewStore(backend, opts...), nil
}

// resolveTask finds the task whose ID matches arg exactly or by unique
// prefix, so users can type the first few characters of a UUID.
func resolveTask(tasks []task.Task, arg string) (task.Task, error) {
	var matches []task.Task
	for _, t := range tasks {
		if t.ID == arg {
			return t, nil
		}
		if strings.HasPrefix(t.ID, arg) {
			matches = append(matches, t)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return task.Task{}, agendaerrors.ErrTaskNotFound(arg)
	default:
		return task.Task{}, fmt.Errorf("id prefix %q is ambiguous (%d matches)", arg, len(matches))
	}
}

// statusIcon returns a single-character marker for a status.
func statusIcon(s task.Status) string {
	switch s {
	case task.StatusNotStarted:
		return "○"
	case task.StatusInProgress:
		return "◐"
	case task.StatusCompleted:
		return "●"
	default:
		return "?"
	}
}

// truncate shortens s to max runes, appending an ellipsis when cut.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}

// shortID returns the leading segment of a UUID for display.
func shortID(id string) string {
	if i := strings.IndexByte(id, '-'); i > 0 {
		return id[:i]
	}
	return truncate(id, 8)
}
