// Package testsupport provides shared fixtures for package tests.
package testsupport

import (
	"path/filepath"
	"testing"

	"conform/internal/config"
	"conform/internal/store"
)

// NewConfig returns a validated config rooted in a per-test temp
// directory.
func NewConfig(t *testing.T) *config.Config {
	t.Helper()

	dir := t.TempDir()
	cfg := config.Default()
	cfg.Paths.Database = filepath.Join(dir, "conform.db")
	cfg.Paths.ThumbnailDir = filepath.Join(dir, "thumbnails")
	cfg.Paths.SnippetDir = filepath.Join(dir, "snippets")
	cfg.Paths.LogDir = filepath.Join(dir, "logs")

	if err := cfg.Validate(); err != nil {
		t.Fatalf("test config invalid: %v", err)
	}
	return &cfg
}

// MustOpenStore opens a store for cfg and closes it when the test ends.
func MustOpenStore(t *testing.T, cfg *config.Config) *store.Store {
	t.Helper()

	s, err := store.Open(cfg)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Errorf("close store: %v", err)
		}
	})
	return s
}
