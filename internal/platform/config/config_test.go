package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewDefaults(t *testing.T) {
	t.Setenv("ROADMAP_STORAGE", "")
	t.Setenv("ROADMAP_LOG_PATH", "")
	dir := t.TempDir()

	cfg, err := New(dir)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if cfg.Storage != StorageFile || cfg.LogPath != "stderr" {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
	if cfg.StateDir != filepath.Join(dir, ".roadmap") || cfg.DBPath != filepath.Join(dir, ".roadmap", "roadmap.db") {
		t.Fatalf("unexpected layout %+v", cfg)
	}
}

func TestNewRequiresDataDir(t *testing.T) {
	if _, err := New("  "); err == nil {
		t.Fatalf("expected error for blank data dir")
	}
}

func TestEnvironmentOverrides(t *testing.T) {
	t.Setenv("ROADMAP_STORAGE", "sqlite")
	t.Setenv("ROADMAP_LOG_MODE", "production")

	cfg, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if cfg.Storage != StorageSQLite || cfg.LogMode != "production" {
		t.Fatalf("env not applied: %+v", cfg)
	}
}

func TestRejectsUnknownStorage(t *testing.T) {
	t.Setenv("ROADMAP_STORAGE", "redis")
	if _, err := New(t.TempDir()); err == nil {
		t.Fatalf("expected unsupported backend error")
	}
}

func TestDotEnvFile(t *testing.T) {
	t.Cleanup(func() { _ = os.Unsetenv("ROADMAP_CATALOG") })
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("ROADMAP_CATALOG=custom.yaml\n"), 0o644); err != nil {
		t.Fatalf("write .env: %v", err)
	}
	cfg, err := New(dir)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if cfg.CatalogPath != "custom.yaml" {
		t.Fatalf("expected catalog from .env, got %q", cfg.CatalogPath)
	}
}
