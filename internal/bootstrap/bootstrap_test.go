package bootstrap_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"roadmap/internal/bootstrap"
	"roadmap/internal/platform/config"
)

func testConfig(t *testing.T, storage string) config.Config {
	t.Helper()
	dir := t.TempDir()
	return config.Config{
		DataDir:   dir,
		StateDir:  filepath.Join(dir, ".roadmap"),
		Storage:   storage,
		DBPath:    filepath.Join(dir, ".roadmap", "roadmap.db"),
		ReportDir: filepath.Join(dir, "reports"),
		LogMode:   "development",
		LogPath:   filepath.Join(dir, "roadmap.log"),
	}
}

func TestProgressPersistsAcrossAppsForEachBackend(t *testing.T) {
	t.Parallel()
	for _, storage := range []string{config.StorageFile, config.StorageSQLite} {
		storage := storage
		t.Run(storage, func(t *testing.T) {
			t.Parallel()
			ctx := context.Background()
			cfg := testConfig(t, storage)

			first, err := bootstrap.New(cfg)
			if err != nil {
				t.Fatalf("new app: %v", err)
			}
			if _, err := first.ProgressCLI.Toggle(ctx, 1, "py-1"); err != nil {
				t.Fatalf("toggle: %v", err)
			}
			if _, err := first.TrackingCLI.AddGoal(ctx, "Finish Python", "", "2024-06-09"); err != nil {
				t.Fatalf("add goal: %v", err)
			}
			if err := first.Close(); err != nil {
				t.Fatalf("close: %v", err)
			}

			second, err := bootstrap.New(cfg)
			if err != nil {
				t.Fatalf("reopen app: %v", err)
			}
			defer second.Close()
			done, _ := second.ProgressCLI.IsCompleted(ctx, 1, "py-1")
			goals, _ := second.TrackingCLI.Goals(ctx)
			if !done || len(goals) != 1 {
				t.Fatalf("state lost across restart: done=%v goals=%+v", done, goals)
			}
		})
	}
}

func TestFileBackendWritesOneFilePerKey(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	cfg := testConfig(t, config.StorageFile)
	app, err := bootstrap.New(cfg)
	if err != nil {
		t.Fatalf("new app: %v", err)
	}
	defer app.Close()
	if _, err := app.ProgressCLI.Toggle(ctx, 2, "lib-1"); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if _, err := app.TrackingCLI.SetStatus(ctx, 2, "lib-1", "watching"); err != nil {
		t.Fatalf("status: %v", err)
	}
	for _, name := range []string{"dataEngineerRoadmapProgress.json", "dataEngineerAdvancedTracking.json"} {
		if _, err := os.Stat(filepath.Join(cfg.StateDir, name)); err != nil {
			t.Fatalf("expected %s: %v", name, err)
		}
	}
}
