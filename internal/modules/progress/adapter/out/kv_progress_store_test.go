package out_test

import (
	"context"
	"testing"

	progressout "roadmap/internal/modules/progress/adapter/out"
	"roadmap/internal/modules/progress/domain"
	"roadmap/internal/platform/kv"
)

func TestProgressDocumentShape(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	mem := kv.NewMemoryStore()
	store := progressout.NewKVProgressStore(mem)

	if err := store.Save(ctx, domain.Completions{1: {"py-1": true}, 10: {"bigdata-2": false}}); err != nil {
		t.Fatalf("save: %v", err)
	}
	raw, ok, _ := mem.Get(ctx, "dataEngineerRoadmapProgress")
	if !ok {
		t.Fatalf("expected the progress key to be written")
	}
	if string(raw) != `{"1":{"py-1":true},"10":{"bigdata-2":false}}` {
		t.Fatalf("unexpected document %s", raw)
	}

	loaded, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !loaded.IsCompleted(1, "py-1") || loaded.IsCompleted(10, "bigdata-2") {
		t.Fatalf("unexpected loaded state %v", loaded)
	}

	if err := store.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if _, ok, _ := mem.Get(ctx, "dataEngineerRoadmapProgress"); ok {
		t.Fatalf("clear must remove the key")
	}
}

func TestProgressLoadFromBrowserExportAndCorruptValue(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	mem := kv.NewMemoryStore()
	store := progressout.NewKVProgressStore(mem)

	_ = mem.Set(ctx, "dataEngineerRoadmapProgress", []byte(`{"4":{"sql-1":true,"sql-3":true}}`))
	loaded, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("load export: %v", err)
	}
	if loaded.CompletedInStage(4) != 2 {
		t.Fatalf("expected two completed SQL resources, got %v", loaded)
	}

	_ = mem.Set(ctx, "dataEngineerRoadmapProgress", []byte(`{"4":`))
	if _, err := store.Load(ctx); err == nil {
		t.Fatalf("expected decode error for corrupt value")
	}
}
