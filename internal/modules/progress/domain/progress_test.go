package domain_test

import (
	"testing"

	"roadmap/internal/modules/progress/domain"
)

func TestUntouchedResourceIsNotCompleted(t *testing.T) {
	t.Parallel()
	c := domain.Completions{}
	if c.IsCompleted(1, "py-1") {
		t.Fatalf("absent resource must read as not completed")
	}
	if c.CompletedInStage(3) != 0 {
		t.Fatalf("absent stage must count zero")
	}
}

func TestToggleIsItsOwnInverseAndCopyOnWrite(t *testing.T) {
	t.Parallel()
	original := domain.Completions{}
	once := original.Toggled(1, "py-1")
	if !once.IsCompleted(1, "py-1") {
		t.Fatalf("first toggle must complete the resource")
	}
	if original.IsCompleted(1, "py-1") || len(original) != 0 {
		t.Fatalf("toggle must not mutate the receiver: %v", original)
	}
	twice := once.Toggled(1, "py-1")
	if twice.IsCompleted(1, "py-1") {
		t.Fatalf("second toggle must restore the original value")
	}
	if !once.IsCompleted(1, "py-1") {
		t.Fatalf("earlier snapshot changed after a later toggle")
	}
}

func TestStagePercent(t *testing.T) {
	t.Parallel()
	c := domain.Completions{1: {"py-1": true, "py-2": false}, 2: {"lib-1": true, "lib-2": true}}
	cases := []struct {
		stage, total, want int
	}{
		{1, 2, 50},
		{2, 3, 67},
		{1, 0, 0},
		{9, 0, 0},
		{9, 4, 0},
	}
	for _, tc := range cases {
		if got := c.StagePercent(tc.stage, tc.total); got != tc.want {
			t.Fatalf("StagePercent(%d, %d) = %d, want %d", tc.stage, tc.total, got, tc.want)
		}
	}
}

func TestTotalPercent(t *testing.T) {
	t.Parallel()
	c := domain.Completions{1: {"a": true}, 2: {"x": true, "y": false}}
	if got := c.TotalPercent(2, map[int]int{1: 2, 2: 3}); got != 40 {
		t.Fatalf("expected 40, got %d", got)
	}
	if got := c.TotalPercent(0, map[int]int{1: 2}); got != 0 {
		t.Fatalf("zero stages must yield 0, got %d", got)
	}
	if got := c.TotalPercent(2, map[int]int{1: 0, 2: 0}); got != 0 {
		t.Fatalf("zero resources must yield 0, got %d", got)
	}
	extra := domain.Completions{1: {"a": true}, 5: {"z": true}}
	if got := extra.TotalPercent(1, map[int]int{1: 4}); got != 25 {
		t.Fatalf("stages outside resourcesPerStage must be ignored, got %d", got)
	}
}
