package domain_test

import (
	"testing"
	"time"

	"roadmap/internal/modules/tracking/domain"
)

func TestAnalyticsOfEmptyState(t *testing.T) {
	t.Parallel()
	a := domain.NewState().Analytics(t0)
	if a.TotalTimeSpent != 0 || a.AverageCompletionTime != 0 || a.StreakDays != 0 || a.LastActivityDate != nil {
		t.Fatalf("unexpected analytics %+v", a)
	}
}

func TestAnalyticsDerivation(t *testing.T) {
	t.Parallel()
	watching := domain.Untouched().WithStatus(domain.StatusWatching, t0)
	watching, _ = watching.WithTimeSpent(40, t0)
	done := domain.Untouched().WithStatus(domain.StatusCompleted, t0.Add(time.Hour))
	done, _ = done.WithTimeSpent(20, t0.Add(2*time.Hour))
	restarted := domain.Untouched().
		WithStatus(domain.StatusCompleted, t0).
		WithStatus(domain.StatusWatching, t0.Add(30*time.Minute))

	s := domain.NewState().
		WithTracking(1, "py-1", watching).
		WithTracking(1, "py-2", done).
		WithTracking(2, "lib-1", restarted)

	a := s.Analytics(t0.Add(3 * time.Hour))
	if a.TotalTimeSpent != 60 {
		t.Fatalf("total time: got %d", a.TotalTimeSpent)
	}
	if a.TopicsRestarted != 1 || a.TopicsDelayed != 0 {
		t.Fatalf("restart/delay counts: %+v", a)
	}
	if a.AverageCompletionTime != 3600 {
		t.Fatalf("average completion: got %d", a.AverageCompletionTime)
	}
	if a.LastActivityDate == nil || !a.LastActivityDate.Equal(t0.Add(2*time.Hour)) {
		t.Fatalf("last activity: got %v", a.LastActivityDate)
	}
	if a.StreakDays != 1 {
		t.Fatalf("activity within a day keeps the streak, got %d", a.StreakDays)
	}
	if old := s.Analytics(t0.Add(72 * time.Hour)); old.StreakDays != 0 {
		t.Fatalf("stale activity breaks the streak, got %d", old.StreakDays)
	}
}

func TestWeakAreas(t *testing.T) {
	t.Parallel()
	w := domain.Untouched().WithStatus(domain.StatusWatching, t0)
	c := domain.Untouched().WithStatus(domain.StatusCompleted, t0)
	s := domain.NewState().
		WithTracking(4, "sql-1", w).
		WithTracking(2, "lib-1", w).
		WithTracking(2, "lib-2", w).
		WithTracking(3, "git-1", w).
		WithTracking(5, "x", c)

	areas := s.WeakAreas()
	want := []domain.WeakArea{{StageID: 2, Count: 2}, {StageID: 3, Count: 1}, {StageID: 4, Count: 1}}
	if len(areas) != len(want) {
		t.Fatalf("expected %v, got %v", want, areas)
	}
	for i := range want {
		if areas[i] != want[i] {
			t.Fatalf("position %d: expected %v, got %v", i, want[i], areas[i])
		}
	}
}
