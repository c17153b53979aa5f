package domain_test

import (
	"errors"
	"testing"
	"time"

	"roadmap/internal/modules/tracking/domain"
	apperrors "roadmap/internal/platform/errors"
)

var t0 = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

func TestParseStatus(t *testing.T) {
	t.Parallel()
	for _, v := range []string{"not-started", "watching", "Completed "} {
		if _, err := domain.ParseStatus(v); err != nil {
			t.Fatalf("ParseStatus(%q): %v", v, err)
		}
	}
	if _, err := domain.ParseStatus("paused"); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestStatusTransitions(t *testing.T) {
	t.Parallel()
	t1 := t0.Add(time.Hour)
	t2 := t0.Add(2 * time.Hour)

	r := domain.Untouched().WithStatus(domain.StatusWatching, t0)
	if r.StartDate == nil || !r.StartDate.Equal(t0) {
		t.Fatalf("watching from not-started must stamp startDate, got %+v", r)
	}
	if r.CompletedDate != nil {
		t.Fatalf("completedDate must stay unset, got %v", r.CompletedDate)
	}

	r = r.WithStatus(domain.StatusCompleted, t1)
	if r.CompletedDate == nil || !r.CompletedDate.Equal(t1) {
		t.Fatalf("completed must stamp completedDate, got %+v", r)
	}
	if !r.StartDate.Equal(t0) {
		t.Fatalf("startDate must not move, got %v", r.StartDate)
	}

	again := r.WithStatus(domain.StatusCompleted, t2)
	if !again.CompletedDate.Equal(t1) || !again.LastAccessed.Equal(t2) {
		t.Fatalf("re-applying completed must only touch lastAccessed, got %+v", again)
	}

	restarted := r.WithStatus(domain.StatusWatching, t2)
	if restarted.Status != domain.StatusWatching || restarted.CompletedDate == nil || !restarted.Restarted() {
		t.Fatalf("watching after completed must keep completedDate, got %+v", restarted)
	}
	if !restarted.StartDate.Equal(t0) {
		t.Fatalf("startDate only stamps from not-started, got %v", restarted.StartDate)
	}
}

func TestTimeSpent(t *testing.T) {
	t.Parallel()
	r, err := domain.Untouched().WithTimeSpent(30, t0)
	if err != nil {
		t.Fatalf("add time: %v", err)
	}
	r, _ = r.WithTimeSpent(15, t0.Add(time.Minute))
	if r.TimeSpent != 45 || r.Status != domain.StatusNotStarted || !r.LastAccessed.Equal(t0.Add(time.Minute)) {
		t.Fatalf("unexpected record %+v", r)
	}
	if _, err := r.WithTimeSpent(-1, t0); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for negative minutes, got %v", err)
	}
}

func TestStageSchedule(t *testing.T) {
	t.Parallel()
	sc, err := domain.NewStageSchedule("2024-01-01", "2024-01-15")
	if err != nil {
		t.Fatalf("schedule: %v", err)
	}
	if sc.EstimatedDuration != 14 {
		t.Fatalf("expected 14 days, got %d", sc.EstimatedDuration)
	}
	sc, _ = domain.NewStageSchedule("2024-01-01T00:00:00Z", "2024-01-02T06:00:00Z")
	if sc.EstimatedDuration != 2 {
		t.Fatalf("partial days round up, got %d", sc.EstimatedDuration)
	}
	sc, _ = domain.NewStageSchedule("2024-01-01", "")
	if sc.EstimatedDuration != domain.DefaultStageDuration || sc.StartDate != "2024-01-01" {
		t.Fatalf("single date keeps default duration, got %+v", sc)
	}
	if _, err := domain.NewStageSchedule("2024-02-01", "2024-01-01"); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("end before start must be rejected, got %v", err)
	}
	if _, err := domain.NewStageSchedule("soon", "2024-01-01"); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("unparseable date must be rejected, got %v", err)
	}
}

func TestStateIsCopyOnWrite(t *testing.T) {
	t.Parallel()
	base := domain.NewState()
	next := base.WithTracking(1, "py-1", domain.Untouched().WithStatus(domain.StatusWatching, t0))
	if _, ok := base.Tracking(1, "py-1"); ok {
		t.Fatalf("receiver mutated")
	}
	if r := base.TrackingOrDefault(1, "py-1"); r.Status != domain.StatusNotStarted {
		t.Fatalf("default must be not-started, got %v", r.Status)
	}
	if _, ok := next.Tracking(1, "py-1"); !ok {
		t.Fatalf("expected record in new state")
	}
	if sc := base.ScheduleOrDefault(3); sc.EstimatedDuration != 14 {
		t.Fatalf("default schedule must be 14 days, got %+v", sc)
	}

	withGoal := next.WithGoal(domain.WeeklyGoal{ID: "goal-1", Title: "SQL"})
	toggled, ok := withGoal.WithGoalToggled("goal-1")
	if !ok || !toggled.WeeklyGoals[0].Completed || withGoal.WeeklyGoals[0].Completed {
		t.Fatalf("goal toggle must copy, got %+v / %+v", toggled.WeeklyGoals, withGoal.WeeklyGoals)
	}
	if _, ok := withGoal.WithGoalToggled("goal-404"); ok {
		t.Fatalf("unknown goal must report no match")
	}
	deleted, ok := toggled.WithoutGoal("goal-1")
	if !ok || len(deleted.WeeklyGoals) != 0 || len(toggled.WeeklyGoals) != 1 {
		t.Fatalf("delete must copy, got %+v / %+v", deleted.WeeklyGoals, toggled.WeeklyGoals)
	}
}

func TestChecklistForDate(t *testing.T) {
	t.Parallel()
	s := domain.NewState().
		WithChecklistItem(domain.DailyChecklistItem{ID: "checklist-1", Title: "a", Date: "2024-03-01"}).
		WithChecklistItem(domain.DailyChecklistItem{ID: "checklist-2", Title: "b", Date: "2024-03-02"}).
		WithChecklistItem(domain.DailyChecklistItem{ID: "checklist-3", Title: "c", Date: "2024-03-01"})
	items := s.ChecklistForDate("2024-03-01")
	if len(items) != 2 || items[0].ID != "checklist-1" || items[1].ID != "checklist-3" {
		t.Fatalf("unexpected items %+v", items)
	}
	toggled, ok := s.WithChecklistItemToggled("checklist-2")
	if !ok || !toggled.ChecklistForDate("2024-03-02")[0].Completed {
		t.Fatalf("toggle failed")
	}
}
