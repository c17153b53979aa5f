package usecase_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	catalogout "roadmap/internal/modules/catalog/adapter/out"
	catalogservice "roadmap/internal/modules/catalog/service"
	catalogusecase "roadmap/internal/modules/catalog/usecase"
	trackingout "roadmap/internal/modules/tracking/adapter/out"
	"roadmap/internal/modules/tracking/dto"
	trackingin "roadmap/internal/modules/tracking/port/in"
	"roadmap/internal/modules/tracking/service"
	trackingusecase "roadmap/internal/modules/tracking/usecase"
	apperrors "roadmap/internal/platform/errors"
	"roadmap/internal/platform/id"
	"roadmap/internal/platform/kv"
)

// fakeClock hands out times in order and repeats the last one.
type fakeClock struct {
	mu    sync.Mutex
	times []time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.times[0]
	if len(c.times) > 1 {
		c.times = c.times[1:]
	}
	return now
}

type failingKV struct {
	kv.Store
}

func (failingKV) Set(context.Context, string, []byte) error { return errors.New("quota exceeded") }

func newTracking(store kv.Store, clk *fakeClock) trackingin.Usecase {
	catalogUC := catalogusecase.NewInteractor(catalogservice.NewCatalogService(catalogout.NewYAMLCatalogSource("")))
	svc := service.NewTrackingService(clk, id.TimeOrdered{}, trackingout.NewKVStateStore(store, nil), nil)
	return trackingusecase.NewInteractor(svc, catalogUC)
}

func at(hour int) time.Time {
	return time.Date(2024, 6, 3, hour, 0, 0, 0, time.UTC)
}

func TestUntouchedResourceDefaults(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := kv.NewMemoryStore()
	uc := newTracking(store, &fakeClock{times: []time.Time{at(9)}})

	r, err := uc.GetResourceTracking(ctx, 1, "py-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if r.Tracked || r.Status != "not-started" || r.TimeSpent != 0 || r.ResourceName == "" {
		t.Fatalf("unexpected default record %+v", r)
	}
	if _, ok, _ := store.Get(ctx, "dataEngineerAdvancedTracking"); ok {
		t.Fatalf("reading must not materialise a document")
	}
	sc, _ := uc.GetStageSchedule(ctx, 1)
	if sc.Scheduled || sc.EstimatedDuration != 14 {
		t.Fatalf("unexpected default schedule %+v", sc)
	}
}

func TestRestartFlow(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	uc := newTracking(kv.NewMemoryStore(), &fakeClock{times: []time.Time{at(9), at(10), at(11), at(12)}})

	w, err := uc.SetResourceStatus(ctx, dto.SetStatusInput{StageID: 4, ResourceID: "sql-1", Status: "watching"})
	if err != nil {
		t.Fatalf("watching: %v", err)
	}
	if w.StartDate == nil || !w.StartDate.Equal(at(9)) || w.CompletedDate != nil {
		t.Fatalf("unexpected watching record %+v", w)
	}
	c, _ := uc.SetResourceStatus(ctx, dto.SetStatusInput{StageID: 4, ResourceID: "sql-1", Status: "completed"})
	if c.CompletedDate == nil || !c.CompletedDate.Equal(at(10)) {
		t.Fatalf("unexpected completed record %+v", c)
	}
	again, _ := uc.SetResourceStatus(ctx, dto.SetStatusInput{StageID: 4, ResourceID: "sql-1", Status: "watching"})
	if again.Status != "watching" || again.CompletedDate == nil || !again.StartDate.Equal(at(9)) {
		t.Fatalf("unexpected restarted record %+v", again)
	}

	a, err := uc.Analytics(ctx)
	if err != nil {
		t.Fatalf("analytics: %v", err)
	}
	if a.TopicsRestarted != 1 {
		t.Fatalf("expected one restart, got %+v", a)
	}
	weak, _ := uc.WeakAreas(ctx)
	if len(weak) != 1 || weak[0].StageID != 4 || weak[0].StageTitle == "" || weak[0].Label != "1 resource in progress" {
		t.Fatalf("unexpected weak areas %+v", weak)
	}
}

func TestStatusValidation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	uc := newTracking(kv.NewMemoryStore(), &fakeClock{times: []time.Time{at(9)}})
	if _, err := uc.SetResourceStatus(ctx, dto.SetStatusInput{StageID: 1, ResourceID: "py-1", Status: "paused"}); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if _, err := uc.SetResourceStatus(ctx, dto.SetStatusInput{StageID: 1, ResourceID: "ghost", Status: "watching"}); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := uc.AddTimeSpent(ctx, dto.AddTimeInput{StageID: 1, ResourceID: "py-1", Minutes: -5}); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for negative minutes, got %v", err)
	}
}

func TestTimeSpentAndAnalytics(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	uc := newTracking(kv.NewMemoryStore(), &fakeClock{times: []time.Time{at(9)}})

	empty, _ := uc.Analytics(ctx)
	if empty.TotalTimeSpent != 0 || empty.StreakDays != 0 || empty.LastActivityDate != nil || empty.CompletionSpeed != "Not started" {
		t.Fatalf("unexpected empty analytics %+v", empty)
	}

	if _, err := uc.AddTimeSpent(ctx, dto.AddTimeInput{StageID: 1, ResourceID: "py-1", Minutes: 90}); err != nil {
		t.Fatalf("add time: %v", err)
	}
	r, _ := uc.AddTimeSpent(ctx, dto.AddTimeInput{StageID: 1, ResourceID: "py-1", Minutes: 35})
	if r.TimeSpent != 125 || r.TimeLabel != "2h 5m" || r.Status != "not-started" {
		t.Fatalf("unexpected record %+v", r)
	}
	a, _ := uc.Analytics(ctx)
	if a.TotalTimeSpent != 125 || a.TotalTimeLabel != "2h 5m" || a.TotalHours != 2 || a.StreakDays != 1 {
		t.Fatalf("unexpected analytics %+v", a)
	}
	if len(a.Insights) == 0 || !strings.Contains(a.Insights[0], "2h 5m") {
		t.Fatalf("unexpected insights %v", a.Insights)
	}
}

func TestSchedules(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := kv.NewMemoryStore()
	clk := &fakeClock{times: []time.Time{at(9)}}
	uc := newTracking(store, clk)

	sc, err := uc.SetStageSchedule(ctx, dto.ScheduleInput{StageID: 1, StartDate: "2024-01-01", EndDate: "2024-01-15"})
	if err != nil {
		t.Fatalf("set schedule: %v", err)
	}
	if sc.EstimatedDuration != 14 || !sc.Scheduled || sc.StageTitle != "Python Fundamentals" {
		t.Fatalf("unexpected schedule %+v", sc)
	}
	if _, err := uc.SetStageSchedule(ctx, dto.ScheduleInput{StageID: 1, StartDate: "2024-02-01", EndDate: "2024-01-01"}); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if _, err := uc.SetStageSchedule(ctx, dto.ScheduleInput{StageID: 42, StartDate: "2024-01-01", EndDate: "2024-01-02"}); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	all, _ := uc.ListStageSchedules(ctx)
	if len(all) != 11 || !all[0].Scheduled || all[1].Scheduled || all[1].EstimatedDuration != 14 {
		t.Fatalf("unexpected schedules %+v", all)
	}

	reloaded := newTracking(store, clk)
	got, _ := reloaded.GetStageSchedule(ctx, 1)
	if got.EstimatedDuration != 14 || got.StartDate != "2024-01-01" {
		t.Fatalf("schedule lost across restart: %+v", got)
	}
}

func TestWeeklyGoals(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	uc := newTracking(kv.NewMemoryStore(), &fakeClock{times: []time.Time{at(9), at(10)}})

	if _, err := uc.AddWeeklyGoal(ctx, dto.AddGoalInput{Title: "  ", TargetDate: "2024-06-09"}); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("blank title must be rejected, got %v", err)
	}
	if _, err := uc.AddWeeklyGoal(ctx, dto.AddGoalInput{Title: "SQL joins", TargetDate: "next week"}); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("bad target date must be rejected, got %v", err)
	}

	first, err := uc.AddWeeklyGoal(ctx, dto.AddGoalInput{Title: "SQL joins", TargetDate: "2024-06-09"})
	if err != nil {
		t.Fatalf("add goal: %v", err)
	}
	second, _ := uc.AddWeeklyGoal(ctx, dto.AddGoalInput{Title: "Airflow DAG", Description: "Build one", TargetDate: "2024-06-09"})
	if !strings.HasPrefix(first.ID, "goal-") || first.ID == second.ID || first.Completed {
		t.Fatalf("unexpected goals %+v %+v", first, second)
	}

	toggled, err := uc.ToggleWeeklyGoal(ctx, first.ID)
	if err != nil || !toggled.Completed {
		t.Fatalf("toggle: %+v %v", toggled, err)
	}
	if _, err := uc.ToggleWeeklyGoal(ctx, "goal-missing"); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := uc.DeleteWeeklyGoal(ctx, second.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := uc.DeleteWeeklyGoal(ctx, second.ID); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("second delete must report not found, got %v", err)
	}
	goals, _ := uc.ListWeeklyGoals(ctx)
	if len(goals) != 1 || goals[0].ID != first.ID || !goals[0].Completed {
		t.Fatalf("unexpected goals %+v", goals)
	}
}

func TestDailyChecklist(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	uc := newTracking(kv.NewMemoryStore(), &fakeClock{times: []time.Time{at(9)}})

	today, err := uc.AddDailyChecklistItem(ctx, dto.AddChecklistInput{Title: "Watch one lesson"})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if today.Date != "2024-06-03" || !strings.HasPrefix(today.ID, "checklist-") {
		t.Fatalf("unexpected item %+v", today)
	}
	if _, err := uc.AddDailyChecklistItem(ctx, dto.AddChecklistInput{Title: "Review notes", Date: "2024-06-04"}); err != nil {
		t.Fatalf("add dated: %v", err)
	}
	if _, err := uc.AddDailyChecklistItem(ctx, dto.AddChecklistInput{Title: "x", Date: "June 4"}); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}

	items, _ := uc.DailyChecklistForDate(ctx, "")
	if len(items) != 1 || items[0].ID != today.ID {
		t.Fatalf("unexpected items for today %+v", items)
	}
	toggled, err := uc.ToggleDailyChecklistItem(ctx, today.ID)
	if err != nil || !toggled.Completed {
		t.Fatalf("toggle: %+v %v", toggled, err)
	}
	if _, err := uc.ToggleDailyChecklistItem(ctx, "checklist-missing"); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	tomorrow, _ := uc.DailyChecklistForDate(ctx, "2024-06-04")
	if len(tomorrow) != 1 || tomorrow[0].Completed {
		t.Fatalf("unexpected items for tomorrow %+v", tomorrow)
	}
}

func TestCorruptDocumentFallsBackToDefaults(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := kv.NewMemoryStore()
	_ = store.Set(ctx, "dataEngineerAdvancedTracking", []byte("{broken"))
	uc := newTracking(store, &fakeClock{times: []time.Time{at(9)}})

	goals, err := uc.ListWeeklyGoals(ctx)
	if err != nil || len(goals) != 0 {
		t.Fatalf("expected empty goals, got %+v %v", goals, err)
	}
	if _, err := uc.AddWeeklyGoal(ctx, dto.AddGoalInput{Title: "Recover", TargetDate: "2024-06-10"}); err != nil {
		t.Fatalf("add after corrupt load: %v", err)
	}
	raw, _, _ := store.Get(ctx, "dataEngineerAdvancedTracking")
	if strings.Contains(string(raw), "{broken") {
		t.Fatalf("next write must replace the corrupt value")
	}
}

func TestWriteFailureKeepsState(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	uc := newTracking(failingKV{Store: kv.NewMemoryStore()}, &fakeClock{times: []time.Time{at(9)}})

	goal, err := uc.AddWeeklyGoal(ctx, dto.AddGoalInput{Title: "Spark", TargetDate: "2024-06-09"})
	if !errors.Is(err, apperrors.ErrNotSaved) {
		t.Fatalf("expected ErrNotSaved, got %v", err)
	}
	if goal.ID == "" {
		t.Fatalf("output must be returned with ErrNotSaved")
	}
	goals, _ := uc.ListWeeklyGoals(ctx)
	if len(goals) != 1 {
		t.Fatalf("in-memory goal lost after failed write: %+v", goals)
	}
}

func TestLabels(t *testing.T) {
	t.Parallel()
	for minutes, want := range map[int]string{0: "0m", 45: "45m", 60: "1h", 125: "2h 5m"} {
		if got := trackingusecase.FormatMinutes(minutes); got != want {
			t.Fatalf("FormatMinutes(%d) = %q, want %q", minutes, got, want)
		}
	}
	for avg, want := range map[int]string{0: "Not started", 1: "Very fast", 3: "Fast", 7: "Moderate", 60: "Slow"} {
		if got := trackingusecase.CompletionSpeed(avg); got != want {
			t.Fatalf("CompletionSpeed(%d) = %q, want %q", avg, got, want)
		}
	}
}
