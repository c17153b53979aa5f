package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	catalogin "roadmap/internal/modules/catalog/port/in"
	"roadmap/internal/modules/tracking/domain"
	"roadmap/internal/modules/tracking/dto"
	trackingin "roadmap/internal/modules/tracking/port/in"
	"roadmap/internal/modules/tracking/service"
	"roadmap/internal/platform/clock"
	apperrors "roadmap/internal/platform/errors"
	"roadmap/internal/platform/validate"
)

type Interactor struct {
	svc     *service.TrackingService
	catalog catalogin.Usecase
}

func NewInteractor(svc *service.TrackingService, catalog catalogin.Usecase) trackingin.Usecase {
	return &Interactor{svc: svc, catalog: catalog}
}

func (i *Interactor) SetResourceStatus(ctx context.Context, input dto.SetStatusInput) (dto.ResourceTrackingOutput, error) {
	status, err := domain.ParseStatus(input.Status)
	if err != nil {
		return dto.ResourceTrackingOutput{}, err
	}
	name, err := i.resourceName(ctx, input.StageID, input.ResourceID)
	if err != nil {
		return dto.ResourceTrackingOutput{}, err
	}
	r, err := i.svc.SetResourceStatus(ctx, input.StageID, input.ResourceID, status)
	if err != nil && !isNotSaved(err) {
		return dto.ResourceTrackingOutput{}, err
	}
	return toTrackingOutput(input.StageID, input.ResourceID, name, r, true), err
}

func (i *Interactor) GetResourceTracking(ctx context.Context, stageID int, resourceID string) (dto.ResourceTrackingOutput, error) {
	name, err := i.resourceName(ctx, stageID, resourceID)
	if err != nil {
		return dto.ResourceTrackingOutput{}, err
	}
	r, ok := i.svc.Snapshot(ctx).Tracking(stageID, resourceID)
	if !ok {
		r = domain.Untouched()
	}
	return toTrackingOutput(stageID, resourceID, name, r, ok), nil
}

func (i *Interactor) ListStageTracking(ctx context.Context, stageID int) ([]dto.ResourceTrackingOutput, error) {
	stage, err := i.catalog.GetStage(ctx, stageID)
	if err != nil {
		return nil, err
	}
	state := i.svc.Snapshot(ctx)
	out := make([]dto.ResourceTrackingOutput, 0, len(stage.Resources))
	for _, res := range stage.Resources {
		r, ok := state.Tracking(stageID, res.ID)
		if !ok {
			r = domain.Untouched()
		}
		out = append(out, toTrackingOutput(stageID, res.ID, res.Name, r, ok))
	}
	return out, nil
}

func (i *Interactor) AddTimeSpent(ctx context.Context, input dto.AddTimeInput) (dto.ResourceTrackingOutput, error) {
	if err := validate.Struct(input); err != nil {
		return dto.ResourceTrackingOutput{}, err
	}
	name, err := i.resourceName(ctx, input.StageID, input.ResourceID)
	if err != nil {
		return dto.ResourceTrackingOutput{}, err
	}
	r, err := i.svc.AddTimeSpent(ctx, input.StageID, input.ResourceID, input.Minutes)
	if err != nil && !isNotSaved(err) {
		return dto.ResourceTrackingOutput{}, err
	}
	return toTrackingOutput(input.StageID, input.ResourceID, name, r, true), err
}

func (i *Interactor) SetStageSchedule(ctx context.Context, input dto.ScheduleInput) (dto.ScheduleOutput, error) {
	stage, err := i.catalog.GetStage(ctx, input.StageID)
	if err != nil {
		return dto.ScheduleOutput{}, err
	}
	sc, err := i.svc.SetStageSchedule(ctx, input.StageID, strings.TrimSpace(input.StartDate), strings.TrimSpace(input.EndDate))
	if err != nil && !isNotSaved(err) {
		return dto.ScheduleOutput{}, err
	}
	return toScheduleOutput(stage.ID, stage.Title, sc, true), err
}

func (i *Interactor) GetStageSchedule(ctx context.Context, stageID int) (dto.ScheduleOutput, error) {
	stage, err := i.catalog.GetStage(ctx, stageID)
	if err != nil {
		return dto.ScheduleOutput{}, err
	}
	sc, ok := i.svc.Snapshot(ctx).Schedule(stageID)
	if !ok {
		sc = domain.DefaultSchedule()
	}
	return toScheduleOutput(stage.ID, stage.Title, sc, ok), nil
}

// ListStageSchedules covers every catalog stage, defaulted where unset.
func (i *Interactor) ListStageSchedules(ctx context.Context) ([]dto.ScheduleOutput, error) {
	stages, err := i.catalog.ListStages(ctx)
	if err != nil {
		return nil, err
	}
	state := i.svc.Snapshot(ctx)
	out := make([]dto.ScheduleOutput, 0, len(stages))
	for _, stage := range stages {
		sc, ok := state.Schedule(stage.ID)
		if !ok {
			sc = domain.DefaultSchedule()
		}
		out = append(out, toScheduleOutput(stage.ID, stage.Title, sc, ok))
	}
	return out, nil
}

func (i *Interactor) AddWeeklyGoal(ctx context.Context, input dto.AddGoalInput) (dto.GoalOutput, error) {
	input.Title = strings.TrimSpace(input.Title)
	input.Description = strings.TrimSpace(input.Description)
	input.TargetDate = strings.TrimSpace(input.TargetDate)
	if err := validate.Struct(input); err != nil {
		return dto.GoalOutput{}, err
	}
	if _, err := clock.ParseDay(input.TargetDate); err != nil {
		return dto.GoalOutput{}, fmt.Errorf("%w: target date %q", apperrors.ErrInvalidInput, input.TargetDate)
	}
	goal, err := i.svc.AddWeeklyGoal(ctx, input.Title, input.Description, input.TargetDate)
	if err != nil && !isNotSaved(err) {
		return dto.GoalOutput{}, err
	}
	return toGoalOutput(goal), err
}

func (i *Interactor) ToggleWeeklyGoal(ctx context.Context, goalID string) (dto.GoalOutput, error) {
	goal, found, err := i.svc.ToggleWeeklyGoal(ctx, goalID)
	if err != nil && !isNotSaved(err) {
		return dto.GoalOutput{}, err
	}
	if !found {
		return dto.GoalOutput{}, fmt.Errorf("%w: goal %q", apperrors.ErrNotFound, goalID)
	}
	return toGoalOutput(goal), err
}

func (i *Interactor) DeleteWeeklyGoal(ctx context.Context, goalID string) error {
	found, err := i.svc.DeleteWeeklyGoal(ctx, goalID)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("%w: goal %q", apperrors.ErrNotFound, goalID)
	}
	return nil
}

func (i *Interactor) ListWeeklyGoals(ctx context.Context) ([]dto.GoalOutput, error) {
	goals := i.svc.Snapshot(ctx).WeeklyGoals
	out := make([]dto.GoalOutput, 0, len(goals))
	for _, g := range goals {
		out = append(out, toGoalOutput(g))
	}
	return out, nil
}

func (i *Interactor) AddDailyChecklistItem(ctx context.Context, input dto.AddChecklistInput) (dto.ChecklistItemOutput, error) {
	input.Title = strings.TrimSpace(input.Title)
	input.Date = strings.TrimSpace(input.Date)
	if err := validate.Struct(input); err != nil {
		return dto.ChecklistItemOutput{}, err
	}
	if err := checkDay(input.Date); err != nil {
		return dto.ChecklistItemOutput{}, err
	}
	item, err := i.svc.AddDailyChecklistItem(ctx, input.Title, input.Date)
	if err != nil && !isNotSaved(err) {
		return dto.ChecklistItemOutput{}, err
	}
	return toChecklistOutput(item), err
}

func (i *Interactor) ToggleDailyChecklistItem(ctx context.Context, itemID string) (dto.ChecklistItemOutput, error) {
	item, found, err := i.svc.ToggleDailyChecklistItem(ctx, itemID)
	if err != nil && !isNotSaved(err) {
		return dto.ChecklistItemOutput{}, err
	}
	if !found {
		return dto.ChecklistItemOutput{}, fmt.Errorf("%w: checklist item %q", apperrors.ErrNotFound, itemID)
	}
	return toChecklistOutput(item), err
}

func (i *Interactor) DailyChecklistForDate(ctx context.Context, date string) ([]dto.ChecklistItemOutput, error) {
	date = strings.TrimSpace(date)
	if date == "" {
		date = i.svc.Today()
	}
	if err := checkDay(date); err != nil {
		return nil, err
	}
	items := i.svc.Snapshot(ctx).ChecklistForDate(date)
	out := make([]dto.ChecklistItemOutput, 0, len(items))
	for _, item := range items {
		out = append(out, toChecklistOutput(item))
	}
	return out, nil
}

func (i *Interactor) Analytics(ctx context.Context) (dto.AnalyticsOutput, error) {
	weak, err := i.WeakAreas(ctx)
	if err != nil {
		return dto.AnalyticsOutput{}, err
	}
	a := i.svc.Analytics(ctx)
	return dto.AnalyticsOutput{
		TotalTimeSpent:        a.TotalTimeSpent,
		TotalTimeLabel:        FormatMinutes(a.TotalTimeSpent),
		TotalHours:            int(math.Round(float64(a.TotalTimeSpent) / 60)),
		TopicsRestarted:       a.TopicsRestarted,
		TopicsDelayed:         a.TopicsDelayed,
		AverageCompletionTime: a.AverageCompletionTime,
		CompletionSpeed:       CompletionSpeed(a.AverageCompletionTime),
		StreakDays:            a.StreakDays,
		LastActivityDate:      a.LastActivityDate,
		CompletedResources:    a.CompletedResources,
		TrackedResources:      a.TrackedResources,
		WeakAreas:             weak,
		Insights:              insights(a.TotalTimeSpent, a.TopicsRestarted, len(weak)),
	}, nil
}

func (i *Interactor) WeakAreas(ctx context.Context) ([]dto.WeakAreaOutput, error) {
	summary, err := i.catalog.Summary(ctx)
	if err != nil {
		return nil, err
	}
	areas := i.svc.Snapshot(ctx).WeakAreas()
	out := make([]dto.WeakAreaOutput, 0, len(areas))
	for _, area := range areas {
		title, ok := summary.StageNames[area.StageID]
		if !ok {
			title = fmt.Sprintf("Stage %d", area.StageID)
		}
		out = append(out, dto.WeakAreaOutput{StageID: area.StageID, StageTitle: title, Count: area.Count, Label: weakAreaLabel(area.Count)})
	}
	return out, nil
}

func (i *Interactor) resourceName(ctx context.Context, stageID int, resourceID string) (string, error) {
	res, err := i.catalog.FindResource(ctx, stageID, resourceID)
	if err != nil {
		return "", err
	}
	return res.Name, nil
}

func checkDay(value string) error {
	if value == "" {
		return nil
	}
	if _, err := time.Parse(clock.DayLayout, value); err != nil {
		return fmt.Errorf("%w: date %q must be YYYY-MM-DD", apperrors.ErrInvalidInput, value)
	}
	return nil
}

func isNotSaved(err error) bool {
	return errors.Is(err, apperrors.ErrNotSaved)
}

func toTrackingOutput(stageID int, resourceID, name string, r domain.ResourceTracking, tracked bool) dto.ResourceTrackingOutput {
	return dto.ResourceTrackingOutput{
		StageID:       stageID,
		ResourceID:    resourceID,
		ResourceName:  name,
		Tracked:       tracked,
		Status:        string(r.Status),
		StartDate:     r.StartDate,
		CompletedDate: r.CompletedDate,
		TimeSpent:     r.TimeSpent,
		TimeLabel:     FormatMinutes(r.TimeSpent),
		LastAccessed:  r.LastAccessed,
	}
}

func toScheduleOutput(stageID int, title string, sc domain.StageSchedule, scheduled bool) dto.ScheduleOutput {
	return dto.ScheduleOutput{
		StageID:           stageID,
		StageTitle:        title,
		Scheduled:         scheduled,
		StartDate:         sc.StartDate,
		EndDate:           sc.EndDate,
		EstimatedDuration: sc.EstimatedDuration,
	}
}

func toGoalOutput(g domain.WeeklyGoal) dto.GoalOutput {
	return dto.GoalOutput{ID: g.ID, Title: g.Title, Description: g.Description, TargetDate: g.TargetDate, Completed: g.Completed, CreatedDate: g.CreatedDate}
}

func toChecklistOutput(item domain.DailyChecklistItem) dto.ChecklistItemOutput {
	return dto.ChecklistItemOutput{ID: item.ID, Title: item.Title, Completed: item.Completed, Date: item.Date}
}
