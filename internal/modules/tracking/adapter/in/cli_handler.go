package in

import (
	"context"

	trackingdto "roadmap/internal/modules/tracking/dto"
	trackingin "roadmap/internal/modules/tracking/port/in"
)

type CLIHandler struct {
	usecase trackingin.Usecase
}

func NewCLIHandler(usecase trackingin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) SetStatus(ctx context.Context, stageID int, resourceID, status string) (trackingdto.ResourceTrackingOutput, error) {
	return h.usecase.SetResourceStatus(ctx, trackingdto.SetStatusInput{StageID: stageID, ResourceID: resourceID, Status: status})
}

func (h CLIHandler) Resource(ctx context.Context, stageID int, resourceID string) (trackingdto.ResourceTrackingOutput, error) {
	return h.usecase.GetResourceTracking(ctx, stageID, resourceID)
}

func (h CLIHandler) StageResources(ctx context.Context, stageID int) ([]trackingdto.ResourceTrackingOutput, error) {
	return h.usecase.ListStageTracking(ctx, stageID)
}

func (h CLIHandler) AddTime(ctx context.Context, stageID int, resourceID string, minutes int) (trackingdto.ResourceTrackingOutput, error) {
	return h.usecase.AddTimeSpent(ctx, trackingdto.AddTimeInput{StageID: stageID, ResourceID: resourceID, Minutes: minutes})
}

func (h CLIHandler) SetSchedule(ctx context.Context, stageID int, startDate, endDate string) (trackingdto.ScheduleOutput, error) {
	return h.usecase.SetStageSchedule(ctx, trackingdto.ScheduleInput{StageID: stageID, StartDate: startDate, EndDate: endDate})
}

func (h CLIHandler) Schedule(ctx context.Context, stageID int) (trackingdto.ScheduleOutput, error) {
	return h.usecase.GetStageSchedule(ctx, stageID)
}

func (h CLIHandler) Schedules(ctx context.Context) ([]trackingdto.ScheduleOutput, error) {
	return h.usecase.ListStageSchedules(ctx)
}

func (h CLIHandler) AddGoal(ctx context.Context, title, description, targetDate string) (trackingdto.GoalOutput, error) {
	return h.usecase.AddWeeklyGoal(ctx, trackingdto.AddGoalInput{Title: title, Description: description, TargetDate: targetDate})
}

func (h CLIHandler) ToggleGoal(ctx context.Context, goalID string) (trackingdto.GoalOutput, error) {
	return h.usecase.ToggleWeeklyGoal(ctx, goalID)
}

func (h CLIHandler) DeleteGoal(ctx context.Context, goalID string) error {
	return h.usecase.DeleteWeeklyGoal(ctx, goalID)
}

func (h CLIHandler) Goals(ctx context.Context) ([]trackingdto.GoalOutput, error) {
	return h.usecase.ListWeeklyGoals(ctx)
}

func (h CLIHandler) AddChecklistItem(ctx context.Context, title, date string) (trackingdto.ChecklistItemOutput, error) {
	return h.usecase.AddDailyChecklistItem(ctx, trackingdto.AddChecklistInput{Title: title, Date: date})
}

func (h CLIHandler) ToggleChecklistItem(ctx context.Context, itemID string) (trackingdto.ChecklistItemOutput, error) {
	return h.usecase.ToggleDailyChecklistItem(ctx, itemID)
}

func (h CLIHandler) Checklist(ctx context.Context, date string) ([]trackingdto.ChecklistItemOutput, error) {
	return h.usecase.DailyChecklistForDate(ctx, date)
}

func (h CLIHandler) Analytics(ctx context.Context) (trackingdto.AnalyticsOutput, error) {
	return h.usecase.Analytics(ctx)
}

func (h CLIHandler) WeakAreas(ctx context.Context) ([]trackingdto.WeakAreaOutput, error) {
	return h.usecase.WeakAreas(ctx)
}
