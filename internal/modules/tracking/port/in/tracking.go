package in

import (
	"context"

	"roadmap/internal/modules/tracking/dto"
)

type Usecase interface {
	SetResourceStatus(ctx context.Context, input dto.SetStatusInput) (dto.ResourceTrackingOutput, error)
	GetResourceTracking(ctx context.Context, stageID int, resourceID string) (dto.ResourceTrackingOutput, error)
	ListStageTracking(ctx context.Context, stageID int) ([]dto.ResourceTrackingOutput, error)
	AddTimeSpent(ctx context.Context, input dto.AddTimeInput) (dto.ResourceTrackingOutput, error)

	SetStageSchedule(ctx context.Context, input dto.ScheduleInput) (dto.ScheduleOutput, error)
	GetStageSchedule(ctx context.Context, stageID int) (dto.ScheduleOutput, error)
	ListStageSchedules(ctx context.Context) ([]dto.ScheduleOutput, error)

	AddWeeklyGoal(ctx context.Context, input dto.AddGoalInput) (dto.GoalOutput, error)
	ToggleWeeklyGoal(ctx context.Context, goalID string) (dto.GoalOutput, error)
	DeleteWeeklyGoal(ctx context.Context, goalID string) error
	ListWeeklyGoals(ctx context.Context) ([]dto.GoalOutput, error)

	AddDailyChecklistItem(ctx context.Context, input dto.AddChecklistInput) (dto.ChecklistItemOutput, error)
	ToggleDailyChecklistItem(ctx context.Context, itemID string) (dto.ChecklistItemOutput, error)
	// DailyChecklistForDate uses the current day when date is empty.
	DailyChecklistForDate(ctx context.Context, date string) ([]dto.ChecklistItemOutput, error)

	Analytics(ctx context.Context) (dto.AnalyticsOutput, error)
	WeakAreas(ctx context.Context) ([]dto.WeakAreaOutput, error)
}
