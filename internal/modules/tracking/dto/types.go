package dto

import "time"

type SetStatusInput struct {
	StageID    int
	ResourceID string
	Status     string
}

type AddTimeInput struct {
	StageID    int
	ResourceID string
	Minutes    int `validate:"gte=0"`
}

type ResourceTrackingOutput struct {
	StageID       int
	ResourceID    string
	ResourceName  string
	Tracked       bool
	Status        string
	StartDate     *time.Time
	CompletedDate *time.Time
	TimeSpent     int
	TimeLabel     string
	LastAccessed  *time.Time
}

type ScheduleInput struct {
	StageID   int
	StartDate string
	EndDate   string
}

type ScheduleOutput struct {
	StageID           int
	StageTitle        string
	Scheduled         bool
	StartDate         string
	EndDate           string
	EstimatedDuration int
}

type AddGoalInput struct {
	Title       string `validate:"required,max=200"`
	Description string `validate:"max=2000"`
	TargetDate  string `validate:"required"`
}

type GoalOutput struct {
	ID          string
	Title       string
	Description string
	TargetDate  string
	Completed   bool
	CreatedDate time.Time
}

type AddChecklistInput struct {
	Title string `validate:"required,max=200"`
	Date  string
}

type ChecklistItemOutput struct {
	ID        string
	Title     string
	Completed bool
	Date      string
}

type WeakAreaOutput struct {
	StageID    int
	StageTitle string
	Count      int
	Label      string
}

type AnalyticsOutput struct {
	TotalTimeSpent        int
	TotalTimeLabel        string
	TotalHours            int
	TopicsRestarted       int
	TopicsDelayed         int
	AverageCompletionTime int
	CompletionSpeed       string
	StreakDays            int
	LastActivityDate      *time.Time
	CompletedResources    int
	TrackedResources      int
	WeakAreas             []WeakAreaOutput
	Insights              []string
}
