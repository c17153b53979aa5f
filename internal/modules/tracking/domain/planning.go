package domain

import "time"

type WeeklyGoal struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	TargetDate  string    `json:"targetDate"`
	Completed   bool      `json:"completed"`
	CreatedDate time.Time `json:"createdDate"`
}

// DailyChecklistItem has no delete operation; items stay until the document is reset.
type DailyChecklistItem struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
	Date      string `json:"date"`
}

const (
	GoalIDPrefix      = "goal-"
	ChecklistIDPrefix = "checklist-"
)
