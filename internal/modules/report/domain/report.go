package domain

import "time"

const SchemaVersion = 1

type ResourceLine struct {
	ID        string
	Name      string
	URL       string
	Type      string
	Completed bool
	Status    string
	TimeLabel string
}

type StageReport struct {
	ID                int
	Title             string
	Description       string
	Percent           int
	Completed         int
	Total             int
	Scheduled         bool
	StartDate         string
	EndDate           string
	EstimatedDuration int
	Resources         []ResourceLine
}

type GoalLine struct {
	Title      string
	TargetDate string
	Completed  bool
}

type WeakArea struct {
	StageTitle string
	Label      string
}

type Report struct {
	GeneratedAt     time.Time
	Percent         int
	Completed       int
	Total           int
	Message         string
	TotalTimeLabel  string
	TopicsRestarted int
	StreakDays      int
	CompletionSpeed string
	Stages          []StageReport
	Goals           []GoalLine
	WeakAreas       []WeakArea
	Insights        []string
}

// Note is one rendered markdown file, addressed relative to the report directory.
type Note struct {
	RelPath string
	Content string
}
