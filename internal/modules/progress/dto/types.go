package dto

type ToggleInput struct {
	StageID    int
	ResourceID string
}

type ToggleOutput struct {
	StageID      int
	ResourceID   string
	Completed    bool
	StagePercent int
}

type ResourceProgressOutput struct {
	ID        string
	Name      string
	Completed bool
}

type StageProgressOutput struct {
	StageID   int
	Title     string
	Completed int
	Total     int
	Percent   int
	Resources []ResourceProgressOutput
}

type SummaryOutput struct {
	Percent    int
	Completed  int
	Total      int
	StageCount int
	Message    string
	Stages     []StageProgressOutput
}
