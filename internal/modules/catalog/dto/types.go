package dto

type ResourceOutput struct {
	ID   string
	Name string
	URL  string
	Type string
}

type StageOutput struct {
	ID              int
	Title           string
	Description     string
	Icon            string
	Color           string
	BackgroundImage string
	Resources       []ResourceOutput
}

type CatalogSummaryOutput struct {
	StageCount        int
	TotalResources    int
	ResourcesPerStage map[int]int
	StageNames        map[int]string
}
