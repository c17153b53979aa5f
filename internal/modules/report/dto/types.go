package dto

type ExportOutput struct {
	ReportPath string
	StagePaths []string
}

type ShowOutput struct {
	Markdown string
	Rendered string
}
