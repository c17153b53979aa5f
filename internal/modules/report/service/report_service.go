package service

import (
	"fmt"
	"path"
	"strings"
	"time"

	"roadmap/internal/modules/report/domain"
	"roadmap/internal/platform/markdown"
	"roadmap/internal/platform/slug"
)

const (
	ReportFile = "roadmap-report.md"
	StagesDir  = "stages"
)

type ReportService struct{}

func NewReportService() *ReportService {
	return &ReportService{}
}

// Notes renders the overview note followed by one note per stage.
func (s *ReportService) Notes(r domain.Report) ([]domain.Note, error) {
	overview, err := s.Overview(r)
	if err != nil {
		return nil, err
	}
	notes := []domain.Note{{RelPath: ReportFile, Content: overview}}
	for _, stage := range r.Stages {
		content, err := s.stageNote(stage, r.GeneratedAt)
		if err != nil {
			return nil, err
		}
		notes = append(notes, domain.Note{RelPath: path.Join(StagesDir, StageFile(stage)), Content: content})
	}
	return notes, nil
}

func StageFile(stage domain.StageReport) string {
	return slug.Numbered(stage.ID, stage.Title) + ".md"
}

func (s *ReportService) Overview(r domain.Report) (string, error) {
	fields := []markdown.Field{
		{Key: "schema_version", Value: domain.SchemaVersion},
		{Key: "type", Value: "roadmap-report"},
		{Key: "generated_at", Value: r.GeneratedAt.UTC().Format(time.RFC3339)},
		{Key: "progress_percent", Value: r.Percent},
		{Key: "resources_completed", Value: r.Completed},
		{Key: "resources_total", Value: r.Total},
		{Key: "streak_days", Value: r.StreakDays},
	}
	var b strings.Builder
	fmt.Fprintf(&b, "# Data Engineering Roadmap\n\n")
	fmt.Fprintf(&b, "**%d%%** complete, %d of %d resources.\n\n%s\n\n", r.Percent, r.Completed, r.Total, r.Message)

	b.WriteString("## Stages\n\n| # | Stage | Progress | Schedule |\n|---|---|---|---|\n")
	for _, stage := range r.Stages {
		fmt.Fprintf(&b, "| %d | [%s](%s) | %d%% (%d/%d) | %s |\n",
			stage.ID, stage.Title, path.Join(StagesDir, StageFile(stage)), stage.Percent, stage.Completed, stage.Total, scheduleText(stage))
	}

	b.WriteString("\n## Analytics\n\n")
	fmt.Fprintf(&b, "- Time spent: %s\n- Completion speed: %s\n- Topics restarted: %d\n- Streak: %d day(s)\n",
		r.TotalTimeLabel, r.CompletionSpeed, r.TopicsRestarted, r.StreakDays)

	if len(r.WeakAreas) > 0 {
		b.WriteString("\n## Weak areas\n\n")
		for _, area := range r.WeakAreas {
			fmt.Fprintf(&b, "- %s: %s\n", area.StageTitle, area.Label)
		}
	}
	if len(r.Goals) > 0 {
		b.WriteString("\n## Weekly goals\n\n")
		for _, g := range r.Goals {
			fmt.Fprintf(&b, "- [%s] %s (due %s)\n", check(g.Completed), g.Title, g.TargetDate)
		}
	}
	if len(r.Insights) > 0 {
		b.WriteString("\n## Insights\n\n")
		for _, line := range r.Insights {
			fmt.Fprintf(&b, "- %s\n", line)
		}
	}
	return markdown.RenderFrontmatter(fields, b.String())
}

func (s *ReportService) stageNote(stage domain.StageReport, generatedAt time.Time) (string, error) {
	fields := []markdown.Field{
		{Key: "schema_version", Value: domain.SchemaVersion},
		{Key: "type", Value: "roadmap-stage"},
		{Key: "stage_id", Value: stage.ID},
		{Key: "title", Value: stage.Title},
		{Key: "progress_percent", Value: stage.Percent},
		{Key: "estimated_duration_days", Value: stage.EstimatedDuration},
		{Key: "generated_at", Value: generatedAt.UTC().Format(time.RFC3339)},
	}
	if stage.Scheduled {
		fields = append(fields,
			markdown.Field{Key: "start_date", Value: stage.StartDate},
			markdown.Field{Key: "end_date", Value: stage.EndDate})
	}
	var b strings.Builder
	fmt.Fprintf(&b, "# %d. %s\n\n%s\n\n", stage.ID, stage.Title, stage.Description)
	fmt.Fprintf(&b, "Progress: %d%% (%d/%d). Schedule: %s.\n\n## Resources\n\n", stage.Percent, stage.Completed, stage.Total, scheduleText(stage))
	for _, res := range stage.Resources {
		fmt.Fprintf(&b, "- [%s] [%s](%s) (%s, %s, %s)\n", check(res.Completed), res.Name, res.URL, res.Type, res.Status, res.TimeLabel)
	}
	return markdown.RenderFrontmatter(fields, b.String())
}

func scheduleText(stage domain.StageReport) string {
	if !stage.Scheduled {
		return fmt.Sprintf("unscheduled, ~%d days", stage.EstimatedDuration)
	}
	from, to := stage.StartDate, stage.EndDate
	if from == "" {
		from = "?"
	}
	if to == "" {
		to = "?"
	}
	return fmt.Sprintf("%s to %s, %d days", from, to, stage.EstimatedDuration)
}

func check(done bool) string {
	if done {
		return "x"
	}
	return " "
}
