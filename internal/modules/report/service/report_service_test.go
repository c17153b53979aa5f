package service_test

import (
	"strings"
	"testing"
	"time"

	"roadmap/internal/modules/report/domain"
	"roadmap/internal/modules/report/service"
	"roadmap/internal/platform/markdown"
)

func sampleReport() domain.Report {
	return domain.Report{
		GeneratedAt:     time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC),
		Percent:         40,
		Completed:       2,
		Total:           5,
		Message:         "Great start! Keep going to reach the halfway mark.",
		TotalTimeLabel:  "1h 30m",
		CompletionSpeed: "Slow",
		Stages: []domain.StageReport{
			{ID: 1, Title: "Python Fundamentals", Percent: 50, Completed: 1, Total: 2, EstimatedDuration: 14,
				Resources: []domain.ResourceLine{{ID: "py-1", Name: "Intro", URL: "https://example.com/py", Type: "video", Completed: true, Status: "completed", TimeLabel: "1h 30m"}}},
			{ID: 2, Title: "Data Libraries & Tools", Scheduled: true, StartDate: "2024-01-01", EndDate: "2024-01-15", EstimatedDuration: 14},
		},
		WeakAreas: []domain.WeakArea{{StageTitle: "Python Fundamentals", Label: "1 resource in progress"}},
	}
}

func TestNotesLayout(t *testing.T) {
	t.Parallel()
	notes, err := service.NewReportService().Notes(sampleReport())
	if err != nil {
		t.Fatalf("notes: %v", err)
	}
	if len(notes) != 3 {
		t.Fatalf("expected overview plus two stage notes, got %d", len(notes))
	}
	if notes[0].RelPath != "roadmap-report.md" || notes[2].RelPath != "stages/02-data-libraries-and-tools.md" {
		t.Fatalf("unexpected paths %q %q", notes[0].RelPath, notes[2].RelPath)
	}

	meta, body, err := markdown.SplitFrontmatter(notes[0].Content)
	if err != nil {
		t.Fatalf("split overview: %v", err)
	}
	if meta["progress_percent"] != 40 || meta["type"] != "roadmap-report" {
		t.Fatalf("unexpected overview frontmatter %v", meta)
	}
	for _, want := range []string{"**40%**", "stages/01-python-fundamentals.md", "## Weak areas", "2024-01-01 to 2024-01-15, 14 days"} {
		if !strings.Contains(body, want) {
			t.Fatalf("overview missing %q:\n%s", want, body)
		}
	}
	if strings.Contains(body, "## Weekly goals") {
		t.Fatalf("empty goal section must be omitted")
	}

	stageMeta, stageBody, err := markdown.SplitFrontmatter(notes[2].Content)
	if err != nil {
		t.Fatalf("split stage: %v", err)
	}
	if stageMeta["start_date"] != "2024-01-01" || stageMeta["stage_id"] != 2 {
		t.Fatalf("unexpected stage frontmatter %v", stageMeta)
	}
	if !strings.HasPrefix(strings.TrimSpace(stageBody), "# 2. Data Libraries & Tools") {
		t.Fatalf("unexpected stage body %q", stageBody)
	}
	if !strings.Contains(notes[1].Content, "- [x] [Intro](https://example.com/py)") {
		t.Fatalf("stage note must list resources:\n%s", notes[1].Content)
	}
}
