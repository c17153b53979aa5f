package usecase

import (
	"context"

	catalogin "roadmap/internal/modules/catalog/port/in"
	progressin "roadmap/internal/modules/progress/port/in"
	"roadmap/internal/modules/report/domain"
	"roadmap/internal/modules/report/dto"
	reportin "roadmap/internal/modules/report/port/in"
	reportout "roadmap/internal/modules/report/port/out"
	"roadmap/internal/modules/report/service"
	trackingin "roadmap/internal/modules/tracking/port/in"
	"roadmap/internal/platform/clock"
	"roadmap/internal/platform/markdown"
)

type Interactor struct {
	svc      *service.ReportService
	clock    clock.Clock
	catalog  catalogin.Usecase
	progress progressin.Usecase
	tracking trackingin.Usecase
	writer   reportout.NoteWriter
	renderer reportout.TerminalRenderer
}

func NewInteractor(
	svc *service.ReportService,
	clk clock.Clock,
	catalog catalogin.Usecase,
	progress progressin.Usecase,
	tracking trackingin.Usecase,
	writer reportout.NoteWriter,
	renderer reportout.TerminalRenderer,
) reportin.Usecase {
	if clk == nil {
		clk = clock.SystemClock{}
	}
	return &Interactor{svc: svc, clock: clk, catalog: catalog, progress: progress, tracking: tracking, writer: writer, renderer: renderer}
}

func (i *Interactor) Export(ctx context.Context) (dto.ExportOutput, error) {
	r, err := i.collect(ctx)
	if err != nil {
		return dto.ExportOutput{}, err
	}
	notes, err := i.svc.Notes(r)
	if err != nil {
		return dto.ExportOutput{}, err
	}
	paths, err := i.writer.Write(ctx, notes)
	if err != nil {
		return dto.ExportOutput{}, err
	}
	return dto.ExportOutput{ReportPath: paths[0], StagePaths: paths[1:]}, nil
}

func (i *Interactor) Show(ctx context.Context, width int) (dto.ShowOutput, error) {
	r, err := i.collect(ctx)
	if err != nil {
		return dto.ShowOutput{}, err
	}
	note, err := i.svc.Overview(r)
	if err != nil {
		return dto.ShowOutput{}, err
	}
	_, body, err := markdown.SplitFrontmatter(note)
	if err != nil {
		return dto.ShowOutput{}, err
	}
	rendered, err := i.renderer.Render(body, width)
	if err != nil {
		return dto.ShowOutput{}, err
	}
	return dto.ShowOutput{Markdown: body, Rendered: rendered}, nil
}

func (i *Interactor) collect(ctx context.Context) (domain.Report, error) {
	stages, err := i.catalog.ListStages(ctx)
	if err != nil {
		return domain.Report{}, err
	}
	summary, err := i.progress.Summary(ctx)
	if err != nil {
		return domain.Report{}, err
	}
	analytics, err := i.tracking.Analytics(ctx)
	if err != nil {
		return domain.Report{}, err
	}
	schedules, err := i.tracking.ListStageSchedules(ctx)
	if err != nil {
		return domain.Report{}, err
	}
	goals, err := i.tracking.ListWeeklyGoals(ctx)
	if err != nil {
		return domain.Report{}, err
	}

	r := domain.Report{
		GeneratedAt:     i.clock.Now(),
		Percent:         summary.Percent,
		Completed:       summary.Completed,
		Total:           summary.Total,
		Message:         summary.Message,
		TotalTimeLabel:  analytics.TotalTimeLabel,
		TopicsRestarted: analytics.TopicsRestarted,
		StreakDays:      analytics.StreakDays,
		CompletionSpeed: analytics.CompletionSpeed,
		Insights:        analytics.Insights,
	}
	for _, area := range analytics.WeakAreas {
		r.WeakAreas = append(r.WeakAreas, domain.WeakArea{StageTitle: area.StageTitle, Label: area.Label})
	}
	for _, g := range goals {
		r.Goals = append(r.Goals, domain.GoalLine{Title: g.Title, TargetDate: g.TargetDate, Completed: g.Completed})
	}

	progressByStage := map[int]int{}
	for idx, sp := range summary.Stages {
		progressByStage[sp.StageID] = idx
	}
	scheduleByStage := map[int]int{}
	for idx, sc := range schedules {
		scheduleByStage[sc.StageID] = idx
	}
	for _, stage := range stages {
		sr := domain.StageReport{ID: stage.ID, Title: stage.Title, Description: stage.Description}
		done := map[string]bool{}
		if idx, ok := progressByStage[stage.ID]; ok {
			sp := summary.Stages[idx]
			sr.Percent, sr.Completed, sr.Total = sp.Percent, sp.Completed, sp.Total
			for _, res := range sp.Resources {
				done[res.ID] = res.Completed
			}
		}
		if idx, ok := scheduleByStage[stage.ID]; ok {
			sc := schedules[idx]
			sr.Scheduled, sr.StartDate, sr.EndDate, sr.EstimatedDuration = sc.Scheduled, sc.StartDate, sc.EndDate, sc.EstimatedDuration
		}
		tracked, err := i.tracking.ListStageTracking(ctx, stage.ID)
		if err != nil {
			return domain.Report{}, err
		}
		status := map[string]int{}
		for idx, t := range tracked {
			status[t.ResourceID] = idx
		}
		for _, res := range stage.Resources {
			line := domain.ResourceLine{ID: res.ID, Name: res.Name, URL: res.URL, Type: res.Type, Completed: done[res.ID], Status: "not-started", TimeLabel: "0m"}
			if idx, ok := status[res.ID]; ok {
				line.Status, line.TimeLabel = tracked[idx].Status, tracked[idx].TimeLabel
			}
			sr.Resources = append(sr.Resources, line)
		}
		r.Stages = append(r.Stages, sr)
	}
	return r, nil
}
