package usecase

import (
	"context"
	"errors"

	catalogdto "roadmap/internal/modules/catalog/dto"
	catalogin "roadmap/internal/modules/catalog/port/in"
	"roadmap/internal/modules/progress/domain"
	"roadmap/internal/modules/progress/dto"
	progressin "roadmap/internal/modules/progress/port/in"
	"roadmap/internal/modules/progress/service"
	apperrors "roadmap/internal/platform/errors"
)

type Interactor struct {
	svc     *service.ProgressService
	catalog catalogin.Usecase
}

func NewInteractor(svc *service.ProgressService, catalog catalogin.Usecase) progressin.Usecase {
	return &Interactor{svc: svc, catalog: catalog}
}

// Toggle flips a catalog resource. An ErrNotSaved error is returned together
// with a valid output.
func (i *Interactor) Toggle(ctx context.Context, input dto.ToggleInput) (dto.ToggleOutput, error) {
	stage, err := i.catalog.GetStage(ctx, input.StageID)
	if err != nil {
		return dto.ToggleOutput{}, err
	}
	if _, err := i.catalog.FindResource(ctx, input.StageID, input.ResourceID); err != nil {
		return dto.ToggleOutput{}, err
	}
	state, saveErr := i.svc.Toggle(ctx, input.StageID, input.ResourceID)
	if saveErr != nil && !errors.Is(saveErr, apperrors.ErrNotSaved) {
		return dto.ToggleOutput{}, saveErr
	}
	return dto.ToggleOutput{
		StageID:      input.StageID,
		ResourceID:   input.ResourceID,
		Completed:    state.IsCompleted(input.StageID, input.ResourceID),
		StagePercent: state.StagePercent(input.StageID, len(stage.Resources)),
	}, saveErr
}

func (i *Interactor) IsCompleted(ctx context.Context, stageID int, resourceID string) (bool, error) {
	return i.svc.Snapshot(ctx).IsCompleted(stageID, resourceID), nil
}

func (i *Interactor) StageProgress(ctx context.Context, stageID int) (dto.StageProgressOutput, error) {
	stage, err := i.catalog.GetStage(ctx, stageID)
	if err != nil {
		return dto.StageProgressOutput{}, err
	}
	return stageProgress(i.svc.Snapshot(ctx), stage), nil
}

func (i *Interactor) Summary(ctx context.Context) (dto.SummaryOutput, error) {
	stages, err := i.catalog.ListStages(ctx)
	if err != nil {
		return dto.SummaryOutput{}, err
	}
	state := i.svc.Snapshot(ctx)
	perStage := make(map[int]int, len(stages))
	out := dto.SummaryOutput{StageCount: len(stages), Stages: make([]dto.StageProgressOutput, 0, len(stages))}
	for _, stage := range stages {
		perStage[stage.ID] = len(stage.Resources)
		sp := stageProgress(state, stage)
		out.Completed += sp.Completed
		out.Total += sp.Total
		out.Stages = append(out.Stages, sp)
	}
	out.Percent = state.TotalPercent(len(stages), perStage)
	out.Message = Motivation(out.Percent)
	return out, nil
}

func (i *Interactor) Clear(ctx context.Context) error {
	return i.svc.Clear(ctx)
}

// stageProgress counts only resources the catalog knows about; Percent uses
// the stored map the same way the total does.
func stageProgress(state domain.Completions, stage catalogdto.StageOutput) dto.StageProgressOutput {
	out := dto.StageProgressOutput{
		StageID:   stage.ID,
		Title:     stage.Title,
		Total:     len(stage.Resources),
		Percent:   state.StagePercent(stage.ID, len(stage.Resources)),
		Resources: make([]dto.ResourceProgressOutput, 0, len(stage.Resources)),
	}
	for _, r := range stage.Resources {
		done := state.IsCompleted(stage.ID, r.ID)
		if done {
			out.Completed++
		}
		out.Resources = append(out.Resources, dto.ResourceProgressOutput{ID: r.ID, Name: r.Name, Completed: done})
	}
	return out
}

// Motivation picks the encouragement line shown under the overall percentage.
func Motivation(percent int) string {
	switch {
	case percent <= 0:
		return "Start learning! Mark resources as completed as you go."
	case percent < 50:
		return "Great start! Keep going to reach the halfway mark."
	case percent < 100:
		return "You're over halfway there! Keep the momentum going."
	default:
		return "Congratulations! You've completed the entire roadmap!"
	}
}
