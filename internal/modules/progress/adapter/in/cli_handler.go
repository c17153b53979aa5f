package in

import (
	"context"

	progressdto "roadmap/internal/modules/progress/dto"
	progressin "roadmap/internal/modules/progress/port/in"
)

type CLIHandler struct {
	usecase progressin.Usecase
}

func NewCLIHandler(usecase progressin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Toggle(ctx context.Context, stageID int, resourceID string) (progressdto.ToggleOutput, error) {
	return h.usecase.Toggle(ctx, progressdto.ToggleInput{StageID: stageID, ResourceID: resourceID})
}

func (h CLIHandler) IsCompleted(ctx context.Context, stageID int, resourceID string) (bool, error) {
	return h.usecase.IsCompleted(ctx, stageID, resourceID)
}

func (h CLIHandler) StageProgress(ctx context.Context, stageID int) (progressdto.StageProgressOutput, error) {
	return h.usecase.StageProgress(ctx, stageID)
}

func (h CLIHandler) Summary(ctx context.Context) (progressdto.SummaryOutput, error) {
	return h.usecase.Summary(ctx)
}

func (h CLIHandler) Clear(ctx context.Context) error {
	return h.usecase.Clear(ctx)
}
