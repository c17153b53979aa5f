package in

import (
	"context"

	"roadmap/internal/modules/progress/dto"
)

type Usecase interface {
	Toggle(ctx context.Context, input dto.ToggleInput) (dto.ToggleOutput, error)
	IsCompleted(ctx context.Context, stageID int, resourceID string) (bool, error)
	StageProgress(ctx context.Context, stageID int) (dto.StageProgressOutput, error)
	Summary(ctx context.Context) (dto.SummaryOutput, error)
	Clear(ctx context.Context) error
}
