package in

import (
	"context"

	"roadmap/internal/modules/catalog/dto"
)

type Usecase interface {
	ListStages(ctx context.Context) ([]dto.StageOutput, error)
	GetStage(ctx context.Context, id int) (dto.StageOutput, error)
	FindResource(ctx context.Context, stageID int, resourceID string) (dto.ResourceOutput, error)
	Summary(ctx context.Context) (dto.CatalogSummaryOutput, error)
}
