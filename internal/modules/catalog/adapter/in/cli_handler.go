package in

import (
	"context"

	"roadmap/internal/modules/catalog/dto"
	catalogin "roadmap/internal/modules/catalog/port/in"
)

type CLIHandler struct {
	usecase catalogin.Usecase
}

func NewCLIHandler(usecase catalogin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) ListStages(ctx context.Context) ([]dto.StageOutput, error) {
	return h.usecase.ListStages(ctx)
}

func (h CLIHandler) GetStage(ctx context.Context, id int) (dto.StageOutput, error) {
	return h.usecase.GetStage(ctx, id)
}

func (h CLIHandler) Summary(ctx context.Context) (dto.CatalogSummaryOutput, error) {
	return h.usecase.Summary(ctx)
}
