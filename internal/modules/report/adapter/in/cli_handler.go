package in

import (
	"context"

	reportdto "roadmap/internal/modules/report/dto"
	reportin "roadmap/internal/modules/report/port/in"
)

type CLIHandler struct {
	usecase reportin.Usecase
}

func NewCLIHandler(usecase reportin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Export(ctx context.Context) (reportdto.ExportOutput, error) {
	return h.usecase.Export(ctx)
}

func (h CLIHandler) Show(ctx context.Context, width int) (reportdto.ShowOutput, error) {
	return h.usecase.Show(ctx, width)
}
