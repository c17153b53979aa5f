package in

import (
	"context"

	"roadmap/internal/modules/report/dto"
)

type Usecase interface {
	Export(ctx context.Context) (dto.ExportOutput, error)
	// Show renders the overview for a terminal of the given width; 0 disables wrapping.
	Show(ctx context.Context, width int) (dto.ShowOutput, error)
}
