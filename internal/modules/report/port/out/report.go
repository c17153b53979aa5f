package out

import (
	"context"

	"roadmap/internal/modules/report/domain"
)

type NoteWriter interface {
	// Write stores every note and returns their absolute paths in order.
	Write(ctx context.Context, notes []domain.Note) ([]string, error)
}

type TerminalRenderer interface {
	Render(markdown string, width int) (string, error)
}
