package out

import (
	"context"

	"roadmap/internal/modules/progress/domain"
)

type ProgressStore interface {
	// Load returns an empty map when nothing was persisted yet.
	Load(ctx context.Context) (domain.Completions, error)
	Save(ctx context.Context, completions domain.Completions) error
	// Clear removes the persisted record entirely.
	Clear(ctx context.Context) error
}
