package out

import (
	"context"

	"roadmap/internal/modules/tracking/domain"
)

type StateStore interface {
	// Load returns a fresh state when nothing was persisted yet.
	Load(ctx context.Context) (domain.State, error)
	// Save replaces the whole persisted document.
	Save(ctx context.Context, state domain.State) error
}
