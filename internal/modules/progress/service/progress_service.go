package service

import (
	"context"
	"fmt"
	"sync"

	"roadmap/internal/modules/progress/domain"
	progressout "roadmap/internal/modules/progress/port/out"
	apperrors "roadmap/internal/platform/errors"
	"roadmap/internal/platform/logger"
)

// ProgressService owns the single completion map of the process. The map is
// rehydrated on first use and replaced, never mutated, on every change.
type ProgressService struct {
	store progressout.ProgressStore
	log   *logger.Logger

	mu     sync.Mutex
	loaded bool
	state  domain.Completions
}

func NewProgressService(store progressout.ProgressStore, log *logger.Logger) *ProgressService {
	if log == nil {
		log = logger.Nop()
	}
	return &ProgressService{store: store, log: log.With("key", domain.StorageKey)}
}

// Snapshot returns the current map. Callers must treat it as read-only.
func (s *ProgressService) Snapshot(ctx context.Context) domain.Completions {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx)
	return s.state
}

// Toggle flips one resource and persists the whole map. A write failure
// leaves the new value in memory and is reported as ErrNotSaved.
func (s *ProgressService) Toggle(ctx context.Context, stageID int, resourceID string) (domain.Completions, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx)
	s.state = s.state.Toggled(stageID, resourceID)
	if err := s.store.Save(ctx, s.state); err != nil {
		s.log.Error("save progress", "error", err)
		return s.state, fmt.Errorf("%w: %v", apperrors.ErrNotSaved, err)
	}
	return s.state, nil
}

// Clear empties the map and removes the persisted record.
func (s *ProgressService) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loaded = true
	s.state = domain.Completions{}
	if err := s.store.Clear(ctx); err != nil {
		s.log.Error("clear progress", "error", err)
		return fmt.Errorf("%w: %v", apperrors.ErrNotSaved, err)
	}
	return nil
}

func (s *ProgressService) ensureLoaded(ctx context.Context) {
	if s.loaded {
		return
	}
	s.loaded = true
	state, err := s.store.Load(ctx)
	if err != nil {
		s.log.Warn("load progress, starting empty", "error", err)
		state = domain.Completions{}
	}
	if state == nil {
		state = domain.Completions{}
	}
	s.state = state
}
