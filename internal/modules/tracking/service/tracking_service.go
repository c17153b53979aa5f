package service

import (
	"context"
	"fmt"
	"sync"

	"roadmap/internal/modules/tracking/domain"
	trackingout "roadmap/internal/modules/tracking/port/out"
	"roadmap/internal/platform/clock"
	apperrors "roadmap/internal/platform/errors"
	"roadmap/internal/platform/id"
	"roadmap/internal/platform/logger"
)

// TrackingService owns the tracking document of the process. It is read
// from the store on first use; each mutation swaps in a new State and
// writes the whole document.
type TrackingService struct {
	clock clock.Clock
	idGen id.Generator
	store trackingout.StateStore
	log   *logger.Logger

	mu     sync.Mutex
	loaded bool
	state  domain.State
}

func NewTrackingService(clk clock.Clock, idGen id.Generator, store trackingout.StateStore, log *logger.Logger) *TrackingService {
	if clk == nil {
		clk = clock.SystemClock{}
	}
	if idGen == nil {
		idGen = id.TimeOrdered{Clock: clk}
	}
	if log == nil {
		log = logger.Nop()
	}
	return &TrackingService{clock: clk, idGen: idGen, store: store, log: log.With("key", domain.StorageKey)}
}

// Snapshot returns the current state. Callers must treat it as read-only.
func (s *TrackingService) Snapshot(ctx context.Context) domain.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx)
	return s.state
}

func (s *TrackingService) Analytics(ctx context.Context) domain.Analytics {
	return s.Snapshot(ctx).Analytics(s.clock.Now())
}

func (s *TrackingService) SetResourceStatus(ctx context.Context, stageID int, resourceID string, status domain.Status) (domain.ResourceTracking, error) {
	var out domain.ResourceTracking
	err := s.mutate(ctx, func(state domain.State) (domain.State, bool, error) {
		out = state.TrackingOrDefault(stageID, resourceID).WithStatus(status, s.clock.Now())
		return state.WithTracking(stageID, resourceID, out), true, nil
	})
	return out, err
}

func (s *TrackingService) AddTimeSpent(ctx context.Context, stageID int, resourceID string, minutes int) (domain.ResourceTracking, error) {
	var out domain.ResourceTracking
	err := s.mutate(ctx, func(state domain.State) (domain.State, bool, error) {
		r, err := state.TrackingOrDefault(stageID, resourceID).WithTimeSpent(minutes, s.clock.Now())
		if err != nil {
			return state, false, err
		}
		out = r
		return state.WithTracking(stageID, resourceID, r), true, nil
	})
	return out, err
}

func (s *TrackingService) SetStageSchedule(ctx context.Context, stageID int, startDate, endDate string) (domain.StageSchedule, error) {
	schedule, err := domain.NewStageSchedule(startDate, endDate)
	if err != nil {
		return domain.StageSchedule{}, err
	}
	err = s.mutate(ctx, func(state domain.State) (domain.State, bool, error) {
		return state.WithSchedule(stageID, schedule), true, nil
	})
	return schedule, err
}

func (s *TrackingService) AddWeeklyGoal(ctx context.Context, title, description, targetDate string) (domain.WeeklyGoal, error) {
	goal := domain.WeeklyGoal{
		ID:          domain.GoalIDPrefix + s.idGen.New(),
		Title:       title,
		Description: description,
		TargetDate:  targetDate,
		CreatedDate: s.clock.Now().UTC(),
	}
	err := s.mutate(ctx, func(state domain.State) (domain.State, bool, error) {
		return state.WithGoal(goal), true, nil
	})
	return goal, err
}

// ToggleWeeklyGoal and DeleteWeeklyGoal leave the state untouched and report
// false when no goal has the id.
func (s *TrackingService) ToggleWeeklyGoal(ctx context.Context, goalID string) (domain.WeeklyGoal, bool, error) {
	var out domain.WeeklyGoal
	var found bool
	err := s.mutate(ctx, func(state domain.State) (domain.State, bool, error) {
		next, ok := state.WithGoalToggled(goalID)
		if !ok {
			return state, false, nil
		}
		found = true
		for _, g := range next.WeeklyGoals {
			if g.ID == goalID {
				out = g
			}
		}
		return next, true, nil
	})
	return out, found, err
}

func (s *TrackingService) DeleteWeeklyGoal(ctx context.Context, goalID string) (bool, error) {
	var found bool
	err := s.mutate(ctx, func(state domain.State) (domain.State, bool, error) {
		next, ok := state.WithoutGoal(goalID)
		found = ok
		return next, ok, nil
	})
	return found, err
}

// AddDailyChecklistItem defaults an empty date to the current UTC day.
func (s *TrackingService) AddDailyChecklistItem(ctx context.Context, title, date string) (domain.DailyChecklistItem, error) {
	if date == "" {
		date = clock.Today(s.clock)
	}
	item := domain.DailyChecklistItem{ID: domain.ChecklistIDPrefix + s.idGen.New(), Title: title, Date: date}
	err := s.mutate(ctx, func(state domain.State) (domain.State, bool, error) {
		return state.WithChecklistItem(item), true, nil
	})
	return item, err
}

func (s *TrackingService) ToggleDailyChecklistItem(ctx context.Context, itemID string) (domain.DailyChecklistItem, bool, error) {
	var out domain.DailyChecklistItem
	var found bool
	err := s.mutate(ctx, func(state domain.State) (domain.State, bool, error) {
		next, ok := state.WithChecklistItemToggled(itemID)
		if !ok {
			return state, false, nil
		}
		found = true
		for _, item := range next.DailyChecklist {
			if item.ID == itemID {
				out = item
			}
		}
		return next, true, nil
	})
	return out, found, err
}

// mutate applies fn under the lock. When fn reports a change the new state
// is kept even if the write fails; that failure is returned as ErrNotSaved.
func (s *TrackingService) mutate(ctx context.Context, fn func(domain.State) (domain.State, bool, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx)
	next, changed, err := fn(s.state)
	if err != nil {
		return err
	}
	if !changed {
		return nil
	}
	s.state = next
	if err := s.store.Save(ctx, next); err != nil {
		s.log.Error("save tracking", "error", err)
		return fmt.Errorf("%w: %v", apperrors.ErrNotSaved, err)
	}
	return nil
}

func (s *TrackingService) ensureLoaded(ctx context.Context) {
	if s.loaded {
		return
	}
	s.loaded = true
	state, err := s.store.Load(ctx)
	if err != nil {
		s.log.Warn("load tracking, starting empty", "error", err)
		state = domain.NewState()
	}
	s.state = state.Normalize()
}

// Today is the current UTC calendar day of the service clock.
func (s *TrackingService) Today() string {
	return clock.Today(s.clock)
}
