package domain

import (
	"fmt"
	"strings"
	"time"

	apperrors "roadmap/internal/platform/errors"
)

// StorageKey is the persisted key of the tracking document.
const StorageKey = "dataEngineerAdvancedTracking"

type Status string

const (
	StatusNotStarted Status = "not-started"
	StatusWatching   Status = "watching"
	StatusCompleted  Status = "completed"
)

func ParseStatus(value string) (Status, error) {
	switch s := Status(strings.ToLower(strings.TrimSpace(value))); s {
	case StatusNotStarted, StatusWatching, StatusCompleted:
		return s, nil
	default:
		return "", fmt.Errorf("%w: unknown status %q", apperrors.ErrInvalidInput, value)
	}
}

// ResourceTracking is the record of one touched (stage, resource) pair.
type ResourceTracking struct {
	Status        Status     `json:"status"`
	StartDate     *time.Time `json:"startDate,omitempty"`
	CompletedDate *time.Time `json:"completedDate,omitempty"`
	TimeSpent     int        `json:"timeSpent"`
	LastAccessed  *time.Time `json:"lastAccessed,omitempty"`
}

// Untouched is the implicit value of a pair that has no record.
func Untouched() ResourceTracking {
	return ResourceTracking{Status: StatusNotStarted}
}

// WithStatus applies a status change at now. startDate is stamped only when
// leaving not-started for watching; completedDate on every entry into
// completed from another status.
func (r ResourceTracking) WithStatus(status Status, now time.Time) ResourceTracking {
	if r.Status == "" {
		r.Status = StatusNotStarted
	}
	if status == StatusWatching && r.Status == StatusNotStarted {
		r.StartDate = stamp(now)
	}
	if status == StatusCompleted && r.Status != StatusCompleted {
		r.CompletedDate = stamp(now)
	}
	r.Status = status
	r.LastAccessed = stamp(now)
	return r
}

// WithTimeSpent adds minutes. Negative input is rejected.
func (r ResourceTracking) WithTimeSpent(minutes int, now time.Time) (ResourceTracking, error) {
	if minutes < 0 {
		return r, fmt.Errorf("%w: minutes must not be negative, got %d", apperrors.ErrInvalidInput, minutes)
	}
	if r.Status == "" {
		r.Status = StatusNotStarted
	}
	r.TimeSpent += minutes
	r.LastAccessed = stamp(now)
	return r, nil
}

// Restarted reports a resource that was completed once and is being watched again.
func (r ResourceTracking) Restarted() bool {
	return r.Status == StatusWatching && r.CompletedDate != nil
}

func stamp(now time.Time) *time.Time {
	t := now.UTC()
	return &t
}
