package domain

import (
	"fmt"
	"math"
	"time"

	"roadmap/internal/platform/clock"
	apperrors "roadmap/internal/platform/errors"
)

// DefaultStageDuration is the estimate, in days, of a stage without a schedule.
const DefaultStageDuration = 14

type StageSchedule struct {
	StartDate         string `json:"startDate,omitempty"`
	EndDate           string `json:"endDate,omitempty"`
	EstimatedDuration int    `json:"estimatedDuration"`
}

func DefaultSchedule() StageSchedule {
	return StageSchedule{EstimatedDuration: DefaultStageDuration}
}

// NewStageSchedule derives the duration as whole days rounded up. Either
// date may be empty, which keeps the default duration. An end before the
// start is rejected.
func NewStageSchedule(startDate, endDate string) (StageSchedule, error) {
	out := StageSchedule{StartDate: startDate, EndDate: endDate, EstimatedDuration: DefaultStageDuration}
	var start, end time.Time
	var err error
	if startDate != "" {
		if start, err = clock.ParseDay(startDate); err != nil {
			return StageSchedule{}, fmt.Errorf("%w: start date %q", apperrors.ErrInvalidInput, startDate)
		}
	}
	if endDate != "" {
		if end, err = clock.ParseDay(endDate); err != nil {
			return StageSchedule{}, fmt.Errorf("%w: end date %q", apperrors.ErrInvalidInput, endDate)
		}
	}
	if startDate == "" || endDate == "" {
		return out, nil
	}
	if end.Before(start) {
		return StageSchedule{}, fmt.Errorf("%w: end date %s is before start date %s", apperrors.ErrInvalidInput, endDate, startDate)
	}
	out.EstimatedDuration = int(math.Ceil(end.Sub(start).Hours() / 24))
	return out, nil
}
