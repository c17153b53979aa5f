package domain

import (
	"math"
	"sort"
	"time"
)

// Analytics is always derived from the records; nothing here is cached.
// TopicsDelayed is kept for document compatibility and is always zero.
type Analytics struct {
	TotalTimeSpent        int        `json:"totalTimeSpent"`
	TopicsRestarted       int        `json:"topicsRestarted"`
	TopicsDelayed         int        `json:"topicsDelayed"`
	AverageCompletionTime int        `json:"averageCompletionTime"`
	StreakDays            int        `json:"streakDays"`
	LastActivityDate      *time.Time `json:"lastActivityDate,omitempty"`
	CompletedResources    int        `json:"-"`
	TrackedResources      int        `json:"-"`
}

func (s State) Analytics(now time.Time) Analytics {
	var out Analytics
	for _, resources := range s.ResourceTracking {
		for _, r := range resources {
			out.TrackedResources++
			out.TotalTimeSpent += r.TimeSpent
			if r.Status == StatusCompleted {
				out.CompletedResources++
			}
			if r.Restarted() {
				out.TopicsRestarted++
			}
			if r.LastAccessed != nil && (out.LastActivityDate == nil || r.LastAccessed.After(*out.LastActivityDate)) {
				last := *r.LastAccessed
				out.LastActivityDate = &last
			}
		}
	}
	if out.CompletedResources > 0 {
		out.AverageCompletionTime = int(math.Round(float64(out.TotalTimeSpent) / float64(out.CompletedResources) * 60))
	}
	out.StreakDays = streak(out.LastActivityDate, now)
	return out
}

// streak is 1 when the last activity lies within one day of now, rounded up.
func streak(last *time.Time, now time.Time) int {
	if last == nil {
		return 0
	}
	diff := now.Sub(*last)
	if diff < 0 {
		diff = -diff
	}
	days := math.Ceil(diff.Hours() / 24)
	if days <= 1 {
		return 1
	}
	return 0
}

type WeakArea struct {
	StageID int
	Count   int
}

// WeakAreas counts watching resources per stage. Stages without any are
// omitted; order is count descending, then stage id ascending.
func (s State) WeakAreas() []WeakArea {
	out := []WeakArea{}
	for stageID, resources := range s.ResourceTracking {
		n := 0
		for _, r := range resources {
			if r.Status == StatusWatching {
				n++
			}
		}
		if n > 0 {
			out = append(out, WeakArea{StageID: stageID, Count: n})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].StageID < out[j].StageID
	})
	return out
}
