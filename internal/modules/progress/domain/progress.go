package domain

import "math"

// StorageKey is the persisted key of the completion map.
const StorageKey = "dataEngineerRoadmapProgress"

// Completions maps stage id to resource id to completed. A missing entry
// means not completed.
type Completions map[int]map[string]bool

func (c Completions) Clone() Completions {
	out := make(Completions, len(c))
	for stageID, resources := range c {
		inner := make(map[string]bool, len(resources))
		for id, done := range resources {
			inner[id] = done
		}
		out[stageID] = inner
	}
	return out
}

func (c Completions) IsCompleted(stageID int, resourceID string) bool {
	return c[stageID][resourceID]
}

// Toggled returns a copy of c with the flag of the resource flipped.
func (c Completions) Toggled(stageID int, resourceID string) Completions {
	next := c.Clone()
	if next[stageID] == nil {
		next[stageID] = map[string]bool{}
	}
	next[stageID][resourceID] = !c.IsCompleted(stageID, resourceID)
	return next
}

func (c Completions) CompletedInStage(stageID int) int {
	n := 0
	for _, done := range c[stageID] {
		if done {
			n++
		}
	}
	return n
}

// StagePercent is round(100 * completed / totalResources), or 0 when the
// stage has no resources.
func (c Completions) StagePercent(stageID, totalResources int) int {
	if totalResources <= 0 {
		return 0
	}
	return Percent(c.CompletedInStage(stageID), totalResources)
}

// TotalPercent aggregates over the stages listed in resourcesPerStage.
func (c Completions) TotalPercent(totalStages int, resourcesPerStage map[int]int) int {
	if totalStages == 0 {
		return 0
	}
	completed, total := 0, 0
	for stageID, count := range resourcesPerStage {
		total += count
		completed += c.CompletedInStage(stageID)
	}
	if total == 0 {
		return 0
	}
	return Percent(completed, total)
}

func Percent(part, whole int) int {
	if whole <= 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(whole) * 100))
}
