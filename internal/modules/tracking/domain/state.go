package domain

// State is the whole tracking document. Values are treated as immutable:
// every With* method returns a new State and leaves the receiver untouched.
type State struct {
	ResourceTracking map[int]map[string]ResourceTracking `json:"resourceTracking"`
	StageSchedules   map[int]StageSchedule               `json:"stageSchedules"`
	WeeklyGoals      []WeeklyGoal                        `json:"weeklyGoals"`
	DailyChecklist   []DailyChecklistItem                `json:"dailyChecklist"`
}

func NewState() State {
	return State{
		ResourceTracking: map[int]map[string]ResourceTracking{},
		StageSchedules:   map[int]StageSchedule{},
		WeeklyGoals:      []WeeklyGoal{},
		DailyChecklist:   []DailyChecklistItem{},
	}
}

// Normalize replaces nil collections so a partially written document
// behaves like a fresh one.
func (s State) Normalize() State {
	if s.ResourceTracking == nil {
		s.ResourceTracking = map[int]map[string]ResourceTracking{}
	}
	if s.StageSchedules == nil {
		s.StageSchedules = map[int]StageSchedule{}
	}
	if s.WeeklyGoals == nil {
		s.WeeklyGoals = []WeeklyGoal{}
	}
	if s.DailyChecklist == nil {
		s.DailyChecklist = []DailyChecklistItem{}
	}
	return s
}

func (s State) Clone() State {
	out := NewState()
	for stageID, resources := range s.ResourceTracking {
		inner := make(map[string]ResourceTracking, len(resources))
		for id, r := range resources {
			inner[id] = r
		}
		out.ResourceTracking[stageID] = inner
	}
	for stageID, schedule := range s.StageSchedules {
		out.StageSchedules[stageID] = schedule
	}
	out.WeeklyGoals = append(out.WeeklyGoals, s.WeeklyGoals...)
	out.DailyChecklist = append(out.DailyChecklist, s.DailyChecklist...)
	return out
}

// Tracking returns the record of a pair and whether it was ever touched.
func (s State) Tracking(stageID int, resourceID string) (ResourceTracking, bool) {
	r, ok := s.ResourceTracking[stageID][resourceID]
	return r, ok
}

// TrackingOrDefault applies the implicit not-started value.
func (s State) TrackingOrDefault(stageID int, resourceID string) ResourceTracking {
	if r, ok := s.Tracking(stageID, resourceID); ok {
		return r
	}
	return Untouched()
}

func (s State) WithTracking(stageID int, resourceID string, r ResourceTracking) State {
	next := s.Clone()
	if next.ResourceTracking[stageID] == nil {
		next.ResourceTracking[stageID] = map[string]ResourceTracking{}
	}
	next.ResourceTracking[stageID][resourceID] = r
	return next
}

func (s State) Schedule(stageID int) (StageSchedule, bool) {
	sc, ok := s.StageSchedules[stageID]
	return sc, ok
}

func (s State) ScheduleOrDefault(stageID int) StageSchedule {
	if sc, ok := s.Schedule(stageID); ok {
		return sc
	}
	return DefaultSchedule()
}

func (s State) WithSchedule(stageID int, schedule StageSchedule) State {
	next := s.Clone()
	next.StageSchedules[stageID] = schedule
	return next
}

func (s State) WithGoal(goal WeeklyGoal) State {
	next := s.Clone()
	next.WeeklyGoals = append(next.WeeklyGoals, goal)
	return next
}

// WithGoalToggled flips the goal with id. The bool is false when no goal matched.
func (s State) WithGoalToggled(id string) (State, bool) {
	next := s.Clone()
	for i := range next.WeeklyGoals {
		if next.WeeklyGoals[i].ID == id {
			next.WeeklyGoals[i].Completed = !next.WeeklyGoals[i].Completed
			return next, true
		}
	}
	return s, false
}

func (s State) WithoutGoal(id string) (State, bool) {
	next := s.Clone()
	kept := next.WeeklyGoals[:0]
	found := false
	for _, g := range next.WeeklyGoals {
		if g.ID == id {
			found = true
			continue
		}
		kept = append(kept, g)
	}
	if !found {
		return s, false
	}
	next.WeeklyGoals = kept
	return next, true
}

func (s State) WithChecklistItem(item DailyChecklistItem) State {
	next := s.Clone()
	next.DailyChecklist = append(next.DailyChecklist, item)
	return next
}

func (s State) WithChecklistItemToggled(id string) (State, bool) {
	next := s.Clone()
	for i := range next.DailyChecklist {
		if next.DailyChecklist[i].ID == id {
			next.DailyChecklist[i].Completed = !next.DailyChecklist[i].Completed
			return next, true
		}
	}
	return s, false
}

// ChecklistForDate keeps insertion order.
func (s State) ChecklistForDate(date string) []DailyChecklistItem {
	out := []DailyChecklistItem{}
	for _, item := range s.DailyChecklist {
		if item.Date == date {
			out = append(out, item)
		}
	}
	return out
}
