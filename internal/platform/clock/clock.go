package clock

import "time"

// DayLayout is the calendar-day format used for schedule, goal and checklist dates.
const DayLayout = "2006-01-02"

// Clock abstracts time so stores and analytics stay deterministic in tests.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}

// Today returns the current UTC calendar day of c.
func Today(c Clock) string {
	return c.Now().UTC().Format(DayLayout)
}

// ParseDay accepts either a calendar day or an RFC 3339 timestamp.
func ParseDay(value string) (time.Time, error) {
	if t, err := time.Parse(DayLayout, value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339Nano, value)
}
