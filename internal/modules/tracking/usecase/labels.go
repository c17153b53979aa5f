package usecase

import "fmt"

// FormatMinutes renders a duration as "45m", "2h" or "2h 5m".
func FormatMinutes(minutes int) string {
	hours, mins := minutes/60, minutes%60
	switch {
	case hours == 0:
		return fmt.Sprintf("%dm", mins)
	case mins == 0:
		return fmt.Sprintf("%dh", hours)
	default:
		return fmt.Sprintf("%dh %dm", hours, mins)
	}
}

func CompletionSpeed(average int) string {
	switch {
	case average == 0:
		return "Not started"
	case average <= 1:
		return "Very fast"
	case average <= 3:
		return "Fast"
	case average <= 7:
		return "Moderate"
	default:
		return "Slow"
	}
}

func weakAreaLabel(count int) string {
	if count == 1 {
		return "1 resource in progress"
	}
	return fmt.Sprintf("%d resources in progress", count)
}

func insights(totalMinutes, restarted, weakAreas int) []string {
	out := []string{}
	if totalMinutes > 0 {
		out = append(out, fmt.Sprintf("You've invested %s in learning. Keep it up!", FormatMinutes(totalMinutes)))
	}
	if restarted == 0 && totalMinutes > 0 {
		out = append(out, "Excellent focus! You haven't restarted any topics. Stay consistent!")
	}
	if weakAreas == 1 {
		out = append(out, "You have 1 area needing attention. Consider dedicating more time to it.")
	} else if weakAreas > 1 {
		out = append(out, fmt.Sprintf("You have %d areas needing attention. Consider dedicating more time to these.", weakAreas))
	}
	if totalMinutes == 0 {
		out = append(out, `Start your learning journey! Mark resources as "watching" to track your progress.`)
	}
	return out
}
