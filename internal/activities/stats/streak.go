package stats

import (
	"github.com/BuddyOhio/back-end-g9-final-project/internal/activities"
)

// DefaultStreakThresholdMinutes is the minimum summed activity time a
// calendar day needs to count towards the weekly streak rank.
const DefaultStreakThresholdMinutes = 30

const dayKeyFormat = "2006-01-02"

// WeeklyRank counts the distinct local calendar days whose summed activity
// minutes reach the threshold. The input is expected to hold completed
// activities of the current week only, already localized. Days without
// activities never count, a day of short activities counts once when the
// sum crosses the threshold.
func WeeklyRank(list []activities.Activity, thresholdMinutes int) int {
	minutesPerDay := make(map[string]int)
	for _, a := range list {
		minutesPerDay[a.Date.Format(dayKeyFormat)] += a.DurationMinutes
	}

	rank := 0
	for _, minutes := range minutesPerDay {
		if minutes >= thresholdMinutes {
			rank++
		}
	}
	return rank
}
