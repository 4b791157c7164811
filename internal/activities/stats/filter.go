package stats

import (
	"github.com/BuddyOhio/back-end-g9-final-project/internal/activities"
)

// FilterByWindow keeps the activities whose effective end falls inside the
// window, both ends inclusive. The effective end is the start plus the
// duration, so an activity crossing the window boundary gets attributed to
// the side where it finishes. Activities must already be localized to the
// same wall-clock frame as the window.
func FilterByWindow(list []activities.Activity, w Window) []activities.Activity {
	result := make([]activities.Activity, 0, len(list))
	for _, a := range list {
		if w.Contains(a.EffectiveEnd()) {
			result = append(result, a)
		}
	}
	return result
}
