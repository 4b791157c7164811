package stats

import (
	"time"

	"github.com/BuddyOhio/back-end-g9-final-project/internal/activities"
)

// CategoryBucket is one slice of a donut chart: how many activities of a
// category there were and how many minutes they took in total. The custom
// free-text of "other" activities is display metadata, all of them share
// the single "other" bucket.
type CategoryBucket struct {
	Category     activities.Type `json:"type"`
	Count        int             `json:"count"`
	TotalMinutes int             `json:"time"`
}

// AggregateByCategory groups activities by category. Bucket order is the
// insertion order of each category's first occurrence, consumers sort for
// display themselves.
func AggregateByCategory(list []activities.Activity) []CategoryBucket {
	buckets := make([]CategoryBucket, 0)
	index := make(map[activities.Type]int)
	for _, a := range list {
		i, ok := index[a.Type]
		if !ok {
			i = len(buckets)
			index[a.Type] = i
			buckets = append(buckets, CategoryBucket{Category: a.Type})
		}
		buckets[i].Count++
		buckets[i].TotalMinutes += a.DurationMinutes
	}
	return buckets
}

// WeekMatrixEntry is one column of the weekly chart: a weekday name and
// the category buckets of that day's activities.
type WeekMatrixEntry struct {
	DayOfWeek  string           `json:"dayOfWeek"`
	Categories []CategoryBucket `json:"categories"`
}

var weekdaysMondayFirst = []time.Weekday{
	time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
	time.Friday, time.Saturday, time.Sunday,
}

// BuildWeekMatrix groups activities by weekday and aggregates each day's
// set by category. It always returns exactly 7 entries, Monday first, with
// an empty bucket list for weekdays without activities. It only groups by
// weekday name: callers must pre-filter the input to a single week.
func BuildWeekMatrix(list []activities.Activity) []WeekMatrixEntry {
	perDay := make(map[time.Weekday][]activities.Activity)
	for _, a := range list {
		day := a.Date.Weekday()
		perDay[day] = append(perDay[day], a)
	}

	matrix := make([]WeekMatrixEntry, 0, len(weekdaysMondayFirst))
	for _, day := range weekdaysMondayFirst {
		matrix = append(matrix, WeekMatrixEntry{
			DayOfWeek:  day.String(),
			Categories: AggregateByCategory(perDay[day]),
		})
	}
	return matrix
}
