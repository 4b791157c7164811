package stats

import (
	"testing"
	"time"

	"github.com/BuddyOhio/back-end-g9-final-project/internal/activities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func activityAt(start time.Time, durationMins int) activities.Activity {
	return activities.Activity{
		Date:            start,
		DurationMinutes: durationMins,
	}
}

func TestFilterByWindow(t *testing.T) {
	day := DayWindow(time.Date(2024, 2, 14, 0, 0, 0, 0, time.UTC))

	inside := activityAt(time.Date(2024, 2, 14, 8, 0, 0, 0, time.UTC), 45)
	dayBefore := activityAt(time.Date(2024, 2, 13, 8, 0, 0, 0, time.UTC), 45)
	dayAfter := activityAt(time.Date(2024, 2, 15, 8, 0, 0, 0, time.UTC), 45)
	// started the day before but finishes within the window
	overnight := activityAt(time.Date(2024, 2, 13, 23, 30, 0, 0, time.UTC), 90)

	filtered := FilterByWindow([]activities.Activity{inside, dayBefore, dayAfter, overnight}, day)
	require.Len(t, filtered, 2)
	assert.Equal(t, inside, filtered[0])
	assert.Equal(t, overnight, filtered[1])
}

func TestFilterByWindow_BoundaryInclusive(t *testing.T) {
	day := DayWindow(time.Date(2024, 2, 14, 0, 0, 0, 0, time.UTC))

	// effective end lands exactly on the window end
	atEnd := activityAt(day.End, 0)
	endingAtEnd := activityAt(day.End.Add(-30*time.Minute), 30)
	atStart := activityAt(day.Start, 0)

	filtered := FilterByWindow([]activities.Activity{atEnd, endingAtEnd, atStart}, day)
	assert.Len(t, filtered, 3)
}

func TestFilterByWindow_MidnightCrossingExcluded(t *testing.T) {
	day := DayWindow(time.Date(2024, 2, 14, 0, 0, 0, 0, time.UTC))

	// starts 23:30, runs 90 minutes, effective end 01:00 the next day
	crossing := activityAt(time.Date(2024, 2, 14, 23, 30, 0, 0, time.UTC), 90)

	filtered := FilterByWindow([]activities.Activity{crossing}, day)
	assert.Empty(t, filtered)

	// it belongs to the next day instead
	nextDay := DayWindow(time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC))
	filtered = FilterByWindow([]activities.Activity{crossing}, nextDay)
	assert.Len(t, filtered, 1)
}

func TestFilterByWindow_Stable(t *testing.T) {
	week := WeekWindow(time.Date(2024, 2, 14, 12, 0, 0, 0, time.UTC))
	input := []activities.Activity{
		activityAt(time.Date(2024, 2, 12, 8, 0, 0, 0, time.UTC), 30),
		activityAt(time.Date(2024, 2, 11, 8, 0, 0, 0, time.UTC), 30),
		activityAt(time.Date(2024, 2, 18, 23, 0, 0, 0, time.UTC), 30),
	}

	first := FilterByWindow(input, week)
	second := FilterByWindow(input, week)
	assert.Equal(t, first, second)
	assert.Len(t, first, 2)
}
