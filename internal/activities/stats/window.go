package stats

import "time"

// Window is an inclusive [Start, End] instant range in the local
// wall-clock frame.
type Window struct {
	Start time.Time
	End   time.Time
}

func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

// DayWindow spans one local calendar day: midnight to midnight 24h later,
// both ends inclusive.
func DayWindow(localDay time.Time) Window {
	start := time.Date(localDay.Year(), localDay.Month(), localDay.Day(), 0, 0, 0, 0, localDay.Location())
	return Window{
		Start: start,
		End:   start.Add(24 * time.Hour),
	}
}

// mondayOf returns Monday 00:00 of the calendar week containing t.
// time.Weekday counts Sunday as 0, the week here starts on Monday.
func mondayOf(t time.Time) time.Time {
	daysSinceMonday := (int(t.Weekday()) + 6) % 7
	monday := t.AddDate(0, 0, -daysSinceMonday)
	return time.Date(monday.Year(), monday.Month(), monday.Day(), 0, 0, 0, 0, monday.Location())
}

// WeekWindow spans the full calendar week containing localNow:
// Monday 00:00:00.000 to Sunday 23:59:59.999.
func WeekWindow(localNow time.Time) Window {
	monday := mondayOf(localNow)
	return Window{
		Start: monday,
		End:   monday.AddDate(0, 0, 7).Add(-time.Millisecond),
	}
}

// WeekToDateWindow spans Monday 00:00 up to localNow, used for the
// streak rank which only looks at the week so far.
func WeekToDateWindow(localNow time.Time) Window {
	return Window{
		Start: mondayOf(localNow),
		End:   localNow,
	}
}
