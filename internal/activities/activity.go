package activities

import "time"

// Type is the fixed activity category enumeration. Free text for custom
// activities goes into TypeOther and only when Type is TypeOther.
type Type string

const (
	TypeRun        Type = "run"
	TypeWalk       Type = "walk"
	TypeBike       Type = "bike"
	TypeSwim       Type = "swim"
	TypeMeditation Type = "meditation"
	TypeYoga       Type = "yoga"
	TypeOther      Type = "other"
)

func (t Type) Valid() bool {
	switch t {
	case TypeRun, TypeWalk, TypeBike, TypeSwim, TypeMeditation, TypeYoga, TypeOther:
		return true
	}
	return false
}

type Status string

const (
	StatusUpcoming  Status = "upcoming"
	StatusCompleted Status = "completed"
)

// StatusFor derives the activity status at write time: an activity starting
// after "now" is upcoming, otherwise completed. Both instants must be in the
// same wall-clock frame. The status is stored as derived here and never
// recomputed lazily; the only other transition is the explicit
// mark-as-completed update.
func StatusFor(now, start time.Time) Status {
	if start.After(now) {
		return StatusUpcoming
	}
	return StatusCompleted
}

type Activity struct {
	ID              string    `json:"activityId"`
	UserID          string    `json:"-"`
	Name            string    `json:"activityName"`
	Description     string    `json:"activityDesc"`
	Type            Type      `json:"activityType"`
	TypeOther       string    `json:"activityTypeOther"`
	Date            time.Time `json:"activityDate"` // stored UTC instant
	DurationMinutes int       `json:"activityDuration"`
	Status          Status    `json:"activityStatus"`
}

// EffectiveEnd is the instant the activity occupies time until:
// start plus duration.
func (a Activity) EffectiveEnd() time.Time {
	return a.Date.Add(time.Duration(a.DurationMinutes) * time.Minute)
}
