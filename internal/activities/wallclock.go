package activities

import "time"

// Normalizer converts between stored UTC instants and the wall clock the
// users live in. The production deploy stores timestamps without timezone
// information, a fixed hour offset away from the users' wall clock, so the
// conversion is a plain offset shift gated on the environment. Outside
// production both directions are the identity.
//
// The convention is fixed in one direction: storage to display ADDS the
// offset, display to storage SUBTRACTS it, so Denormalize(Normalize(t)) == t
// always holds. Swapping this for a real timezone lookup later only touches
// this type, not the aggregation logic.
type Normalizer struct {
	offset  time.Duration
	enabled bool
}

func NewNormalizer(offsetHours int, enabled bool) Normalizer {
	return Normalizer{
		offset:  time.Duration(offsetHours) * time.Hour,
		enabled: enabled,
	}
}

// Normalize converts a stored instant to the user-facing wall-clock instant.
func (n Normalizer) Normalize(t time.Time) time.Time {
	if !n.enabled {
		return t
	}
	return t.Add(n.offset)
}

// Denormalize converts a user-entered wall-clock instant to the instant to store.
func (n Normalizer) Denormalize(t time.Time) time.Time {
	if !n.enabled {
		return t
	}
	return t.Add(-n.offset)
}

// Display formats used for activity listings, matching what the frontend
// renders: "Wed Feb 14 2024" and "15:04".
const (
	DisplayDateFormat = "Mon Jan 02 2006"
	DisplayTimeFormat = "15:04"
)
