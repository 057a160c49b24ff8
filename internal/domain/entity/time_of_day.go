package entity

import "time"

type TimeOfDay string

const (
	Morning TimeOfDay = "Morning"
	Day     TimeOfDay = "Day"
	Evening TimeOfDay = "Evening"
	Night   TimeOfDay = "Night"
)

// TimeOfDayAt buckets the wall-clock hour of t.
func TimeOfDayAt(t time.Time) TimeOfDay {
	hour := t.Hour()
	switch {
	case hour >= 6 && hour < 12:
		return Morning
	case hour >= 12 && hour < 17:
		return Day
	case hour >= 17 && hour < 20:
		return Evening
	default:
		return Night
	}
}
