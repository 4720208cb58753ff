// Package domain defines the types and interfaces for the analytics service
package domain

import "time"

// Observation is one historical per-player-per-day status row
// Status carries whatever the source stored, a raw code or an already
// mapped label; the builder resolves it through the status label table
type Observation struct {
	PlayerID string
	Day      time.Time // UTC midnight
	Status   string
	Tag      *string
}

// NoteObservation is one per-player-per-day reason/notes row
// it never supplies status
type NoteObservation struct {
	PlayerID string
	Day      time.Time // UTC midnight
	Reason   string
	Notes    *string
}

// DailyRecord is the engine output, one per player per calendar day
type DailyRecord struct {
	Day        time.Time // UTC midnight
	PlayerID   string
	PlayerName string
	Status     string // label
	Tag        *string
	Reason     string
	Notes      *string
}

// Event is one scheduled event on a calendar day
// start and end are wall clock HH:MM strings, either may be empty
type Event struct {
	ID    string
	Title string
	Type  string
	Day   time.Time // UTC midnight
	Start string
	End   string
	Tag   *string
}

// EventAggregate is one saved per-day per-type event rollup
type EventAggregate struct {
	Day          time.Time // UTC midnight
	Type         string    // label
	Count        int
	TotalMinutes int
	AvgMinutes   float64
}

// EventTypeLabel maps a raw event type code to its display label
// unknown non-empty codes pass through unchanged
func EventTypeLabel(code string) string {
	switch code {
	case "TRAINING":
		return "Training"
	case "MATCH":
		return "Match"
	case "MEETING":
		return "Meeting"
	case "MEDICAL":
		return "Medical"
	case "RECOVERY":
		return "Recovery"
	case "MEAL":
		return "Meal"
	case "REST":
		return "Rest"
	case "LB_GYM":
		return "LB Gym"
	case "UB_GYM":
		return "UB Gym"
	case "PRE_ACTIVATION":
		return "Pre-Activation"
	case "REHAB":
		return "Rehab"
	case "STAFF_MEETING":
		return "Staff Meeting"
	case "VIDEO_ANALYSIS":
		return "Video Analysis"
	case "DAY_OFF":
		return "Day Off"
	case "TRAVEL":
		return "Travel"
	case "OTHER":
		return "Other"
	default:
		return code
	}
}

// Day normalizes t to UTC midnight
func Day(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// EventMinutes computes the whole-minute duration between two HH:MM wall
// clock strings. Returns 0 when either side is missing or malformed
func EventMinutes(start, end string) int {
	if start == "" || end == "" {
		return 0
	}
	s, err := time.Parse("15:04", start)
	if err != nil {
		return 0
	}
	e, err := time.Parse("15:04", end)
	if err != nil {
		return 0
	}
	return int(e.Sub(s) / time.Minute)
}
