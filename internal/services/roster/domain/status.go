// Package domain defines the types and interfaces for the roster service
package domain

// StatusCode is the raw availability code stored on a player or observation
type StatusCode string

// Known availability codes
const (
	StatusFullyAvailable        StatusCode = "FULLY_AVAILABLE"
	StatusPartialTraining       StatusCode = "PARTIAL_TRAINING"
	StatusPartialTeamIndividual StatusCode = "PARTIAL_TEAM_INDIVIDUAL"
	StatusRehabIndividual       StatusCode = "REHAB_INDIVIDUAL"
	StatusNotAvailableInjury    StatusCode = "NOT_AVAILABLE_INJURY"
	StatusPartialIllness        StatusCode = "PARTIAL_ILLNESS"
	StatusNotAvailableIllness   StatusCode = "NOT_AVAILABLE_ILLNESS"
	StatusIndividualWork        StatusCode = "INDIVIDUAL_WORK"
	StatusRecovery              StatusCode = "RECOVERY"
	StatusNotAvailableOther     StatusCode = "NOT_AVAILABLE_OTHER"
	StatusDayOff                StatusCode = "DAY_OFF"
	StatusNationalTeam          StatusCode = "NATIONAL_TEAM"
	StatusPhysioTherapy         StatusCode = "PHYSIO_THERAPY"
	StatusActive                StatusCode = "ACTIVE"
	StatusInjured               StatusCode = "INJURED"
	StatusSuspended             StatusCode = "SUSPENDED"
	StatusInactive              StatusCode = "INACTIVE"
	StatusRetired               StatusCode = "RETIRED"
)

// Canonical labels the exports depend on
const (
	LabelFullyAvailable = "Fully Available"
	LabelUnknown        = "Unknown"
)

// Label maps a status code to its human readable label.
// The mapping is total: unknown non-empty codes pass through unchanged so
// rows written with a label already (historical snapshots) stay stable,
// and an empty code reads as Unknown
func (c StatusCode) Label() string {
	switch c {
	case StatusFullyAvailable:
		return LabelFullyAvailable
	case StatusPartialTraining:
		return "Partially Available - Training"
	case StatusPartialTeamIndividual:
		return "Partially Available - Team + Individual"
	case StatusRehabIndividual:
		return "Rehabilitation - Individual"
	case StatusNotAvailableInjury:
		return "Unavailable - Injury"
	case StatusPartialIllness:
		return "Partially Available - Illness"
	case StatusNotAvailableIllness:
		return "Unavailable - Illness"
	case StatusIndividualWork:
		return "Individual Work"
	case StatusRecovery:
		return "Recovery"
	case StatusNotAvailableOther:
		return "Unavailable - Other"
	case StatusDayOff:
		return "Day Off"
	case StatusNationalTeam:
		return "National Team"
	case StatusPhysioTherapy:
		return "Physio Therapy"
	case StatusActive:
		return "Active"
	case StatusInjured:
		return "Injured"
	case StatusSuspended:
		return "Suspended"
	case StatusInactive:
		return "Inactive"
	case StatusRetired:
		return "Retired"
	case "":
		return LabelUnknown
	default:
		return string(c)
	}
}
