package domain

import "testing"

func TestStatusLabel_KnownCodes(t *testing.T) {
	t.Parallel()

	cases := []struct {
		code StatusCode
		want string
	}{
		{StatusFullyAvailable, "Fully Available"},
		{StatusPartialTraining, "Partially Available - Training"},
		{StatusPartialTeamIndividual, "Partially Available - Team + Individual"},
		{StatusRehabIndividual, "Rehabilitation - Individual"},
		{StatusNotAvailableInjury, "Unavailable - Injury"},
		{StatusPartialIllness, "Partially Available - Illness"},
		{StatusNotAvailableIllness, "Unavailable - Illness"},
		{StatusIndividualWork, "Individual Work"},
		{StatusRecovery, "Recovery"},
		{StatusNotAvailableOther, "Unavailable - Other"},
		{StatusDayOff, "Day Off"},
		{StatusNationalTeam, "National Team"},
		{StatusPhysioTherapy, "Physio Therapy"},
		{StatusActive, "Active"},
		{StatusInjured, "Injured"},
		{StatusSuspended, "Suspended"},
		{StatusInactive, "Inactive"},
		{StatusRetired, "Retired"},
	}

	for _, c := range cases {
		if got := c.code.Label(); got != c.want {
			t.Errorf("Label(%q)=%q want %q", c.code, got, c.want)
		}
	}
}

func TestStatusLabel_Total(t *testing.T) {
	t.Parallel()

	// unknown non-empty codes pass through so stored labels stay stable
	if got := StatusCode("Fully Available").Label(); got != "Fully Available" {
		t.Fatalf("stored label must survive a round trip, got %q", got)
	}
	if got := StatusCode("CRYO").Label(); got != "CRYO" {
		t.Fatalf("unknown code must pass through, got %q", got)
	}
	if got := StatusCode("").Label(); got != LabelUnknown {
		t.Fatalf("empty code reads as Unknown, got %q", got)
	}
}
