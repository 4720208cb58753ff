// Package timeline reconstructs dense daily availability timelines from
// sparse historical observations. The builder is pure: all data is loaded
// up front and everything here is in-memory transformation
package timeline

import (
	"sort"
	"time"

	"rosterpulse/internal/services/analytics/domain"
	rosterdomain "rosterpulse/internal/services/roster/domain"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Inputs carries everything Build needs
type Inputs struct {
	Players   []rosterdomain.Player
	Primary   []domain.Observation
	Secondary []domain.Observation
	Notes     []domain.NoteObservation

	// Today is the walk's inclusive upper bound, normalized to UTC midnight
	Today time.Time

	// Since, when non-zero, replaces the computed global earliest date so
	// callers can floor the walk to a trailing window
	Since time.Time

	// NoDateFloor collapses the empty-history fallback from yesterday to
	// today, producing a single-day window instead of a two-day one
	NoDateFloor bool
}

// dayKey is the composite observation lookup key
type dayKey struct {
	playerID string
	day      time.Time
}

// Build produces exactly one DailyRecord per player per day over
// [start, today], forward-filling status, tag, reason and notes.
// Output is sorted day ascending then player name ascending
func Build(in Inputs) []domain.DailyRecord {
	today := domain.Day(in.Today)
	start := earliest(in, today)

	primary := index(in.Primary)
	secondary := index(in.Secondary)
	notes := indexNotes(in.Notes)

	seedObs := firstObservations(in.Primary, in.Secondary)
	var seedNotes map[string]domain.NoteObservation
	if !in.Since.IsZero() {
		// a caller-set floor can cut mid-history; carry the state the walk
		// would have reached by the floor instead of the first-ever signal
		for id, o := range latestObservationsBefore(in.Primary, in.Secondary, start) {
			seedObs[id] = o
		}
		seedNotes = latestNotesBefore(in.Notes, start)
	}

	var out []domain.DailyRecord
	for _, p := range in.Players {
		out = append(out, walk(p, start, today, primary, secondary, notes, seedObs, seedNotes)...)
	}

	sortRecords(out)
	return out
}

// earliest computes the walk's lower bound: the earliest day in either
// historical source, the caller's floor when set, or the empty-history default
func earliest(in Inputs, today time.Time) time.Time {
	if !in.Since.IsZero() {
		return domain.Day(in.Since)
	}
	var min time.Time
	consider := func(obs []domain.Observation) {
		for _, o := range obs {
			d := domain.Day(o.Day)
			if min.IsZero() || d.Before(min) {
				min = d
			}
		}
	}
	consider(in.Primary)
	consider(in.Secondary)
	if !min.IsZero() {
		// future-dated rows must not push the start past today, the walk
		// always emits at least one day per player
		if min.After(today) {
			return today
		}
		return min
	}
	if in.NoDateFloor {
		return today
	}
	return today.AddDate(0, 0, -1)
}

func index(obs []domain.Observation) map[dayKey]domain.Observation {
	m := make(map[dayKey]domain.Observation, len(obs))
	for _, o := range obs {
		m[dayKey{o.PlayerID, domain.Day(o.Day)}] = o
	}
	return m
}

func indexNotes(notes []domain.NoteObservation) map[dayKey]domain.NoteObservation {
	m := make(map[dayKey]domain.NoteObservation, len(notes))
	for _, n := range notes {
		m[dayKey{n.PlayerID, domain.Day(n.Day)}] = n
	}
	return m
}

// firstObservations finds each player's first chronological observation
// across both sources; primary wins a same-day tie
func firstObservations(primary, secondary []domain.Observation) map[string]domain.Observation {
	m := make(map[string]domain.Observation)
	for _, o := range secondary {
		d := domain.Day(o.Day)
		if cur, ok := m[o.PlayerID]; !ok || d.Before(domain.Day(cur.Day)) {
			m[o.PlayerID] = o
		}
	}
	for _, o := range primary {
		d := domain.Day(o.Day)
		cur, ok := m[o.PlayerID]
		// earlier than the current pick, or same day (primary precedence)
		if !ok || !d.After(domain.Day(cur.Day)) {
			m[o.PlayerID] = o
		}
	}
	return m
}

// latestObservationsBefore finds each player's most recent observation
// strictly before start; primary wins a same-day tie
func latestObservationsBefore(primary, secondary []domain.Observation, start time.Time) map[string]domain.Observation {
	m := make(map[string]domain.Observation)
	for _, o := range secondary {
		d := domain.Day(o.Day)
		if !d.Before(start) {
			continue
		}
		if cur, ok := m[o.PlayerID]; !ok || d.After(domain.Day(cur.Day)) {
			m[o.PlayerID] = o
		}
	}
	for _, o := range primary {
		d := domain.Day(o.Day)
		if !d.Before(start) {
			continue
		}
		cur, ok := m[o.PlayerID]
		// later than the current pick, or same day (primary precedence)
		if !ok || !d.Before(domain.Day(cur.Day)) {
			m[o.PlayerID] = o
		}
	}
	return m
}

// latestNotesBefore finds each player's most recent note strictly before start
func latestNotesBefore(notes []domain.NoteObservation, start time.Time) map[string]domain.NoteObservation {
	m := make(map[string]domain.NoteObservation)
	for _, n := range notes {
		d := domain.Day(n.Day)
		if !d.Before(start) {
			continue
		}
		if cur, ok := m[n.PlayerID]; !ok || d.After(domain.Day(cur.Day)) {
			m[n.PlayerID] = n
		}
	}
	return m
}

func walk(
	p rosterdomain.Player,
	start, today time.Time,
	primary, secondary map[dayKey]domain.Observation,
	notes map[dayKey]domain.NoteObservation,
	seedObs map[string]domain.Observation,
	seedNotes map[string]domain.NoteObservation,
) []domain.DailyRecord {
	var lastStatus string
	var lastTag *string

	if seed, ok := seedObs[p.ID]; ok {
		// seed prior status from history, not from today's live status, so
		// pre-walk days reflect where the player actually was
		lastStatus = rosterdomain.StatusCode(seed.Status).Label()
		lastTag = seed.Tag
	} else if p.Status != "" {
		lastStatus = p.Status.Label()
		lastTag = p.Tag
	} else {
		lastStatus = rosterdomain.LabelFullyAvailable
		lastTag = p.Tag
	}

	lastReason := ""
	var lastNotes *string
	if n, ok := seedNotes[p.ID]; ok {
		lastReason, lastNotes = n.Reason, n.Notes
	}

	days := int(today.Sub(start)/(24*time.Hour)) + 1
	if days < 1 {
		days = 1
	}
	out := make([]domain.DailyRecord, 0, days)

	for d := start; !d.After(today); d = d.AddDate(0, 0, 1) {
		key := dayKey{p.ID, d}
		obs, ok := primary[key]
		if !ok {
			obs, ok = secondary[key]
		}

		var tagForDay *string
		if ok {
			lastStatus = rosterdomain.StatusCode(obs.Status).Label()
			switch {
			case d.Equal(today):
				// today's tag is still mutable, read it live and do not
				// freeze history from it
				tagForDay = p.Tag
			case obs.Tag != nil:
				tagForDay = obs.Tag
				lastTag = obs.Tag
			default:
				tagForDay = lastTag
			}
		} else {
			if lastStatus == "" {
				lastStatus = rosterdomain.LabelFullyAvailable
			}
			if d.Equal(today) {
				tagForDay = p.Tag
			} else {
				tagForDay = lastTag
			}
		}

		var reason string
		var noteText *string
		if lastStatus == rosterdomain.LabelFullyAvailable {
			// availability implies no reason, even against stale note data
			reason, noteText = "", nil
			lastReason, lastNotes = "", nil
		} else if n, ok := notes[key]; ok {
			reason, noteText = n.Reason, n.Notes
			lastReason, lastNotes = n.Reason, n.Notes
		} else {
			reason, noteText = lastReason, lastNotes
		}

		out = append(out, domain.DailyRecord{
			Day:        d,
			PlayerID:   p.ID,
			PlayerName: p.Name,
			Status:     lastStatus,
			Tag:        tagForDay,
			Reason:     reason,
			Notes:      noteText,
		})
	}
	return out
}

// sortRecords orders day ascending then player name ascending, with
// locale-aware name comparison so exports are stable for human readers
func sortRecords(rs []domain.DailyRecord) {
	coll := collate.New(language.English)
	sort.SliceStable(rs, func(i, j int) bool {
		if !rs[i].Day.Equal(rs[j].Day) {
			return rs[i].Day.Before(rs[j].Day)
		}
		return coll.CompareString(rs[i].PlayerName, rs[j].PlayerName) < 0
	})
}
