package repo

import (
	"context"
	"sort"
	"time"

	"rosterpulse/internal/platform/store/local"
	"rosterpulse/internal/services/analytics/domain"

	"github.com/google/uuid"
)

// localRepo reads and writes the file backed state document
type localRepo struct{ st *local.Store }

// NewLocal wires the local state store to the repo
func NewLocal(st *local.Store) Repo { return &localRepo{st: st} }

func parseDay(s string) (time.Time, bool) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, false
	}
	return domain.Day(t), true
}

func toObservations(docs []local.AnalyticsDoc) []domain.Observation {
	out := make([]domain.Observation, 0, len(docs))
	for _, d := range docs {
		day, ok := parseDay(d.Date)
		if !ok {
			continue
		}
		out = append(out, domain.Observation{
			PlayerID: d.PlayerID,
			Day:      day,
			Status:   d.Status,
			Tag:      d.MatchDayTag,
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Day.Equal(out[j].Day) {
			return out[i].Day.Before(out[j].Day)
		}
		return out[i].PlayerID < out[j].PlayerID
	})
	return out
}

func (r *localRepo) Primary(ctx context.Context) ([]domain.Observation, error) {
	st, err := r.st.Read(ctx)
	if err != nil {
		return nil, err
	}
	return toObservations(st.DailyPlayerAnalytics), nil
}

func (r *localRepo) Secondary(ctx context.Context) ([]domain.Observation, error) {
	st, err := r.st.Read(ctx)
	if err != nil {
		return nil, err
	}
	return toObservations(st.DailyPlayerAvailability), nil
}

func (r *localRepo) Notes(ctx context.Context) ([]domain.NoteObservation, error) {
	st, err := r.st.Read(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.NoteObservation, 0, len(st.DailyPlayerNotes))
	for _, d := range st.DailyPlayerNotes {
		day, ok := parseDay(d.Date)
		if !ok {
			continue
		}
		out = append(out, domain.NoteObservation{
			PlayerID: d.PlayerID,
			Day:      day,
			Reason:   d.Reason,
			Notes:    d.Notes,
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Day.Equal(out[j].Day) {
			return out[i].Day.Before(out[j].Day)
		}
		return out[i].PlayerID < out[j].PlayerID
	})
	return out, nil
}

func (r *localRepo) EventAggregates(ctx context.Context, since, until time.Time) ([]domain.EventAggregate, error) {
	st, err := r.st.Read(ctx)
	if err != nil {
		return nil, err
	}
	lo, hi := domain.Day(since), domain.Day(until)
	var out []domain.EventAggregate
	for _, d := range st.DailyEventAnalytics {
		day, ok := parseDay(d.Date)
		if !ok || day.Before(lo) || day.After(hi) {
			continue
		}
		out = append(out, domain.EventAggregate{
			Day:          day,
			Type:         d.EventType,
			Count:        d.EventCount,
			TotalMinutes: d.TotalDuration,
			AvgMinutes:   d.AvgDuration,
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Day.Equal(out[j].Day) {
			return out[i].Day.Before(out[j].Day)
		}
		return out[i].Type < out[j].Type
	})
	return out, nil
}

func (r *localRepo) EventsOn(ctx context.Context, day time.Time) ([]domain.Event, error) {
	st, err := r.st.Read(ctx)
	if err != nil {
		return nil, err
	}
	want := domain.Day(day)
	var out []domain.Event
	for _, d := range st.Events {
		ed, ok := parseDay(d.Date)
		if !ok || !ed.Equal(want) {
			continue
		}
		typ := d.EventType
		if typ == "" {
			typ = "OTHER"
		}
		out = append(out, domain.Event{
			ID:    d.ID,
			Title: d.Title,
			Type:  typ,
			Day:   ed,
			Start: d.StartTime,
			End:   d.EndTime,
			Tag:   d.MatchDayTag,
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Start != out[j].Start {
			return out[i].Start < out[j].Start
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *localRepo) UpsertSnapshot(
	ctx context.Context,
	day time.Time,
	playerID, playerName, statusLabel string,
	tag *string,
) error {
	date := domain.Day(day).Format("2006-01-02")
	return r.st.Mutate(ctx, func(s *local.State) error {
		for i := range s.DailyPlayerAnalytics {
			d := &s.DailyPlayerAnalytics[i]
			if d.Date == date && d.PlayerID == playerID {
				d.PlayerName = playerName
				d.Status = statusLabel
				d.MatchDayTag = tag
				return nil
			}
		}
		s.DailyPlayerAnalytics = append(s.DailyPlayerAnalytics, local.AnalyticsDoc{
			ID:          uuid.NewString(),
			Date:        date,
			PlayerID:    playerID,
			PlayerName:  playerName,
			Status:      statusLabel,
			MatchDayTag: tag,
		})
		return nil
	})
}

func (r *localRepo) UpsertEventAggregate(ctx context.Context, agg domain.EventAggregate) error {
	date := domain.Day(agg.Day).Format("2006-01-02")
	return r.st.Mutate(ctx, func(s *local.State) error {
		for i := range s.DailyEventAnalytics {
			d := &s.DailyEventAnalytics[i]
			if d.Date == date && d.EventType == agg.Type {
				d.EventCount = agg.Count
				d.TotalDuration = agg.TotalMinutes
				d.AvgDuration = agg.AvgMinutes
				return nil
			}
		}
		s.DailyEventAnalytics = append(s.DailyEventAnalytics, local.EventAggregateDoc{
			ID:            uuid.NewString(),
			Date:          date,
			EventType:     agg.Type,
			EventCount:    agg.Count,
			TotalDuration: agg.TotalMinutes,
			AvgDuration:   agg.AvgMinutes,
		})
		return nil
	})
}
