package repo

import (
	"context"
	"time"

	"rosterpulse/internal/modkit/repokit"
	perr "rosterpulse/internal/platform/errors"
	"rosterpulse/internal/platform/logger"
	"rosterpulse/internal/services/analytics/domain"
)

type (
	// PG is a binder that can bind the repo to a Queryer or TxRunner
	PG struct{}
	// queries implements the Repo interface
	queries struct{ q repokit.Queryer }
)

// NewPG returns a binder that can bind the repo to a Queryer or TxRunner
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind wires a Queryer to the repo
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

const primarySQL = `
select player_id, day, coalesce(status, ''), match_day_tag
from daily_player_analytics
order by day asc, player_id asc
`

// primaryNoTagSQL is the degraded form for schemas predating match_day_tag
const primaryNoTagSQL = `
select player_id, day, coalesce(status, '')
from daily_player_analytics
order by day asc, player_id asc
`

// Primary loads the rich analytics source. When the tag column is missing
// (SQLSTATE 42703) it retries without the column and yields nil tags,
// degradation is logged and never fails the request
func (r *queries) Primary(ctx context.Context) ([]domain.Observation, error) {
	out, err := r.scanObservations(ctx, primarySQL, true)
	if err == nil {
		return out, nil
	}
	if !perr.IsUndefinedColumn(err) {
		return nil, perr.FromPostgres(err, "load primary observations")
	}
	logger.C(ctx).Warn().
		Err(err).
		Msg("match_day_tag column missing, degrading primary observations to null tags")
	out, err = r.scanObservations(ctx, primaryNoTagSQL, false)
	if err != nil {
		return nil, perr.FromPostgres(err, "load primary observations (degraded)")
	}
	return out, nil
}

// Secondary loads the simpler availability source, it never carries a tag
func (r *queries) Secondary(ctx context.Context) ([]domain.Observation, error) {
	const sql = `
select player_id, day, coalesce(status, '')
from daily_player_availability
order by day asc, player_id asc
`
	out, err := r.scanObservations(ctx, sql, false)
	if err != nil {
		return nil, perr.FromPostgres(err, "load secondary observations")
	}
	return out, nil
}

func (r *queries) scanObservations(ctx context.Context, sql string, withTag bool) ([]domain.Observation, error) {
	rows, err := r.q.Query(ctx, sql)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []domain.Observation
	for rows.Next() {
		var o domain.Observation
		var day time.Time
		if withTag {
			err = rows.Scan(&o.PlayerID, &day, &o.Status, &o.Tag)
		} else {
			err = rows.Scan(&o.PlayerID, &day, &o.Status)
		}
		if err != nil {
			return nil, err
		}
		o.Day = domain.Day(day)
		out = append(out, o)
	}
	return out, rows.Err()
}

// Notes loads the overlay-only reason/notes source
func (r *queries) Notes(ctx context.Context) ([]domain.NoteObservation, error) {
	const sql = `
select player_id, day, coalesce(reason, ''), notes
from daily_player_notes
order by day asc, player_id asc
`
	rows, err := r.q.Query(ctx, sql)
	if err != nil {
		return nil, perr.FromPostgres(err, "load note observations")
	}
	defer rows.Close()
	var out []domain.NoteObservation
	for rows.Next() {
		var n domain.NoteObservation
		var day time.Time
		if err := rows.Scan(&n.PlayerID, &day, &n.Reason, &n.Notes); err != nil {
			return nil, perr.FromPostgres(err, "scan note observation")
		}
		n.Day = domain.Day(day)
		out = append(out, n)
	}
	return out, rows.Err()
}

// EventAggregates loads saved rollups over [since, until] inclusive
func (r *queries) EventAggregates(ctx context.Context, since, until time.Time) ([]domain.EventAggregate, error) {
	const sql = `
select day, event_type, event_count, total_duration, avg_duration
from daily_event_analytics
where day between $1 and $2
order by day asc, event_type asc
`
	rows, err := r.q.Query(ctx, sql, domain.Day(since), domain.Day(until))
	if err != nil {
		return nil, perr.FromPostgres(err, "load event aggregates")
	}
	defer rows.Close()
	var out []domain.EventAggregate
	for rows.Next() {
		var a domain.EventAggregate
		var day time.Time
		if err := rows.Scan(&day, &a.Type, &a.Count, &a.TotalMinutes, &a.AvgMinutes); err != nil {
			return nil, perr.FromPostgres(err, "scan event aggregate")
		}
		a.Day = domain.Day(day)
		out = append(out, a)
	}
	return out, rows.Err()
}

// EventsOn loads the raw events scheduled on one day
func (r *queries) EventsOn(ctx context.Context, day time.Time) ([]domain.Event, error) {
	const sql = `
select id, coalesce(title, ''), coalesce(event_type, 'OTHER'), day,
       coalesce(start_time, ''), coalesce(end_time, ''), match_day_tag
from events
where day = $1
order by start_time asc, id asc
`
	rows, err := r.q.Query(ctx, sql, domain.Day(day))
	if err != nil {
		return nil, perr.FromPostgres(err, "load events")
	}
	defer rows.Close()
	var out []domain.Event
	for rows.Next() {
		var e domain.Event
		var d time.Time
		if err := rows.Scan(&e.ID, &e.Title, &e.Type, &d, &e.Start, &e.End, &e.Tag); err != nil {
			return nil, perr.FromPostgres(err, "scan event")
		}
		e.Day = domain.Day(d)
		out = append(out, e)
	}
	return out, rows.Err()
}

// UpsertSnapshot writes one primary-source row for (day, player)
func (r *queries) UpsertSnapshot(
	ctx context.Context,
	day time.Time,
	playerID, playerName, statusLabel string,
	tag *string,
) error {
	const sql = `
insert into daily_player_analytics (day, player_id, player_name, status, match_day_tag)
values ($1, $2, $3, $4, $5)
on conflict (day, player_id) do update
set player_name = excluded.player_name,
    status = excluded.status,
    match_day_tag = excluded.match_day_tag,
    updated_at = now()
`
	_, err := r.q.Exec(ctx, sql, domain.Day(day), playerID, playerName, statusLabel, tag)
	return perr.FromPostgres(err, "upsert daily snapshot")
}

// UpsertEventAggregate writes one rollup row for (day, event type)
func (r *queries) UpsertEventAggregate(ctx context.Context, agg domain.EventAggregate) error {
	const sql = `
insert into daily_event_analytics (day, event_type, event_count, total_duration, avg_duration)
values ($1, $2, $3, $4, $5)
on conflict (day, event_type) do update
set event_count = excluded.event_count,
    total_duration = excluded.total_duration,
    avg_duration = excluded.avg_duration,
    updated_at = now()
`
	_, err := r.q.Exec(ctx, sql, agg.Day, agg.Type, agg.Count, agg.TotalMinutes, agg.AvgMinutes)
	return perr.FromPostgres(err, "upsert event aggregate")
}
