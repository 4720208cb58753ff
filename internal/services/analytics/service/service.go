// Package service contains the analytics export workflows
package service

import (
	"context"
	"time"

	"rosterpulse/internal/services/analytics/domain"
	"rosterpulse/internal/services/analytics/repo"
	"rosterpulse/internal/services/analytics/timeline"
	rosterdomain "rosterpulse/internal/services/roster/domain"
)

// Config for the analytics service
type Config struct {
	// NoDateFloor collapses the empty-history fallback window to today
	NoDateFloor bool
	// EventWindowDays is the default trailing window for the events export
	EventWindowDays int
}

// Service defines the analytics service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the analytics service
type Svc struct {
	Repo      repo.Repo
	Directory rosterdomain.DirectoryPort
	Cfg       Config

	now func() time.Time // seam
}

// New constructs an analytics service
func New(r repo.Repo, dir rosterdomain.DirectoryPort, cfg Config) *Svc {
	if r == nil {
		panic("analytics.Service requires a non nil Repo")
	}
	if dir == nil {
		panic("analytics.Service requires a non nil DirectoryPort")
	}
	if cfg.EventWindowDays <= 0 {
		cfg.EventWindowDays = 30
	}
	return &Svc{Repo: r, Directory: dir, Cfg: cfg, now: time.Now}
}

// PlayersCSV reconstructs the dense availability timeline and renders it.
// days > 0 floors the walk at today-days+1; 0 means full history
func (s *Svc) PlayersCSV(ctx context.Context, days int) (domain.Export, error) {
	players, err := s.Directory.Players(ctx)
	if err != nil {
		return domain.Export{}, err
	}
	primary, err := s.Repo.Primary(ctx)
	if err != nil {
		return domain.Export{}, err
	}
	secondary, err := s.Repo.Secondary(ctx)
	if err != nil {
		return domain.Export{}, err
	}
	notes, err := s.Repo.Notes(ctx)
	if err != nil {
		return domain.Export{}, err
	}

	today := domain.Day(s.now())
	in := timeline.Inputs{
		Players:     players,
		Primary:     primary,
		Secondary:   secondary,
		Notes:       notes,
		Today:       today,
		NoDateFloor: s.Cfg.NoDateFloor,
	}
	if days > 0 {
		in.Since = today.AddDate(0, 0, -(days - 1))
	}

	records := timeline.Build(in)
	return domain.Export{
		Filename: "player-analytics-" + today.Format("2006-01-02") + ".csv",
		Body:     timeline.RenderCSV(records),
	}, nil
}

// EventsCSV renders saved aggregates for the trailing window merged with
// live events for the days that have no saved aggregate yet
func (s *Svc) EventsCSV(ctx context.Context, days int) (domain.Export, error) {
	if days <= 0 {
		days = s.Cfg.EventWindowDays
	}
	today := domain.Day(s.now())
	since := today.AddDate(0, 0, -days)

	aggs, err := s.Repo.EventAggregates(ctx, since, today)
	if err != nil {
		return domain.Export{}, err
	}

	saved := make(map[string]bool, len(aggs))
	rows := make([]timeline.EventRow, 0, len(aggs))
	for _, a := range aggs {
		saved[a.Day.Format("2006-01-02")] = true
		rows = append(rows, timeline.NewAggregateRow(a))
	}

	// live fill for days without a saved rollup, today included while the
	// collector has not run for it yet
	for d := since; !d.After(today); d = d.AddDate(0, 0, 1) {
		if saved[d.Format("2006-01-02")] {
			continue
		}
		events, err := s.Repo.EventsOn(ctx, d)
		if err != nil {
			return domain.Export{}, err
		}
		for _, e := range events {
			rows = append(rows, timeline.NewEventRow(e))
		}
	}

	return domain.Export{
		Filename: "event-analytics-" + today.Format("2006-01-02") + ".csv",
		Body:     timeline.RenderEventsCSV(rows),
	}, nil
}
