// Package service implements the daily snapshot collector
package service

import (
	"context"
	"math"
	"sort"
	"time"

	"rosterpulse/internal/platform/logger"
	andomain "rosterpulse/internal/services/analytics/domain"
	anrepo "rosterpulse/internal/services/analytics/repo"
	"rosterpulse/internal/services/collector/domain"
	rosterdomain "rosterpulse/internal/services/roster/domain"
)

// Service defines the collector contract
type Service interface {
	domain.TriggerPort
}

// Svc implements the collector
type Svc struct {
	Repo      anrepo.Repo
	Directory rosterdomain.DirectoryPort
}

// New constructs a collector service
func New(r anrepo.Repo, dir rosterdomain.DirectoryPort) *Svc {
	if r == nil {
		panic("collector.Service requires a non nil Repo")
	}
	if dir == nil {
		panic("collector.Service requires a non nil DirectoryPort")
	}
	return &Svc{Repo: r, Directory: dir}
}

// Collect snapshots the live roster and rolls up events for one day.
// Re-running for the same day overwrites the previous snapshot
func (s *Svc) Collect(ctx context.Context, day time.Time) (domain.Summary, error) {
	day = andomain.Day(day)
	sum := domain.Summary{Day: day}

	players, err := s.Directory.Players(ctx)
	if err != nil {
		return sum, err
	}
	for _, p := range players {
		if err := s.Repo.UpsertSnapshot(ctx, day, p.ID, p.Name, p.Status.Label(), p.Tag); err != nil {
			return sum, err
		}
		sum.Players++
	}

	types, err := s.collectEvents(ctx, day)
	if err != nil {
		return sum, err
	}
	sum.EventTypes = types

	logger.C(ctx).Info().
		Str("day", day.Format("2006-01-02")).
		Int("players", sum.Players).
		Int("event_types", sum.EventTypes).
		Msg("daily collection complete")
	return sum, nil
}

type rollup struct {
	count int
	total int
}

func (s *Svc) collectEvents(ctx context.Context, day time.Time) (int, error) {
	events, err := s.Repo.EventsOn(ctx, day)
	if err != nil {
		return 0, err
	}

	byType := make(map[string]*rollup)
	for _, e := range events {
		label := andomain.EventTypeLabel(e.Type)
		r, ok := byType[label]
		if !ok {
			r = &rollup{}
			byType[label] = r
		}
		r.count++
		r.total += andomain.EventMinutes(e.Start, e.End)
	}

	// stable write order keeps reruns deterministic
	labels := make([]string, 0, len(byType))
	for label := range byType {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	for _, label := range labels {
		r := byType[label]
		agg := andomain.EventAggregate{
			Day:          day,
			Type:         label,
			Count:        r.count,
			TotalMinutes: r.total,
			AvgMinutes:   math.Round(float64(r.total) / float64(r.count)),
		}
		if err := s.Repo.UpsertEventAggregate(ctx, agg); err != nil {
			return 0, err
		}
	}
	return len(labels), nil
}
