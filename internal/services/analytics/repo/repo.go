// Package repo provides storage access for availability history and events
package repo

import (
	"context"
	"time"

	"rosterpulse/internal/services/analytics/domain"
)

// Repo is the persistence surface for the analytics service and collector
type Repo interface {
	// full-history observation loads, day ascending
	Primary(ctx context.Context) ([]domain.Observation, error)
	Secondary(ctx context.Context) ([]domain.Observation, error)
	Notes(ctx context.Context) ([]domain.NoteObservation, error)

	// event reads for the events export
	EventAggregates(ctx context.Context, since, until time.Time) ([]domain.EventAggregate, error)
	EventsOn(ctx context.Context, day time.Time) ([]domain.Event, error)

	// collector writes, one row per (day, key) with last write winning
	UpsertSnapshot(ctx context.Context, day time.Time, playerID, playerName, statusLabel string, tag *string) error
	UpsertEventAggregate(ctx context.Context, agg domain.EventAggregate) error
}
