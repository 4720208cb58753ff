package domain

import (
	"context"
	"time"
)

// SourcePort loads the full observation history, all players, all time
// implementations keep day ordering ascending for deterministic iteration
type SourcePort interface {
	// Primary is the rich analytics source, may carry a tag
	Primary(ctx context.Context) ([]Observation, error)
	// Secondary is the simpler availability source, never carries a tag
	Secondary(ctx context.Context) ([]Observation, error)
	// Notes is the overlay-only reason/notes source
	Notes(ctx context.Context) ([]NoteObservation, error)
}

// EventPort loads saved event aggregates and raw events
type EventPort interface {
	EventAggregates(ctx context.Context, since, until time.Time) ([]EventAggregate, error)
	EventsOn(ctx context.Context, day time.Time) ([]Event, error)
}

// ServicePort is consumed by the HTTP handlers
type ServicePort interface {
	// PlayersCSV reconstructs the full availability timeline and renders it
	// days > 0 floors the walk at today-days+1
	PlayersCSV(ctx context.Context, days int) (Export, error)
	// EventsCSV renders saved aggregates merged with live events for days
	// missing a saved aggregate, over the trailing window
	EventsCSV(ctx context.Context, days int) (Export, error)
}

// Export is a rendered attachment body
type Export struct {
	Filename string
	Body     []byte
}
