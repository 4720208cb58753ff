// Package domain holds the collector contracts
package domain

import (
	"context"
	"time"
)

// Summary reports what one collection run wrote
type Summary struct {
	Day        time.Time
	Players    int
	EventTypes int
}

// TriggerPort runs a collection for one day on demand
type TriggerPort interface {
	Collect(ctx context.Context, day time.Time) (Summary, error)
}
