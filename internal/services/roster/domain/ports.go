package domain

import "context"

// DirectoryPort lists the live player directory
// consumed by handlers and by the analytics engine for seeds and overrides
type DirectoryPort interface {
	Players(ctx context.Context) ([]Player, error)
}
