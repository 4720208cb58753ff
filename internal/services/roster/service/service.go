// Package service contains roster workflows
package service

import (
	"context"

	"rosterpulse/internal/services/roster/domain"
	"rosterpulse/internal/services/roster/repo"
)

// Service defines the roster service contract
type Service interface {
	domain.DirectoryPort
}

// Svc implements the roster service
type Svc struct {
	Repo repo.Repo
}

// New constructs a roster service over a bound repo
func New(r repo.Repo) *Svc {
	if r == nil {
		panic("roster.Service requires a non nil Repo")
	}
	return &Svc{Repo: r}
}

// Players returns the live player directory sorted by name
func (s *Svc) Players(ctx context.Context) ([]domain.Player, error) {
	return s.Repo.Players(ctx)
}
