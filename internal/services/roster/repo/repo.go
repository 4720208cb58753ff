// Package repo provides storage access for the roster directory
package repo

import (
	"context"

	"rosterpulse/internal/modkit/repokit"
	perr "rosterpulse/internal/platform/errors"
	"rosterpulse/internal/services/roster/domain"
)

// Repo is the minimal persistence surface for the roster
type Repo interface {
	Players(ctx context.Context) ([]domain.Player, error)
}

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

func (r *queries) Players(ctx context.Context) ([]domain.Player, error) {
	const sql = `
select id, name, coalesce(availability_status, ''), match_day_tag
from players
order by name asc
`
	rows, err := r.q.Query(ctx, sql)
	if err != nil {
		return nil, perr.FromPostgres(err, "list players")
	}
	defer rows.Close()
	var out []domain.Player
	for rows.Next() {
		var p domain.Player
		var status string
		if err := rows.Scan(&p.ID, &p.Name, &status, &p.Tag); err != nil {
			return nil, perr.FromPostgres(err, "scan player")
		}
		p.Status = domain.StatusCode(status)
		out = append(out, p)
	}
	return out, rows.Err()
}
