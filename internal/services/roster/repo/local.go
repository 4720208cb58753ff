package repo

import (
	"context"
	"sort"

	"rosterpulse/internal/platform/store/local"
	"rosterpulse/internal/services/roster/domain"
)

// localRepo reads the roster out of the file backed state document
type localRepo struct{ st *local.Store }

// NewLocal wires the local state store to the repo
func NewLocal(st *local.Store) Repo { return &localRepo{st: st} }

func (r *localRepo) Players(ctx context.Context) ([]domain.Player, error) {
	st, err := r.st.Read(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Player, 0, len(st.Players))
	for _, p := range st.Players {
		out = append(out, domain.Player{
			ID:     p.ID,
			Name:   p.Name,
			Status: domain.StatusCode(p.AvailabilityStatus),
			Tag:    p.MatchDayTag,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}
