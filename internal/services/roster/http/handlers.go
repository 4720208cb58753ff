// Package http provides http transport for the roster
package http

import (
	stdhttp "net/http"

	"rosterpulse/internal/modkit/httpkit"
	pstrings "rosterpulse/internal/platform/strings"
	svc "rosterpulse/internal/services/roster/service"
)

// Register mounts roster endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	httpkit.Get(r, "/players", h.players)
}

type handlers struct{ svc svc.Service }

// PlayerResponse is one directory entry
// swagger:model
type PlayerResponse struct {
	ID     string `json:"id"     example:"b7f9c0de-1111-4a5b-9c3d-5a2e9f0c7711"`
	Name   string `json:"name"   example:"Alice Weiss"`
	Status string `json:"status" example:"FULLY_AVAILABLE"`
	Label  string `json:"label"  example:"Fully Available"`
	Tag    string `json:"tag,omitempty" example:"Match Day"`
}

// swagger:route GET /roster/players Roster rosterPlayers
// @Summary Live player directory
// @Tags Roster
// @Produce json
// @Success 200 {array} PlayerResponse "ok"
// @Router /roster/players [get]
func (h *handlers) players(r *stdhttp.Request) (any, error) {
	ps, err := h.svc.Players(r.Context())
	if err != nil {
		return nil, err
	}
	out := make([]PlayerResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, PlayerResponse{
			ID:     p.ID,
			Name:   p.Name,
			Status: string(p.Status),
			Label:  p.Status.Label(),
			Tag:    pstrings.Deref(p.Tag),
		})
	}
	return out, nil
}
