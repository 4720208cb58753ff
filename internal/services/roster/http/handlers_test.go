package http

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	phttp "rosterpulse/internal/platform/net/http"
	"rosterpulse/internal/services/roster/domain"

	"github.com/go-chi/chi/v5"
)

type stubDirectory struct{ players []domain.Player }

func (s *stubDirectory) Players(context.Context) ([]domain.Player, error) {
	return s.players, nil
}

func TestPlayers_Handler(t *testing.T) {
	t.Parallel()

	tag := "MD-1"
	stub := &stubDirectory{players: []domain.Player{
		{ID: "p1", Name: "Alice", Status: "NOT_AVAILABLE_INJURY", Tag: &tag},
		{ID: "p2", Name: "Bob"},
	}}

	r := phttp.AdaptChi(chi.NewRouter())
	Register(r, stub)
	srv := httptest.NewServer(r.Mux())
	t.Cleanup(srv.Close)

	res, err := srv.Client().Get(srv.URL + "/players")
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	defer res.Body.Close()

	if res.StatusCode != 200 {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}

	var env struct {
		Data []PlayerResponse `json:"data"`
	}
	if err := json.NewDecoder(res.Body).Decode(&env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(env.Data) != 2 {
		t.Fatalf("expected 2 players, got %d", len(env.Data))
	}
	if env.Data[0].Status != "NOT_AVAILABLE_INJURY" || env.Data[0].Label != "Unavailable - Injury" {
		t.Fatalf("code and label both surface: %+v", env.Data[0])
	}
	if env.Data[0].Tag != "MD-1" {
		t.Fatalf("tag missing: %+v", env.Data[0])
	}
	// empty status still yields a label
	if env.Data[1].Label != "Unknown" {
		t.Fatalf("empty status labels as Unknown: %+v", env.Data[1])
	}
}
