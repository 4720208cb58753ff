package repo

import (
	"context"
	"path/filepath"
	"testing"

	"rosterpulse/internal/platform/store/local"
)

func TestLocalRepo_PlayersSortedByName(t *testing.T) {
	t.Parallel()

	st, err := local.Open(filepath.Join(t.TempDir(), "state.json"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	ctx := context.Background()

	tag := "MD-1"
	err = st.Write(ctx, local.State{Players: []local.PlayerDoc{
		{ID: "p2", Name: "Zoe", AvailabilityStatus: "INJURED"},
		{ID: "p1", Name: "Alice", AvailabilityStatus: "FULLY_AVAILABLE", MatchDayTag: &tag},
		{ID: "p3", Name: "Milo"},
	}})
	if err != nil {
		t.Fatalf("seed: %v", err)
	}

	players, err := NewLocal(st).Players(ctx)
	if err != nil {
		t.Fatalf("players: %v", err)
	}

	if len(players) != 3 {
		t.Fatalf("expected 3 players, got %d", len(players))
	}
	if players[0].Name != "Alice" || players[1].Name != "Milo" || players[2].Name != "Zoe" {
		t.Fatalf("players not name sorted: %+v", players)
	}
	if players[0].Tag == nil || *players[0].Tag != "MD-1" {
		t.Fatalf("tag missing: %+v", players[0])
	}
	if players[2].Status.Label() != "Injured" {
		t.Fatalf("status code must label-map: %q", players[2].Status)
	}
	// a player with no stored status labels as Unknown
	if players[1].Status.Label() != "Unknown" {
		t.Fatalf("empty status labels as Unknown: %q", players[1].Status)
	}
}
