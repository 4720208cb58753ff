package local

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "data", "state.json"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	return s
}

func TestOpen_RequiresPath(t *testing.T) {
	t.Parallel()

	if _, err := Open(""); err == nil {
		t.Fatalf("expected error for empty path")
	}
}

func TestRead_MissingFileIsEmptyState(t *testing.T) {
	t.Parallel()

	s := openTemp(t)
	st, err := s.Read(context.Background())
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(st.Players) != 0 || len(st.Events) != 0 {
		t.Fatalf("expected empty state, got %+v", st)
	}
}

func TestWriteRead_RoundTrip(t *testing.T) {
	t.Parallel()

	s := openTemp(t)
	ctx := context.Background()

	tag := "MD-1"
	in := State{
		Players: []PlayerDoc{{ID: "p1", Name: "Alice", AvailabilityStatus: "FULLY_AVAILABLE", MatchDayTag: &tag}},
		Events:  []EventDoc{{ID: "e1", Title: "Session", EventType: "TRAINING", Date: "2024-01-01", StartTime: "09:00", EndTime: "10:00"}},
	}
	if err := s.Write(ctx, in); err != nil {
		t.Fatalf("write: %v", err)
	}

	out, err := s.Read(ctx)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(out.Players) != 1 || out.Players[0].Name != "Alice" {
		t.Fatalf("players did not round trip: %+v", out.Players)
	}
	if out.Players[0].MatchDayTag == nil || *out.Players[0].MatchDayTag != "MD-1" {
		t.Fatalf("tag did not round trip: %+v", out.Players[0])
	}
	if len(out.Events) != 1 || out.Events[0].StartTime != "09:00" {
		t.Fatalf("events did not round trip: %+v", out.Events)
	}

	// no tmp file left behind
	if _, err := os.Stat(s.Path() + ".tmp"); !os.IsNotExist(err) {
		t.Fatalf("tmp file should be renamed away: %v", err)
	}
}

func TestMutate_ReadModifyWrite(t *testing.T) {
	t.Parallel()

	s := openTemp(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		err := s.Mutate(ctx, func(st *State) error {
			st.Players = append(st.Players, PlayerDoc{ID: "p", Name: "x"})
			return nil
		})
		if err != nil {
			t.Fatalf("mutate %d: %v", i, err)
		}
	}

	st, err := s.Read(ctx)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(st.Players) != 3 {
		t.Fatalf("expected 3 accumulated players, got %d", len(st.Players))
	}
}

func TestMutate_ErrorDoesNotPersist(t *testing.T) {
	t.Parallel()

	s := openTemp(t)
	ctx := context.Background()

	err := s.Mutate(ctx, func(st *State) error {
		st.Players = append(st.Players, PlayerDoc{ID: "p"})
		return os.ErrInvalid
	})
	if err == nil {
		t.Fatalf("expected mutate error to propagate")
	}

	st, _ := s.Read(ctx)
	if len(st.Players) != 0 {
		t.Fatalf("failed mutation must not persist, got %+v", st.Players)
	}
}

func TestRead_CorruptFileErrors(t *testing.T) {
	t.Parallel()

	s := openTemp(t)
	if err := os.WriteFile(s.Path(), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("seed corrupt file: %v", err)
	}
	_, err := s.Read(context.Background())
	if err == nil || !strings.Contains(err.Error(), "parse") {
		t.Fatalf("expected parse error, got %v", err)
	}
}
