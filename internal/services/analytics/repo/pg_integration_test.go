//go:build integration_pg
// +build integration_pg

package repo

import (
	"context"
	"fmt"
	"testing"
	"time"

	"rosterpulse/internal/platform/store"
	"rosterpulse/internal/services/analytics/domain"

	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// startPostgres launches a disposable Postgres and returns DSN + stop func
func startPostgres(t *testing.T) (dsn string, stop func()) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)

	req := tc.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "postgres",
			"POSTGRES_PASSWORD": "postgres",
			"POSTGRES_DB":       "postgres",
		},
		WaitingFor: wait.ForAll(
			wait.ForListeningPort("5432/tcp"),
			wait.ForLog("database system is ready to accept connections"),
		).WithDeadline(2 * time.Minute),
	}
	c, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		cancel()
		t.Fatalf("failed to start postgres container: %v", err)
	}

	host, err := c.Host(ctx)
	if err != nil {
		_ = c.Terminate(context.Background())
		cancel()
		t.Fatalf("failed to get container host: %v", err)
	}
	mp, err := c.MappedPort(ctx, "5432/tcp")
	if err != nil {
		_ = c.Terminate(context.Background())
		cancel()
		t.Fatalf("failed to get mapped port: %v", err)
	}

	dsn = fmt.Sprintf("postgres://postgres:postgres@%s:%s/postgres?sslmode=disable", host, mp.Port())
	stop = func() {
		_ = c.Terminate(context.Background())
		cancel()
	}
	return dsn, stop
}

func openStore(t *testing.T, ctx context.Context, dsn string) *store.Store {
	t.Helper()
	st, err := store.Open(ctx, store.Config{
		AppName: "rosterpulse-integration",
		PG:      store.PGConfig{Enabled: true, URL: dsn, MaxConns: 2},
	})
	if err != nil {
		t.Fatalf("store.Open: %v", err)
	}
	t.Cleanup(func() { _ = st.Close(context.Background()) })
	return st
}

func TestPGRepo_SnapshotRoundTrip_Integration(t *testing.T) {
	dsn, stop := startPostgres(t)
	defer stop()

	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	st := openStore(t, ctx, dsn)
	q := st.PG

	ddl := []string{
		`create table daily_player_analytics (
			day date not null,
			player_id text not null,
			player_name text not null,
			status text,
			match_day_tag text,
			updated_at timestamptz not null default now(),
			unique (day, player_id)
		)`,
		`create table daily_player_availability (
			day date not null, player_id text not null, status text
		)`,
		`create table daily_player_notes (
			day date not null, player_id text not null, reason text, notes text
		)`,
	}
	for _, stmt := range ddl {
		if _, err := q.Exec(ctx, stmt); err != nil {
			t.Fatalf("ddl: %v", err)
		}
	}

	r := NewPG().Bind(q)
	day := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)

	tag := "MD-1"
	if err := r.UpsertSnapshot(ctx, day, "p1", "Alice", "Injured", &tag); err != nil {
		t.Fatalf("insert: %v", err)
	}
	// second write for the same (day, player) must update, not duplicate
	if err := r.UpsertSnapshot(ctx, day, "p1", "Alice", "Recovery", nil); err != nil {
		t.Fatalf("update: %v", err)
	}

	obs, err := r.Primary(ctx)
	if err != nil {
		t.Fatalf("primary: %v", err)
	}
	if len(obs) != 1 {
		t.Fatalf("upsert must keep one row per (day, player), got %d", len(obs))
	}
	if obs[0].Status != "Recovery" || obs[0].Tag != nil {
		t.Fatalf("update did not land: %+v", obs[0])
	}
	if !obs[0].Day.Equal(day) {
		t.Fatalf("day must round trip at UTC midnight: %v", obs[0].Day)
	}
}

func TestPGRepo_PrimaryDegradesWithoutTagColumn_Integration(t *testing.T) {
	dsn, stop := startPostgres(t)
	defer stop()

	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	st := openStore(t, ctx, dsn)
	q := st.PG

	// legacy schema predating match_day_tag
	if _, err := q.Exec(ctx, `create table daily_player_analytics (
		day date not null, player_id text not null, status text
	)`); err != nil {
		t.Fatalf("ddl: %v", err)
	}
	if _, err := q.Exec(ctx,
		`insert into daily_player_analytics (day, player_id, status) values ('2024-01-05', 'p1', 'Injured')`,
	); err != nil {
		t.Fatalf("seed: %v", err)
	}

	obs, err := NewPG().Bind(q).Primary(ctx)
	if err != nil {
		t.Fatalf("degraded load must succeed: %v", err)
	}
	if len(obs) != 1 || obs[0].Status != "Injured" {
		t.Fatalf("degraded load wrong: %+v", obs)
	}
	if obs[0].Tag != nil {
		t.Fatalf("degraded rows carry nil tags: %+v", obs[0])
	}
}

func TestPGRepo_EventAggregates_Integration(t *testing.T) {
	dsn, stop := startPostgres(t)
	defer stop()

	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	st := openStore(t, ctx, dsn)
	q := st.PG

	if _, err := q.Exec(ctx, `create table daily_event_analytics (
		day date not null,
		event_type text not null,
		event_count integer not null default 0,
		total_duration integer not null default 0,
		avg_duration double precision not null default 0,
		updated_at timestamptz not null default now(),
		unique (day, event_type)
	)`); err != nil {
		t.Fatalf("ddl: %v", err)
	}

	r := NewPG().Bind(q)
	day := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)

	agg := domain.EventAggregate{Day: day, Type: "Training", Count: 2, TotalMinutes: 180, AvgMinutes: 90}
	if err := r.UpsertEventAggregate(ctx, agg); err != nil {
		t.Fatalf("insert: %v", err)
	}
	agg.Count, agg.TotalMinutes = 3, 270
	if err := r.UpsertEventAggregate(ctx, agg); err != nil {
		t.Fatalf("update: %v", err)
	}

	got, err := r.EventAggregates(ctx, day.AddDate(0, 0, -1), day.AddDate(0, 0, 1))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != 1 || got[0].Count != 3 || got[0].TotalMinutes != 270 {
		t.Fatalf("rollup round trip wrong: %+v", got)
	}
}
