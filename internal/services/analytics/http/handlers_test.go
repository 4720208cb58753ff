package http

import (
	"context"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	phttp "rosterpulse/internal/platform/net/http"
	"rosterpulse/internal/services/analytics/domain"
	collectordomain "rosterpulse/internal/services/collector/domain"

	"github.com/go-chi/chi/v5"
)

type stubService struct {
	gotDays int
	fail    bool
}

func (s *stubService) PlayersCSV(_ context.Context, days int) (domain.Export, error) {
	s.gotDays = days
	if s.fail {
		return domain.Export{}, errors.New("boom")
	}
	return domain.Export{
		Filename: "player-analytics-2024-01-10.csv",
		Body:     []byte("Date,Player Name,Availability Status,Match Day Tag,Reason,Notes\n"),
	}, nil
}

func (s *stubService) EventsCSV(_ context.Context, days int) (domain.Export, error) {
	s.gotDays = days
	if s.fail {
		return domain.Export{}, errors.New("boom")
	}
	return domain.Export{
		Filename: "event-analytics-2024-01-10.csv",
		Body:     []byte("Date,Event Type,Event Title,Start Time,End Time,Duration (minutes),Match Day Tag\n"),
	}, nil
}

type stubTrigger struct {
	got time.Time
}

func (s *stubTrigger) Collect(_ context.Context, day time.Time) (collectordomain.Summary, error) {
	s.got = day
	return collectordomain.Summary{Day: day, Players: 2, EventTypes: 1}, nil
}

func mount(t *testing.T, s *stubService, trig *stubTrigger) *httptest.Server {
	t.Helper()
	r := phttp.AdaptChi(chi.NewRouter())
	Register(r, s, trig)
	srv := httptest.NewServer(r.Mux())
	t.Cleanup(srv.Close)
	return srv
}

func TestPlayersCSV_Handler(t *testing.T) {
	t.Parallel()

	s := &stubService{}
	srv := mount(t, s, &stubTrigger{})

	res, err := srv.Client().Get(srv.URL + "/players-csv?days=7")
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	defer res.Body.Close()

	if res.StatusCode != 200 {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}
	if got := res.Header.Get("Content-Type"); !strings.HasPrefix(got, "text/csv") {
		t.Fatalf("wrong content type %q", got)
	}
	if got := res.Header.Get("Content-Disposition"); got != `attachment; filename="player-analytics-2024-01-10.csv"` {
		t.Fatalf("wrong disposition %q", got)
	}
	if s.gotDays != 7 {
		t.Fatalf("days param not forwarded, got %d", s.gotDays)
	}
}

func TestPlayersCSV_BadDaysFallsBackToDefault(t *testing.T) {
	t.Parallel()

	s := &stubService{}
	srv := mount(t, s, &stubTrigger{})

	res, err := srv.Client().Get(srv.URL + "/players-csv?days=banana")
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	defer res.Body.Close()

	if res.StatusCode != 200 {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}
	if s.gotDays != 0 {
		t.Fatalf("malformed days must read as 0, got %d", s.gotDays)
	}
}

func TestExportFailure_FlatBody(t *testing.T) {
	t.Parallel()

	s := &stubService{fail: true}
	srv := mount(t, s, &stubTrigger{})

	res, err := srv.Client().Get(srv.URL + "/events-csv")
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	defer res.Body.Close()

	if res.StatusCode != 500 {
		t.Fatalf("expected 500, got %d", res.StatusCode)
	}

	var buf [512]byte
	n, _ := res.Body.Read(buf[:])
	body := string(buf[:n])

	// exports fail with the flat {message, error} body, not the envelope
	if !strings.Contains(body, `"message":"Internal server error"`) {
		t.Fatalf("missing message field: %s", body)
	}
	if !strings.Contains(body, `"error":"boom"`) {
		t.Fatalf("missing error detail: %s", body)
	}
	if strings.Contains(body, "status_code") {
		t.Fatalf("export failures must not use the envelope: %s", body)
	}
}

func TestCollect_Handler(t *testing.T) {
	t.Parallel()

	trig := &stubTrigger{}
	srv := mount(t, &stubService{}, trig)

	res, err := srv.Client().Post(
		srv.URL+"/collect", "application/json", strings.NewReader(`{"date":"2024-01-05"}`))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	defer res.Body.Close()

	if res.StatusCode != 200 {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}
	if got := trig.got.Format("2006-01-02"); got != "2024-01-05" {
		t.Fatalf("trigger got wrong day %q", got)
	}

	var buf [1024]byte
	n, _ := res.Body.Read(buf[:])
	body := string(buf[:n])
	if !strings.Contains(body, `"day":"2024-01-05"`) || !strings.Contains(body, `"players":2`) {
		t.Fatalf("summary missing from response: %s", body)
	}
}

func TestCollect_RejectsBadDateFormat(t *testing.T) {
	t.Parallel()

	trig := &stubTrigger{}
	srv := mount(t, &stubService{}, trig)

	res, err := srv.Client().Post(
		srv.URL+"/collect", "application/json", strings.NewReader(`{"date":"05/01/2024"}`))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	defer res.Body.Close()

	if res.StatusCode != 400 {
		t.Fatalf("expected validation failure, got %d", res.StatusCode)
	}
	if !trig.got.IsZero() {
		t.Fatalf("invalid body must not reach the trigger")
	}
}
