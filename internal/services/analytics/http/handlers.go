// Package http provides http transport for the analytics exports
package http

import (
	stdhttp "net/http"
	"strconv"
	"time"

	"rosterpulse/internal/modkit/httpkit"
	"rosterpulse/internal/platform/logger"
	phttp "rosterpulse/internal/platform/net/http"
	andomain "rosterpulse/internal/services/analytics/domain"
	svc "rosterpulse/internal/services/analytics/service"
	collectordomain "rosterpulse/internal/services/collector/domain"
)

// Register mounts analytics endpoints on the given router
func Register(r httpkit.Router, s svc.Service, trig collectordomain.TriggerPort) {
	h := &handlers{svc: s, trig: trig}

	httpkit.Raw(r, "/players-csv", h.playersCSV)
	httpkit.Raw(r, "/events-csv", h.eventsCSV)
	httpkit.PostJSON(r, "/collect", h.collect)
}

type handlers struct {
	svc  svc.Service
	trig collectordomain.TriggerPort
}

// daysParam parses the optional ?days window, 0 means use the service default
func daysParam(r *stdhttp.Request) int {
	raw := r.URL.Query().Get("days")
	if raw == "" {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// swagger:route GET /analytics/players-csv Analytics analyticsPlayersCSV
// @Summary Player availability timeline export
// @Description Dense per-player daily availability reconstructed from history, rendered as CSV
// @Tags Analytics
// @Produce text/csv
// @Param days query int false "trailing window in days; omit for full history"
// @Success 200 {string} string "CSV body"
// @Failure 500 {object} map[string]string "flat failure body"
// @Router /analytics/players-csv [get]
func (h *handlers) playersCSV(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	exp, err := h.svc.PlayersCSV(r.Context(), daysParam(r))
	if err != nil {
		logger.C(r.Context()).Error().Err(err).Msg("players export failed")
		phttp.ExportError(w, "Internal server error", err)
		return
	}
	phttp.AttachmentCSV(w, exp.Filename, exp.Body)
}

// CollectRequest triggers a snapshot collection run
// swagger:model
type CollectRequest struct {
	// Date to collect, YYYY-MM-DD; defaults to yesterday
	Date string `json:"date" validate:"omitempty,dateonly" example:"2026-08-31"`
}

// CollectResponse reports what the run wrote
// swagger:model
type CollectResponse struct {
	Day        string `json:"day"         example:"2026-08-31"`
	Players    int    `json:"players"     example:"24"`
	EventTypes int    `json:"event_types" example:"3"`
}

// swagger:route POST /analytics/collect Analytics analyticsCollect
// @Summary Trigger a snapshot collection run
// @Tags Analytics
// @Accept json
// @Produce json
// @Param payload body CollectRequest true "collection parameters"
// @Success 200 {object} CollectResponse "ok"
// @Router /analytics/collect [post]
func (h *handlers) collect(r *stdhttp.Request, req CollectRequest) (any, error) {
	day := andomain.Day(time.Now()).AddDate(0, 0, -1)
	if req.Date != "" {
		if t, err := time.Parse("2006-01-02", req.Date); err == nil {
			day = andomain.Day(t)
		}
	}
	sum, err := h.trig.Collect(r.Context(), day)
	if err != nil {
		return nil, err
	}
	return CollectResponse{
		Day:        sum.Day.Format("2006-01-02"),
		Players:    sum.Players,
		EventTypes: sum.EventTypes,
	}, nil
}

// swagger:route GET /analytics/events-csv Analytics analyticsEventsCSV
// @Summary Event analytics export
// @Description Saved daily event rollups merged with live events for uncollected days, rendered as CSV
// @Tags Analytics
// @Produce text/csv
// @Param days query int false "trailing window in days, default 30"
// @Success 200 {string} string "CSV body"
// @Failure 500 {object} map[string]string "flat failure body"
// @Router /analytics/events-csv [get]
func (h *handlers) eventsCSV(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	exp, err := h.svc.EventsCSV(r.Context(), daysParam(r))
	if err != nil {
		logger.C(r.Context()).Error().Err(err).Msg("events export failed")
		phttp.ExportError(w, "Internal server error", err)
		return
	}
	phttp.AttachmentCSV(w, exp.Filename, exp.Body)
}
