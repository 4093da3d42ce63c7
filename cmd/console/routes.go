package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/hubenschmidt/hotel-voice-console/internal/activity"
	"github.com/hubenschmidt/hotel-voice-console/internal/agentcfg"
	"github.com/hubenschmidt/hotel-voice-console/internal/console"
	"github.com/hubenschmidt/hotel-voice-console/internal/hotel"
	"github.com/hubenschmidt/hotel-voice-console/internal/live"
	"github.com/hubenschmidt/hotel-voice-console/internal/metrics"
)

type deps struct {
	agentID     string
	console     *console.Console
	hub         *live.Hub
	pages       *pages
	wsHandler   http.Handler
	activity    *activity.Recorder
	activityLog *activity.Log
}

// registerRoutes wires all HTTP endpoints to the shared mux.
func registerRoutes(mux *http.ServeMux, d deps) {
	mux.Handle("/ws/live", d.wsHandler)
	mux.Handle("GET /metrics", promhttp.Handler())
	mux.HandleFunc("GET /health", handleHealth)

	mux.HandleFunc("GET /api/status", d.handleStatus)
	mux.HandleFunc("POST /api/listening", d.handleListening)
	mux.HandleFunc("POST /api/sample-data", d.handleSampleData)
	mux.HandleFunc("GET /api/dashboard", d.handleDashboard)
	mux.HandleFunc("GET /api/live", d.handleLiveStream)
	mux.HandleFunc("GET /api/activity", d.handleActivity)

	mux.HandleFunc("GET /api/calls/active", d.handleActiveCalls)
	mux.HandleFunc("GET /api/calls", d.handleCalls)
	mux.HandleFunc("GET /api/calls/export", d.handleCallsExport)
	mux.HandleFunc("GET /api/calls/{id}", d.handleCall)

	mux.HandleFunc("GET /api/reservations", d.handleReservations)
	mux.HandleFunc("GET /api/reservations/{id}", d.handleReservation)
	mux.HandleFunc("POST /api/reservations/{id}/cancel", d.handleReservationCancel)

	registerConfigRoutes(mux, d)
	registerPageRoutes(mux, d)
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response", "error", err)
	}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return false
	}
	return true
}

// writeError maps domain errors onto status codes.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, console.ErrCallNotFound),
		errors.Is(err, console.ErrReservationNotFound),
		errors.Is(err, agentcfg.ErrUnknownIntent),
		errors.Is(err, agentcfg.ErrRuleNotFound),
		errors.Is(err, agentcfg.ErrUnknownDay):
		status = http.StatusNotFound
	case errors.Is(err, console.ErrAlreadyCancelled),
		errors.Is(err, console.ErrNotCancellable),
		errors.Is(err, agentcfg.ErrSaveInProgress):
		status = http.StatusConflict
	case errors.Is(err, agentcfg.ErrInvalidRule),
		errors.Is(err, agentcfg.ErrInvalidTime):
		status = http.StatusBadRequest
	case errors.Is(err, agentcfg.ErrSaverClosed):
		status = http.StatusServiceUnavailable
	}
	if status == http.StatusInternalServerError {
		slog.Error("request failed", "error", err)
	}
	http.Error(w, err.Error(), status)
}

// publish pushes the current state to live clients right away instead of
// waiting for the next tick.
func (d deps) publish() {
	publish(d.hub, d.console.Snapshot())
}

type statusResponse struct {
	AgentID    string    `json:"agent_id"`
	Listening  bool      `json:"listening"`
	Status     string    `json:"status"`
	SampleData bool      `json:"sample_data"`
	Time       time.Time `json:"time"`
}

func (d deps) status() statusResponse {
	snap := d.console.Snapshot()
	return statusResponse{
		AgentID:    d.agentID,
		Listening:  snap.Listening,
		Status:     snap.Status,
		SampleData: snap.SampleData,
		Time:       snap.Time,
	}
}

func (d deps) handleStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, d.status())
}

type toggleRequest struct {
	Enabled *bool `json:"enabled"`
}

func (d deps) handleListening(w http.ResponseWriter, r *http.Request) {
	var req toggleRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Enabled == nil {
		http.Error(w, "enabled is required", http.StatusBadRequest)
		return
	}
	d.console.SetListening(*req.Enabled)
	d.activity.Record(activity.KindListening, "", strconv.FormatBool(*req.Enabled))
	d.publish()
	writeJSON(w, http.StatusOK, d.status())
}

func (d deps) handleSampleData(w http.ResponseWriter, r *http.Request) {
	var req toggleRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Enabled == nil {
		http.Error(w, "enabled is required", http.StatusBadRequest)
		return
	}
	d.console.SetSampleData(*req.Enabled)
	d.activity.Record(activity.KindSampleData, "", strconv.FormatBool(*req.Enabled))
	d.publish()
	writeJSON(w, http.StatusOK, d.status())
}

func (d deps) handleDashboard(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"stats":        d.console.Stats(),
		"active_calls": d.console.ActiveCalls(),
		"recent":       d.console.RecentCompletions(queryInt(r, "limit", console.DefaultRecent)),
	})
}

func (d deps) handleLiveStream(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming not supported", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	ch := d.hub.Subscribe()
	defer d.hub.Unsubscribe(ch)
	metrics.LiveClients.Inc()
	defer metrics.LiveClients.Dec()

	if data := d.hub.Latest(); data != nil {
		fmt.Fprintf(w, "data: %s\n\n", data)
	}
	flusher.Flush()
	slog.Info("live client connected", "remote", r.RemoteAddr, "transport", "sse")

	for {
		select {
		case <-r.Context().Done():
			slog.Info("live client disconnected", "remote", r.RemoteAddr, "transport", "sse")
			return
		case msg := <-ch:
			fmt.Fprintf(w, "data: %s\n\n", msg)
			flusher.Flush()
		}
	}
}

func (d deps) handleActiveCalls(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, d.console.ActiveCalls())
}

func historyFilter(r *http.Request) console.HistoryFilter {
	q := r.URL.Query()
	return console.HistoryFilter{
		Search:  q.Get("search"),
		Outcome: q.Get("outcome"),
		Intent:  q.Get("intent"),
	}
}

func (d deps) handleCalls(w http.ResponseWriter, r *http.Request) {
	calls := d.console.History(historyFilter(r))
	writeJSON(w, http.StatusOK, map[string]any{
		"calls":       calls,
		"count":       len(calls),
		"description": d.console.HistoryDescription(len(calls)),
	})
}

func (d deps) handleCallsExport(w http.ResponseWriter, r *http.Request) {
	calls := d.console.History(historyFilter(r))
	name := fmt.Sprintf("call-history-%s.csv", d.console.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	if err := console.WriteHistoryCSV(w, calls); err != nil {
		slog.Error("export history", "error", err)
		return
	}
	d.activity.Record(activity.KindHistoryExport, name, strconv.Itoa(len(calls))+" calls")
	slog.Info("history exported", "calls", len(calls))
}

func (d deps) handleCall(w http.ResponseWriter, r *http.Request) {
	call, err := d.console.Call(r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, callDetail{
		CompletedCall: call,
		DurationLabel: hotel.FormatDuration(call.Duration),
		OutcomeBadge:  hotel.OutcomeBadge(call.Outcome),
	})
}

// callDetail adds the display fields the transcript panel shows.
type callDetail struct {
	hotel.CompletedCall
	DurationLabel string      `json:"duration_label"`
	OutcomeBadge  hotel.Badge `json:"outcome_badge"`
}

func (d deps) handleReservations(w http.ResponseWriter, r *http.Request) {
	res := d.console.Reservations()
	writeJSON(w, http.StatusOK, map[string]any{
		"reservations": res,
		"total":        len(res),
		"description":  d.console.ReservationsDescription(len(res)),
	})
}

func (d deps) handleReservation(w http.ResponseWriter, r *http.Request) {
	res, err := d.console.Reservation(r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (d deps) handleReservationCancel(w http.ResponseWriter, r *http.Request) {
	res, err := d.console.CancelReservation(r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	d.activity.Record(activity.KindCancelled, res.BookingRef, res.GuestName)
	writeJSON(w, http.StatusOK, res)
}

func (d deps) handleActivity(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, d.activityLog.List(queryInt(r, "limit", 50)))
}

// queryInt reads a positive integer query parameter, returning fallback if
// absent or invalid.
func queryInt(r *http.Request, key string, fallback int) int {
	v := r.URL.Query().Get(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
