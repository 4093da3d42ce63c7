package main

import (
	"bufio"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/hubenschmidt/hotel-voice-console/internal/activity"
	"github.com/hubenschmidt/hotel-voice-console/internal/agentcfg"
	"github.com/hubenschmidt/hotel-voice-console/internal/console"
	"github.com/hubenschmidt/hotel-voice-console/internal/hotel"
	"github.com/hubenschmidt/hotel-voice-console/internal/live"
	"github.com/hubenschmidt/hotel-voice-console/internal/sample"
	"github.com/hubenschmidt/hotel-voice-console/internal/ws"
)

var testNow = time.Date(2025, time.February, 12, 15, 0, 0, 0, time.UTC)

func newTestServer(t *testing.T) (*httptest.Server, deps) {
	t.Helper()
	con := console.New(console.Config{
		Settings:   agentcfg.Defaults(),
		Rand:       sample.NewRand(42),
		Now:        testNow,
		Listening:  true,
		SampleData: true,
		SaveDelay:  20 * time.Millisecond,
		NoticeFor:  time.Second,
	})
	t.Cleanup(con.Close)

	hub := live.NewHub()
	publish(hub, con.Snapshot())

	p, err := newPages()
	if err != nil {
		t.Fatalf("templates: %v", err)
	}
	log := activity.NewLog(0)
	rec := activity.NewRecorder(log)
	t.Cleanup(rec.Close)

	d := deps{
		agentID:     sample.VoiceAgentID,
		console:     con,
		hub:         hub,
		pages:       p,
		wsHandler:   ws.NewHandler(ws.HandlerConfig{Hub: hub}),
		activity:    rec,
		activityLog: log,
	}
	mux := http.NewServeMux()
	registerRoutes(mux, d)
	srv := httptest.NewServer(withMiddleware(mux))
	t.Cleanup(srv.Close)
	return srv, d
}

func do(t *testing.T, srv *httptest.Server, method, path, body string) *http.Response {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, srv.URL+path, rd)
	if err != nil {
		t.Fatal(err)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decode(t *testing.T, resp *http.Response, v any) {
	t.Helper()
	if ct := resp.Header.Get("Content-Type"); ct != "application/json" {
		t.Errorf("content type = %q", ct)
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		t.Fatalf("decode: %v", err)
	}
}

func expectStatus(t *testing.T, resp *http.Response, want int) {
	t.Helper()
	if resp.StatusCode != want {
		body, _ := io.ReadAll(resp.Body)
		t.Fatalf("%s %s: status = %d, want %d (%s)", resp.Request.Method, resp.Request.URL.Path, resp.StatusCode, want, body)
	}
}

func TestHealth(t *testing.T) {
	srv, _ := newTestServer(t)
	resp := do(t, srv, "GET", "/health", "")
	expectStatus(t, resp, http.StatusOK)
	body, _ := io.ReadAll(resp.Body)
	if string(body) != "ok" {
		t.Errorf("body = %q", body)
	}
}

func TestStatusAndListening(t *testing.T) {
	srv, d := newTestServer(t)

	var st statusResponse
	resp := do(t, srv, "GET", "/api/status", "")
	expectStatus(t, resp, http.StatusOK)
	decode(t, resp, &st)
	if st.AgentID != sample.VoiceAgentID || !st.Listening || st.Status != "System Online" {
		t.Errorf("status = %+v", st)
	}

	resp = do(t, srv, "POST", "/api/listening", `{"enabled":false}`)
	expectStatus(t, resp, http.StatusOK)
	decode(t, resp, &st)
	if st.Listening || st.Status != "System Offline" {
		t.Errorf("after toggle = %+v", st)
	}
	if d.console.Listening() {
		t.Error("console still listening")
	}

	var snap console.Snapshot
	if err := json.Unmarshal(d.hub.Latest(), &snap); err != nil {
		t.Fatal(err)
	}
	if snap.Listening {
		t.Error("toggle was not published to live clients")
	}
}

func TestToggleValidation(t *testing.T) {
	srv, _ := newTestServer(t)
	expectStatus(t, do(t, srv, "POST", "/api/listening", `{`), http.StatusBadRequest)
	expectStatus(t, do(t, srv, "POST", "/api/listening", `{}`), http.StatusBadRequest)
	expectStatus(t, do(t, srv, "POST", "/api/sample-data", `nope`), http.StatusBadRequest)
}

func TestSampleDataOff(t *testing.T) {
	srv, _ := newTestServer(t)
	expectStatus(t, do(t, srv, "POST", "/api/sample-data", `{"enabled":false}`), http.StatusOK)

	var calls struct {
		Calls       []hotel.CompletedCall `json:"calls"`
		Count       int                   `json:"count"`
		Description string                `json:"description"`
	}
	resp := do(t, srv, "GET", "/api/calls", "")
	expectStatus(t, resp, http.StatusOK)
	decode(t, resp, &calls)
	if calls.Count != 0 || calls.Description != "Enable sample data to view call history" {
		t.Errorf("calls = %+v", calls)
	}

	var dash struct {
		Stats       []sample.StatCard   `json:"stats"`
		ActiveCalls []hotel.ActiveCall `json:"active_calls"`
	}
	resp = do(t, srv, "GET", "/api/dashboard", "")
	decode(t, resp, &dash)
	if len(dash.ActiveCalls) != 0 || dash.Stats[0].Value != "0" {
		t.Errorf("dashboard = %+v", dash)
	}

	expectStatus(t, do(t, srv, "GET", "/api/calls/cc-001", ""), http.StatusNotFound)
}

func TestDashboard(t *testing.T) {
	srv, _ := newTestServer(t)
	var dash struct {
		Stats       []sample.StatCard     `json:"stats"`
		ActiveCalls []hotel.ActiveCall    `json:"active_calls"`
		Recent      []hotel.CompletedCall `json:"recent"`
	}
	resp := do(t, srv, "GET", "/api/dashboard?limit=3", "")
	expectStatus(t, resp, http.StatusOK)
	decode(t, resp, &dash)
	if len(dash.Stats) != 4 || len(dash.ActiveCalls) != 4 || len(dash.Recent) != 3 {
		t.Errorf("dashboard sizes = %d/%d/%d", len(dash.Stats), len(dash.ActiveCalls), len(dash.Recent))
	}

	var active []hotel.ActiveCall
	resp = do(t, srv, "GET", "/api/calls/active", "")
	decode(t, resp, &active)
	if len(active) != 4 || active[0].ID != "ac-001" {
		t.Errorf("active = %+v", active)
	}
}

func TestCallsFilter(t *testing.T) {
	srv, _ := newTestServer(t)
	tests := []struct {
		query string
		want  int
	}{
		{"", 20},
		{"?outcome=booked", 4},
		{"?outcome=all&intent=all", 20},
		{"?intent=General+Inquiry", 4},
		{"?search=emily", 1},
		{"?search=GV-2024-0805", 1},
		{"?search=nobody", 0},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			var body struct {
				Count       int    `json:"count"`
				Description string `json:"description"`
			}
			resp := do(t, srv, "GET", "/api/calls"+tt.query, "")
			expectStatus(t, resp, http.StatusOK)
			decode(t, resp, &body)
			if body.Count != tt.want {
				t.Errorf("count = %d, want %d", body.Count, tt.want)
			}
		})
	}
}

func TestCallDetail(t *testing.T) {
	srv, _ := newTestServer(t)
	var call struct {
		ID            string                  `json:"id"`
		Transcript    []hotel.TranscriptEntry `json:"transcript"`
		DurationLabel string                  `json:"duration_label"`
		OutcomeBadge  hotel.Badge             `json:"outcome_badge"`
	}
	resp := do(t, srv, "GET", "/api/calls/cc-001", "")
	expectStatus(t, resp, http.StatusOK)
	decode(t, resp, &call)
	if call.ID != "cc-001" || len(call.Transcript) == 0 || call.DurationLabel == "" || call.OutcomeBadge.Label != "Booked" {
		t.Errorf("call = %+v", call)
	}
	expectStatus(t, do(t, srv, "GET", "/api/calls/cc-404", ""), http.StatusNotFound)
}

func TestCallsExport(t *testing.T) {
	srv, _ := newTestServer(t)
	resp := do(t, srv, "GET", "/api/calls/export?outcome=escalated", "")
	expectStatus(t, resp, http.StatusOK)
	if ct := resp.Header.Get("Content-Type"); ct != "text/csv" {
		t.Errorf("content type = %q", ct)
	}
	if cd := resp.Header.Get("Content-Disposition"); !strings.Contains(cd, "call-history-2025-02-12.csv") {
		t.Errorf("disposition = %q", cd)
	}
	lines := 0
	sc := bufio.NewScanner(resp.Body)
	for sc.Scan() {
		if lines == 0 && !strings.HasPrefix(sc.Text(), "id,caller_name") {
			t.Errorf("header = %q", sc.Text())
		}
		lines++
	}
	if lines != 5 {
		t.Errorf("lines = %d, want header + 4", lines)
	}
}

func TestReservations(t *testing.T) {
	srv, _ := newTestServer(t)

	var list struct {
		Reservations []hotel.Reservation `json:"reservations"`
		Total        int                 `json:"total"`
		Description  string              `json:"description"`
	}
	resp := do(t, srv, "GET", "/api/reservations", "")
	expectStatus(t, resp, http.StatusOK)
	decode(t, resp, &list)
	if list.Total != 10 || list.Description != "10 total reservations" {
		t.Errorf("list = %d %q", list.Total, list.Description)
	}

	var r hotel.Reservation
	resp = do(t, srv, "GET", "/api/reservations/r-005", "")
	expectStatus(t, resp, http.StatusOK)
	decode(t, resp, &r)
	if r.GuestName != "Amanda Liu" {
		t.Errorf("reservation = %+v", r)
	}
	expectStatus(t, do(t, srv, "GET", "/api/reservations/r-999", ""), http.StatusNotFound)
}

func TestReservationCancel(t *testing.T) {
	srv, _ := newTestServer(t)

	var r hotel.Reservation
	resp := do(t, srv, "POST", "/api/reservations/r-001/cancel", "")
	expectStatus(t, resp, http.StatusOK)
	decode(t, resp, &r)
	if r.Status != hotel.ReservationCancelled || r.TotalAmount != 0 {
		t.Errorf("cancelled = %+v", r)
	}

	expectStatus(t, do(t, srv, "POST", "/api/reservations/r-001/cancel", ""), http.StatusConflict)
	expectStatus(t, do(t, srv, "POST", "/api/reservations/r-004/cancel", ""), http.StatusConflict)
	expectStatus(t, do(t, srv, "POST", "/api/reservations/r-999/cancel", ""), http.StatusNotFound)
}

func TestConfigEdits(t *testing.T) {
	srv, d := newTestServer(t)

	expectStatus(t, do(t, srv, "PUT", "/api/config/greeting", `{"greeting":"Hello from the lobby"}`), http.StatusOK)
	expectStatus(t, do(t, srv, "PUT", "/api/config/greeting", `{}`), http.StatusBadRequest)
	expectStatus(t, do(t, srv, "PUT", "/api/config/intents/Room%20Booking", `{"response":"Sure, which dates?"}`), http.StatusOK)
	expectStatus(t, do(t, srv, "PUT", "/api/config/intents/Spa", `{"response":"x"}`), http.StatusNotFound)

	var rule agentcfg.EscalationRule
	resp := do(t, srv, "POST", "/api/config/escalation", `{"condition":"Caller mentions lawyer","action":"Transfer to Legal"}`)
	expectStatus(t, resp, http.StatusCreated)
	decode(t, resp, &rule)
	if !strings.HasPrefix(rule.ID, "er-") || !rule.Enabled {
		t.Errorf("rule = %+v", rule)
	}
	expectStatus(t, do(t, srv, "POST", "/api/config/escalation", `{"condition":"","action":"x"}`), http.StatusBadRequest)

	resp = do(t, srv, "PATCH", "/api/config/escalation/er-4", `{"enabled":true}`)
	expectStatus(t, resp, http.StatusOK)
	expectStatus(t, do(t, srv, "PATCH", "/api/config/escalation/er-404", `{"enabled":true}`), http.StatusNotFound)
	expectStatus(t, do(t, srv, "DELETE", "/api/config/escalation/"+rule.ID, ""), http.StatusNoContent)
	expectStatus(t, do(t, srv, "DELETE", "/api/config/escalation/"+rule.ID, ""), http.StatusNotFound)

	expectStatus(t, do(t, srv, "PUT", "/api/config/hours/sunday", `{"enabled":false,"start":"08:00","end":"20:00"}`), http.StatusOK)
	expectStatus(t, do(t, srv, "PUT", "/api/config/hours/Sunday", `{"enabled":true,"start":"8am","end":"20:00"}`), http.StatusBadRequest)
	expectStatus(t, do(t, srv, "PUT", "/api/config/hours/Funday", `{"enabled":true,"start":"08:00","end":"20:00"}`), http.StatusNotFound)

	s := d.console.Settings().Snapshot()
	if s.Greeting != "Hello from the lobby" {
		t.Errorf("greeting = %q", s.Greeting)
	}
	if s.Intents[0].Response != "Sure, which dates?" {
		t.Errorf("intent = %+v", s.Intents[0])
	}
	if !s.Escalation[3].Enabled || len(s.Escalation) != 5 {
		t.Errorf("escalation = %+v", s.Escalation)
	}
	if sun := s.Hours[6]; sun.Enabled || sun.Start != "08:00" {
		t.Errorf("sunday = %+v", sun)
	}

	var cfg struct {
		Greeting string              `json:"greeting"`
		Save     agentcfg.SaveStatus `json:"save"`
	}
	resp = do(t, srv, "GET", "/api/config", "")
	expectStatus(t, resp, http.StatusOK)
	decode(t, resp, &cfg)
	if cfg.Greeting != "Hello from the lobby" || cfg.Save.State != agentcfg.SaveIdle {
		t.Errorf("config = %+v", cfg)
	}
}

func TestConfigSave(t *testing.T) {
	srv, _ := newTestServer(t)

	var st agentcfg.SaveStatus
	resp := do(t, srv, "POST", "/api/config/save", "")
	expectStatus(t, resp, http.StatusAccepted)
	decode(t, resp, &st)
	if st.State != agentcfg.SaveSaving || !st.Saving {
		t.Errorf("status = %+v", st)
	}
	expectStatus(t, do(t, srv, "POST", "/api/config/save", ""), http.StatusConflict)

	deadline := time.Now().Add(2 * time.Second)
	for {
		resp = do(t, srv, "GET", "/api/config/save", "")
		decode(t, resp, &st)
		if st.State == agentcfg.SaveSaved {
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("save never completed: %+v", st)
		}
		time.Sleep(5 * time.Millisecond)
	}
	if st.SavedAt == nil {
		t.Error("saved_at missing")
	}
}

func TestLiveStream(t *testing.T) {
	srv, d := newTestServer(t)

	resp := do(t, srv, "GET", "/api/live", "")
	expectStatus(t, resp, http.StatusOK)
	if ct := resp.Header.Get("Content-Type"); ct != "text/event-stream" {
		t.Fatalf("content type = %q", ct)
	}

	events := make(chan string, 4)
	go func() {
		sc := bufio.NewScanner(resp.Body)
		for sc.Scan() {
			if data, ok := strings.CutPrefix(sc.Text(), "data: "); ok {
				events <- data
			}
		}
	}()

	next := func() console.Snapshot {
		t.Helper()
		select {
		case data := <-events:
			var s console.Snapshot
			if err := json.Unmarshal([]byte(data), &s); err != nil {
				t.Fatal(err)
			}
			return s
		case <-time.After(2 * time.Second):
			t.Fatal("no event")
		}
		return console.Snapshot{}
	}

	first := next()
	if len(first.ActiveCalls) != 4 {
		t.Errorf("initial snapshot = %+v", first)
	}

	for d.hub.Subscribers() == 0 {
		time.Sleep(time.Millisecond)
	}
	publish(d.hub, d.console.Tick(testNow.Add(time.Second)))
	second := next()
	if second.ActiveCalls[0].Duration != first.ActiveCalls[0].Duration+1 {
		t.Errorf("duration %d -> %d", first.ActiveCalls[0].Duration, second.ActiveCalls[0].Duration)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	srv, _ := newTestServer(t)
	do(t, srv, "GET", "/api/status", "")
	resp := do(t, srv, "GET", "/metrics", "")
	expectStatus(t, resp, http.StatusOK)
	body, _ := io.ReadAll(resp.Body)
	for _, name := range []string{"console_http_requests_total", "console_active_calls", `pattern="GET /api/status"`} {
		if !strings.Contains(string(body), name) {
			t.Errorf("metrics missing %s", name)
		}
	}
}

func TestQueryInt(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"", 10},
		{"limit=5", 5},
		{"limit=abc", 10},
		{"limit=-1", 10},
		{"limit=0", 10},
	}
	for _, tt := range tests {
		r := httptest.NewRequest("GET", "/api/dashboard?"+tt.raw, nil)
		if got := queryInt(r, "limit", 10); got != tt.want {
			t.Errorf("queryInt(%q) = %d, want %d", tt.raw, got, tt.want)
		}
	}
}

func TestActivity(t *testing.T) {
	srv, d := newTestServer(t)
	expectStatus(t, do(t, srv, "POST", "/api/reservations/r-002/cancel", ""), http.StatusOK)
	expectStatus(t, do(t, srv, "PUT", "/api/config/hours/Monday", `{"enabled":false,"start":"06:00","end":"23:00"}`), http.StatusOK)

	deadline := time.Now().Add(2 * time.Second)
	for d.activityLog.Len() < 2 {
		if time.Now().After(deadline) {
			t.Fatalf("entries = %d", d.activityLog.Len())
		}
		time.Sleep(5 * time.Millisecond)
	}

	var entries []activity.Entry
	resp := do(t, srv, "GET", "/api/activity?limit=5", "")
	expectStatus(t, resp, http.StatusOK)
	decode(t, resp, &entries)
	if len(entries) != 2 {
		t.Fatalf("entries = %+v", entries)
	}
	if entries[0].Kind != activity.KindHours || entries[0].Subject != "Monday" || entries[0].Detail != "closed" {
		t.Errorf("newest = %+v", entries[0])
	}
	if entries[1].Kind != activity.KindCancelled || entries[1].Subject != "GV-2024-0838" {
		t.Errorf("oldest = %+v", entries[1])
	}
}
