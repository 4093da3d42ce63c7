package main

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/hubenschmidt/hotel-voice-console/internal/agentcfg"
	"github.com/hubenschmidt/hotel-voice-console/internal/console"
	"github.com/hubenschmidt/hotel-voice-console/internal/hotel"
	"github.com/hubenschmidt/hotel-voice-console/internal/sample"
)

//go:embed templates/*
var templateFS embed.FS

var pageFuncs = template.FuncMap{
	"duration":    hotel.FormatDuration,
	"outcome":     hotel.OutcomeBadge,
	"resStatus":   hotel.StatusBadge,
	"source":      hotel.SourceBadge,
	"rule":        hotel.RuleBadge,
	"stars":       hotel.Stars,
	"clockTime":   func(t time.Time) string { return t.Format("15:04:05") },
	"clockDate":   func(t time.Time) string { return t.Format("Jan 2, 2006") },
	"hhmm":        func(t time.Time) string { return t.Format("15:04") },
	"shortDate":   func(t time.Time) string { return t.Format("Jan 2") },
	"longDate":    func(t time.Time) string { return t.Format("Mon, Jan 2, 2006") },
	"money":       hotel.FormatMoney,
	"cancellable": cancellable,
}

func cancellable(r hotel.Reservation) bool {
	return r.Status != hotel.ReservationCancelled && r.Status != hotel.ReservationCheckedOut
}

// pages holds one parsed template set per view, each combining the shared
// layout with the view's content block.
type pages struct {
	views map[console.View]*template.Template
}

func newPages() (*pages, error) {
	p := &pages{views: map[console.View]*template.Template{}}
	for _, n := range console.NavItems() {
		t, err := template.New("layout.html").Funcs(pageFuncs).ParseFS(templateFS,
			"templates/layout.html", "templates/"+string(n.View)+".html")
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", n.View, err)
		}
		p.views[n.View] = t
	}
	return p, nil
}

// layoutData is what the header and sidebar render from.
type layoutData struct {
	View       console.View
	Title      string
	Nav        []console.NavItem
	AgentID    string
	Listening  bool
	Status     string
	SampleData bool
	Now        time.Time
	Content    any
}

func (p *pages) render(w http.ResponseWriter, v console.View, data layoutData) {
	var buf bytes.Buffer
	if err := p.views[v].Execute(&buf, data); err != nil {
		slog.Error("render page", "view", v, "error", err)
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	buf.WriteTo(w)
}

func registerPageRoutes(mux *http.ServeMux, d deps) {
	mux.HandleFunc("GET /{$}", d.handleDashboardPage)
	mux.HandleFunc("GET /history", d.handleHistoryPage)
	mux.HandleFunc("GET /config", d.handleConfigPage)
	mux.HandleFunc("GET /reservations", d.handleReservationsPage)
	mux.HandleFunc("GET /view/{view}", handleViewRedirect)
}

// handleViewRedirect sends a view name to its page, keeping the query
// string so links such as /view/history?outcome=escalated keep their filter.
func handleViewRedirect(w http.ResponseWriter, r *http.Request) {
	v, ok := console.ParseView(r.PathValue("view"))
	if !ok {
		http.NotFound(w, r)
		return
	}
	target := v.Path()
	if q := r.URL.RawQuery; q != "" {
		target += "?" + q
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

func (d deps) layout(v console.View, content any) layoutData {
	snap := d.console.Snapshot()
	return layoutData{
		View:       v,
		Title:      v.Label(),
		Nav:        console.NavItems(),
		AgentID:    d.agentID,
		Listening:  snap.Listening,
		Status:     snap.Status,
		SampleData: snap.SampleData,
		Now:        snap.Time,
		Content:    content,
	}
}

type dashboardPage struct {
	Stats       []sample.StatCard
	ActiveCalls []hotel.ActiveCall
	Recent      []hotel.CompletedCall
	Transcript  *hotel.CompletedCall
}

func (d deps) handleDashboardPage(w http.ResponseWriter, r *http.Request) {
	page := dashboardPage{
		Stats:       d.console.Stats(),
		ActiveCalls: d.console.ActiveCalls(),
		Recent:      d.console.RecentCompletions(console.DefaultRecent),
	}
	if id := r.URL.Query().Get("transcript"); id != "" {
		if call, err := d.console.Call(id); err == nil {
			page.Transcript = &call
		}
	}
	d.pages.render(w, console.ViewDashboard, d.layout(console.ViewDashboard, page))
}

type historyPage struct {
	Filter      console.HistoryFilter
	Calls       []hotel.CompletedCall
	Description string
	Selected    *hotel.CompletedCall
	Outcomes    []hotel.Outcome
	Intents     []string
	Query       template.URL
}

func (d deps) handleHistoryPage(w http.ResponseWriter, r *http.Request) {
	f := historyFilter(r)
	calls := d.console.History(f)
	page := historyPage{
		Filter:      f,
		Calls:       calls,
		Description: d.console.HistoryDescription(len(calls)),
		Outcomes:    hotel.Outcomes,
		Intents:     sample.Intents,
		Query:       template.URL(filterQuery(f)),
	}
	if id := r.URL.Query().Get("call"); id != "" {
		if call, err := d.console.Call(id); err == nil {
			page.Selected = &call
		}
	}
	d.pages.render(w, console.ViewHistory, d.layout(console.ViewHistory, page))
}

// filterQuery re-encodes the active filter so row links keep it.
func filterQuery(f console.HistoryFilter) string {
	q := url.Values{}
	if f.Search != "" {
		q.Set("search", f.Search)
	}
	if f.Outcome != "" {
		q.Set("outcome", f.Outcome)
	}
	if f.Intent != "" {
		q.Set("intent", f.Intent)
	}
	return q.Encode()
}

type configPage struct {
	Tab      string
	Tabs     []console.ConfigTab
	Settings agentcfg.Settings
	Save     agentcfg.SaveStatus
}

func (d deps) handleConfigPage(w http.ResponseWriter, r *http.Request) {
	page := configPage{
		Tab:      console.ParseConfigTab(r.URL.Query().Get("tab")),
		Tabs:     console.ConfigTabs(),
		Settings: d.console.Settings().Snapshot(),
		Save:     d.console.Saver().Status(),
	}
	d.pages.render(w, console.ViewConfig, d.layout(console.ViewConfig, page))
}

type reservationsPage struct {
	Reservations []hotel.Reservation
	Description  string
	Selected     *hotel.Reservation
}

func (d deps) handleReservationsPage(w http.ResponseWriter, r *http.Request) {
	res := d.console.Reservations()
	page := reservationsPage{
		Reservations: res,
		Description:  d.console.ReservationsDescription(len(res)),
	}
	if id := r.URL.Query().Get("id"); id != "" {
		if sel, err := d.console.Reservation(id); err == nil {
			page.Selected = &sel
		}
	}
	d.pages.render(w, console.ViewReservations, d.layout(console.ViewReservations, page))
}
