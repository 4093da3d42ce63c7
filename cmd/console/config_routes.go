package main

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/hubenschmidt/hotel-voice-console/internal/activity"
	"github.com/hubenschmidt/hotel-voice-console/internal/agentcfg"
)

func registerConfigRoutes(mux *http.ServeMux, d deps) {
	mux.HandleFunc("GET /api/config", d.handleConfig)
	mux.HandleFunc("PUT /api/config/greeting", d.handleGreeting)
	mux.HandleFunc("PUT /api/config/intents/{intent}", d.handleIntentResponse)
	mux.HandleFunc("POST /api/config/escalation", d.handleRuleCreate)
	mux.HandleFunc("PATCH /api/config/escalation/{id}", d.handleRuleToggle)
	mux.HandleFunc("DELETE /api/config/escalation/{id}", d.handleRuleDelete)
	mux.HandleFunc("PUT /api/config/hours/{day}", d.handleHours)
	mux.HandleFunc("POST /api/config/save", d.handleSave)
	mux.HandleFunc("GET /api/config/save", d.handleSaveStatus)
}

type configResponse struct {
	agentcfg.Settings
	Save agentcfg.SaveStatus `json:"save"`
}

func (d deps) handleConfig(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, configResponse{
		Settings: d.console.Settings().Snapshot(),
		Save:     d.console.Saver().Status(),
	})
}

func (d deps) handleGreeting(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Greeting *string `json:"greeting"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Greeting == nil {
		http.Error(w, "greeting is required", http.StatusBadRequest)
		return
	}
	d.console.Settings().SetGreeting(*req.Greeting)
	d.activity.Record(activity.KindGreeting, "", *req.Greeting)
	writeJSON(w, http.StatusOK, map[string]string{"greeting": *req.Greeting})
}

func (d deps) handleIntentResponse(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Response string `json:"response"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	intent := r.PathValue("intent")
	if err := d.console.Settings().SetIntentResponse(intent, req.Response); err != nil {
		writeError(w, err)
		return
	}
	d.activity.Record(activity.KindIntent, intent, req.Response)
	writeJSON(w, http.StatusOK, agentcfg.IntentResponse{Intent: intent, Response: req.Response})
}

func (d deps) handleRuleCreate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Condition string `json:"condition"`
		Action    string `json:"action"`
		Enabled   *bool  `json:"enabled"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	enabled := true
	if req.Enabled != nil {
		enabled = *req.Enabled
	}
	rule, err := d.console.Settings().AddRule(req.Condition, req.Action, enabled)
	if err != nil {
		writeError(w, err)
		return
	}
	slog.Info("escalation rule added", "rule_id", rule.ID)
	d.activity.Record(activity.KindRuleAdded, rule.ID, rule.Condition+" -> "+rule.Action)
	writeJSON(w, http.StatusCreated, rule)
}

func (d deps) handleRuleToggle(w http.ResponseWriter, r *http.Request) {
	var req toggleRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Enabled == nil {
		http.Error(w, "enabled is required", http.StatusBadRequest)
		return
	}
	rule, err := d.console.Settings().SetRuleEnabled(r.PathValue("id"), *req.Enabled)
	if err != nil {
		writeError(w, err)
		return
	}
	d.activity.Record(activity.KindRuleToggled, rule.ID, strconv.FormatBool(rule.Enabled))
	writeJSON(w, http.StatusOK, rule)
}

func (d deps) handleRuleDelete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := d.console.Settings().RemoveRule(id); err != nil {
		writeError(w, err)
		return
	}
	slog.Info("escalation rule removed", "rule_id", id)
	d.activity.Record(activity.KindRuleRemoved, id, "")
	w.WriteHeader(http.StatusNoContent)
}

func (d deps) handleHours(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Enabled bool   `json:"enabled"`
		Start   string `json:"start"`
		End     string `json:"end"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	h, err := d.console.Settings().SetHours(r.PathValue("day"), req.Enabled, req.Start, req.End)
	if err != nil {
		writeError(w, err)
		return
	}
	d.activity.Record(activity.KindHours, h.Day, hoursDetail(h))
	writeJSON(w, http.StatusOK, h)
}

func (d deps) handleSave(w http.ResponseWriter, r *http.Request) {
	if err := d.console.Saver().Save(); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusAccepted, d.console.Saver().Status())
}

func (d deps) handleSaveStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, d.console.Saver().Status())
}

func hoursDetail(h agentcfg.BusinessHour) string {
	if !h.Enabled {
		return "closed"
	}
	return h.Start + "-" + h.End
}
