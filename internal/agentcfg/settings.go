// Package agentcfg holds the voice agent's editable settings: the greeting
// script, intent responses, escalation rules and business hours.
package agentcfg

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrUnknownIntent = errors.New("unknown intent")
	ErrRuleNotFound  = errors.New("escalation rule not found")
	ErrInvalidRule   = errors.New("escalation rule needs a condition and an action")
	ErrUnknownDay    = errors.New("unknown day")
	ErrInvalidTime   = errors.New("time must be HH:MM")
)

// IntentResponse is the agent's opening reply once it recognises an intent.
type IntentResponse struct {
	Intent   string `json:"intent" yaml:"intent"`
	Response string `json:"response" yaml:"response"`
}

// EscalationRule describes when a call is handed to a human.
type EscalationRule struct {
	ID        string `json:"id" yaml:"id"`
	Condition string `json:"condition" yaml:"condition"`
	Action    string `json:"action" yaml:"action"`
	Enabled   bool   `json:"enabled" yaml:"enabled"`
}

// BusinessHour is one weekday's opening window. Start and End are HH:MM;
// an End of "00:00" means midnight.
type BusinessHour struct {
	Day     string `json:"day" yaml:"day"`
	Enabled bool   `json:"enabled" yaml:"enabled"`
	Start   string `json:"start" yaml:"start"`
	End     string `json:"end" yaml:"end"`
}

// Settings is the full agent configuration.
type Settings struct {
	Greeting   string           `json:"greeting" yaml:"greeting"`
	Intents    []IntentResponse `json:"intents" yaml:"intents"`
	Escalation []EscalationRule `json:"escalation" yaml:"escalation"`
	Hours      []BusinessHour   `json:"hours" yaml:"hours"`
}

const DefaultGreeting = "Thank you for calling Grand Vista Hotel. How may I assist you with your reservation today?"

// Defaults returns the settings the agent ships with.
func Defaults() Settings {
	return Settings{
		Greeting: DefaultGreeting,
		Intents: []IntentResponse{
			{Intent: "Room Booking", Response: "I would be happy to help you make a reservation. Could you please provide your preferred check-in and check-out dates?"},
			{Intent: "Availability Check", Response: "Let me check our room availability for your requested dates. One moment please."},
			{Intent: "Booking Modification", Response: "I can help you modify your existing reservation. Could you please provide your booking reference number?"},
			{Intent: "Cancellation", Response: "I understand you would like to cancel. Let me pull up your reservation to review the cancellation policy."},
			{Intent: "General Inquiry", Response: "I would be happy to answer any questions about our hotel. What would you like to know?"},
		},
		Escalation: []EscalationRule{
			{ID: "er-1", Condition: "Caller requests to speak with a manager", Action: "Transfer to Front Desk Manager", Enabled: true},
			{ID: "er-2", Condition: "Complaint about room condition or service", Action: "Transfer to Guest Relations", Enabled: true},
			{ID: "er-3", Condition: "Billing dispute over $500", Action: "Transfer to Finance Department", Enabled: true},
			{ID: "er-4", Condition: "Agent unable to resolve after 3 attempts", Action: "Transfer to Senior Reservations Agent", Enabled: false},
			{ID: "er-5", Condition: "VIP guest or loyalty member", Action: "Transfer to VIP Concierge", Enabled: true},
		},
		Hours: []BusinessHour{
			{Day: "Monday", Enabled: true, Start: "06:00", End: "23:00"},
			{Day: "Tuesday", Enabled: true, Start: "06:00", End: "23:00"},
			{Day: "Wednesday", Enabled: true, Start: "06:00", End: "23:00"},
			{Day: "Thursday", Enabled: true, Start: "06:00", End: "23:00"},
			{Day: "Friday", Enabled: true, Start: "06:00", End: "00:00"},
			{Day: "Saturday", Enabled: true, Start: "07:00", End: "00:00"},
			{Day: "Sunday", Enabled: true, Start: "07:00", End: "22:00"},
		},
	}
}

// Clone returns a deep copy.
func (s Settings) Clone() Settings {
	out := s
	out.Intents = append([]IntentResponse(nil), s.Intents...)
	out.Escalation = append([]EscalationRule(nil), s.Escalation...)
	out.Hours = append([]BusinessHour(nil), s.Hours...)
	return out
}

// Validate checks that hours are well formed, days and rule IDs are unique
// and every rule has a condition and an action.
func (s Settings) Validate() error {
	days := make(map[string]bool, len(s.Hours))
	for _, h := range s.Hours {
		name, ok := canonicalDay(h.Day)
		if !ok {
			return fmt.Errorf("hours %q: %w", h.Day, ErrUnknownDay)
		}
		if days[name] {
			return fmt.Errorf("hours %q listed twice", name)
		}
		days[name] = true
		if err := checkTime(h.Start); err != nil {
			return fmt.Errorf("hours %s start: %w", name, err)
		}
		if err := checkTime(h.End); err != nil {
			return fmt.Errorf("hours %s end: %w", name, err)
		}
	}

	ids := make(map[string]bool, len(s.Escalation))
	for _, r := range s.Escalation {
		if ids[r.ID] {
			return fmt.Errorf("escalation rule %q listed twice", r.ID)
		}
		ids[r.ID] = true
		if strings.TrimSpace(r.Condition) == "" || strings.TrimSpace(r.Action) == "" {
			return fmt.Errorf("escalation rule %q: %w", r.ID, ErrInvalidRule)
		}
	}
	return nil
}

func checkTime(v string) error {
	if len(v) != 5 {
		return fmt.Errorf("%q: %w", v, ErrInvalidTime)
	}
	if _, err := time.Parse("15:04", v); err != nil {
		return fmt.Errorf("%q: %w", v, ErrInvalidTime)
	}
	return nil
}

var weekdays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

func canonicalDay(d string) (string, bool) {
	for _, w := range weekdays {
		if strings.EqualFold(strings.TrimSpace(d), w) {
			return w, true
		}
	}
	return "", false
}
