package activity

import "time"

// Kind names an operator action.
type Kind string

const (
	KindListening     Kind = "listening"
	KindSampleData    Kind = "sample_data"
	KindGreeting      Kind = "greeting_updated"
	KindIntent        Kind = "intent_updated"
	KindRuleAdded     Kind = "rule_added"
	KindRuleToggled   Kind = "rule_toggled"
	KindRuleRemoved   Kind = "rule_removed"
	KindHours         Kind = "hours_updated"
	KindConfigSaved   Kind = "config_saved"
	KindCancelled     Kind = "reservation_cancelled"
	KindHistoryExport Kind = "history_exported"
)

// Entry is one recorded action.
type Entry struct {
	ID      string    `json:"id"`
	Kind    Kind      `json:"kind"`
	Subject string    `json:"subject,omitempty"`
	Detail  string    `json:"detail,omitempty"`
	At      time.Time `json:"at"`
}
