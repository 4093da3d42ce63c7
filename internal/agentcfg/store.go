package agentcfg

import (
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// Store guards the live settings. Edits apply immediately.
type Store struct {
	mu       sync.RWMutex
	settings Settings
}

// NewStore creates a store seeded with s.
func NewStore(s Settings) *Store {
	return &Store{settings: s.Clone()}
}

// Snapshot returns a deep copy of the current settings.
func (st *Store) Snapshot() Settings {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.settings.Clone()
}

func (st *Store) SetGreeting(text string) {
	st.mu.Lock()
	st.settings.Greeting = text
	st.mu.Unlock()
}

// SetIntentResponse replaces the response for an existing intent.
func (st *Store) SetIntentResponse(intent, response string) error {
	st.mu.Lock()
	defer st.mu.Unlock()
	for i := range st.settings.Intents {
		if st.settings.Intents[i].Intent == intent {
			st.settings.Intents[i].Response = response
			return nil
		}
	}
	return fmt.Errorf("%q: %w", intent, ErrUnknownIntent)
}

func (st *Store) SetRuleEnabled(id string, enabled bool) (EscalationRule, error) {
	st.mu.Lock()
	defer st.mu.Unlock()
	i := st.ruleIndex(id)
	if i < 0 {
		return EscalationRule{}, fmt.Errorf("%q: %w", id, ErrRuleNotFound)
	}
	st.settings.Escalation[i].Enabled = enabled
	return st.settings.Escalation[i], nil
}

// AddRule appends a rule with a fresh ID.
func (st *Store) AddRule(condition, action string, enabled bool) (EscalationRule, error) {
	condition, action = strings.TrimSpace(condition), strings.TrimSpace(action)
	if condition == "" || action == "" {
		return EscalationRule{}, ErrInvalidRule
	}
	rule := EscalationRule{
		ID:        "er-" + uuid.NewString(),
		Condition: condition,
		Action:    action,
		Enabled:   enabled,
	}
	st.mu.Lock()
	st.settings.Escalation = append(st.settings.Escalation, rule)
	st.mu.Unlock()
	return rule, nil
}

func (st *Store) RemoveRule(id string) error {
	st.mu.Lock()
	defer st.mu.Unlock()
	i := st.ruleIndex(id)
	if i < 0 {
		return fmt.Errorf("%q: %w", id, ErrRuleNotFound)
	}
	st.settings.Escalation = append(st.settings.Escalation[:i], st.settings.Escalation[i+1:]...)
	return nil
}

// SetHours updates one weekday. Times are validated even when the day is
// disabled so re-enabling it never exposes a bad value.
func (st *Store) SetHours(day string, enabled bool, start, end string) (BusinessHour, error) {
	name, ok := canonicalDay(day)
	if !ok {
		return BusinessHour{}, fmt.Errorf("%q: %w", day, ErrUnknownDay)
	}
	if err := checkTime(start); err != nil {
		return BusinessHour{}, err
	}
	if err := checkTime(end); err != nil {
		return BusinessHour{}, err
	}

	st.mu.Lock()
	defer st.mu.Unlock()
	for i := range st.settings.Hours {
		if st.settings.Hours[i].Day != name {
			continue
		}
		st.settings.Hours[i] = BusinessHour{Day: name, Enabled: enabled, Start: start, End: end}
		return st.settings.Hours[i], nil
	}
	return BusinessHour{}, fmt.Errorf("%q: %w", day, ErrUnknownDay)
}

func (st *Store) ruleIndex(id string) int {
	for i, r := range st.settings.Escalation {
		if r.ID == id {
			return i
		}
	}
	return -1
}
