package console

import (
	"strings"

	"github.com/hubenschmidt/hotel-voice-console/internal/hotel"
)

// FilterAll disables the outcome or intent constraint.
const FilterAll = "all"

// HistoryFilter narrows the call log. Empty fields match everything.
type HistoryFilter struct {
	Search  string `json:"search"`
	Outcome string `json:"outcome"`
	Intent  string `json:"intent"`
}

// Matches reports whether c passes every constraint. Search is
// case-insensitive against the caller name and booking reference and a
// plain substring match against the caller's phone number.
func (f HistoryFilter) Matches(c hotel.CompletedCall) bool {
	if f.Search != "" {
		s := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(c.CallerName), s) &&
			!strings.Contains(c.CallerID, s) &&
			!strings.Contains(strings.ToLower(c.BookingRef), s) {
			return false
		}
	}
	if f.Outcome != "" && f.Outcome != FilterAll && string(c.Outcome) != f.Outcome {
		return false
	}
	if f.Intent != "" && f.Intent != FilterAll && c.Intent != f.Intent {
		return false
	}
	return true
}

// Apply returns the calls that match f, in the order given.
func (f HistoryFilter) Apply(calls []hotel.CompletedCall) []hotel.CompletedCall {
	out := make([]hotel.CompletedCall, 0, len(calls))
	for _, c := range calls {
		if f.Matches(c) {
			out = append(out, c)
		}
	}
	return out
}
