package sample

import (
	"regexp"
	"testing"
	"time"

	"github.com/hubenschmidt/hotel-voice-console/internal/hotel"
)

var now = time.Date(2025, time.February, 12, 15, 0, 0, 0, time.UTC)

func TestActiveCalls(t *testing.T) {
	calls := ActiveCalls(now)
	if len(calls) != 4 {
		t.Fatalf("len = %d, want 4", len(calls))
	}
	for _, c := range calls {
		if got := now.Sub(c.StartTime); got != time.Duration(c.Duration)*time.Second {
			t.Errorf("%s: start offset %v does not match duration %ds", c.ID, got, c.Duration)
		}
	}
	if calls[2].Status != hotel.CallOnHold || calls[3].Status != hotel.CallTransferring {
		t.Errorf("statuses = %q, %q", calls[2].Status, calls[3].Status)
	}
}

func TestCompletedCalls(t *testing.T) {
	calls := CompletedCalls(now, NewRand(1))
	if len(calls) != 20 {
		t.Fatalf("len = %d, want 20", len(calls))
	}

	phone := regexp.MustCompile(`^\+1 \(555\) \d{3}-\d{4}$`)
	for i, c := range calls {
		if c.Intent != Intents[i%5] {
			t.Errorf("%s: intent = %q, want %q", c.ID, c.Intent, Intents[i%5])
		}
		if c.Outcome != hotel.Outcomes[i%5] {
			t.Errorf("%s: outcome = %q", c.ID, c.Outcome)
		}
		if c.Duration < 60 || c.Duration >= 600 {
			t.Errorf("%s: duration %d out of range", c.ID, c.Duration)
		}
		if c.Satisfaction < 3 || c.Satisfaction > 5 {
			t.Errorf("%s: satisfaction %d out of range", c.ID, c.Satisfaction)
		}
		if (c.Outcome == hotel.OutcomeBooked) != (c.BookingRef != "") {
			t.Errorf("%s: outcome %q with booking ref %q", c.ID, c.Outcome, c.BookingRef)
		}
		if !phone.MatchString(c.CallerID) {
			t.Errorf("%s: caller id %q", c.ID, c.CallerID)
		}
		if want := now.Add(-time.Duration(i+1) * 45 * time.Minute); !c.Timestamp.Equal(want) {
			t.Errorf("%s: timestamp %v, want %v", c.ID, c.Timestamp, want)
		}
		if len(c.Transcript) == 0 {
			t.Errorf("%s: empty transcript", c.ID)
		}
	}

	if calls[0].ID != "cc-001" || calls[0].CallerID != "+1 (555) 100-1000" {
		t.Errorf("first call = %s %s", calls[0].ID, calls[0].CallerID)
	}
	if calls[5].BookingRef != "GV-2024-0805" {
		t.Errorf("booking ref = %q, want GV-2024-0805", calls[5].BookingRef)
	}
}

func TestCompletedCallsDeterministic(t *testing.T) {
	a := CompletedCalls(now, NewRand(42))
	b := CompletedCalls(now, NewRand(42))
	for i := range a {
		if a[i].Duration != b[i].Duration || a[i].Satisfaction != b[i].Satisfaction {
			t.Fatalf("call %d differs between identical seeds", i)
		}
	}
}

func TestTranscript(t *testing.T) {
	for _, intent := range Intents {
		lines := Transcript(intent)
		if len(lines) == 0 {
			t.Fatalf("%s: no lines", intent)
		}
		if lines[0].Speaker != hotel.SpeakerAgent || lines[0].Timestamp != "00:00" {
			t.Errorf("%s: first line %+v", intent, lines[0])
		}
	}

	unknown := Transcript("Lost Property")
	general := Transcript(IntentGeneral)
	if len(unknown) != len(general) || unknown[1].Text != general[1].Text {
		t.Errorf("unknown intent did not fall back to general inquiry")
	}

	lines := Transcript(IntentRoomBooking)
	lines[0].Text = "mutated"
	if Transcript(IntentRoomBooking)[0].Text == "mutated" {
		t.Error("Transcript returned shared backing array")
	}
}

func TestReservations(t *testing.T) {
	res := Reservations()
	if len(res) != 10 {
		t.Fatalf("len = %d, want 10", len(res))
	}
	seen := map[string]bool{}
	for _, r := range res {
		if seen[r.ID] {
			t.Errorf("duplicate id %s", r.ID)
		}
		seen[r.ID] = true
		if !r.CheckOut.After(r.CheckIn) {
			t.Errorf("%s: check-out not after check-in", r.ID)
		}
	}
	if res[0].Nights() != 2 || res[4].Guests != 3 {
		t.Errorf("fixture drift: r-001 nights %d, r-005 guests %d", res[0].Nights(), res[4].Guests)
	}
}

func TestStats(t *testing.T) {
	live, zero := DashboardStats(), PlaceholderStats()
	if len(live) != 4 || len(zero) != 4 {
		t.Fatalf("card counts %d/%d", len(live), len(zero))
	}
	wantZero := []string{"0", "0:00", "0%", "0%"}
	for i := range zero {
		if zero[i].Title != live[i].Title {
			t.Errorf("card %d title %q != %q", i, zero[i].Title, live[i].Title)
		}
		if zero[i].Value != wantZero[i] || zero[i].Trend != "--" {
			t.Errorf("placeholder %d = %+v", i, zero[i])
		}
	}
	if live[0].Value != "147" {
		t.Errorf("total calls = %q", live[0].Value)
	}
}
