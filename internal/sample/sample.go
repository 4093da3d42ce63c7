// Package sample generates the mock calls, reservations and dashboard
// figures the console displays.
package sample

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/hubenschmidt/hotel-voice-console/internal/hotel"
)

// VoiceAgentID is the identifier of the hotel's deployed voice agent.
const VoiceAgentID = "698a04d20769219591839a10"

const (
	IntentRoomBooking  = "Room Booking"
	IntentAvailability = "Availability Check"
	IntentModification = "Booking Modification"
	IntentCancellation = "Cancellation"
	IntentGeneral      = "General Inquiry"
)

// Intents lists the intents the agent classifies, in display order.
var Intents = []string{IntentRoomBooking, IntentAvailability, IntentModification, IntentCancellation, IntentGeneral}

var callerNames = []string{
	"Emily Watson", "David Kim", "Jessica Torres", "Michael Brown", "Amanda Liu",
	"Chris Taylor", "Sophia Patel", "Daniel Nguyen", "Laura Martinez", "Kevin White",
	"Rachel Green", "Thomas Black", "Nina Sharma", "Alex Johnson", "Megan Wilson",
	"Ryan Clark", "Hannah Lee", "Brian Foster", "Olivia Adams", "Patrick Hall",
}

// NewRand returns a deterministic random source for seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// ActiveCalls returns the calls in progress at now.
func ActiveCalls(now time.Time) []hotel.ActiveCall {
	calls := []hotel.ActiveCall{
		{ID: "ac-001", CallerID: "+1 (555) 234-8901", CallerName: "Sarah Mitchell", Duration: 180, Intent: IntentRoomBooking, Status: hotel.CallActive, RoomType: "Deluxe King"},
		{ID: "ac-002", CallerID: "+1 (555) 876-5432", CallerName: "James O'Brien", Duration: 420, Intent: IntentModification, Status: hotel.CallActive},
		{ID: "ac-003", CallerID: "+1 (555) 345-6789", CallerName: "Maria Garcia", Duration: 90, Intent: IntentAvailability, Status: hotel.CallOnHold},
		{ID: "ac-004", CallerID: "+1 (555) 901-2345", CallerName: "Robert Chen", Duration: 720, Intent: "Escalation - Complaint", Status: hotel.CallTransferring},
	}
	for i := range calls {
		calls[i].StartTime = now.Add(-time.Duration(calls[i].Duration) * time.Second)
	}
	return calls
}

// CompletedCalls returns twenty finished calls, newest first, spaced 45
// minutes apart before now. Intent and outcome cycle together; only booked
// calls carry a booking reference.
func CompletedCalls(now time.Time, rng *rand.Rand) []hotel.CompletedCall {
	calls := make([]hotel.CompletedCall, 0, len(callerNames))
	for i, name := range callerNames {
		intent := Intents[i%len(Intents)]
		outcome := hotel.Outcomes[i%len(hotel.Outcomes)]
		call := hotel.CompletedCall{
			ID:           fmt.Sprintf("cc-%03d", i+1),
			CallerID:     fmt.Sprintf("+1 (555) %03d-%d", 100+i*37, 1000+i*123),
			CallerName:   name,
			Timestamp:    now.Add(-time.Duration(i+1) * 45 * time.Minute),
			Duration:     60 + rng.IntN(540),
			Intent:       intent,
			Outcome:      outcome,
			Satisfaction: 3 + rng.IntN(3),
			Transcript:   Transcript(intent),
		}
		if outcome == hotel.OutcomeBooked {
			call.BookingRef = fmt.Sprintf("GV-2024-%04d", 800+i)
		}
		calls = append(calls, call)
	}
	return calls
}

func day(month time.Month, d int) time.Time {
	return time.Date(2025, month, d, 0, 0, 0, 0, time.UTC)
}

// Reservations returns the fixed reservation book.
func Reservations() []hotel.Reservation {
	return []hotel.Reservation{
		{ID: "r-001", BookingRef: "GV-2024-0847", GuestName: "Sarah Mitchell", CheckIn: day(time.February, 14), CheckOut: day(time.February, 16), RoomType: "Deluxe King", Status: hotel.ReservationConfirmed, Source: hotel.SourceVoice, TotalAmount: 578, Phone: "+1 (555) 234-8901", Email: "sarah.m@email.com", Guests: 2, SpecialRequests: "High floor, anniversary package"},
		{ID: "r-002", BookingRef: "GV-2024-0838", GuestName: "David Kim", CheckIn: day(time.February, 18), CheckOut: day(time.February, 21), RoomType: "Ocean View Suite", Status: hotel.ReservationConfirmed, Source: hotel.SourceVoice, TotalAmount: 1377, Phone: "+1 (555) 137-1123", Email: "dkim@email.com", Guests: 2},
		{ID: "r-003", BookingRef: "GV-2024-0825", GuestName: "Emily Watson", CheckIn: day(time.February, 10), CheckOut: day(time.February, 12), RoomType: "Standard Queen", Status: hotel.ReservationCheckedIn, Source: hotel.SourceVoice, TotalAmount: 378, Phone: "+1 (555) 100-1000", Email: "ewatson@email.com", Guests: 1},
		{ID: "r-004", BookingRef: "GV-2024-0812", GuestName: "Michael Brown", CheckIn: day(time.February, 8), CheckOut: day(time.February, 10), RoomType: "Deluxe King", Status: hotel.ReservationCheckedOut, Source: hotel.SourceWeb, TotalAmount: 578, Phone: "+1 (555) 211-1369", Email: "mbrown@email.com", Guests: 2},
		{ID: "r-005", BookingRef: "GV-2024-0798", GuestName: "Amanda Liu", CheckIn: day(time.February, 22), CheckOut: day(time.February, 25), RoomType: "Presidential Suite", Status: hotel.ReservationPending, Source: hotel.SourceVoice, TotalAmount: 2697, Phone: "+1 (555) 285-1615", Email: "aliu@email.com", Guests: 3, SpecialRequests: "Airport transfer, champagne on arrival"},
		{ID: "r-006", BookingRef: "GV-2024-0785", GuestName: "Chris Taylor", CheckIn: day(time.February, 12), CheckOut: day(time.February, 14), RoomType: "Standard Queen", Status: hotel.ReservationConfirmed, Source: hotel.SourceWeb, TotalAmount: 358, Phone: "+1 (555) 322-1861", Email: "ctaylor@email.com", Guests: 1},
		{ID: "r-007", BookingRef: "GV-2024-0770", GuestName: "Jessica Torres", CheckIn: day(time.February, 5), CheckOut: day(time.February, 7), RoomType: "Deluxe King", Status: hotel.ReservationCancelled, Source: hotel.SourceVoice, TotalAmount: 0, Phone: "+1 (555) 174-1246", Email: "jtorres@email.com", Guests: 2},
		{ID: "r-008", BookingRef: "GV-2024-0755", GuestName: "Daniel Nguyen", CheckIn: day(time.February, 20), CheckOut: day(time.February, 23), RoomType: "Ocean View Suite", Status: hotel.ReservationConfirmed, Source: hotel.SourceVoice, TotalAmount: 1287, Phone: "+1 (555) 359-2107", Email: "dnguyen@email.com", Guests: 2, SpecialRequests: "Extra pillows"},
		{ID: "r-009", BookingRef: "GV-2024-0740", GuestName: "Laura Martinez", CheckIn: day(time.March, 1), CheckOut: day(time.March, 4), RoomType: "Standard Queen", Status: hotel.ReservationPending, Source: hotel.SourceVoice, TotalAmount: 567, Phone: "+1 (555) 396-2353", Email: "lmartinez@email.com", Guests: 1},
		{ID: "r-010", BookingRef: "GV-2024-0728", GuestName: "Kevin White", CheckIn: day(time.February, 15), CheckOut: day(time.February, 17), RoomType: "Deluxe King", Status: hotel.ReservationConfirmed, Source: hotel.SourceWeb, TotalAmount: 578, Phone: "+1 (555) 433-2599", Email: "kwhite@email.com", Guests: 2},
	}
}

// StatCard is one headline figure on the dashboard.
type StatCard struct {
	Title   string     `json:"title"`
	Value   string     `json:"value"`
	Trend   string     `json:"trend"`
	TrendUp bool       `json:"trend_up"`
	Accent  hotel.Tone `json:"accent"`
}

// DashboardStats returns today's headline figures.
func DashboardStats() []StatCard {
	return []StatCard{
		{Title: "Total Calls Today", Value: "147", Trend: "+12%", TrendUp: true, Accent: hotel.ToneBlue},
		{Title: "Avg Duration", Value: "4:32", Trend: "-8%", TrendUp: true, Accent: hotel.ToneEmerald},
		{Title: "Booking Conversion", Value: "34.2%", Trend: "+5.1%", TrendUp: true, Accent: hotel.ToneAmber},
		{Title: "Escalation Rate", Value: "8.7%", Trend: "-2.3%", TrendUp: true, Accent: hotel.TonePurple},
	}
}

// PlaceholderStats returns the same cards zeroed out, shown when sample
// data is switched off.
func PlaceholderStats() []StatCard {
	return []StatCard{
		{Title: "Total Calls Today", Value: "0", Trend: "--", TrendUp: true, Accent: hotel.ToneBlue},
		{Title: "Avg Duration", Value: "0:00", Trend: "--", TrendUp: true, Accent: hotel.ToneEmerald},
		{Title: "Booking Conversion", Value: "0%", Trend: "--", TrendUp: true, Accent: hotel.ToneAmber},
		{Title: "Escalation Rate", Value: "0%", Trend: "--", TrendUp: true, Accent: hotel.TonePurple},
	}
}
