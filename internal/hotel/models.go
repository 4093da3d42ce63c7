package hotel

import "time"

// CallStatus is the live state of a call the voice agent is handling.
type CallStatus string

const (
	CallActive       CallStatus = "active"
	CallOnHold       CallStatus = "on-hold"
	CallTransferring CallStatus = "transferring"
)

// Label returns the display text for the status.
func (s CallStatus) Label() string {
	switch s {
	case CallActive:
		return "Active"
	case CallOnHold:
		return "On Hold"
	case CallTransferring:
		return "Transferring"
	}
	return string(s)
}

// Outcome is the terminal disposition of a completed call.
type Outcome string

const (
	OutcomeBooked    Outcome = "booked"
	OutcomeResolved  Outcome = "inquiry_resolved"
	OutcomeEscalated Outcome = "escalated"
	OutcomeCancelled Outcome = "cancelled"
	OutcomeModified  Outcome = "modified"
)

// Outcomes lists every outcome in display order.
var Outcomes = []Outcome{OutcomeBooked, OutcomeResolved, OutcomeEscalated, OutcomeCancelled, OutcomeModified}

// Speaker identifies who said a transcript line.
type Speaker string

const (
	SpeakerCaller Speaker = "Caller"
	SpeakerAgent  Speaker = "Agent"
)

// Initials is the avatar text shown next to a transcript line.
func (s Speaker) Initials() string {
	if s == SpeakerAgent {
		return "AI"
	}
	return "C"
}

// ReservationStatus is the lifecycle state of a booking.
type ReservationStatus string

const (
	ReservationConfirmed  ReservationStatus = "confirmed"
	ReservationPending    ReservationStatus = "pending"
	ReservationCheckedIn  ReservationStatus = "checked_in"
	ReservationCheckedOut ReservationStatus = "checked_out"
	ReservationCancelled  ReservationStatus = "cancelled"
)

// Source is the channel a reservation was made through.
type Source string

const (
	SourceVoice Source = "voice"
	SourceWeb   Source = "web"
)

// ActiveCall is a call currently connected to the voice agent.
type ActiveCall struct {
	ID         string     `json:"id"`
	CallerID   string     `json:"caller_id"`
	CallerName string     `json:"caller_name"`
	StartTime  time.Time  `json:"start_time"`
	Duration   int        `json:"duration"`
	Intent     string     `json:"intent"`
	Status     CallStatus `json:"status"`
	RoomType   string     `json:"room_type,omitempty"`
}

// TranscriptEntry is one line of a call transcript. Timestamp is relative
// to the start of the call ("00:35").
type TranscriptEntry struct {
	Speaker   Speaker `json:"speaker"`
	Text      string  `json:"text"`
	Timestamp string  `json:"timestamp"`
	Intent    string  `json:"intent,omitempty"`
}

// CompletedCall is a finished call with its transcript.
type CompletedCall struct {
	ID           string            `json:"id"`
	CallerID     string            `json:"caller_id"`
	CallerName   string            `json:"caller_name"`
	Timestamp    time.Time         `json:"timestamp"`
	Duration     int               `json:"duration"`
	Intent       string            `json:"intent"`
	Outcome      Outcome           `json:"outcome"`
	Satisfaction int               `json:"satisfaction"`
	BookingRef   string            `json:"booking_ref,omitempty"`
	Transcript   []TranscriptEntry `json:"transcript"`
}

// Reservation is a room booking. BookingRef is free text and is not
// checked against any call.
type Reservation struct {
	ID              string            `json:"id"`
	BookingRef      string            `json:"booking_ref"`
	GuestName       string            `json:"guest_name"`
	CheckIn         time.Time         `json:"check_in"`
	CheckOut        time.Time         `json:"check_out"`
	RoomType        string            `json:"room_type"`
	Status          ReservationStatus `json:"status"`
	Source          Source            `json:"source"`
	TotalAmount     int               `json:"total_amount"`
	Phone           string            `json:"phone"`
	Email           string            `json:"email"`
	SpecialRequests string            `json:"special_requests,omitempty"`
	Guests          int               `json:"guests"`
}

// Nights is the number of whole days between check-in and check-out.
func (r Reservation) Nights() int {
	n := int(r.CheckOut.Sub(r.CheckIn).Hours() / 24)
	if n < 0 {
		return 0
	}
	return n
}

// NightsLabel renders the stay length, e.g. "1 night" or "3 nights".
func (r Reservation) NightsLabel() string {
	if n := r.Nights(); n != 1 {
		return itoa(n) + " nights"
	}
	return "1 night"
}

// GuestLabel renders the guest count, e.g. "1 guest" or "3 guests".
func (r Reservation) GuestLabel() string {
	if r.Guests > 1 {
		return itoa(r.Guests) + " guests"
	}
	return itoa(r.Guests) + " guest"
}
