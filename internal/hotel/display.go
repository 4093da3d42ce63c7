package hotel

import (
	"fmt"
	"strconv"
)

// Tone is the colour family of a badge.
type Tone string

const (
	ToneEmerald Tone = "emerald"
	ToneBlue    Tone = "blue"
	ToneAmber   Tone = "amber"
	ToneRed     Tone = "red"
	TonePurple  Tone = "purple"
	ToneMuted   Tone = "muted"
)

// Badge is a short coloured label.
type Badge struct {
	Label string `json:"label"`
	Tone  Tone   `json:"tone"`
}

var outcomeBadges = map[Outcome]Badge{
	OutcomeBooked:    {"Booked", ToneEmerald},
	OutcomeResolved:  {"Resolved", ToneBlue},
	OutcomeEscalated: {"Escalated", ToneAmber},
	OutcomeCancelled: {"Cancelled", ToneRed},
	OutcomeModified:  {"Modified", TonePurple},
}

var statusBadges = map[ReservationStatus]Badge{
	ReservationConfirmed:  {"Confirmed", ToneEmerald},
	ReservationPending:    {"Pending", ToneAmber},
	ReservationCheckedIn:  {"Checked In", ToneBlue},
	ReservationCheckedOut: {"Checked Out", ToneMuted},
	ReservationCancelled:  {"Cancelled", ToneRed},
}

// OutcomeBadge maps a call outcome to its badge. Unknown outcomes are shown
// verbatim in the muted tone.
func OutcomeBadge(o Outcome) Badge {
	if b, ok := outcomeBadges[o]; ok {
		return b
	}
	return Badge{Label: string(o), Tone: ToneMuted}
}

// StatusBadge maps a reservation status to its badge.
func StatusBadge(s ReservationStatus) Badge {
	if b, ok := statusBadges[s]; ok {
		return b
	}
	return Badge{Label: string(s), Tone: ToneMuted}
}

func SourceBadge(s Source) Badge {
	if s == SourceVoice {
		return Badge{Label: "Voice", Tone: TonePurple}
	}
	return Badge{Label: "Web", Tone: ToneBlue}
}

func RuleBadge(enabled bool) Badge {
	if enabled {
		return Badge{Label: "Active", Tone: ToneEmerald}
	}
	return Badge{Label: "Disabled", Tone: ToneMuted}
}

// Stars returns five flags, the first rating of which are filled.
func Stars(rating int) []bool {
	stars := make([]bool, 5)
	for i := range stars {
		stars[i] = i < rating
	}
	return stars
}

// FormatDuration renders seconds as m:ss.
func FormatDuration(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

// FormatMoney renders whole dollars with thousands separators, e.g. $1,377.
func FormatMoney(n int) string {
	sign := ""
	if n < 0 {
		sign, n = "-", -n
	}
	digits := strconv.Itoa(n)
	var b []byte
	for i := range len(digits) {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b = append(b, ',')
		}
		b = append(b, digits[i])
	}
	return sign + "$" + string(b)
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
