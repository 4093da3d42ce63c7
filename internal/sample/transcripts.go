package sample

import "github.com/hubenschmidt/hotel-voice-console/internal/hotel"

func agent(ts, text string) hotel.TranscriptEntry {
	return hotel.TranscriptEntry{Speaker: hotel.SpeakerAgent, Text: text, Timestamp: ts}
}

func caller(ts, text string) hotel.TranscriptEntry {
	return hotel.TranscriptEntry{Speaker: hotel.SpeakerCaller, Text: text, Timestamp: ts}
}

func tagged(e hotel.TranscriptEntry, intent string) hotel.TranscriptEntry {
	e.Intent = intent
	return e
}

var transcripts = map[string][]hotel.TranscriptEntry{
	IntentRoomBooking: {
		agent("00:00", "Thank you for calling Grand Vista Hotel. How may I assist you today?"),
		caller("00:05", "Hi, I would like to book a room for next weekend."),
		tagged(agent("00:09", "I would be happy to help you with that. Could you please let me know your preferred check-in and check-out dates?"), IntentRoomBooking),
		caller("00:15", "Check-in on February 14th, check-out on February 16th."),
		agent("00:20", "Perfect. We have several room types available. Our Deluxe King is $289 per night, the Ocean View Suite is $459, and our Standard Queen is $189. Which would you prefer?"),
		caller("00:30", "The Deluxe King sounds great."),
		agent("00:35", "Excellent choice. I have reserved a Deluxe King room for February 14th to 16th, two nights at $289 per night. Your booking reference is GV-2024-0847. Is there anything else I can help with?"),
		caller("00:45", "No, that is all. Thank you!"),
		agent("00:48", "You are welcome. We look forward to welcoming you. Have a great day!"),
	},
	IntentAvailability: {
		agent("00:00", "Good afternoon, Grand Vista Hotel reservations. How can I help?"),
		tagged(caller("00:04", "I wanted to check room availability for March 20th to 23rd."), IntentAvailability),
		agent("00:10", "Let me look that up for you. For March 20th through 23rd, we have availability in our Standard Queen, Deluxe King, and one Ocean View Suite remaining."),
		caller("00:18", "What are the rates for those dates?"),
		agent("00:22", "The Standard Queen is $179 per night, Deluxe King is $269, and the Ocean View Suite is $429 per night. All rates include breakfast."),
		caller("00:30", "Great, I will think about it and call back. Thanks!"),
		agent("00:34", "Of course! Rates are subject to availability, so I recommend booking soon. Have a wonderful day."),
	},
	IntentModification: {
		agent("00:00", "Grand Vista Hotel, how may I assist you?"),
		tagged(caller("00:05", "I need to modify my existing reservation. My booking reference is GV-2024-0712."), IntentModification),
		agent("00:12", "I have found your reservation, Mr. Patterson. You currently have a Standard Queen for February 10th to 12th. What changes would you like to make?"),
		caller("00:20", "I need to extend my stay by one additional night, checking out on the 13th instead."),
		agent("00:28", "I can do that for you. The additional night will be at the same rate of $189. Your updated reservation is now February 10th through 13th, three nights total. Shall I send a confirmation email?"),
		caller("00:35", "Yes please. Thank you for your help."),
		agent("00:38", "Done! The confirmation has been sent to your email on file. Have a great stay!"),
	},
	IntentCancellation: {
		agent("00:00", "Thank you for calling Grand Vista Hotel. How can I help you today?"),
		tagged(caller("00:04", "I need to cancel my reservation. Reference number GV-2024-0698."), IntentCancellation),
		agent("00:12", "I am sorry to hear that. Let me pull up your booking. I see a Deluxe King for February 22nd to 24th. Since this is more than 48 hours out, you qualify for a full refund. Shall I proceed?"),
		caller("00:20", "Yes, please go ahead with the cancellation."),
		agent("00:25", "Your reservation has been cancelled and a full refund of $578 will be processed within 5-7 business days. Is there anything else I can help with?"),
		caller("00:30", "No, that is everything. Thank you."),
	},
	IntentGeneral: {
		agent("00:00", "Grand Vista Hotel, how may I help you?"),
		tagged(caller("00:04", "I have a question about your hotel amenities and parking."), IntentGeneral),
		agent("00:10", "Of course! We offer complimentary valet parking, a rooftop pool, fitness center, spa, and two on-site restaurants. Is there anything specific you would like to know?"),
		caller("00:18", "That sounds great. What are check-in and check-out times?"),
		agent("00:23", "Check-in is at 3:00 PM and check-out is at 11:00 AM. Early check-in and late check-out are available upon request, subject to availability."),
		caller("00:28", "Perfect, thank you so much!"),
	},
}

// Transcript returns the scripted conversation for intent. Intents without
// a script get the general inquiry conversation.
func Transcript(intent string) []hotel.TranscriptEntry {
	lines, ok := transcripts[intent]
	if !ok {
		lines = transcripts[IntentGeneral]
	}
	out := make([]hotel.TranscriptEntry, len(lines))
	copy(out, lines)
	return out
}
