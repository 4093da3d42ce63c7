package console

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/hubenschmidt/hotel-voice-console/internal/hotel"
)

var csvHeader = []string{"id", "caller_name", "caller_id", "timestamp", "duration", "intent", "outcome", "satisfaction", "booking_ref"}

// WriteHistoryCSV writes calls as CSV with a header row.
func WriteHistoryCSV(w io.Writer, calls []hotel.CompletedCall) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("csv header: %w", err)
	}
	for _, c := range calls {
		row := []string{
			c.ID,
			c.CallerName,
			c.CallerID,
			c.Timestamp.Format(time.RFC3339),
			hotel.FormatDuration(c.Duration),
			c.Intent,
			string(c.Outcome),
			strconv.Itoa(c.Satisfaction),
			c.BookingRef,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("csv row %s: %w", c.ID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
