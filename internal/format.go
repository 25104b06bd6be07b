package internal

import (
	"fmt"
	"time"
)

// FormatClock renders a duration as MM:SS, or HH:MM:SS once it reaches an
// hour.
func FormatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d.Seconds())
	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60

	if hours > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}

// FormatTotal renders an accumulated duration in whole minutes, e.g.
// "15 minutes" or "2 hours 5 minutes". Sub-minute precision is kept in the
// records; only the display truncates.
func FormatTotal(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d.Minutes())
	hours := total / 60
	minutes := total % 60

	if hours > 0 {
		return fmt.Sprintf("%d hours %d minutes", hours, minutes)
	}
	return fmt.Sprintf("%d minutes", minutes)
}
