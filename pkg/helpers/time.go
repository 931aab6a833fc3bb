package helpers

import "time"

// StartOfDay returns local midnight of t's calendar day. The statistics
// endpoint defines "today" as created_at at or after this instant.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
