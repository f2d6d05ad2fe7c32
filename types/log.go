package types

import "time"

// LogEntry is one audited API call, queued for the database.
type LogEntry struct {
	RequestID   string
	Method      string
	URL         string
	UserID      *uint
	IP          string
	RequestBody string
	StatusCode  int
	DurationMs  int64
	CreatedAt   time.Time
}
