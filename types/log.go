package types

import "time"

// LogEntry represents a request/response pair waiting to be persisted
type LogEntry struct {
	Method          string
	URL             string
	RequestBody     string
	ResponseBody    string
	RequestHeaders  string
	ResponseHeaders string
	StatusCode      int
	LatencyMs       int64
	CreatedAt       time.Time
}
