package model

import "time"

// RawRow is one feed row keyed by canonical column name. It only exists
// between the CSV parser and the record builder.
type RawRow map[string]string

// Get returns the value for a canonical key, trimmed of surrounding space.
func (r RawRow) Get(key string) string {
	return r[key]
}

// EventRecord is the canonical unit after validation. A record is only built
// when both StartTime and EndTime resolved to instants; every other field is
// best-effort. Cost is zero until the cost engine runs, and is set exactly
// once.
type EventRecord struct {
	MachineId    string    `json:"machineId"` // canonical label, e.g. "Machine 1"
	ActivityType string    `json:"activityType"`
	StartTime    time.Time `json:"startTime"`
	EndTime      time.Time `json:"endTime"`
	Remark       string    `json:"remark,omitempty"`
	SubmittedBy  string    `json:"submittedBy,omitempty"`
	// Timestamp is the submission time, distinct from the activity window.
	// Zero value means the feed had no resolvable submission time.
	Timestamp       time.Time `json:"timestamp,omitempty"`
	DurationHours   float64   `json:"durationHours"`
	DurationMinutes float64   `json:"durationMinutes"`
	Cost            float64   `json:"cost"`
	// SourceRow is the 1-based data row index in the fetched feed, kept so
	// downstream views can preserve source order.
	SourceRow int `json:"sourceRow"`
}
