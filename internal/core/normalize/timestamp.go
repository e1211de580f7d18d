package normalize

import (
	"strings"
	"time"
)

// timestampLayouts are tried in order. Day-first layouts come before ISO ones
// because the feed's operators enter dates day-first; non-padded layout digits
// accept both "05/01/2024" and "5/1/2024". Mixed sub-formats coexist within
// one column, so every value gets the full list.
var timestampLayouts = []string{
	"2/1/2006 15:04:05",
	"2/1/2006 15:04",
	"2/1/2006 3:04:05 PM",
	"2/1/2006 3:04 PM",
	"2/1/2006",
	"2-1-2006 15:04:05",
	"2-1-2006 15:04",
	"2-1-2006",
	"2.1.2006 15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
	"2006/01/02 15:04:05",
	"2006/01/02 15:04",
}

// Timestamp parses heterogeneous date/time text into an instant in loc.
// ok is false when the value fails every layout; a single bad value never
// aborts the pipeline. Empty or whitespace-only text is always unresolvable.
func Timestamp(raw string, loc *time.Location) (time.Time, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, false
	}
	if loc == nil {
		loc = time.Local
	}

	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}
