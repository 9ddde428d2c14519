package services

import (
	"strings"
	"time"
)

// Stored timestamps are naive ISO-8601 with the zone implied as UTC.
// Display and export use Taiwan civil time (fixed UTC+8, no DST).
var displayZone = time.FixedZone("UTC+8", 8*60*60)

const (
	isoLayout     = "2006-01-02T15:04:05"
	displayLayout = "2006-01-02 15:04:05"
)

// StoredTimestamp formats an upload time the way records are persisted:
// naive ISO-8601 in UTC, microsecond precision, no zone suffix.
func StoredTimestamp(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.000000")
}

// NormalizeTimestamp converts a stored timestamp string to the UTC+8
// display form "2006-01-02 15:04:05". A trailing "Z" and any fractional
// seconds are dropped before parsing. Best effort: if the remainder does
// not parse, the input is returned unchanged, so callers may receive
// either a normalized or a raw string and must tolerate both.
func NormalizeTimestamp(raw string) string {
	clean := strings.Replace(raw, "Z", "", 1)
	if i := strings.Index(clean, "."); i >= 0 {
		clean = clean[:i]
	}

	t, err := time.Parse(isoLayout, clean)
	if err != nil {
		return raw
	}

	return t.UTC().In(displayZone).Format(displayLayout)
}
