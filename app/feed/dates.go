package feed

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

var rfcLayouts = []string{
	time.RFC1123Z,
	time.RFC1123,
	time.RFC822Z,
	time.RFC822,
	time.RFC3339,
	"Mon, 2 Jan 2006 15:04:05 -0700",
	"Mon, 2 Jan 2006 15:04:05 MST",
}

// obsoleteZones are the RFC 822 North American zone names. time.Parse reads
// an abbreviation it does not know as offset zero.
var obsoleteZones = map[string]int{
	"EST": -5 * 3600,
	"EDT": -4 * 3600,
	"CST": -6 * 3600,
	"CDT": -5 * 3600,
	"MST": -7 * 3600,
	"MDT": -6 * 3600,
	"PST": -8 * 3600,
	"PDT": -7 * 3600,
}

// ParseDate parses a loosely formatted date. Values without a zone are read
// as UTC. The result is always in UTC.
func ParseDate(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}

	for _, layout := range rfcLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return applyZoneName(t).UTC(), true
		}
	}

	t, err := dateparse.ParseIn(raw, time.UTC)
	if err != nil {
		return time.Time{}, false
	}
	return t.UTC(), true
}

// NormalizeDate parses raw, substituting now when it is missing or unparsable.
func NormalizeDate(raw string, now time.Time) time.Time {
	if t, ok := ParseDate(raw); ok {
		return t
	}
	return now.UTC()
}

func applyZoneName(t time.Time) time.Time {
	name, offset := t.Zone()
	if offset != 0 {
		return t
	}
	known, ok := obsoleteZones[strings.ToUpper(name)]
	if !ok {
		return t
	}
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.FixedZone(name, known))
}
