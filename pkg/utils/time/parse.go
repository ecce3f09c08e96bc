// ABOUTME: Timestamp parsing for upstream records
// ABOUTME: Accepts RFC 3339 with or without fractions or zone, and epoch seconds or milliseconds

package time

import (
	"strconv"
	"strings"
	"time"
)

// layouts tried in order; zone-less values are read as UTC
var layouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05",
	time.RFC1123Z,
	time.RFC1123,
}

// epochMillisCutoff separates epoch seconds from epoch milliseconds.
// 1e11 seconds is in the year 5138.
const epochMillisCutoff = 1e11

// ParseTimestamp parses s and reports whether it succeeded. The result is in UTC.
func ParseTimestamp(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}

	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		if n <= 0 {
			return time.Time{}, false
		}
		if n >= epochMillisCutoff {
			return time.UnixMilli(n).UTC(), true
		}
		return time.Unix(n, 0).UTC(), true
	}

	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

// ParseFlexibleTime returns the parsed time, or the zero time when s is not a timestamp
func ParseFlexibleTime(s string) time.Time {
	t, _ := ParseTimestamp(s)
	return t
}
