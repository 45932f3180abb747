package models

import (
	"fmt"
	"strings"
	"time"
)

// AccessLogEntry is one authentication against a cluster, normalized from
// the raw access-log record. The API delivers entries most-recent-first but
// nothing in this type depends on that.
type AccessLogEntry struct {
	AccountID string
	Timestamp time.Time
}

// Atlas has emitted the access-log timestamp in a few shapes over time.
// The first layout matches the current API output, e.g.
// "Wed Mar 07 2018 17:38:11 GMT-0500 (EST)".
var accessLogLayouts = []string{
	"Mon Jan 02 2006 15:04:05 GMT-0700 (MST)",
	"Mon Jan 02 2006 15:04:05 GMT-0700",
	time.RFC3339,
	time.RFC1123,
}

// ParseAccessLogEntry normalizes a raw access-log record. A timestamp that
// matches no known layout is an error: an unparseable access must not be
// mistaken for an ancient one.
func ParseAccessLogEntry(accountID, rawTimestamp string) (AccessLogEntry, error) {
	ts, err := parseAccessLogTime(rawTimestamp)
	if err != nil {
		return AccessLogEntry{}, err
	}
	return AccessLogEntry{AccountID: accountID, Timestamp: ts}, nil
}

func parseAccessLogTime(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, fmt.Errorf("empty access log timestamp")
	}

	candidates := []string{raw}
	// Spelled-out zone names like "(Greenwich Mean Time)" defeat time.Parse,
	// so also try with the parenthesized suffix removed. The numeric offset
	// carries the real zone information either way.
	if i := strings.Index(raw, " ("); i > 0 {
		candidates = append(candidates, raw[:i])
	}

	for _, c := range candidates {
		for _, layout := range accessLogLayouts {
			if t, err := time.Parse(layout, c); err == nil {
				return t, nil
			}
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized access log timestamp %q", raw)
}
