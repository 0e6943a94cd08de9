package timeutil

import (
	"fmt"
	"strings"
	"time"
)

// Timestamp layouts observed on the feed. Fractional seconds are optional
// and the offset, when present, is hours only (e.g. "-05").
var feedLayouts = []string{
	"2006-01-02T15:04:05.999999999Z07:00",
	"2006-01-02T15:04:05.999999999-07",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999-07",
	"2006-01-02 15:04:05.999999999",
}

// ParseTimestamp parses a feed timestamp string. Some producers append a
// three-character hour offset that older layouts choke on, so a failed parse
// is retried with the suffix trimmed.
func ParseTimestamp(value string) (time.Time, error) {
	raw := strings.TrimSpace(value)
	if raw == "" {
		return time.Time{}, fmt.Errorf("empty timestamp")
	}

	if ts, err := parseLayouts(raw); err == nil {
		return ts, nil
	}
	if len(raw) > 3 {
		if ts, err := parseLayouts(raw[:len(raw)-3]); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", value)
}

func parseLayouts(raw string) (time.Time, error) {
	var lastErr error
	for _, layout := range feedLayouts {
		ts, err := time.Parse(layout, raw)
		if err == nil {
			return ts, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
