package transform

import (
	"fmt"
	"time"
)

// InvalidTime is rendered in place of a timestamp that does not parse.
const InvalidTime = "--:--"

// Provider timestamps are local wall-clock values with no offset; they
// must never be shifted into another zone.
var timestampLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// FormatDuration renders a minute count as "{h}h {m}m".
func FormatDuration(minutes int) string {
	return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
}

// FormatTime renders an ISO-8601 local timestamp as zero-padded 24-hour
// "HH:MM". Malformed input yields InvalidTime rather than an error; the
// transformer does not validate timestamps before formatting.
func FormatTime(iso string) string {
	t, err := parseLocal(iso)
	if err != nil {
		return InvalidTime
	}
	return t.Format("15:04")
}

func parseLocal(iso string) (time.Time, error) {
	var lastErr error
	for _, layout := range timestampLayouts {
		t, err := time.Parse(layout, iso)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
