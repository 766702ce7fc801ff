package tracking

import (
	"fmt"
	"strings"
	"time"

	"github.com/coldchain/backend/internal/domain/shared"
)

// Provider and client timestamps arrive as ISO-8601 strings, sometimes with
// a trailing "Z", sometimes with an explicit offset, sometimes naive. Naive
// values are treated as UTC.
var timestampLayouts = []string{
	"2006-01-02T15:04:05.999999999-07:00",
	"2006-01-02T15:04:05.999999999",
}

// parseTimestamp parses an ISO-8601 timestamp, stripping a trailing "Z"
func parseTimestamp(value string) (time.Time, error) {
	trimmed := strings.TrimSuffix(value, "Z")
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, trimmed, time.UTC); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid timestamp %q", value)
}

// parseClientTimestamp is parseTimestamp with a domain error for request
// payloads, so a malformed value surfaces as a 400 instead of a 500
func parseClientTimestamp(value string) (time.Time, error) {
	t, err := parseTimestamp(value)
	if err != nil {
		return time.Time{}, shared.NewDomainError("INVALID_TIMESTAMP", fmt.Sprintf("Invalid ISO-8601 timestamp: %s", value))
	}
	return t, nil
}
