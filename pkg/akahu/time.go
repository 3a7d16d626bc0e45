package akahu

import (
	"fmt"
	"strconv"
	"time"
)

// timeWire is the API's timestamp format: millisecond-precision ISO 8601,
// UTC only (2025-01-01T11:59:59.999Z is the instant before
// 2025-01-01T12:00:00.000Z).
const timeWire = "2006-01-02T15:04:05.000Z07:00"

// Time is a millisecond-precision UTC timestamp as used by the Akahu API.
// It always encodes with exactly three fractional digits so wire values
// round-trip byte for byte.
type Time struct {
	time.Time
}

// NewTime converts a time.Time to API time, normalising to UTC.
func NewTime(t time.Time) Time {
	return Time{Time: t.UTC()}
}

func (t Time) wire() string {
	return t.Time.UTC().Format(timeWire)
}

// MarshalJSON encodes the timestamp in the API wire format.
func (t Time) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(t.wire())), nil
}

// UnmarshalJSON accepts any RFC 3339 timestamp and normalises it to UTC.
func (t *Time) UnmarshalJSON(data []byte) error {
	s, err := strconv.Unquote(string(data))
	if err != nil {
		return fmt.Errorf("timestamp: expected a string, got %s", string(data))
	}
	parsed, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return fmt.Errorf("timestamp %q is not ISO 8601: %w", s, err)
	}
	t.Time = parsed.UTC()
	return nil
}
