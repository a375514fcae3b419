package service

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidTimestamp marks a malformed webhook timestamp. Callers treat it
// as a validation error, never as a store failure.
var ErrInvalidTimestamp = errors.New("invalid timestamp")

// Numeric timestamps below this are Unix seconds, at or above it Unix
// milliseconds (a 10-digit-seconds threshold).
const unixSecondsThreshold = 1e10

// ParseInstant interprets the webhook timestamp value as decoded from JSON:
// a number (seconds or milliseconds), an ISO-8601 string, or absent (now).
func ParseInstant(raw any, now func() time.Time) (time.Time, error) {
	switch v := raw.(type) {
	case nil:
		return now(), nil
	case float64:
		if v < 0 {
			return time.Time{}, fmt.Errorf("%w: negative value %v", ErrInvalidTimestamp, v)
		}
		if v < unixSecondsThreshold {
			return time.Unix(int64(v), 0), nil
		}
		return time.UnixMilli(int64(v)), nil
	case string:
		for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02 15:04:05"} {
			if t, err := time.Parse(layout, v); err == nil {
				return t, nil
			}
		}
		return time.Time{}, fmt.Errorf("%w: unparseable string %q", ErrInvalidTimestamp, v)
	default:
		return time.Time{}, fmt.Errorf("%w: unsupported type %T", ErrInvalidTimestamp, raw)
	}
}
