// Package biztime provides time utilities for the business layer.
// All storage and transport use UTC; implicit local timezone is prohibited.
package biztime

import "time"

// NowUTC returns current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// ToUTC converts a time (any timezone) to UTC.
func ToUTC(t time.Time) time.Time {
	return t.UTC()
}

// FromUnixMilli converts a millisecond timestamp to a UTC time.
func FromUnixMilli(millis int64) time.Time {
	return time.UnixMilli(millis).UTC()
}
