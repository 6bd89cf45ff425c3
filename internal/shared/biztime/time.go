// Package biztime provides time utilities for the entitlement lifecycle.
// All storage and transport use UTC; implicit local timezone is prohibited.
package biztime

import (
	"fmt"
	"time"
)

// NowUTC returns current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// ToUTC converts a time (any timezone) to UTC.
func ToUTC(t time.Time) time.Time {
	return t.UTC()
}

// FormatExpiry formats a session expiry for embedding in a credential.
// RFC3339 in UTC is the fixed, unambiguous wire form.
func FormatExpiry(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// ParseExpiry parses a credential expiry field (RFC3339).
func ParseExpiry(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid expiry timestamp %q: %w", s, err)
	}
	return t, nil
}

// HoursRemaining returns the whole and fractional hours between now and the
// given expiry, floored at zero.
func HoursRemaining(expiry, now time.Time) float64 {
	remaining := expiry.Sub(now).Hours()
	if remaining < 0 {
		return 0
	}
	return remaining
}
