package models

import (
	"fmt"
	"strings"
	"time"
)

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
}

var clockLayouts = []string{"15:04", "15:04:05"}

// ParseDate parses a calendar date or timestamp in any of the accepted
// layouts. The result is in UTC.
func ParseDate(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

// parseInstant accepts a full timestamp or a wall clock time on day.
func parseInstant(day time.Time, raw string) (time.Time, bool) {
	if t, ok := ParseDate(raw); ok {
		return t, true
	}
	for _, layout := range clockLayouts {
		if c, err := time.Parse(layout, strings.TrimSpace(raw)); err == nil {
			y, m, d := day.Date()
			return time.Date(y, m, d, c.Hour(), c.Minute(), c.Second(), 0, time.UTC), true
		}
	}
	return time.Time{}, false
}

// FormatWorkingHours renders a duration as "<h>h <m>m".
func FormatWorkingHours(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	minutes := int(d / time.Minute)
	return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
}
