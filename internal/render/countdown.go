package render

import (
	"fmt"
	"time"
)

// Countdown formats the time remaining until an ISO 8601 instant, or ""
// when the timestamp is missing or unparseable.
func Countdown(resetsAt *string) string {
	if resetsAt == nil || *resetsAt == "" {
		return ""
	}
	t, err := time.Parse(time.RFC3339, *resetsAt)
	if err != nil {
		return ""
	}
	return countdownUntil(t, time.Now())
}

func countdownUntil(t, now time.Time) string {
	secs := int(t.Sub(now).Seconds())
	if secs <= 0 {
		return "now"
	}
	h := secs / 3600
	m := secs % 3600 / 60
	if h > 0 {
		return fmt.Sprintf("%dh %02dm", h, m)
	}
	return fmt.Sprintf("%dm", m)
}
