package styles

import (
	"fmt"
	"time"
)

// MutedBadge renders a badge with muted colors.
func (t *Theme) MutedBadge(text string) string {
	return t.BadgeMuted.Render(text)
}

// AccentBadge renders a badge with the accent color.
func (t *Theme) AccentBadge(text string) string {
	return t.Badge.Render(text)
}

// RelativeTime formats tm relative to now, e.g. "5m ago".
func RelativeTime(tm time.Time) string {
	return relativeTime(tm, time.Now())
}

func relativeTime(tm, now time.Time) string {
	diff := now.Sub(tm)

	units := []struct {
		limit  time.Duration
		size   time.Duration
		suffix string
	}{
		{time.Hour, time.Minute, "m"},
		{24 * time.Hour, time.Hour, "h"},
		{7 * 24 * time.Hour, 24 * time.Hour, "d"},
		{30 * 24 * time.Hour, 7 * 24 * time.Hour, "w"},
		{365 * 24 * time.Hour, 30 * 24 * time.Hour, "mo"},
	}

	if diff < time.Minute {
		return "just now"
	}
	for _, u := range units {
		if diff < u.limit {
			return fmt.Sprintf("%d%s ago", int(diff/u.size), u.suffix)
		}
	}
	return fmt.Sprintf("%dy ago", int(diff/(365*24*time.Hour)))
}
