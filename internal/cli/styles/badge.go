package styles

import (
	"fmt"
	"time"
)

var timeNow = time.Now

// SizeBadge renders a WxH badge.
func (t *Theme) SizeBadge(width, height int) string {
	return t.Badge.Render(fmt.Sprintf("%dx%d", width, height))
}

// MutedBadge renders a badge with muted colors.
func (t *Theme) MutedBadge(text string) string {
	return t.BadgeMuted.Render(text)
}

// TimeBadge renders a relative time badge.
func (t *Theme) TimeBadge(tm time.Time) string {
	return t.BadgeMuted.Render(RelativeTime(tm, timeNow()))
}

// RelativeTime formats tm relative to now ("just now", "5m ago", "3h ago", "2d ago").
func RelativeTime(tm, now time.Time) string {
	d := now.Sub(tm)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	default:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	}
}
