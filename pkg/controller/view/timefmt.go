package view

import (
	"time"

	"github.com/dustin/go-humanize"
)

// TimestampLayout renders as e.g. "14:03:59 01-Mar-2024"
const TimestampLayout = "15:04:05 02-Jan-2006"

// FormatTimestamp formats t in loc using TimestampLayout
func FormatTimestamp(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(TimestampLayout)
}

// RelativeTime describes t relative to now, e.g. "3 minutes ago"
func RelativeTime(t, now time.Time) string {
	return humanize.RelTime(t, now, "ago", "from now")
}
