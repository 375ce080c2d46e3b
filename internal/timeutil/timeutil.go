// Package timeutil formats durations and times for display.
package timeutil

import (
	"fmt"
	"time"

	"github.com/hako/durafmt"
)

const (
	secondsInAMinute = 60
	secondsInAnHour  = 3600
)

// Clock formats a number of seconds as m:ss, or h:mm:ss from one hour up.
// Negative values are shown as zero.
func Clock(seconds int) string {
	seconds = max(seconds, 0)

	h := seconds / secondsInAnHour
	m := seconds % secondsInAnHour / secondsInAMinute
	s := seconds % secondsInAMinute

	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}

	return fmt.Sprintf("%d:%02d", m, s)
}

// Humanize expresses a number of seconds in words using its two largest
// units, such as "2 minutes 5 seconds".
func Humanize(seconds int) string {
	if seconds <= 0 {
		return "0 seconds"
	}

	return durafmt.Parse(time.Duration(seconds) * time.Second).
		LimitFirstN(2).
		String()
}

// TimeOfDay formats t as a wall clock time in the 12 or 24 hour format.
func TimeOfDay(t time.Time, twentyFourHour bool) string {
	if twentyFourHour {
		return t.Format("15:04")
	}

	return t.Format("03:04 PM")
}
