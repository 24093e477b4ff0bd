// Package hours computes billable shift durations from wall-clock times.
package hours

import (
	"strconv"
	"strings"
)

// Effective returns the billable hours of a shift given its start and end
// times as "HH:MM" strings and a pause duration in hours.
//
// A reversed span (end before start) counts as zero, it is never treated as
// crossing midnight, and the pause is subtracted only after that clamp so a
// negative span can never offset it. Malformed times degrade to zero instead
// of returning an error.
func Effective(start, end string, pauseHours float64) float64 {
	startMin, ok := parseMinutes(start)
	if !ok {
		return 0
	}
	endMin, ok := parseMinutes(end)
	if !ok {
		return 0
	}

	diff := float64(endMin-startMin) / 60
	if diff < 0 {
		diff = 0
	}

	eff := diff - pauseHours
	if eff < 0 {
		return 0
	}
	return eff
}

// parseMinutes converts "HH:MM" into minutes since midnight.
func parseMinutes(t string) (int, bool) {
	parts := strings.Split(t, ":")
	if len(parts) != 2 {
		return 0, false
	}
	h, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, false
	}
	m, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, false
	}
	return h*60 + m, true
}
