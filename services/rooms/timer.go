package rooms

import "time"

// No timer ticks server-side. Every timed phase stores a single start
// timestamp (epoch ms) plus a fixed duration; "seconds left" is a pure
// function of wall-clock time, so independently polling clients converge
// on the same countdown without coordination.

// RemainingSeconds returns the whole seconds left of a phase that started at
// startedAtMs and lasts durationSec. Never negative.
func RemainingSeconds(startedAtMs int64, durationSec int, now time.Time) int {
	elapsedMs := now.UnixMilli() - startedAtMs
	remainingMs := int64(durationSec)*1000 - elapsedMs
	if remainingMs <= 0 {
		return 0
	}
	// round up so the countdown only hits 0 once the phase truly expired
	return int((remainingMs + 999) / 1000)
}

// Expired reports whether the phase that started at startedAtMs has run out.
func Expired(startedAtMs int64, durationSec int, now time.Time) bool {
	return RemainingSeconds(startedAtMs, durationSec, now) == 0
}

func nowMs() int64 {
	return time.Now().UnixMilli()
}
