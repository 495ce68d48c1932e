// Package timeutil implements minute-precision arithmetic on "HH:MM"
// strings: slot generation, overlap tests, and end-time derivation. It has
// no dependency on gorm, gin, or time.Time parsing — the working day is
// 24 hours of two-digit-padded minute math, nothing a calendar library
// would simplify.
package timeutil

import "fmt"

// ToMinutes converts "HH:MM" to minutes since midnight.
func ToMinutes(hhmm string) (int, error) {
	var h, m int
	if _, err := fmt.Sscanf(hhmm, "%d:%d", &h, &m); err != nil {
		return 0, fmt.Errorf("timeutil: invalid time %q: %w", hhmm, err)
	}
	return h*60 + m, nil
}

// FromMinutes converts minutes since midnight to a zero-padded "HH:MM".
func FromMinutes(total int) string {
	h := total / 60
	m := total % 60
	return fmt.Sprintf("%02d:%02d", h, m)
}

// EndOf adds duration minutes to start and returns the resulting "HH:MM".
// No normalization past 23:59 is performed; callers are expected to supply
// durations that fit within the configured working window.
func EndOf(start string, duration int) string {
	startMin, err := ToMinutes(start)
	if err != nil {
		return start
	}
	return FromMinutes(startMin + duration)
}

// Overlaps reports whether [aStart,aEnd) intersects [bStart,bEnd). Intervals
// are half-open at the right edge, so touching boundaries do not conflict.
func Overlaps(aStart, aEnd, bStart, bEnd string) bool {
	aS, errA1 := ToMinutes(aStart)
	aE, errA2 := ToMinutes(aEnd)
	bS, errB1 := ToMinutes(bStart)
	bE, errB2 := ToMinutes(bEnd)
	if errA1 != nil || errA2 != nil || errB1 != nil || errB2 != nil {
		return false
	}
	return aS < bE && bS < aE
}

// Default slot-generation parameters, overridable via configuration.
const (
	DefaultStart    = "09:00"
	DefaultEnd      = "17:00"
	DefaultStep     = 60
	DefaultDuration = DefaultStep
)

// GenerateSlots returns the ordered sequence of start-time strings t such
// that start <= t and t+duration <= end, stepping by step minutes. A
// duration of zero defaults to step.
func GenerateSlots(start, end string, step, duration int) ([]string, error) {
	if step <= 0 {
		return nil, fmt.Errorf("timeutil: step must be positive, got %d", step)
	}
	if duration <= 0 {
		duration = step
	}
	startMin, err := ToMinutes(start)
	if err != nil {
		return nil, err
	}
	endMin, err := ToMinutes(end)
	if err != nil {
		return nil, err
	}

	var slots []string
	for t := startMin; t+duration <= endMin; t += step {
		slots = append(slots, FromMinutes(t))
	}
	return slots, nil
}
