package helpers

import (
	"fmt"
	"strconv"
	"strings"
)

// Weekdays lists the valid day names in scheduling order.
var Weekdays = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// DayIndex returns the position of a weekday name in Weekdays.
// The bool is false for unknown day names.
func DayIndex(day string) (int, bool) {
	for i, d := range Weekdays {
		if d == day {
			return i, true
		}
	}
	return 0, false
}

// ParseClock parses a strict "HH:MM" 24-hour string into minutes since
// midnight. Hours must be 00-23 and minutes 00-59; anything else is rejected
// so malformed times never slip into overlap computation.
func ParseClock(s string) (int, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 || !twoDigits(parts[0]) || !twoDigits(parts[1]) {
		return 0, fmt.Errorf("invalid time %q: expected HH:MM", s)
	}

	hour, _ := strconv.Atoi(parts[0])
	if hour > 23 {
		return 0, fmt.Errorf("invalid time %q: hour must be 00-23", s)
	}

	minute, _ := strconv.Atoi(parts[1])
	if minute > 59 {
		return 0, fmt.Errorf("invalid time %q: minute must be 00-59", s)
	}

	return hour*60 + minute, nil
}

// twoDigits reports whether s is exactly two ASCII digits. strconv.Atoi
// also accepts sign characters, which must not reach the lexical
// comparisons in ClockOverlaps.
func twoDigits(s string) bool {
	return len(s) == 2 && s[0] >= '0' && s[0] <= '9' && s[1] >= '0' && s[1] <= '9'
}

// ValidateClockRange checks both times parse and that end is strictly after
// start.
func ValidateClockRange(start, end string) error {
	startMin, err := ParseClock(start)
	if err != nil {
		return err
	}
	endMin, err := ParseClock(end)
	if err != nil {
		return err
	}
	if endMin <= startMin {
		return fmt.Errorf("end time %q must be after start time %q", end, start)
	}
	return nil
}

// ClockOverlaps reports whether two half-open [start, end) windows intersect.
// Exactly-touching windows (one ends at 10:00, the other starts at 10:00)
// do not overlap. Inputs must already be validated with ParseClock.
func ClockOverlaps(aStart, aEnd, bStart, bEnd string) bool {
	// Fixed-width HH:MM strings compare correctly as text.
	return aStart < bEnd && bStart < aEnd
}
