package models

import "fmt"

// ClockMinute is a time of day expressed as minutes from midnight
// (e.g., 480 for 08:00). All diary times live within a single day.
type ClockMinute int

// ParseClock parses a 24-hour "HH:MM" string.
func ParseClock(s string) (ClockMinute, error) {
	var h, m int
	if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
		return 0, fmt.Errorf("invalid clock time %q: %w", s, err)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid clock time %q: out of range", s)
	}
	return ClockMinute(h*60 + m), nil
}

func (c ClockMinute) String() string {
	return fmt.Sprintf("%02d:%02d", int(c)/60, int(c)%60)
}
