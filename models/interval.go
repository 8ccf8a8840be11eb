package models

import (
	"fmt"
	"strings"
)

// Interval is a half-open time range [Start, End) within a single day.
type Interval struct {
	Start ClockMinute `json:"start"`
	End   ClockMinute `json:"end"`
}

// NewInterval builds an interval from "HH:MM" start and end strings.
func NewInterval(start, end string) (Interval, error) {
	s, err := ParseClock(start)
	if err != nil {
		return Interval{}, err
	}
	e, err := ParseClock(end)
	if err != nil {
		return Interval{}, err
	}
	if s >= e {
		return Interval{}, fmt.Errorf("invalid interval %s-%s: start must precede end", start, end)
	}
	return Interval{Start: s, End: e}, nil
}

// ParseInterval parses the hyphen-joined wire form "HH:MM-HH:MM" used on
// appointment records.
func ParseInterval(s string) (Interval, error) {
	parts := strings.SplitN(s, "-", 2)
	if len(parts) != 2 {
		return Interval{}, fmt.Errorf("invalid interval %q: want HH:MM-HH:MM", s)
	}
	return NewInterval(parts[0], parts[1])
}

// Overlaps reports whether two half-open intervals intersect.
func (iv Interval) Overlaps(other Interval) bool {
	return !(iv.End <= other.Start || iv.Start >= other.End)
}

// Midpoint returns the center of the interval, used for ranking.
func (iv Interval) Midpoint() ClockMinute {
	return (iv.Start + iv.End) / 2
}

func (iv Interval) String() string {
	return iv.Start.String() + "-" + iv.End.String()
}
