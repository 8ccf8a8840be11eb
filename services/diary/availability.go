package diary

import (
	"fmt"
	"strings"

	"shuttlesync/models"
)

// CheckAvailability decides whether a window is free on a day schedule.
// It is a pure function: deterministic, no I/O, no side effects.
//
// Overlap uses half-open semantics: a window and an appointment collide
// unless one ends at or before the other starts. Overlapping appointments
// are partitioned by kind — fixed entries block the window, while flexible,
// leisure and booked entries are reported as conflicts but can be moved, so
// the window stays available. The schedule's raw appointments may themselves
// overlap; every overlapping entry is reported regardless.
func CheckAvailability(schedule models.DaySchedule, window models.Interval) models.CheckResult {
	var conflicts []models.Appointment
	var blocking, movable []string

	for _, a := range schedule.Appointments {
		if !window.Overlaps(a.Interval) {
			continue
		}
		conflicts = append(conflicts, a)
		if a.Kind.Blocks() {
			blocking = append(blocking, a.Activity)
		} else {
			movable = append(movable, a.Activity)
		}
	}

	switch {
	case len(conflicts) == 0:
		return models.CheckResult{
			Available: true,
			Reason:    fmt.Sprintf("no appointments between %s", window),
		}
	case len(blocking) > 0:
		return models.CheckResult{
			Available: false,
			Reason:    fmt.Sprintf("blocked by fixed appointment(s): %s", strings.Join(blocking, ", ")),
			Conflicts: conflicts,
		}
	default:
		return models.CheckResult{
			Available: true,
			Reason:    fmt.Sprintf("%s can be rescheduled", strings.Join(movable, ", ")),
			Conflicts: conflicts,
		}
	}
}
