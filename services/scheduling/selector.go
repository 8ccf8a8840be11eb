package scheduling

import (
	"sort"

	"shuttlesync/models"
)

// idealMidpoint is mid-afternoon; windows centered near it rank higher.
const idealMidpoint = models.ClockMinute(15 * 60)

// SelectBest picks the winning window from a non-empty candidate set:
// earliest date first, then the window whose midpoint is closest to 15:00,
// then the earliest start as the final tie-break. Deterministic — the same
// candidates always yield the same pick. Callers must handle the empty set
// themselves (it is a no-common-slot outcome, not a selection).
func SelectBest(candidates WindowSet) models.Window {
	ranked := candidates.Sorted()
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Date != ranked[j].Date {
			return ranked[i].Date < ranked[j].Date
		}
		di, dj := midpointDistance(ranked[i]), midpointDistance(ranked[j])
		if di != dj {
			return di < dj
		}
		return ranked[i].Interval.Start < ranked[j].Interval.Start
	})
	return ranked[0]
}

func midpointDistance(w models.Window) models.ClockMinute {
	d := w.Interval.Midpoint() - idealMidpoint
	if d < 0 {
		d = -d
	}
	return d
}
