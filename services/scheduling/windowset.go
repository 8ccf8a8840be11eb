package scheduling

import (
	"sort"

	"shuttlesync/models"
)

// WindowSet is an unordered set of candidate windows keyed by
// (date, start, end).
type WindowSet map[string]models.Window

// NewWindowSet builds a set from the given windows.
func NewWindowSet(windows ...models.Window) WindowSet {
	s := make(WindowSet, len(windows))
	for _, w := range windows {
		s.Add(w)
	}
	return s
}

func (s WindowSet) Add(w models.Window) {
	s[w.Key()] = w
}

func (s WindowSet) Has(w models.Window) bool {
	_, ok := s[w.Key()]
	return ok
}

// Sorted returns the windows ordered by date, then start time.
func (s WindowSet) Sorted() []models.Window {
	out := make([]models.Window, 0, len(s))
	for _, w := range s {
		out = append(out, w)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].Interval.Start < out[j].Interval.Start
	})
	return out
}
