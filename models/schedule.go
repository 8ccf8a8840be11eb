package models

import "sort"

// DaySchedule is one party's diary for a single date. Appointments are kept
// ordered by start time after any mutation; the raw seed data may contain
// overlapping entries and consumers must tolerate that.
type DaySchedule struct {
	Date         string        `json:"date"` // "2006-01-02"
	Day          string        `json:"day"`  // weekday name
	Appointments []Appointment `json:"appointments"`
}

// Calendar maps date strings to day schedules over a fixed horizon.
type Calendar map[string]DaySchedule

// Dates returns the calendar's dates in ascending order.
func (c Calendar) Dates() []string {
	dates := make([]string, 0, len(c))
	for d := range c {
		dates = append(dates, d)
	}
	sort.Strings(dates)
	return dates
}
