package models

// DefaultWindowCatalog returns every two-hour window starting on the hour
// between 08:00 and 17:00, the last one ending at 19:00. This is the fixed
// set of candidate meeting slots the agents negotiate over.
func DefaultWindowCatalog() []Interval {
	catalog := make([]Interval, 0, 10)
	for start := ClockMinute(8 * 60); start <= 17*60; start += 60 {
		catalog = append(catalog, Interval{Start: start, End: start + 120})
	}
	return catalog
}
