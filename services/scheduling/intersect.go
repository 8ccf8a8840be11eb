package scheduling

// Intersect folds the parties' free-window sets into the windows common to
// all of them, keyed by (date, start, end). It is commutative and works for
// any number of parties; with none it returns the empty set.
func Intersect(sets ...WindowSet) WindowSet {
	if len(sets) == 0 {
		return make(WindowSet)
	}
	common := make(WindowSet, len(sets[0]))
	for key, w := range sets[0] {
		common[key] = w
	}
	for _, s := range sets[1:] {
		for key := range common {
			if _, ok := s[key]; !ok {
				delete(common, key)
			}
		}
	}
	return common
}
