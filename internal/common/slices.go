package common

// IsEmpty returns true if the slice is empty.
func IsEmpty[S ~[]E, E any](s S) bool {
	return len(s) == 0
}

// GroupStable groups items by key, preserving the order in which keys are
// first seen and the relative order of items within each group.
func GroupStable[E any, K comparable](items []E, key func(E) K) ([]K, map[K][]E) {
	var order []K

	groups := make(map[K][]E)

	for _, item := range items {
		k := key(item)
		if _, ok := groups[k]; !ok {
			order = append(order, k)
		}

		groups[k] = append(groups[k], item)
	}

	return order, groups
}
