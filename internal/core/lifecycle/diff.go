package lifecycle

// Removed returns the items of prev whose key does not appear in next, in prev order.
func Removed[T any, K comparable](prev, next []T, key func(T) K) []T {
	keep := make(map[K]struct{}, len(next))
	for _, n := range next {
		keep[key(n)] = struct{}{}
	}

	var out []T
	for _, p := range prev {
		if _, ok := keep[key(p)]; !ok {
			out = append(out, p)
		}
	}
	return out
}

// UniqueIDs returns ids without duplicates or non-positive values, preserving order.
func UniqueIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if id <= 0 {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
