package graph

// triangular returns n(n+1)/2.
func triangular(n int) int {
	return n * (n + 1) / 2
}

// PairID maps the ordered pair (u, v) to a unique non-negative integer using
// the Cantor pairing function: T(u+v) + v, with T(n) = n(n+1)/2.
//
// PairID(u, v) != PairID(v, u) whenever u != v.
//
// Complexity: O(1).
func PairID(u, v int) int {
	return triangular(u+v) + v
}

// UnorderedPairID maps the unordered pair {u, v} to a unique integer by
// applying PairID to (min(u,v), max(u,v)), so UnorderedPairID(u, v) ==
// UnorderedPairID(v, u).
func UnorderedPairID(u, v int) int {
	if u > v {
		u, v = v, u
	}

	return PairID(u, v)
}
