package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPairID_Injective(t *testing.T) {
	const n = 60
	seen := make(map[int][2]int, n*n)
	for u := 1; u <= n; u++ {
		for v := 1; v <= n; v++ {
			id := PairID(u, v)
			prev, dup := seen[id]
			assert.False(t, dup, "PairID(%d,%d) collides with %v", u, v, prev)
			seen[id] = [2]int{u, v}
		}
	}
}

func TestUnorderedPairID(t *testing.T) {
	const n = 40
	seen := make(map[int][2]int)
	for u := 1; u <= n; u++ {
		for v := u; v <= n; v++ {
			id := UnorderedPairID(u, v)
			assert.Equal(t, id, UnorderedPairID(v, u))
			_, dup := seen[id]
			assert.False(t, dup, "UnorderedPairID(%d,%d) collides", u, v)
			seen[id] = [2]int{u, v}
		}
	}
}

func TestPairID_Formula(t *testing.T) {
	assert.Equal(t, 0, triangular(0))
	assert.Equal(t, 6, triangular(3))
	// T(1+2) + 2
	assert.Equal(t, 8, PairID(1, 2))
	assert.Equal(t, 7, PairID(2, 1))
}
