package traversal_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/gps/traversal"
)

func TestIndexedPriority_DecreaseKey(t *testing.T) {
	key := map[int]int{1: 50, 2: 20, 3: 30, 4: 40}
	q := traversal.NewIndexedPriority(func(a, b int) bool { return key[a] < key[b] })
	for v := 1; v <= 4; v++ {
		q.Push(v)
	}
	assert.Equal(t, 4, q.Len())

	key[4] = 10
	q.Push(4) // reposition, not duplicate
	assert.Equal(t, 4, q.Len())
	assert.True(t, q.Contains(4))

	var got []int
	for q.Len() > 0 {
		got = append(got, q.Pop())
	}
	assert.Equal(t, []int{4, 2, 3, 1}, got)
	assert.False(t, q.Contains(4))

	// popped items may be queued again
	q.Push(2)
	assert.Equal(t, 1, q.Len())
	q.Clear()
	assert.Equal(t, 0, q.Len())
	assert.False(t, q.Contains(2))
}

func TestIndexedPriority_Sentinels(t *testing.T) {
	q := traversal.NewIndexedPriority(func(a, b int) bool { return a < b })
	q.Push(3)
	q.Push(-3)
	q.Push(-3)
	assert.Equal(t, 2, q.Len())
	assert.Equal(t, -3, q.Pop())
	assert.Equal(t, 3, q.Pop())
}
