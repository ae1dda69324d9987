package traversal_test

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gps/graph"
	"github.com/katalvlaran/gps/traversal"
)

// buildSample returns the 10-vertex directed graph
//
//	1→2, 1→3, 2→3, 5→6, 5→8, 9→10, 3→4, 2→7, 7→5, 8→9
//
// in which every vertex is reachable from 1.
func buildSample(t *testing.T) *graph.Directed {
	t.Helper()
	g := graph.NewDirected()
	for i := 0; i < 10; i++ {
		g.Add()
	}
	for _, e := range []graph.Edge{
		{From: 1, To: 2}, {From: 1, To: 3}, {From: 2, To: 3}, {From: 5, To: 6}, {From: 5, To: 8},
		{From: 9, To: 10}, {From: 3, To: 4}, {From: 2, To: 7}, {From: 7, To: 5}, {From: 8, To: 9},
	} {
		_, err := g.AddEdge(e.From, e.To)
		require.NoError(t, err)
	}

	return g
}

// recorder collects visit order.
type recorder struct{ order []int }

func (r *recorder) visit(v int) bool {
	r.order = append(r.order, v)
	return true
}

func TestNew_NilArguments(t *testing.T) {
	_, err := traversal.New(nil, traversal.NewStack())
	assert.ErrorIs(t, err, traversal.ErrGraphNil)
	_, err = traversal.New(graph.NewDirected(), nil)
	assert.ErrorIs(t, err, traversal.ErrFringeNil)
	_, err = traversal.PostOrder(nil, 1)
	assert.ErrorIs(t, err, traversal.ErrGraphNil)
}

func TestDepthFirst_MarksAllReachable(t *testing.T) {
	g := buildSample(t)
	dft, err := traversal.NewDepthFirst(g)
	require.NoError(t, err)
	assert.True(t, dft.Traverse(1))
	for v := 1; v <= 10; v++ {
		assert.True(t, dft.Marked(v), "vertex %d", v)
	}
}

func TestBreadthFirst_Order(t *testing.T) {
	g := buildSample(t)
	rec := &recorder{}
	bft, err := traversal.NewBreadthFirst(g, traversal.WithVisit(rec.visit))
	require.NoError(t, err)
	bft.Traverse(1)

	want := []int{1, 2, 3, 7, 4, 5, 6, 8, 9, 10}
	if diff := cmp.Diff(want, rec.order); diff != "" {
		t.Fatalf("BFS order mismatch (-want +got):\n%s", diff)
	}
}

func TestDepthFirst_PreorderWithReversedScheduling(t *testing.T) {
	g := buildSample(t)
	rec := &recorder{}
	dft, err := traversal.NewDepthFirst(g,
		traversal.WithVisit(rec.visit),
		traversal.WithReverseSuccessors(func(int) bool { return true }),
	)
	require.NoError(t, err)
	dft.Traverse(1)

	want := []int{1, 2, 3, 4, 7, 5, 6, 8, 9, 10}
	if diff := cmp.Diff(want, rec.order); diff != "" {
		t.Fatalf("DFS preorder mismatch (-want +got):\n%s", diff)
	}
}

func TestPostOrder(t *testing.T) {
	g := buildSample(t)
	order, err := traversal.PostOrder(g, 1)
	require.NoError(t, err)

	want := []int{4, 3, 6, 10, 9, 8, 5, 7, 2, 1}
	if diff := cmp.Diff(want, order); diff != "" {
		t.Fatalf("post-order mismatch (-want +got):\n%s", diff)
	}
}

func TestTraverse_MarksExactlyReachableOnce(t *testing.T) {
	// 1→2→3, 4→1, 5 isolated, 3→2 (cycle)
	g := graph.NewDirected()
	for i := 0; i < 5; i++ {
		g.Add()
	}
	g.AddEdge(1, 2)
	g.AddEdge(2, 3)
	g.AddEdge(3, 2)
	g.AddEdge(4, 1)

	for name, mk := range map[string]func(graph.Graph, ...traversal.Option) (*traversal.Traversal, error){
		"dfs": traversal.NewDepthFirst,
		"bfs": traversal.NewBreadthFirst,
	} {
		t.Run(name, func(t *testing.T) {
			visits := map[int]int{}
			tr, err := mk(g, traversal.WithVisit(func(v int) bool {
				visits[v]++
				return true
			}))
			require.NoError(t, err)
			tr.Traverse(1)

			assert.Equal(t, map[int]int{1: 1, 2: 1, 3: 1}, visits)
			assert.False(t, tr.Marked(4))
			assert.False(t, tr.Marked(5))
		})
	}

	reach, err := traversal.Reachable(g, 4)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4}, reach)
}

func TestTraverse_Undirected(t *testing.T) {
	g := graph.NewUndirected()
	for i := 0; i < 4; i++ {
		g.Add()
	}
	g.AddEdge(2, 1)
	g.AddEdge(3, 2)

	reach, err := traversal.Reachable(g, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, reach)
}

func TestTraverse_SelfLoop(t *testing.T) {
	g := graph.NewDirected()
	g.Add()
	g.AddEdge(1, 1)

	calls := 0
	tr, err := traversal.NewDepthFirst(g, traversal.WithVisit(func(int) bool {
		calls++
		return true
	}))
	require.NoError(t, err)
	tr.Traverse(1)
	assert.Equal(t, 1, calls)
}

func TestTraverse_NoOps(t *testing.T) {
	empty := graph.NewDirected()
	tr, err := traversal.NewDepthFirst(empty)
	require.NoError(t, err)
	assert.True(t, tr.Traverse(1))
	assert.Equal(t, 0, tr.Fringe().Len())

	g := graph.NewDirected()
	g.Add()
	g.Add()
	require.NoError(t, g.Remove(2))
	tr, err = traversal.NewBreadthFirst(g)
	require.NoError(t, err)
	tr.Traverse(2, 7, -1)
	assert.False(t, tr.Marked(1))
	assert.False(t, tr.Marked(2))
}

func TestTraverse_ClearAndRestart(t *testing.T) {
	g := buildSample(t)
	rec := &recorder{}
	tr, err := traversal.NewBreadthFirst(g, traversal.WithVisit(rec.visit))
	require.NoError(t, err)

	tr.Traverse(9)
	assert.Equal(t, []int{9, 10}, rec.order)
	tr.Traverse(9) // marks persist: nothing new
	assert.Equal(t, []int{9, 10}, rec.order)

	tr.Clear()
	assert.False(t, tr.Marked(9))
	rec.order = nil
	tr.Traverse(9)
	assert.Equal(t, []int{9, 10}, rec.order)
}

func TestTraverse_FalseIsAdvisoryByDefault(t *testing.T) {
	g := buildSample(t)
	tr, err := traversal.NewBreadthFirst(g, traversal.WithVisit(func(v int) bool { return v != 2 }))
	require.NoError(t, err)

	assert.False(t, tr.Traverse(1))
	for v := 1; v <= 10; v++ {
		assert.True(t, tr.Marked(v))
	}
}

func TestTraverse_HaltOnFalseAndResume(t *testing.T) {
	// 1→2, 1→3, 2→5, 3→4; 5 is reachable only through the halting vertex
	g := graph.NewDirected()
	for i := 0; i < 5; i++ {
		g.Add()
	}
	for _, e := range []graph.Edge{{From: 1, To: 2}, {From: 1, To: 3}, {From: 2, To: 5}, {From: 3, To: 4}} {
		_, err := g.AddEdge(e.From, e.To)
		require.NoError(t, err)
	}

	rec := &recorder{}
	tr, err := traversal.NewBreadthFirst(g,
		traversal.WithHaltOnFalse(),
		traversal.WithVisit(func(v int) bool {
			rec.visit(v)
			return v != 2
		}),
	)
	require.NoError(t, err)

	assert.False(t, tr.Traverse(1))
	assert.Equal(t, []int{1, 2}, rec.order)
	// 3 was pending; 5 was queued by the halted vertex
	assert.Equal(t, 2, tr.Fringe().Len())

	assert.True(t, tr.Traverse())
	assert.Equal(t, []int{1, 2, 3, 5, 4}, rec.order)
	assert.True(t, tr.Marked(5))
}

func TestTraverse_HaltAndStopAgree(t *testing.T) {
	build := func() *graph.Directed {
		g := graph.NewDirected()
		for i := 0; i < 4; i++ {
			g.Add()
		}
		for _, e := range []graph.Edge{{From: 1, To: 2}, {From: 2, To: 3}, {From: 3, To: 4}} {
			_, err := g.AddEdge(e.From, e.To)
			require.NoError(t, err)
		}
		return g
	}

	halted, err := traversal.NewDepthFirst(build(), traversal.WithHaltOnFalse(),
		traversal.WithVisit(func(v int) bool { return v != 2 }))
	require.NoError(t, err)
	halted.Traverse(1)

	var stopped *traversal.Traversal
	stopped, err = traversal.NewDepthFirst(build(), traversal.WithVisit(func(v int) bool {
		if v == 2 {
			stopped.Stop()
		}
		return true
	}))
	require.NoError(t, err)
	stopped.Traverse(1)

	for _, tr := range []*traversal.Traversal{halted, stopped} {
		assert.Equal(t, 1, tr.Fringe().Len())
		assert.False(t, tr.Marked(3))
		tr.Traverse()
		assert.True(t, tr.Marked(4))
	}
}

func TestTraverse_HaltOnPostVisit(t *testing.T) {
	g := buildSample(t)
	var post []int
	tr, err := traversal.NewDepthFirst(g,
		traversal.WithHaltOnFalse(),
		traversal.WithReverseSuccessors(func(int) bool { return true }),
		traversal.WithShouldPostVisit(func(int) bool { return true }),
		traversal.WithPostVisit(func(v int) bool {
			post = append(post, v)
			return v != 3
		}),
	)
	require.NoError(t, err)

	assert.False(t, tr.Traverse(1))
	assert.Equal(t, []int{4, 3}, post)
	assert.False(t, tr.Marked(7))
}

func TestTraverse_Stop(t *testing.T) {
	g := buildSample(t)
	var tr *traversal.Traversal
	count := 0
	tr, err := traversal.NewBreadthFirst(g, traversal.WithVisit(func(int) bool {
		count++
		if count == 3 {
			tr.Stop()
		}
		return true
	}))
	require.NoError(t, err)

	assert.True(t, tr.Traverse(1))
	assert.Equal(t, 3, count)
	tr.Traverse()
	assert.Equal(t, 10, count)
}

func TestTraverse_PriorityFringe(t *testing.T) {
	g := graph.NewDirected()
	for i := 0; i < 5; i++ {
		g.Add()
	}
	for _, v := range []int{5, 3, 4, 2} {
		g.AddEdge(1, v)
	}

	rec := &recorder{}
	tr, err := traversal.New(g, traversal.NewPriority(func(a, b int) bool { return a < b }),
		traversal.WithVisit(rec.visit))
	require.NoError(t, err)
	tr.Traverse(1)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, rec.order)
}

func TestTraverse_ProcessSuccessor(t *testing.T) {
	g := buildSample(t)
	type arc struct{ u, v int }
	var seen []arc
	tr, err := traversal.NewBreadthFirst(g, traversal.WithProcessSuccessor(func(u, v int, marked bool) bool {
		seen = append(seen, arc{u, v})
		return !marked && v != 7 // prune the 2→7 branch
	}))
	require.NoError(t, err)
	tr.Traverse(1)

	// 1→2, 1→3, 2→3, 2→7, 3→4
	assert.Len(t, seen, 5)
	for _, v := range []int{5, 6, 7, 8, 9, 10} {
		assert.False(t, tr.Marked(v), "vertex %d", v)
	}
}

func TestTraverse_Forest(t *testing.T) {
	g := buildSample(t)
	components := 0
	tr, err := traversal.NewDepthFirst(g)
	require.NoError(t, err)
	for v := range g.Vertices() {
		if !tr.Marked(v) {
			components++
			tr.Traverse(v)
		}
	}
	assert.Equal(t, 1, components)
}

func TestTraverse_MarkGrowsWithGraph(t *testing.T) {
	g := graph.NewDirected()
	g.Add()
	tr, err := traversal.NewDepthFirst(g)
	require.NoError(t, err)

	for i := 0; i < 200; i++ {
		v := g.Add()
		g.AddEdge(v-1, v)
	}
	tr.Traverse(1)
	assert.True(t, tr.Marked(201))
	tr.Mark(500)
	assert.True(t, tr.Marked(500))
	assert.False(t, tr.Marked(0))
}

func TestTraverse_Logger(t *testing.T) {
	g := buildSample(t)
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})

	tr, err := traversal.NewBreadthFirst(g, traversal.WithLogger(logger))
	require.NoError(t, err)
	tr.Traverse(9)

	out := buf.String()
	assert.Contains(t, out, "visit")
	assert.Contains(t, out, "vertex=10")
}

func TestTraverse_UnmarkReopens(t *testing.T) {
	g := buildSample(t)
	rec := &recorder{}
	tr, err := traversal.NewBreadthFirst(g, traversal.WithVisit(rec.visit))
	require.NoError(t, err)
	tr.Traverse(9)
	tr.Unmark(10)
	tr.Unmark(3) // never marked: no-op
	assert.False(t, tr.Marked(10))

	tr.Traverse(10)
	assert.Equal(t, []int{9, 10, 10}, rec.order)
}
