package gridgraph

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/gps/shortestpaths"
)

// ExpandIsland finds a minimum-conversion route of water cells connecting
// component srcComp to component dstComp, as numbered by
// ConnectedComponents. Each water cell converted costs 1.
//
// The returned path runs from the last cell of srcComp on the route to the
// first cell of dstComp, both inclusive; cost is the number of water cells
// on it. Among equally cheap targets the lowest vertex id wins.
//
// Time:   O(W·H·d · log(W·H)).
// Memory: O(W·H).
func (gg *Grid) ExpandIsland(srcComp, dstComp int) (path []int, cost int, err error) {
	comps := gg.ConnectedComponents()
	if srcComp < 0 || srcComp >= len(comps) || dstComp < 0 || dstComp >= len(comps) {
		return nil, 0, fmt.Errorf("%w: %d, %d of %d", ErrComponentIndex, srcComp, dstComp, len(comps))
	}
	src, dst := comps[srcComp], comps[dstComp]
	if srcComp == dstComp {
		return []int{src[0]}, 0, nil
	}

	// land steps are free, so one source stands for its whole island
	sp, err := shortestpaths.NewSimple(gg.graph, src[0], shortestpaths.WeightFunc(gg.conversion),
		shortestpaths.WithLogger(gg.opts.Logger))
	if err != nil {
		return nil, 0, err
	}
	if err := sp.SetPaths(); err != nil {
		return nil, 0, err
	}

	target := 0
	for _, v := range slices.Sorted(slices.Values(dst)) {
		if target == 0 || sp.Weight(v) < sp.Weight(target) {
			target = v
		}
	}
	if !sp.Reachable(target) {
		return nil, 0, ErrNoPath
	}

	path = sp.PathTo(target)
	inSrc, inDst := members(src), members(dst)
	start := 0
	for i, v := range path {
		if inSrc[v] {
			start = i
		}
	}
	path = path[start:]
	end := slices.IndexFunc(path, func(v int) bool { return inDst[v] })
	path = path[:end+1]

	return path, int(sp.Weight(target)), nil
}

// conversion costs 1 to enter water and nothing to enter land.
func (gg *Grid) conversion(_, v int) float64 {
	if gg.IsLand(v) {
		return 0
	}

	return 1
}

func members(vs []int) map[int]bool {
	m := make(map[int]bool, len(vs))
	for _, v := range vs {
		m[v] = true
	}

	return m
}
