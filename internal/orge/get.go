package orge

import "sort"

// globalEdgeTable buckets edges by the scanline row they first become
// active on (spec.md §4.6 step 2). Building it is O(edges): each edge is
// appended to its bucket once, and every bucket is sorted by x exactly
// once at build time so activation merges into the AEL in one
// two-pointer pass instead of a per-line sort.
type globalEdgeTable struct {
	buckets [][]edge // buckets[y] holds edges with yTop == y, sorted by x
}

func newGlobalEdgeTable(edges []edge, height int) *globalEdgeTable {
	get := &globalEdgeTable{buckets: make([][]edge, height)}
	for _, e := range edges {
		get.buckets[e.yTop] = append(get.buckets[e.yTop], e)
	}
	for y := range get.buckets {
		bucket := get.buckets[y]
		sort.SliceStable(bucket, func(i, j int) bool { return bucket[i].x < bucket[j].x })
	}
	return get
}
