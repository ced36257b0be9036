package orge

// activeEdgeList is the set of edges currently crossing the scanline
// being processed, kept sorted by current x (spec.md §4.6 step 3).
type activeEdgeList struct {
	edges []edge
}

// mergeBucket merges the GET bucket for the current row (already sorted
// by x) into the AEL with a linear two-pointer merge, then drops
// expired edges (yBottom <= row). Both operations are O(old+new), never
// a full resort.
func (ael *activeEdgeList) mergeBucket(bucket []edge, row int) {
	if len(bucket) > 0 {
		merged := make([]edge, 0, len(ael.edges)+len(bucket))
		i, j := 0, 0
		for i < len(ael.edges) && j < len(bucket) {
			if ael.edges[i].x <= bucket[j].x {
				merged = append(merged, ael.edges[i])
				i++
			} else {
				merged = append(merged, bucket[j])
				j++
			}
		}
		merged = append(merged, ael.edges[i:]...)
		merged = append(merged, bucket[j:]...)
		ael.edges = merged
	}

	if len(ael.edges) == 0 {
		return
	}
	live := ael.edges[:0]
	for _, e := range ael.edges {
		if e.yBottom > row {
			live = append(live, e)
		}
	}
	ael.edges = live
}

// advance moves every active edge's x forward by one scanline row and
// fixes up any local x-order inversions. Glyph outline edges rarely
// cross within the AEL's lifetime, so an adjacent-swap bubble pass is
// sufficient and cheap; it is never asked to perform a full resort.
func (ael *activeEdgeList) advance() {
	for i := range ael.edges {
		ael.edges[i].x += ael.edges[i].slopePerRow
	}
	for i := 1; i < len(ael.edges); i++ {
		for j := i; j > 0 && ael.edges[j-1].x > ael.edges[j].x; j-- {
			ael.edges[j-1], ael.edges[j] = ael.edges[j], ael.edges[j-1]
		}
	}
}
