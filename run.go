package textedit

// Cluster is one shaping cluster: the glyphs produced from the source
// bytes starting at Start, drawn as an atomic unit. A cluster ends where
// the next cluster of its run starts, or at the run end.
type Cluster struct {
	// Start is the first source byte of the cluster.
	Start int

	// X is the left edge of the cluster, relative to the left edge of its run.
	X float64

	// Width is the total advance of the cluster's glyphs.
	Width float64
}

// Right returns the right edge of the cluster, relative to its run.
func (c Cluster) Right() float64 { return c.X + c.Width }

// ShapedRun is a maximal sequence of clusters with one writing direction
// on one line.
//
// Clusters are stored in logical order (ascending Start). For an LTR run
// their X values ascend, for an RTL run they descend.
type ShapedRun struct {
	// Start and End delimit the run's source bytes [Start, End).
	Start, End int

	// Direction is the run's writing direction.
	Direction Direction

	// Width is the total advance of the run.
	Width float64

	// Clusters is the cluster map of the run.
	Clusters []Cluster

	// x is the run's left edge in layout coordinates, filled in by
	// NewTextLayout.
	x float64
}

// Left returns the left edge of the run in layout coordinates. It is only
// meaningful for runs owned by a TextLayout.
func (r *ShapedRun) Left() float64 { return r.x }

// Right returns the right edge of the run in layout coordinates.
func (r *ShapedRun) Right() float64 { return r.x + r.Width }

// Contains reports whether offset is one of the run's bytes.
func (r *ShapedRun) Contains(offset int) bool {
	return offset >= r.Start && offset < r.End
}

// clusterEnd returns the end byte of cluster i.
func (r *ShapedRun) clusterEnd(i int) int {
	if i+1 < len(r.Clusters) {
		return r.Clusters[i+1].Start
	}
	return r.End
}

// clusterIndex returns the index of the cluster holding offset, which must
// lie in [Start, End).
func (r *ShapedRun) clusterIndex(offset int) int {
	lo, hi := 0, len(r.Clusters)-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if r.Clusters[mid].Start <= offset {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo
}

// leadingX returns the layout x of the logical start of cluster i: its left
// edge for LTR, its right edge for RTL.
func (r *ShapedRun) leadingX(i int) float64 {
	c := r.Clusters[i]
	if r.Direction.IsRTL() {
		return r.x + c.Right()
	}
	return r.x + c.X
}

// trailingX returns the layout x of the logical end of cluster i.
func (r *ShapedRun) trailingX(i int) float64 {
	c := r.Clusters[i]
	if r.Direction.IsRTL() {
		return r.x + c.X
	}
	return r.x + c.Right()
}

// startX returns the layout x of the run's logical start.
func (r *ShapedRun) startX() float64 {
	if r.Direction.IsRTL() {
		return r.Right()
	}
	return r.x
}

// endX returns the layout x of the run's logical end.
func (r *ShapedRun) endX() float64 {
	if r.Direction.IsRTL() {
		return r.x
	}
	return r.Right()
}

// offsetX returns the caret x for an offset in [Start, End]. Offsets inside
// a cluster report the cluster's leading edge.
func (r *ShapedRun) offsetX(offset int) float64 {
	if offset >= r.End || len(r.Clusters) == 0 {
		if offset <= r.Start {
			return r.startX()
		}
		return r.endX()
	}
	return r.leadingX(r.clusterIndex(offset))
}

// visualStart returns the offset drawn at the run's left edge.
func (r *ShapedRun) visualStart() int {
	if r.Direction.IsRTL() {
		return r.End
	}
	return r.Start
}

// visualEnd returns the offset drawn at the run's right edge.
func (r *ShapedRun) visualEnd() int {
	if r.Direction.IsRTL() {
		return r.Start
	}
	return r.End
}
