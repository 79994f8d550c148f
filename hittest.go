package textedit

// HitTest returns the offset under p.
//
// The line is chosen by y and the run by x; within the run the point
// snaps to the nearer edge of the cluster under it, so ligatures and
// grapheme clusters are never split. The result is Downstream when it is
// the logical start of a cluster and Upstream when it is the end.
//
// With Clamp every point yields a result: points above, below or beside
// the text map to the nearest line and its visual start or end. With
// Strict, points outside the line boxes, or left/right of a line's runs,
// yield ok == false.
//
// An empty text yields {0, Downstream, 0} under Clamp and nothing under
// Strict.
func (l *TextLayout) HitTest(p Point, policy HitTestPolicy) (HitTestResult, bool) {
	if l.text == "" || len(l.lines) == 0 {
		if policy == Strict {
			return HitTestResult{}, false
		}
		return HitTestResult{Offset: 0, Affinity: Downstream, Line: 0}, true
	}

	i, inside := l.lineAtY(p.Y)
	if !inside && policy == Strict {
		return HitTestResult{}, false
	}

	line := &l.lines[i]
	if policy == Strict && (p.X < line.Left() || p.X > line.Right()) {
		return HitTestResult{}, false
	}

	offset, affinity := l.hitLine(line, p.X)
	return HitTestResult{Offset: offset, Affinity: affinity, Line: i}, true
}

// hitLine resolves x on a line to a caret stop.
func (l *TextLayout) hitLine(line *Line, x float64) (int, Affinity) {
	if len(line.Runs) == 0 {
		return l.stops.Floor(line.Start), Downstream
	}

	if x <= line.Left() {
		first := &line.Runs[0]
		if first.Direction.IsRTL() {
			return l.stops.Ceil(first.End), Upstream
		}
		return l.stops.Floor(first.Start), Downstream
	}
	if x >= line.Right() {
		last := &line.Runs[len(line.Runs)-1]
		if last.Direction.IsRTL() {
			return l.stops.Floor(last.Start), Downstream
		}
		return l.stops.Ceil(last.End), Upstream
	}

	run := &line.Runs[len(line.Runs)-1]
	for j := range line.Runs {
		if r := &line.Runs[j]; x >= r.Left() && x < r.Right() {
			run = r
			break
		}
	}
	return l.hitRun(run, x)
}

// hitRun snaps x to the nearer edge of the cluster under it.
func (l *TextLayout) hitRun(run *ShapedRun, x float64) (int, Affinity) {
	if len(run.Clusters) == 0 {
		return l.stops.Floor(run.Start), Downstream
	}

	local := x - run.Left()
	k := clusterAtX(run.Clusters, local)
	c := run.Clusters[k]

	beforeMid := local < c.X+c.Width/2
	if beforeMid == run.Direction.IsRTL() {
		return l.stops.Ceil(run.clusterEnd(k)), Upstream
	}
	return l.stops.Floor(c.Start), Downstream
}

// clusterAtX returns the cluster whose [X, Right) holds x, or the cluster
// nearest to x when none does (zero-width clusters, gaps).
func clusterAtX(clusters []Cluster, x float64) int {
	best, bestDist := 0, -1.0
	for k, c := range clusters {
		if x >= c.X && x < c.Right() {
			return k
		}
		d := c.X - x
		if x >= c.Right() {
			d = x - c.Right()
		}
		if bestDist < 0 || d < bestDist {
			best, bestDist = k, d
		}
	}
	return best
}
