package textedit

// Line is one visual line of a TextLayout.
type Line struct {
	// Start and End delimit the line's source bytes [Start, End). A
	// paragraph separator after End belongs to no line.
	Start, End int

	// Runs are the line's shaped runs in visual (left to right) order.
	Runs []ShapedRun

	// X is the left edge of the first run; non-zero for centered or
	// right-aligned lines.
	X float64

	// Y is the top of the line box.
	Y float64

	// Height is the line height including line spacing.
	Height float64

	// Baseline is the distance from Y down to the baseline.
	Baseline float64
}

// Width returns the total advance of the line's runs.
func (l *Line) Width() float64 {
	var w float64
	for i := range l.Runs {
		w += l.Runs[i].Width
	}
	return w
}

// Left returns the x of the line's left edge.
func (l *Line) Left() float64 { return l.X }

// Right returns the x of the line's right edge.
func (l *Line) Right() float64 { return l.X + l.Width() }

// Bottom returns the y just below the line box.
func (l *Line) Bottom() float64 { return l.Y + l.Height }

// BaselineY returns the y of the baseline.
func (l *Line) BaselineY() float64 { return l.Y + l.Baseline }

// Len returns the number of source bytes on the line.
func (l *Line) Len() int { return l.End - l.Start }

// IsEmpty reports whether the line holds no text.
func (l *Line) IsEmpty() bool { return l.End <= l.Start }

// Range returns the line's byte range.
func (l *Line) Range() Range { return Range{Start: l.Start, End: l.End} }

// placeRuns stores each run's left edge, laying runs out contiguously from X.
func (l *Line) placeRuns() {
	x := l.X
	for i := range l.Runs {
		l.Runs[i].x = x
		x += l.Runs[i].Width
	}
}

// runAt returns the index of the run holding offset, or -1.
func (l *Line) runAt(offset int) int {
	for i := range l.Runs {
		if l.Runs[i].Contains(offset) {
			return i
		}
	}
	return -1
}

// runEndingAt returns the index of the run whose End is offset, or -1.
func (l *Line) runEndingAt(offset int) int {
	for i := range l.Runs {
		if l.Runs[i].End == offset && l.Runs[i].End > l.Runs[i].Start {
			return i
		}
	}
	return -1
}

// lastLogicalRun returns the index of the run reaching furthest in logical
// order, or -1 for a line without runs.
func (l *Line) lastLogicalRun() int {
	best := -1
	for i := range l.Runs {
		if best < 0 || l.Runs[i].End > l.Runs[best].End {
			best = i
		}
	}
	return best
}

// offsetX returns the canonical caret x for an offset on the line.
func (l *Line) offsetX(offset int) float64 {
	if i := l.runAt(offset); i >= 0 {
		return l.Runs[i].offsetX(offset)
	}
	if offset <= l.Start {
		if i := l.runStartingAt(l.Start); i >= 0 {
			return l.Runs[i].startX()
		}
		return l.X
	}
	if i := l.lastLogicalRun(); i >= 0 {
		return l.Runs[i].endX()
	}
	return l.X
}

// runStartingAt returns the index of the run whose Start is offset, or -1.
func (l *Line) runStartingAt(offset int) int {
	for i := range l.Runs {
		if l.Runs[i].Start == offset {
			return i
		}
	}
	return -1
}

// visualStart returns the offset drawn at the line's left edge.
func (l *Line) visualStart() int {
	if len(l.Runs) == 0 {
		return l.Start
	}
	return l.Runs[0].visualStart()
}

// visualEnd returns the offset drawn at the line's right edge.
func (l *Line) visualEnd() int {
	if len(l.Runs) == 0 {
		return l.End
	}
	return l.Runs[len(l.Runs)-1].visualEnd()
}
