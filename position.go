package textedit

// OffsetToPosition returns the caret position of offset: x at the leading
// edge of the cluster holding it, y at the top of its line.
//
// Offsets inside a shaping cluster report the cluster's leading edge. An
// offset shared by two lines (a soft wrap) resolves to the start of the
// second line. ok is false only for offsets outside [0, len(text)].
func (l *TextLayout) OffsetToPosition(offset int) (Position, bool) {
	if !l.validOffset(offset) {
		return Position{}, false
	}
	if len(l.lines) == 0 {
		return Position{}, true
	}
	i := l.lineIndex(offset)
	line := &l.lines[i]
	return Position{X: line.offsetX(offset), Y: line.Y, Line: i}, true
}

// OffsetToBaselinePosition is OffsetToPosition with y on the line's
// baseline, as needed to place IME candidate windows.
func (l *TextLayout) OffsetToBaselinePosition(offset int) (Position, bool) {
	pos, ok := l.OffsetToPosition(offset)
	if !ok || len(l.lines) == 0 {
		return pos, ok
	}
	pos.Y = l.lines[pos.Line].BaselineY()
	return pos, true
}

// PositionForCursor is OffsetToPosition honouring the caret's affinity.
// An Upstream caret at a soft wrap is drawn at the end of the earlier line,
// and at a run boundary on the trailing edge of the run that ends there.
func (l *TextLayout) PositionForCursor(cp CursorPosition) (Position, bool) {
	if cp.Affinity != Upstream || cp.Offset <= 0 || !l.validOffset(cp.Offset) || len(l.lines) == 0 {
		return l.OffsetToPosition(cp.Offset)
	}

	i := l.lineIndex(cp.Offset)
	if i > 0 && l.isSoftWrap(i-1, cp.Offset) {
		prev := &l.lines[i-1]
		return Position{X: prev.offsetX(cp.Offset), Y: prev.Y, Line: i - 1}, true
	}

	line := &l.lines[i]
	if j := line.runEndingAt(cp.Offset); j >= 0 {
		return Position{X: line.Runs[j].endX(), Y: line.Y, Line: i}, true
	}
	return l.OffsetToPosition(cp.Offset)
}
