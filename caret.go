package textedit

// CursorRect returns the caret rectangle for cp: the configured caret
// width (see WithCaretWidth) by the height of the caret's line, with its
// left edge on the caret x.
func (l *TextLayout) CursorRect(cp CursorPosition) (Rect, bool) {
	pos, ok := l.PositionForCursor(cp)
	if !ok {
		return Rect{}, false
	}
	var height float64
	if len(l.lines) > 0 {
		height = l.lines[pos.Line].Height
	}
	return Rect{
		MinX: pos.X,
		MinY: pos.Y,
		MaxX: pos.X + l.caretWidth,
		MaxY: pos.Y + height,
	}, true
}

// CaretWidth returns the width used by CursorRect.
func (l *TextLayout) CaretWidth() float64 { return l.caretWidth }
