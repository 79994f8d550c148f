package textedit

import "github.com/gogpu/textedit/segment"

// Selection is an anchor/active pair of byte offsets. The anchor stays
// where the gesture started; the active end follows the caret. Both must
// be grapheme boundaries: pass externally supplied offsets through
// SnapSelection before storing them.
//
// Selection is a value type; every method returns a new Selection.
type Selection struct {
	Anchor int
	Active int
}

// NewSelection returns a selection from anchor to active.
func NewSelection(anchor, active int) Selection {
	return Selection{Anchor: anchor, Active: active}
}

// Collapsed returns an empty selection (a caret) at offset.
func Collapsed(offset int) Selection {
	return Selection{Anchor: offset, Active: offset}
}

// Range returns the selected bytes in logical order, whatever the gesture
// direction.
func (s Selection) Range() Range {
	if s.Anchor <= s.Active {
		return Range{Start: s.Anchor, End: s.Active}
	}
	return Range{Start: s.Active, End: s.Anchor}
}

// Start returns the logically first offset.
func (s Selection) Start() int { return min(s.Anchor, s.Active) }

// End returns the logically last offset.
func (s Selection) End() int { return max(s.Anchor, s.Active) }

// IsCollapsed reports whether the selection is empty.
func (s Selection) IsCollapsed() bool { return s.Anchor == s.Active }

// IsForward reports whether the active end is at or after the anchor.
func (s Selection) IsForward() bool { return s.Anchor <= s.Active }

// Len returns the number of selected bytes.
func (s Selection) Len() int { return s.Range().Len() }

// Text returns the selected part of source. Offsets beyond the source are
// clamped.
func (s Selection) Text(source string) string {
	r := s.Range()
	start := clampInt(r.Start, 0, len(source))
	end := clampInt(r.End, start, len(source))
	return source[start:end]
}

// ExtendTo keeps the anchor and moves the active end to offset.
func (s Selection) ExtendTo(offset int) Selection {
	return Selection{Anchor: s.Anchor, Active: offset}
}

// MoveTo collapses the selection to offset.
func (s Selection) MoveTo(offset int) Selection { return Collapsed(offset) }

// CollapseToStart collapses to the logical start.
func (s Selection) CollapseToStart() Selection { return Collapsed(s.Start()) }

// CollapseToEnd collapses to the logical end.
func (s Selection) CollapseToEnd() Selection { return Collapsed(s.End()) }

// CollapseToAnchor collapses to the anchor.
func (s Selection) CollapseToAnchor() Selection { return Collapsed(s.Anchor) }

// CollapseToActive collapses to the active end.
func (s Selection) CollapseToActive() Selection { return Collapsed(s.Active) }

// Flip swaps anchor and active.
func (s Selection) Flip() Selection {
	return Selection{Anchor: s.Active, Active: s.Anchor}
}

// Contains reports whether offset is one of the selected bytes.
func (s Selection) Contains(offset int) bool { return s.Range().Contains(offset) }

// ExtendSelection applies move to the active end only (Shift+Arrow).
func (l *TextLayout) ExtendSelection(sel Selection, move Movement) Selection {
	return sel.ExtendTo(move(sel.Active))
}

// ExtendSelectionVertical applies a vertical move to the active end,
// threading the remembered column through.
func (l *TextLayout) ExtendSelectionVertical(sel Selection, move VerticalMovement, col Column) (Selection, Column) {
	m := move(sel.Active, col)
	return sel.ExtendTo(m.Offset), m.Column
}

// SelectWordAt selects the word segment holding offset. Whitespace and
// punctuation runs are segments too, so double-clicking a space selects
// the space run. At the end of the text the selection is collapsed.
func (l *TextLayout) SelectWordAt(offset int) (Selection, bool) {
	if !l.validOffset(offset) {
		return Selection{}, false
	}
	w, ok := segment.WordAt(l.text, offset)
	if !ok {
		return Collapsed(offset), true
	}
	return NewSelection(w.Start, w.End), true
}

// SelectLineAt selects the visual line holding offset, without its
// paragraph separator.
func (l *TextLayout) SelectLineAt(offset int) (Selection, bool) {
	if !l.validOffset(offset) {
		return Selection{}, false
	}
	if len(l.lines) == 0 {
		return Collapsed(0), true
	}
	line := &l.lines[l.lineIndex(offset)]
	return NewSelection(line.Start, line.End), true
}

// SelectParagraphAt selects the text between the paragraph separators
// around offset.
func (l *TextLayout) SelectParagraphAt(offset int) (Selection, bool) {
	p, ok := segment.ParagraphAt(l.text, offset)
	if !ok {
		return Selection{}, false
	}
	return NewSelection(p.Start, p.End), true
}

// SelectAll selects the whole text.
func (l *TextLayout) SelectAll() Selection {
	return NewSelection(0, len(l.text))
}

// SelectionRects returns one highlight rectangle per line intersecting the
// selection, each as tall as its line. On a line mixing directions the
// rectangle spans every selected run. A collapsed selection has none.
func (l *TextLayout) SelectionRects(sel Selection) []SelectionRect {
	if sel.IsCollapsed() {
		return nil
	}
	r := sel.Range()

	var rects []SelectionRect
	for i := range l.lines {
		line := &l.lines[i]
		if line.End <= r.Start || line.Start >= r.End {
			continue
		}
		start, end := max(r.Start, line.Start), min(r.End, line.End)
		x0, x1, ok := line.spanX(start, end)
		if !ok {
			continue
		}
		rects = append(rects, SelectionRect{
			X:      x0,
			Y:      line.Y,
			Width:  x1 - x0,
			Height: line.Height,
			Line:   i,
		})
	}
	return rects
}

// spanX returns the horizontal extent covering bytes [start, end) of the
// line, across every run they touch.
func (l *Line) spanX(start, end int) (x0, x1 float64, ok bool) {
	for j := range l.Runs {
		run := &l.Runs[j]
		s, e := max(start, run.Start), min(end, run.End)
		if s >= e {
			continue
		}
		a, b := run.offsetX(s), run.offsetX(e)
		if a > b {
			a, b = b, a
		}
		if !ok {
			x0, x1, ok = a, b, true
			continue
		}
		x0, x1 = min(x0, a), max(x1, b)
	}
	return x0, x1, ok
}

// SnapToGraphemeBoundary snaps offset down to the nearest grapheme
// boundary at or before it, clamping into [0, len(text)].
func (l *TextLayout) SnapToGraphemeBoundary(offset int) int {
	return l.graphemes.Floor(clampInt(offset, 0, len(l.text)))
}

// SnapSelection snaps both ends of sel to grapheme boundaries.
func (l *TextLayout) SnapSelection(sel Selection) Selection {
	return Selection{
		Anchor: l.SnapToGraphemeBoundary(sel.Anchor),
		Active: l.SnapToGraphemeBoundary(sel.Active),
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
