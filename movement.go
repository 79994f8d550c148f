package textedit

import "github.com/gogpu/textedit/segment"

// Column is the horizontal caret position remembered across consecutive
// vertical moves. The zero value means no column is remembered yet.
type Column struct {
	X     float64
	Valid bool
}

// ColumnAt returns a remembered column at x.
func ColumnAt(x float64) Column {
	return Column{X: x, Valid: true}
}

// VerticalMove is the result of MoveUp and MoveDown: the new offset and
// the column to pass to the next vertical move.
type VerticalMove struct {
	Offset int
	Column Column
}

// Movement is a caret movement such as (*TextLayout).MoveRight.
type Movement func(offset int) int

// VerticalMovement is a column-preserving movement such as
// (*TextLayout).MoveDown.
type VerticalMovement func(offset int, col Column) VerticalMove

// Every movement below returns its input unchanged for offsets outside
// [0, len(text)], and lands on a grapheme boundary otherwise.

// MoveLeft moves one grapheme cluster back in logical order.
func (l *TextLayout) MoveLeft(offset int) int {
	if !l.validOffset(offset) {
		return offset
	}
	if prev, ok := l.graphemes.Prev(offset); ok {
		return prev
	}
	return 0
}

// MoveRight moves one grapheme cluster forward in logical order.
func (l *TextLayout) MoveRight(offset int) int {
	if !l.validOffset(offset) {
		return offset
	}
	if next, ok := l.graphemes.Next(offset); ok {
		return next
	}
	return len(l.text)
}

// MoveLeftWord moves to the start of the previous word.
func (l *TextLayout) MoveLeftWord(offset int) int {
	if !l.validOffset(offset) {
		return offset
	}
	return l.graphemes.Floor(segment.PrevWordStart(l.text, offset))
}

// MoveRightWord moves to the end of the current or next word.
func (l *TextLayout) MoveRightWord(offset int) int {
	if !l.validOffset(offset) {
		return offset
	}
	return l.graphemes.Ceil(segment.NextWordEnd(l.text, offset))
}

// MoveUp moves to the line above, at col or, if col is not set, at the
// current caret x. On the first line the offset is unchanged.
//
// Callers pass the returned Column to the next vertical move and reset it
// after any other movement.
func (l *TextLayout) MoveUp(offset int, col Column) VerticalMove {
	return l.moveVertical(offset, col, -1)
}

// MoveDown moves to the line below, at col or, if col is not set, at the
// current caret x. On the last line the offset is unchanged.
func (l *TextLayout) MoveDown(offset int, col Column) VerticalMove {
	return l.moveVertical(offset, col, 1)
}

func (l *TextLayout) moveVertical(offset int, col Column, delta int) VerticalMove {
	if !l.validOffset(offset) {
		return VerticalMove{Offset: offset, Column: col}
	}
	if len(l.lines) == 0 {
		return VerticalMove{Offset: 0, Column: col}
	}

	if !col.Valid {
		pos, _ := l.OffsetToPosition(offset)
		col = ColumnAt(pos.X)
	}

	target := l.lineIndex(offset) + delta
	if target < 0 || target >= len(l.lines) {
		return VerticalMove{Offset: offset, Column: col}
	}

	hit, _ := l.hitLine(&l.lines[target], col.X)
	return VerticalMove{Offset: l.keepOnLine(target, hit), Column: col}
}

// keepOnLine steps an offset that ends soft-wrapped line i back by one
// grapheme, since that offset would otherwise resolve to line i+1.
func (l *TextLayout) keepOnLine(i, offset int) int {
	if !l.isSoftWrap(i, offset) {
		return offset
	}
	prev, ok := l.graphemes.Prev(offset)
	if !ok || prev < l.lines[i].Start {
		return offset
	}
	return prev
}

// MoveLineStart moves to the visual start (left edge) of the current line.
// For a line whose first visual run is right-to-left that is the run's
// logical end.
func (l *TextLayout) MoveLineStart(offset int) int {
	if !l.validOffset(offset) {
		return offset
	}
	if len(l.lines) == 0 {
		return 0
	}
	i := l.lineIndex(offset)
	return l.keepOnLine(i, l.graphemes.Floor(l.lines[i].visualStart()))
}

// MoveLineEnd moves to the visual end (right edge) of the current line.
func (l *TextLayout) MoveLineEnd(offset int) int {
	if !l.validOffset(offset) {
		return offset
	}
	if len(l.lines) == 0 {
		return 0
	}
	i := l.lineIndex(offset)
	return l.keepOnLine(i, l.graphemes.Ceil(l.lines[i].visualEnd()))
}

// MoveDocumentStart returns the first offset of the text.
func (l *TextLayout) MoveDocumentStart() int { return 0 }

// MoveDocumentEnd returns the last offset of the text.
func (l *TextLayout) MoveDocumentEnd() int { return len(l.text) }
