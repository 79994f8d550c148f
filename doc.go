// Package textedit is the geometry core of a text editor: it maps between
// byte offsets into a source string, (x, y) positions in a laid-out
// paragraph, and the lines, runs and clusters a shaping engine produced.
//
// # Overview
//
// A [TextLayout] is built once per shaping pass from the lines a layout
// engine produced (see package shape for one):
//
//	layout, err := shape.LayoutText(text, face, shape.DefaultLayoutOptions())
//
// It then answers every geometric question an editor asks while handling
// input, without mutating anything:
//
//	hit, _ := layout.HitTest(textedit.Pt(x, y), textedit.Clamp)  // click
//	pos, _ := layout.OffsetToPosition(hit.Offset)                 // caret
//	next := layout.MoveRightWord(hit.Offset)                      // Ctrl+Right
//	sel, _ := layout.SelectWordAt(hit.Offset)                     // double click
//	rects := layout.SelectionRects(sel)                           // highlight
//
// # Offsets
//
// All offsets are byte offsets into the text. Offsets produced by this
// package are grapheme cluster boundaries, so a caret never splits an emoji
// or a base character from its combining marks. Hit tests and positions
// additionally never fall inside a shaping cluster such as a ligature.
// Offsets coming from elsewhere should be passed through
// [TextLayout.SnapToGraphemeBoundary] or [TextLayout.SnapSelection].
//
// Offsets outside [0, len(text)] are never an error: queries report
// ok == false and movements return their input unchanged.
//
// # Bidirectional text
//
// Runs of a [Line] are in visual order; each run has one [Direction]. Left
// and right movement is logical (byte order). Line start and end, hit
// testing and positions are visual. [Affinity] picks between the two
// caret locations of an offset at a soft wrap or a direction change.
//
// # Vertical movement
//
// [TextLayout.MoveUp] and [TextLayout.MoveDown] return the [Column] they
// used. Pass it to the next vertical move so the caret keeps its column
// across short lines; reset it after any other movement.
package textedit
