package textedit

// unknownStr is the string returned for unknown enum values.
const unknownStr = "Unknown"

// Direction is the writing direction of a shaped run.
type Direction int

const (
	// DirectionLTR is left-to-right text (English, French, etc.)
	DirectionLTR Direction = iota
	// DirectionRTL is right-to-left text (Arabic, Hebrew)
	DirectionRTL
)

// String returns the string representation of the direction.
func (d Direction) String() string {
	switch d {
	case DirectionLTR:
		return "LTR"
	case DirectionRTL:
		return "RTL"
	default:
		return unknownStr
	}
}

// IsRTL reports whether d is right-to-left.
func (d Direction) IsRTL() bool { return d == DirectionRTL }

// Affinity disambiguates an offset that sits on a boundary with two
// visually distinct caret locations, such as a soft line wrap.
type Affinity int

const (
	// Downstream attaches the caret to the text after the offset.
	Downstream Affinity = iota
	// Upstream attaches the caret to the text before the offset.
	Upstream
)

// String returns the string representation of the affinity.
func (a Affinity) String() string {
	switch a {
	case Downstream:
		return "Downstream"
	case Upstream:
		return "Upstream"
	default:
		return unknownStr
	}
}

// HitTestPolicy controls what HitTest does with points outside the text.
type HitTestPolicy int

const (
	// Clamp maps every point to the nearest valid offset. Use it for clicks
	// and drags.
	Clamp HitTestPolicy = iota
	// Strict reports no result for points outside the laid-out lines.
	Strict
)

// String returns the string representation of the policy.
func (p HitTestPolicy) String() string {
	switch p {
	case Clamp:
		return "Clamp"
	case Strict:
		return "Strict"
	default:
		return unknownStr
	}
}

// Point is a location in layout-local coordinates. The origin is the
// top-left corner of the layout.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Sub returns p translated by -q. Use it to convert a screen point into
// layout-local coordinates given the layout origin q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Position is the visual location of a byte offset: X is the caret x,
// Y the top of the line (or its baseline, see OffsetToBaselinePosition).
type Position struct {
	X, Y float64
	Line int
}

// Point drops the line index.
func (p Position) Point() Point {
	return Point{X: p.X, Y: p.Y}
}

// CursorPosition is a caret: a grapheme-boundary byte offset and the
// side of a boundary it is drawn on.
type CursorPosition struct {
	Offset   int
	Affinity Affinity
}

// HitTestResult is the offset found under a point.
type HitTestResult struct {
	Offset   int
	Affinity Affinity
	Line     int
}

// CursorPosition returns the caret placed by the hit.
func (r HitTestResult) CursorPosition() CursorPosition {
	return CursorPosition{Offset: r.Offset, Affinity: r.Affinity}
}

// Range is a half-open logical byte range [Start, End).
type Range struct {
	Start, End int
}

// Len returns the number of bytes in the range.
func (r Range) Len() int { return r.End - r.Start }

// IsEmpty reports whether the range holds no bytes.
func (r Range) IsEmpty() bool { return r.End <= r.Start }

// Contains reports whether offset lies in [Start, End).
func (r Range) Contains(offset int) bool {
	return offset >= r.Start && offset < r.End
}

// Rect is an axis-aligned rectangle.
type Rect struct {
	// Min is the top-left corner
	MinX, MinY float64
	// Max is the bottom-right corner
	MaxX, MaxY float64
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 { return r.MaxX - r.MinX }

// Height returns the height of the rectangle.
func (r Rect) Height() float64 { return r.MaxY - r.MinY }

// SelectionRect is the highlight of a selection on one visual line.
type SelectionRect struct {
	X, Y          float64
	Width, Height float64
	Line          int
}

// Rect converts the highlight into a Rect.
func (r SelectionRect) Rect() Rect {
	return Rect{MinX: r.X, MinY: r.Y, MaxX: r.X + r.Width, MaxY: r.Y + r.Height}
}
