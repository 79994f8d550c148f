package shape

import "github.com/gogpu/textedit"

// GlyphID is a glyph index within a font.
type GlyphID uint32

// Glyph is one positioned glyph of a shaped run.
type Glyph struct {
	// ID is the glyph index; zero for shapers without fonts.
	ID GlyphID

	// Cluster is the byte offset, within Input.Text, of the first source
	// byte of the glyph's cluster. Glyphs of one cluster share it.
	Cluster int

	// XAdvance is the horizontal pen advance.
	XAdvance float64

	// XOffset and YOffset adjust the glyph relative to the pen.
	XOffset, YOffset float64
}

// Input is a single-direction run to shape.
type Input struct {
	Text      string
	Direction textedit.Direction
	Face      Face
}

// Shaper converts a run of text into positioned glyphs.
//
// Glyphs are returned in visual (left to right) order. Every byte of the
// input must belong to the cluster of some glyph: the cluster starting at
// the greatest Glyph.Cluster at or before it.
//
// Shapers must be safe for concurrent use.
type Shaper interface {
	Shape(in Input) ([]Glyph, error)
}
