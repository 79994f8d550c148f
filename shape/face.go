package shape

// Metrics are the vertical metrics of a face, in pixels. Descent is
// positive below the baseline.
type Metrics struct {
	Ascent  float64
	Descent float64
	LineGap float64
}

// LineHeight returns ascent + descent + line gap.
func (m Metrics) LineHeight() float64 {
	return m.Ascent + m.Descent + m.LineGap
}

// Face is a font at a size, as far as layout is concerned.
type Face interface {
	// Size returns the size in pixels per em.
	Size() float64

	// Metrics returns the vertical metrics at Size.
	Metrics() Metrics
}

// FontFace is a Face backed by a FontSource. It is what GoTextShaper
// shapes with.
type FontFace struct {
	source *FontSource
	size   float64
}

// Size implements Face.
func (f *FontFace) Size() float64 { return f.size }

// Metrics implements Face.
func (f *FontFace) Metrics() Metrics { return f.source.metrics(f.size) }

// Source returns the font source of the face.
func (f *FontFace) Source() *FontSource { return f.source }

// FixedFace is a Face with fixed metrics and no glyph data, for use with
// FixedShaper.
type FixedFace struct {
	PixelSize float64
	M         Metrics
}

// NewFixedFace returns a face of the given size with ascent 0.8*size,
// descent 0.2*size and no line gap.
func NewFixedFace(size float64) FixedFace {
	return FixedFace{
		PixelSize: size,
		M:         Metrics{Ascent: size * 0.8, Descent: size * 0.2},
	}
}

// Size implements Face.
func (f FixedFace) Size() float64 { return f.PixelSize }

// Metrics implements Face.
func (f FixedFace) Metrics() Metrics { return f.M }
