package shape

import "github.com/gogpu/textedit"

// Alignment specifies horizontal alignment of lines within MaxWidth.
type Alignment int

const (
	// AlignLeft aligns lines to the left edge (default).
	AlignLeft Alignment = iota
	// AlignCenter centers lines.
	AlignCenter
	// AlignRight aligns lines to the right edge.
	AlignRight
)

// String returns the string representation of the alignment.
func (a Alignment) String() string {
	switch a {
	case AlignLeft:
		return "Left"
	case AlignCenter:
		return "Center"
	case AlignRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// LayoutOptions configures a layout pass.
type LayoutOptions struct {
	// MaxWidth is the wrap width in pixels. If 0, paragraphs are not
	// wrapped and alignment has no effect.
	MaxWidth float64

	// Wrap selects where lines may break.
	Wrap WrapMode

	// LineSpacing multiplies the font's natural line height; 1.5 adds 50%.
	// Non-positive values mean 1.
	LineSpacing float64

	// Alignment aligns lines within MaxWidth.
	Alignment Alignment

	// Direction is the paragraph base direction, used when a paragraph has
	// no strong directional character and for ordering mixed runs.
	Direction textedit.Direction
}

// DefaultLayoutOptions returns options for unwrapped, left-aligned,
// left-to-right text at natural line height.
func DefaultLayoutOptions() LayoutOptions {
	return LayoutOptions{
		MaxWidth:    0,
		Wrap:        WrapWordChar,
		LineSpacing: 1.0,
		Alignment:   AlignLeft,
		Direction:   textedit.DirectionLTR,
	}
}

// LayouterOption configures a Layouter.
type LayouterOption func(*layouterConfig)

type layouterConfig struct {
	shaper        Shaper
	cacheCapacity int
	noCache       bool
	layoutOpts    []textedit.Option
}

// WithShaper sets the shaper. The default is a GoTextShaper.
func WithShaper(s Shaper) LayouterOption {
	return func(c *layouterConfig) {
		c.shaper = s
	}
}

// WithCacheCapacity sets the per-shard capacity of the shaped-run cache.
func WithCacheCapacity(n int) LayouterOption {
	return func(c *layouterConfig) {
		c.cacheCapacity = n
	}
}

// WithoutCache disables shaped-run caching.
func WithoutCache() LayouterOption {
	return func(c *layouterConfig) {
		c.noCache = true
	}
}

// WithLayoutOptions passes options to every TextLayout the Layouter
// builds, such as textedit.WithCaretWidth.
func WithLayoutOptions(opts ...textedit.Option) LayouterOption {
	return func(c *layouterConfig) {
		c.layoutOpts = append(c.layoutOpts, opts...)
	}
}
