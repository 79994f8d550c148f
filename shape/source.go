package shape

import (
	"fmt"
	"os"
	"sync/atomic"

	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// nextSourceID hands out FontSource identifiers.
var nextSourceID atomic.Uint64

// FontSource is a loaded font file. One FontSource creates faces at any
// size and should be shared across the application.
//
// FontSource is safe for concurrent use.
type FontSource struct {
	id   uint64
	data []byte
	font *opentype.Font
	name string
}

// NewFontSource parses TTF or OTF data. The data is copied and can be
// reused after the call.
func NewFontSource(data []byte) (*FontSource, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("shape: failed to parse font: %w", err)
	}

	s := &FontSource{
		id:   nextSourceID.Add(1),
		data: append([]byte(nil), data...),
		font: f,
	}
	if name, err := f.Name(nil, sfnt.NameIDFamily); err == nil {
		s.name = name
	}
	return s, nil
}

// NewFontSourceFromFile loads a FontSource from a font file path.
func NewFontSourceFromFile(path string) (*FontSource, error) {
	// #nosec G304 -- Font file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("shape: failed to read font file: %w", err)
	}
	return NewFontSource(data)
}

// ID returns a process-unique identifier of the source.
func (s *FontSource) ID() uint64 { return s.id }

// Name returns the font family name, or "" if the font has none.
func (s *FontSource) Name() string { return s.name }

// Face returns a face of the source at size (pixels per em).
func (s *FontSource) Face(size float64) *FontFace {
	return &FontFace{source: s, size: size}
}

// metrics reads vertical metrics at ppem.
func (s *FontSource) metrics(ppem float64) Metrics {
	var buf sfnt.Buffer
	m, err := s.font.Metrics(&buf, floatToFixed(ppem), xfont.HintingNone)
	if err != nil {
		return Metrics{}
	}
	ascent := fixedToFloat(m.Ascent)
	descent := fixedToFloat(m.Descent)
	gap := fixedToFloat(m.Height) - ascent - descent
	if gap < 0 {
		gap = 0
	}
	return Metrics{Ascent: ascent, Descent: descent, LineGap: gap}
}

// floatToFixed converts a float64 size to fixed.Int26_6.
func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

// fixedToFloat converts a fixed.Int26_6 value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
