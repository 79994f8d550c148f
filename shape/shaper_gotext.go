package shape

import (
	"bytes"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"

	"github.com/gogpu/textedit"
)

// GoTextShaper shapes with go-text/typesetting's HarfBuzz port. It applies
// ligatures, kerning, contextual forms and complex-script reordering, and
// reports HarfBuzz cluster indices so ligatures become single clusters.
//
// GoTextShaper is safe for concurrent use. Parsed font.Font values are
// shared; font.Face and HarfbuzzShaper are not safe for concurrent use, so
// a face is created per call and shapers are pooled.
type GoTextShaper struct {
	shaperPool sync.Pool

	mu        sync.RWMutex
	fontCache map[*FontSource]*font.Font
}

// NewGoTextShaper creates a GoTextShaper.
func NewGoTextShaper() *GoTextShaper {
	return &GoTextShaper{
		shaperPool: sync.Pool{
			New: func() any {
				return &shaping.HarfbuzzShaper{}
			},
		},
		fontCache: make(map[*FontSource]*font.Font),
	}
}

// Shape implements Shaper. The face must be a *FontFace.
func (s *GoTextShaper) Shape(in Input) ([]Glyph, error) {
	if in.Text == "" {
		return nil, nil
	}
	face, ok := in.Face.(*FontFace)
	if !ok || face == nil {
		return nil, ErrUnsupportedFace
	}

	goTextFont, err := s.getOrCreateFont(face.source)
	if err != nil {
		return nil, err
	}

	runes := []rune(in.Text)
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: mapDirection(in.Direction),
		Face:      font.NewFace(goTextFont),
		Size:      floatToFixed(face.size),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}

	hb := s.shaperPool.Get().(*shaping.HarfbuzzShaper)
	output := hb.Shape(input)
	s.shaperPool.Put(hb)

	return convertGlyphs(output.Glyphs, runeOffsets(in.Text)), nil
}

// getOrCreateFont returns the parsed go-text font of source, parsing it
// on first use.
func (s *GoTextShaper) getOrCreateFont(source *FontSource) (*font.Font, error) {
	s.mu.RLock()
	f, ok := s.fontCache[source]
	s.mu.RUnlock()
	if ok {
		return f, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if f, ok := s.fontCache[source]; ok {
		return f, nil
	}

	face, err := font.ParseTTF(bytes.NewReader(source.data))
	if err != nil {
		return nil, err
	}
	s.fontCache[source] = face.Font
	return face.Font, nil
}

// RemoveSource drops the parsed font of source from the cache.
func (s *GoTextShaper) RemoveSource(source *FontSource) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.fontCache, source)
}

func mapDirection(d textedit.Direction) di.Direction {
	if d == textedit.DirectionRTL {
		return di.DirectionRTL
	}
	return di.DirectionLTR
}

// detectScript returns the script of the first character that has one.
// Runs are split by direction, not script, so mixed-script runs are shaped
// with the script of their first letter.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if sc := language.LookupScript(r); sc != language.Common && sc != language.Inherited {
			return sc
		}
	}
	return language.Latin
}

// runeOffsets maps rune indices of text to byte offsets, with a final
// entry for len(text).
func runeOffsets(text string) []int {
	offsets := make([]int, 0, len(text)+1)
	for i := range text {
		offsets = append(offsets, i)
	}
	return append(offsets, len(text))
}

// convertGlyphs converts go-text glyphs, whose clusters are rune indices,
// into Glyphs with byte clusters.
func convertGlyphs(glyphs []shaping.Glyph, byteAt []int) []Glyph {
	if len(glyphs) == 0 {
		return nil
	}
	out := make([]Glyph, len(glyphs))
	for i, g := range glyphs {
		idx := g.TextIndex()
		if idx < 0 {
			idx = 0
		}
		if idx >= len(byteAt) {
			idx = len(byteAt) - 1
		}
		out[i] = Glyph{
			ID:       GlyphID(g.GlyphID),
			Cluster:  byteAt[idx],
			XAdvance: fixedToFloat(g.Advance),
			XOffset:  fixedToFloat(g.XOffset),
			YOffset:  fixedToFloat(g.YOffset),
		}
	}
	return out
}
