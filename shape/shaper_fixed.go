package shape

import (
	"strings"

	"github.com/rivo/uniseg"
)

// FixedShaper is a deterministic shaper without fonts: each grapheme
// cluster becomes one glyph whose advance is its monospace cell width
// (at least one cell) times Advance. Listed ligatures become a single
// glyph covering all their graphemes.
//
// It is meant for tests, terminals and previews where metrics matter but
// glyph outlines do not.
type FixedShaper struct {
	// Advance is the width of one cell. Zero uses half the face size.
	Advance float64

	// Ligatures are sequences shaped as one cluster, matched longest
	// first.
	Ligatures []string
}

// NewFixedShaper returns a FixedShaper with the given cell advance and
// ligature table.
func NewFixedShaper(advance float64, ligatures ...string) *FixedShaper {
	return &FixedShaper{Advance: advance, Ligatures: ligatures}
}

// Shape implements Shaper.
func (s *FixedShaper) Shape(in Input) ([]Glyph, error) {
	if in.Text == "" {
		return nil, nil
	}

	advance := s.Advance
	if advance <= 0 && in.Face != nil {
		advance = in.Face.Size() / 2
	}

	var glyphs []Glyph
	offset := 0
	rest := in.Text
	state := -1
	for rest != "" {
		if lig := s.ligatureAt(rest); lig != "" {
			cells := uniseg.StringWidth(lig)
			glyphs = append(glyphs, Glyph{Cluster: offset, XAdvance: float64(max(cells, 1)) * advance})
			offset += len(lig)
			rest = rest[len(lig):]
			state = -1
			continue
		}

		var cluster string
		var width int
		cluster, rest, width, state = uniseg.FirstGraphemeClusterInString(rest, state)
		glyphs = append(glyphs, Glyph{Cluster: offset, XAdvance: float64(max(width, 1)) * advance})
		offset += len(cluster)
	}

	if in.Direction.IsRTL() {
		for i, j := 0, len(glyphs)-1; i < j; i, j = i+1, j-1 {
			glyphs[i], glyphs[j] = glyphs[j], glyphs[i]
		}
	}
	return glyphs, nil
}

// ligatureAt returns the longest ligature prefixing text that ends on a
// grapheme boundary, or "".
func (s *FixedShaper) ligatureAt(text string) string {
	best := ""
	for _, lig := range s.Ligatures {
		if len(lig) <= len(best) || !strings.HasPrefix(text, lig) {
			continue
		}
		if rest := text[len(lig):]; rest != "" && !startsGrapheme(text, len(lig)) {
			continue
		}
		best = lig
	}
	return best
}

// startsGrapheme reports whether a grapheme cluster begins at byte i of
// text.
func startsGrapheme(text string, i int) bool {
	offset := 0
	rest := text
	state := -1
	var cluster string
	for rest != "" && offset < i {
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		offset += len(cluster)
	}
	return offset == i
}
