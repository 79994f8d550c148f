package shape

import (
	"unicode"
	"unicode/utf8"

	"github.com/gogpu/textedit/segment"
)

// WrapMode specifies how text is wrapped when it exceeds the maximum width.
type WrapMode uint8

const (
	// WrapWordChar breaks at word boundaries first,
	// then falls back to character boundaries for long words.
	// This is the default (zero value).
	WrapWordChar WrapMode = iota

	// WrapNone disables text wrapping; text may exceed MaxWidth.
	WrapNone

	// WrapWord breaks at word boundaries only.
	// Long words that exceed MaxWidth will overflow.
	WrapWord

	// WrapChar breaks at any grapheme boundary.
	WrapChar
)

// String returns the string representation of the wrap mode.
func (m WrapMode) String() string {
	switch m {
	case WrapWordChar:
		return "WordChar"
	case WrapNone:
		return "None"
	case WrapWord:
		return "Word"
	case WrapChar:
		return "Char"
	default:
		return "Unknown"
	}
}

// cluster is a shaping cluster of a paragraph in logical order. Offsets
// are relative to the paragraph.
type cluster struct {
	start, end int
	width      float64
	run        int // index into the paragraph's bidi runs
	space      bool
}

// breakKind marks which line breaks are allowed after a cluster.
type breakKind uint8

const (
	breakNone breakKind = iota
	breakChar
	breakWord
	breakMandatory
)

// breakKinds classifies the end of every cluster as a break opportunity.
// kinds[i] describes the boundary after clusters[i].
func breakKinds(text string, clusters []cluster) []breakKind {
	kinds := make([]breakKind, len(clusters))
	if len(clusters) == 0 {
		return kinds
	}

	graphemes := segment.Graphemes(text)
	words := make(map[int]bool)
	mandatory := make(map[int]bool)
	for _, b := range segment.LineBreaks(text) {
		words[b.Offset] = true
		if b.Mandatory && b.Offset < len(text) {
			mandatory[b.Offset] = true
		}
	}

	for i, c := range clusters {
		switch {
		case mandatory[c.end]:
			kinds[i] = breakMandatory
		case words[c.end]:
			kinds[i] = breakWord
		case graphemes.Contains(c.end):
			kinds[i] = breakChar
		}
	}
	return kinds
}

// wrapClusters splits clusters into lines, returning the exclusive end
// index of each line. Trailing white space does not count against
// maxWidth. Every line holds at least one cluster.
func wrapClusters(clusters []cluster, kinds []breakKind, maxWidth float64, mode WrapMode) []int {
	n := len(clusters)
	if n == 0 {
		return nil
	}

	var ends []int
	for start := 0; start < n; {
		end := nextLineEnd(clusters, kinds, start, maxWidth, mode)
		ends = append(ends, end)
		start = end
	}
	return ends
}

func nextLineEnd(clusters []cluster, kinds []breakKind, start int, maxWidth float64, mode WrapMode) int {
	n := len(clusters)
	wrap := mode != WrapNone && maxWidth > 0

	lastWord, lastChar := -1, -1
	overflow := false
	var width, inked float64
	for i := start; i < n; i++ {
		width += clusters[i].width
		if !clusters[i].space {
			inked = width
		}
		overflow = wrap && inked > maxWidth
		if overflow && i > start {
			break
		}
		switch kinds[i] {
		case breakMandatory:
			return i + 1
		case breakWord:
			lastWord, lastChar = i+1, i+1
		case breakChar:
			lastChar = i + 1
		}
		if overflow {
			break
		}
	}
	if !overflow {
		return n
	}

	switch mode {
	case WrapWord:
		if lastWord > start {
			return lastWord
		}
		return firstBreakAfter(kinds, start, breakWord)
	case WrapChar:
		if lastChar > start {
			return lastChar
		}
	default:
		if lastWord > start {
			return lastWord
		}
		if lastChar > start {
			return lastChar
		}
	}
	return firstBreakAfter(kinds, start, breakChar)
}

// firstBreakAfter returns the first cluster end after start whose break
// kind is least or stronger, or len(kinds).
func firstBreakAfter(kinds []breakKind, start int, least breakKind) int {
	for i := start; i < len(kinds); i++ {
		if kinds[i] >= least {
			return i + 1
		}
	}
	return len(kinds)
}

// isSpaceCluster reports whether a cluster is white space that may hang
// past the wrap width.
func isSpaceCluster(s string) bool {
	if s == "" {
		return false
	}
	for len(s) > 0 {
		r, size := utf8.DecodeRuneInString(s)
		if !unicode.IsSpace(r) {
			return false
		}
		s = s[size:]
	}
	return true
}
