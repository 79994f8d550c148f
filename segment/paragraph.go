package segment

// Span is a half-open byte range [Start, End).
type Span struct {
	Start int
	End   int
}

// Len returns the number of bytes in the span.
func (s Span) Len() int { return s.End - s.Start }

// Paragraphs splits text on paragraph separators ("\n", "\r\n" and "\r").
// The returned spans exclude the separators. An empty text, and a text
// ending in a separator, yield a trailing empty paragraph.
func Paragraphs(text string) []Span {
	spans := make([]Span, 0, 4)
	start := 0
	for i := 0; i < len(text); i++ {
		n := separatorLen(text, i)
		if n == 0 {
			continue
		}
		spans = append(spans, Span{Start: start, End: i})
		i += n - 1
		start = i + 1
	}
	return append(spans, Span{Start: start, End: len(text)})
}

// ParagraphAt returns the paragraph containing offset. An offset on a
// separator belongs to the paragraph the separator terminates.
func ParagraphAt(text string, offset int) (Span, bool) {
	if offset < 0 || offset > len(text) {
		return Span{}, false
	}
	for _, p := range Paragraphs(text) {
		if offset <= p.End {
			return p, true
		}
		if next := p.End + separatorLen(text, p.End); offset < next {
			return p, true
		}
	}
	return Span{}, false
}

// IsParagraphSeparator reports whether s is exactly one paragraph
// separator.
func IsParagraphSeparator(s string) bool {
	return s != "" && separatorLen(s, 0) == len(s)
}

// separatorLen returns the byte length of the separator starting at i, or 0.
func separatorLen(text string, i int) int {
	if i >= len(text) {
		return 0
	}
	switch text[i] {
	case '\n':
		return 1
	case '\r':
		if i+1 < len(text) && text[i+1] == '\n' {
			return 2
		}
		return 1
	}
	return 0
}
