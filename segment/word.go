package segment

import (
	"unicode"

	"github.com/rivo/uniseg"
)

// WordKind classifies a UAX #29 word segment.
type WordKind uint8

const (
	// WordKindWord is a segment holding at least one letter or digit.
	WordKindWord WordKind = iota
	// WordKindSpace is a segment made only of white space.
	WordKindSpace
	// WordKindPunct is anything else: punctuation, symbols, emoji.
	WordKindPunct
)

// String returns the string representation of the word kind.
func (k WordKind) String() string {
	switch k {
	case WordKindWord:
		return "Word"
	case WordKindSpace:
		return "Space"
	case WordKindPunct:
		return "Punct"
	default:
		return "Unknown"
	}
}

// Word is one UAX #29 word segment, [Start, End) in bytes.
type Word struct {
	Start int
	End   int
	Kind  WordKind
}

// Span returns the byte span of the word.
func (w Word) Span() Span { return Span{Start: w.Start, End: w.End} }

// Words splits text into consecutive word segments covering every byte.
func Words(text string) []Word {
	var words []Word
	offset := 0
	rest := text
	state := -1
	var seg string
	for rest != "" {
		seg, rest, state = uniseg.FirstWordInString(rest, state)
		words = append(words, Word{
			Start: offset,
			End:   offset + len(seg),
			Kind:  classifyWord(seg),
		})
		offset += len(seg)
	}
	return words
}

func classifyWord(seg string) WordKind {
	space := true
	for _, r := range seg {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return WordKindWord
		}
		if !unicode.IsSpace(r) {
			space = false
		}
	}
	if space && seg != "" {
		return WordKindSpace
	}
	return WordKindPunct
}

// WordAt returns the segment containing offset. An offset equal to
// len(text) is not inside any segment.
func WordAt(text string, offset int) (Word, bool) {
	if offset < 0 || offset >= len(text) {
		return Word{}, false
	}
	for _, w := range Words(text) {
		if offset >= w.Start && offset < w.End {
			return w, true
		}
	}
	return Word{}, false
}

// PrevWordStart returns the start of the last word beginning strictly
// before offset, or 0.
func PrevWordStart(text string, offset int) int {
	prev := 0
	for _, w := range Words(text) {
		if w.Start >= offset {
			break
		}
		if w.Kind == WordKindWord {
			prev = w.Start
		}
	}
	return prev
}

// NextWordEnd returns the end of the first word ending strictly after
// offset, or len(text).
func NextWordEnd(text string, offset int) int {
	for _, w := range Words(text) {
		if w.Kind == WordKindWord && w.End > offset {
			return w.End
		}
	}
	return len(text)
}
