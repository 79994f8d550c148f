package segment

import (
	"unicode/utf8"

	"github.com/go-text/typesetting/segmenter"
)

// Break is a UAX #14 line-break opportunity at byte Offset. Mandatory
// breaks follow hard line terminators.
type Break struct {
	Offset    int
	Mandatory bool
}

// LineBreaks returns the line-break opportunities of text in ascending
// order. The end of the text is always reported as the final break.
func LineBreaks(text string) []Break {
	if text == "" {
		return nil
	}

	runes := []rune(text)
	byteAt := runeByteOffsets(text, len(runes))

	var seg segmenter.Segmenter
	seg.Init(runes)
	iter := seg.LineIterator()

	var breaks []Break
	for iter.Next() {
		line := iter.Line()
		end := line.Offset + len(line.Text)
		breaks = append(breaks, Break{
			Offset:    byteAt[end],
			Mandatory: line.IsMandatoryBreak,
		})
	}
	return breaks
}

// runeByteOffsets maps rune indices to byte offsets; the extra final entry
// maps runeCount to len(text).
func runeByteOffsets(text string, runeCount int) []int {
	offsets := make([]int, 0, runeCount+1)
	for i := 0; i < len(text); {
		offsets = append(offsets, i)
		_, size := utf8.DecodeRuneInString(text[i:])
		i += size
	}
	return append(offsets, len(text))
}
