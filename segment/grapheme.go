package segment

import (
	"sort"

	"github.com/rivo/uniseg"
)

// Boundaries is a sorted set of byte offsets. For a grapheme partition it
// always holds 0 and len(text), so an empty text yields [0].
type Boundaries []int

// Graphemes returns the extended grapheme cluster boundaries of text.
func Graphemes(text string) Boundaries {
	b := make(Boundaries, 1, len(text)/2+2)
	b[0] = 0

	offset := 0
	rest := text
	state := -1
	var cluster string
	for rest != "" {
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		offset += len(cluster)
		b = append(b, offset)
	}
	return b
}

// Len returns the number of boundaries.
func (b Boundaries) Len() int { return len(b) }

// search returns the index of the first boundary >= offset.
func (b Boundaries) search(offset int) int {
	return sort.SearchInts(b, offset)
}

// Contains reports whether offset is a boundary.
func (b Boundaries) Contains(offset int) bool {
	i := b.search(offset)
	return i < len(b) && b[i] == offset
}

// Floor returns the greatest boundary <= offset. Offsets before the first
// boundary return the first boundary.
func (b Boundaries) Floor(offset int) int {
	if len(b) == 0 {
		return 0
	}
	i := b.search(offset)
	if i < len(b) && b[i] == offset {
		return offset
	}
	if i == 0 {
		return b[0]
	}
	return b[i-1]
}

// Ceil returns the smallest boundary >= offset. Offsets past the last
// boundary return the last boundary.
func (b Boundaries) Ceil(offset int) int {
	if len(b) == 0 {
		return 0
	}
	i := b.search(offset)
	if i == len(b) {
		return b[len(b)-1]
	}
	return b[i]
}

// Prev returns the greatest boundary strictly before offset.
func (b Boundaries) Prev(offset int) (int, bool) {
	i := b.search(offset)
	if i == 0 {
		return 0, false
	}
	return b[i-1], true
}

// Next returns the smallest boundary strictly after offset.
func (b Boundaries) Next(offset int) (int, bool) {
	i := sort.SearchInts(b, offset+1)
	if i == len(b) {
		return 0, false
	}
	return b[i], true
}

// Last returns the final boundary, which is len(text) for a grapheme
// partition.
func (b Boundaries) Last() int {
	if len(b) == 0 {
		return 0
	}
	return b[len(b)-1]
}

// Intersect returns the boundaries for which keep reports true.
func (b Boundaries) Intersect(keep func(offset int) bool) Boundaries {
	out := make(Boundaries, 0, len(b))
	for _, o := range b {
		if keep(o) {
			out = append(out, o)
		}
	}
	return out
}

// Width returns the monospace cell width of a single grapheme cluster, as
// used by terminals. Zero-width clusters report 0.
func Width(cluster string) int {
	return uniseg.StringWidth(cluster)
}

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	return uniseg.GraphemeClusterCount(text)
}
