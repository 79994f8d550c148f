package shape

import (
	"unicode/utf8"

	"golang.org/x/text/unicode/bidi"

	"github.com/gogpu/textedit"
)

// bidiRun is a maximal logical span of one embedding level within a
// paragraph. Offsets are relative to the paragraph.
type bidiRun struct {
	start, end int
	level      int
}

func (r bidiRun) direction() textedit.Direction {
	if r.level%2 == 1 {
		return textedit.DirectionRTL
	}
	return textedit.DirectionLTR
}

// baseLevel returns the paragraph embedding level for a base direction.
func baseLevel(base textedit.Direction) int {
	if base == textedit.DirectionRTL {
		return 1
	}
	return 0
}

// bidiRuns splits a paragraph into logical runs of equal embedding level.
//
// x/text reports run directions only, so levels are reconstructed: with
// an LTR base, RTL runs get level 1; with an RTL base, LTR runs get level
// 2. That is exact for text without explicit embeddings.
func bidiRuns(text string, base textedit.Direction) []bidiRun {
	if text == "" {
		return nil
	}

	runeLevels := make([]int, utf8.RuneCountInString(text))
	bl := baseLevel(base)
	for i := range runeLevels {
		runeLevels[i] = bl
	}

	defaultDir := bidi.LeftToRight
	if base == textedit.DirectionRTL {
		defaultDir = bidi.RightToLeft
	}

	ordering, err := orderParagraph(text, defaultDir)
	if err != nil {
		textedit.Logger().Warn("shape: bidi ordering failed, using base direction",
			"error", err, "base", base)
	} else {
		for i := 0; i < ordering.NumRuns(); i++ {
			run := ordering.Run(i)
			lvl := bl
			if run.Direction() == bidi.RightToLeft {
				lvl = 1
			} else if bl == 1 {
				lvl = 2
			}
			// Pos returns rune indices, end inclusive.
			first, last := run.Pos()
			for j := max(first, 0); j <= last && j < len(runeLevels); j++ {
				runeLevels[j] = lvl
			}
		}
	}

	var runs []bidiRun
	ri := 0
	for offset := range text {
		lvl := runeLevels[ri]
		ri++
		if n := len(runs); n > 0 && runs[n-1].level == lvl {
			continue
		}
		if n := len(runs); n > 0 {
			runs[n-1].end = offset
		}
		runs = append(runs, bidiRun{start: offset, level: lvl})
	}
	runs[len(runs)-1].end = len(text)
	return runs
}

func orderParagraph(text string, dir bidi.Direction) (bidi.Ordering, error) {
	var p bidi.Paragraph
	if _, err := p.SetString(text, bidi.DefaultDirection(dir)); err != nil {
		return bidi.Ordering{}, err
	}
	return p.Order()
}

// visualOrder returns the indices of items in visual order given their
// embedding levels, applying rule L2 of UAX #9: from the highest level
// down to the lowest odd level, reverse every maximal sequence at that
// level or higher.
func visualOrder(levels []int) []int {
	order := make([]int, len(levels))
	for i := range order {
		order[i] = i
	}
	if len(levels) == 0 {
		return order
	}

	highest, lowestOdd := 0, -1
	for _, l := range levels {
		highest = max(highest, l)
		if l%2 == 1 && (lowestOdd < 0 || l < lowestOdd) {
			lowestOdd = l
		}
	}
	if lowestOdd < 0 {
		return order
	}

	for lvl := highest; lvl >= lowestOdd; lvl-- {
		for i := 0; i < len(order); {
			if levels[order[i]] < lvl {
				i++
				continue
			}
			j := i
			for j < len(order) && levels[order[j]] >= lvl {
				j++
			}
			for a, b := i, j-1; a < b; a, b = a+1, b-1 {
				order[a], order[b] = order[b], order[a]
			}
			i = j
		}
	}
	return order
}
