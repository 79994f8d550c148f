package textedit

import (
	"testing"

	"github.com/gogpu/textedit/segment"
)

const (
	cell       = 10.0
	lineHeight = 20.0
	ascent     = 16.0
	family     = "👨‍👩‍👧‍👦"
)

// monoRun builds a run over text[start:end] with one cell-wide cluster per
// grapheme.
func monoRun(text string, start, end int, dir Direction) ShapedRun {
	run := ShapedRun{Start: start, End: end, Direction: dir}
	b := segment.Graphemes(text[start:end])
	for k := 0; k+1 < b.Len(); k++ {
		run.Clusters = append(run.Clusters, Cluster{Start: start + b[k], X: float64(k) * cell, Width: cell})
	}
	run.Width = float64(len(run.Clusters)) * cell
	if dir.IsRTL() {
		for k := range run.Clusters {
			run.Clusters[k].X = run.Width - run.Clusters[k].X - cell
		}
	}
	return run
}

// monoLine builds line i of a stack of lineHeight-tall lines.
func monoLine(i, start, end int, runs ...ShapedRun) Line {
	return Line{
		Start:    start,
		End:      end,
		Runs:     runs,
		Y:        float64(i) * lineHeight,
		Height:   lineHeight,
		Baseline: ascent,
	}
}

// monoLayout lays text out left to right, one line per span, or one line
// per paragraph when no spans are given.
func monoLayout(t *testing.T, text string, spans ...segment.Span) *TextLayout {
	t.Helper()

	if len(spans) == 0 {
		spans = segment.Paragraphs(text)
	}
	lines := make([]Line, len(spans))
	for i, s := range spans {
		var runs []ShapedRun
		if s.Len() > 0 {
			runs = append(runs, monoRun(text, s.Start, s.End, DirectionLTR))
		}
		lines[i] = monoLine(i, s.Start, s.End, runs...)
	}
	return mustLayout(t, text, lines)
}

func mustLayout(t *testing.T, text string, lines []Line, opts ...Option) *TextLayout {
	t.Helper()

	l, err := NewTextLayout(text, lines, opts...)
	if err != nil {
		t.Fatalf("NewTextLayout(%q): %v", text, err)
	}
	return l
}

// rtlLayout lays text out as a single right-to-left run.
func rtlLayout(t *testing.T, text string) *TextLayout {
	t.Helper()
	return mustLayout(t, text, []Line{monoLine(0, 0, len(text), monoRun(text, 0, len(text), DirectionRTL))})
}
