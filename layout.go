package textedit

import (
	"sort"
	"unicode/utf8"

	"github.com/gogpu/textedit/segment"
)

// lineEpsilon tolerates rounding when checking that line boxes do not
// overlap.
const lineEpsilon = 1e-6

// TextLayout is the shaped line model of one text: its lines, visually
// ordered runs and cluster maps, plus the grapheme and caret-stop
// partitions derived from them.
//
// A TextLayout is immutable once built and safe for concurrent readers.
// When the text or the wrap width changes, build a new one; offsets stay
// meaningful across layouts, positions do not.
type TextLayout struct {
	text  string
	lines []Line

	// lineStarts holds lines[i].Start for binary-search line lookup.
	lineStarts []int

	graphemes segment.Boundaries

	// stops are the grapheme boundaries that are also cluster boundaries.
	stops segment.Boundaries

	width, height float64

	caretWidth float64
}

// NewTextLayout builds a TextLayout from lines produced by a layout
// engine. The lines are copied and validated; see LayoutError for the
// invariants checked. An empty text may be given no lines at all.
func NewTextLayout(text string, lines []Line, opts ...Option) (*TextLayout, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	l := &TextLayout{
		text:       text,
		lines:      copyLines(lines),
		caretWidth: cfg.caretWidth,
	}
	if err := l.validate(); err != nil {
		return nil, err
	}

	l.lineStarts = make([]int, len(l.lines))
	for i := range l.lines {
		line := &l.lines[i]
		line.placeRuns()
		l.lineStarts[i] = line.Start
		if r := line.Right(); r > l.width {
			l.width = r
		}
	}
	if n := len(l.lines); n > 0 {
		l.height = l.lines[n-1].Bottom()
	}

	l.graphemes = segment.Graphemes(text)
	interior := l.clusterInterior()
	l.stops = l.graphemes.Intersect(func(o int) bool { return !interior[o] })

	Logger().Debug("textedit: layout built",
		"bytes", len(text),
		"lines", len(l.lines),
		"graphemes", l.graphemes.Len()-1,
		"stops", l.stops.Len())

	return l, nil
}

func copyLines(lines []Line) []Line {
	out := make([]Line, len(lines))
	for i, line := range lines {
		out[i] = line
		out[i].Runs = make([]ShapedRun, len(line.Runs))
		for j, run := range line.Runs {
			out[i].Runs[j] = run
			out[i].Runs[j].Clusters = append([]Cluster(nil), run.Clusters...)
		}
	}
	return out
}

func (l *TextLayout) validate() error {
	if len(l.lines) == 0 {
		if l.text == "" {
			return nil
		}
		return &LayoutError{Line: 0, Run: -1, Err: ErrLineCoverage}
	}

	if l.lines[0].Start != 0 || l.lines[len(l.lines)-1].End != len(l.text) {
		return &LayoutError{Line: 0, Run: -1, Err: ErrLineCoverage}
	}

	for i := range l.lines {
		line := &l.lines[i]
		if line.Start > line.End || line.End > len(l.text) || line.Height < 0 {
			return &LayoutError{Line: i, Run: -1, Err: ErrLineCoverage}
		}
		if i > 0 {
			prev := &l.lines[i-1]
			if line.Start < prev.End {
				return &LayoutError{Line: i, Run: -1, Err: ErrLineCoverage}
			}
			if gap := l.text[prev.End:line.Start]; gap != "" && !segment.IsParagraphSeparator(gap) {
				return &LayoutError{Line: i, Run: -1, Err: ErrLineCoverage}
			}
			if line.Y+lineEpsilon < prev.Bottom() {
				return &LayoutError{Line: i, Run: -1, Err: ErrLineOrder}
			}
		}
		if err := l.validateRuns(i); err != nil {
			return err
		}
	}
	return nil
}

func (l *TextLayout) validateRuns(lineIdx int) error {
	line := &l.lines[lineIdx]
	spans := make([]Range, 0, len(line.Runs))

	for j := range line.Runs {
		run := &line.Runs[j]
		if run.Start < line.Start || run.End > line.End || run.Start > run.End {
			return &LayoutError{Line: lineIdx, Run: j, Err: ErrRunRange}
		}
		spans = append(spans, Range{Start: run.Start, End: run.End})

		if run.Start == run.End {
			if len(run.Clusters) != 0 {
				return &LayoutError{Line: lineIdx, Run: j, Err: ErrClusterMap}
			}
			continue
		}
		if len(run.Clusters) == 0 || run.Clusters[0].Start != run.Start {
			return &LayoutError{Line: lineIdx, Run: j, Err: ErrClusterMap}
		}
		for k, c := range run.Clusters {
			if c.Start >= run.End || !utf8.RuneStart(l.text[c.Start]) {
				return &LayoutError{Line: lineIdx, Run: j, Err: ErrClusterMap}
			}
			if k > 0 && (c.Start <= run.Clusters[k-1].Start || !clusterXOrdered(run.Direction, run.Clusters[k-1].X, c.X)) {
				return &LayoutError{Line: lineIdx, Run: j, Err: ErrClusterMap}
			}
		}
	}

	sort.Slice(spans, func(a, b int) bool { return spans[a].Start < spans[b].Start })
	for k := 1; k < len(spans); k++ {
		if spans[k].Start < spans[k-1].End {
			return &LayoutError{Line: lineIdx, Run: k, Err: ErrRunRange}
		}
	}
	return nil
}

// clusterXOrdered reports whether a cluster at x may logically follow one
// at prev: left to right in LTR runs, right to left in RTL runs.
func clusterXOrdered(dir Direction, prev, x float64) bool {
	if dir.IsRTL() {
		return x <= prev+lineEpsilon
	}
	return x+lineEpsilon >= prev
}

// clusterInterior marks every byte offset that lies strictly inside a
// shaping cluster.
func (l *TextLayout) clusterInterior() []bool {
	interior := make([]bool, len(l.text)+1)
	for i := range l.lines {
		for j := range l.lines[i].Runs {
			run := &l.lines[i].Runs[j]
			for k, c := range run.Clusters {
				for o := c.Start + 1; o < run.clusterEnd(k); o++ {
					interior[o] = true
				}
			}
		}
	}
	return interior
}

// Text returns the source text.
func (l *TextLayout) Text() string { return l.text }

// Len returns the length of the source text in bytes.
func (l *TextLayout) Len() int { return len(l.text) }

// LineCount returns the number of lines.
func (l *TextLayout) LineCount() int { return len(l.lines) }

// Line returns line i. The returned value shares run storage with the
// layout and must not be modified.
func (l *TextLayout) Line(i int) (Line, bool) {
	if i < 0 || i >= len(l.lines) {
		return Line{}, false
	}
	return l.lines[i], true
}

// Lines returns the layout's lines. The slice must not be modified.
func (l *TextLayout) Lines() []Line { return l.lines }

// Width returns the right edge of the widest line.
func (l *TextLayout) Width() float64 { return l.width }

// Height returns the bottom of the last line.
func (l *TextLayout) Height() float64 { return l.height }

// Graphemes returns the grapheme cluster boundaries of the text.
func (l *TextLayout) Graphemes() segment.Boundaries { return l.graphemes }

// CaretStops returns the offsets a hit test can produce: the grapheme
// boundaries that do not fall inside a shaping cluster.
func (l *TextLayout) CaretStops() segment.Boundaries { return l.stops }

// IsCaretStop reports whether offset is a caret stop.
func (l *TextLayout) IsCaretStop(offset int) bool { return l.stops.Contains(offset) }

// validOffset reports whether offset lies in [0, len(text)].
func (l *TextLayout) validOffset(offset int) bool {
	return offset >= 0 && offset <= len(l.text)
}

// lineIndex returns the line holding offset: the last line starting at or
// before it. A soft-wrap offset therefore resolves to the following line.
func (l *TextLayout) lineIndex(offset int) int {
	i := sort.Search(len(l.lineStarts), func(i int) bool { return l.lineStarts[i] > offset })
	if i == 0 {
		return 0
	}
	return i - 1
}

// lineAtY returns the line under y and whether y lies inside a line box.
// Points above, below or between lines clamp to the nearest line above
// (or the first line).
func (l *TextLayout) lineAtY(y float64) (int, bool) {
	i := sort.Search(len(l.lines), func(i int) bool { return l.lines[i].Y > y })
	if i == 0 {
		return 0, false
	}
	idx := i - 1
	return idx, y < l.lines[idx].Bottom()
}

// isSoftWrap reports whether offset ends line i and starts line i+1.
func (l *TextLayout) isSoftWrap(i, offset int) bool {
	return i+1 < len(l.lines) && l.lines[i].End == offset && l.lines[i+1].Start == offset
}
