package shape

import (
	"math"
	"reflect"
	"sort"
	"sync"
	"unicode/utf8"

	"github.com/gogpu/textedit"
	"github.com/gogpu/textedit/internal/cache"
	"github.com/gogpu/textedit/segment"
)

// Layouter lays text out into a textedit.TextLayout: it splits paragraphs,
// resolves bidi runs, shapes them, wraps lines and builds line boxes.
//
// Layouter is safe for concurrent use.
type Layouter struct {
	shaper     Shaper
	runs       *cache.Sharded[runKey, []Glyph]
	layoutOpts []textedit.Option
}

// runKey identifies a shaped run in the cache.
type runKey struct {
	text string
	dir  textedit.Direction
	face any
}

// fontFaceKey identifies a FontFace by source and size, so faces created
// by separate FontSource.Face calls share cache entries.
type fontFaceKey struct {
	source uint64
	size   uint64
}

func hashRunKey(k runKey) uint64 {
	return cache.StringHasher(k.text) ^ uint64(k.dir)
}

// NewLayouter creates a Layouter. Without options it shapes with a
// GoTextShaper and caches shaped runs.
func NewLayouter(opts ...LayouterOption) *Layouter {
	cfg := layouterConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.shaper == nil {
		cfg.shaper = NewGoTextShaper()
	}

	l := &Layouter{shaper: cfg.shaper, layoutOpts: cfg.layoutOpts}
	if !cfg.noCache {
		l.runs = cache.NewSharded[runKey, []Glyph](cfg.cacheCapacity, hashRunKey)
	}
	return l
}

var defaultLayouter = sync.OnceValue(func() *Layouter { return NewLayouter() })

// LayoutText lays text out with a shared default Layouter.
func LayoutText(text string, face Face, opts LayoutOptions) (*textedit.TextLayout, error) {
	return defaultLayouter().Layout(text, face, opts)
}

// CacheStats returns statistics of the shaped-run cache, or zero stats
// when caching is disabled.
func (l *Layouter) CacheStats() cache.Stats {
	if l.runs == nil {
		return cache.Stats{}
	}
	return l.runs.Stats()
}

// ClearCache drops every cached shaped run. Statistics are kept.
func (l *Layouter) ClearCache() {
	if l.runs != nil {
		l.runs.Clear()
	}
}

// RemoveSource drops the runs shaped with faces of source and, when the
// shaper is a GoTextShaper, its parsed font.
func (l *Layouter) RemoveSource(source *FontSource) {
	if source == nil {
		return
	}
	if s, ok := l.shaper.(*GoTextShaper); ok {
		s.RemoveSource(source)
	}
	if l.runs == nil {
		return
	}
	n := l.runs.DeleteFunc(func(k runKey) bool {
		fk, ok := k.face.(fontFaceKey)
		return ok && fk.source == source.id
	})
	textedit.Logger().Debug("shape: source removed", "source", source.id, "runs", n)
}

// Layout shapes and wraps text with face and returns its TextLayout.
func (l *Layouter) Layout(text string, face Face, opts LayoutOptions) (*textedit.TextLayout, error) {
	if face == nil {
		return nil, ErrNilFace
	}

	spacing := opts.LineSpacing
	if spacing <= 0 {
		spacing = 1
	}
	m := face.Metrics()
	height := m.LineHeight() * spacing

	paragraphs := segment.Paragraphs(text)
	var lines []textedit.Line
	y := 0.0
	for _, para := range paragraphs {
		plines, err := l.layoutParagraph(text, para, face, opts)
		if err != nil {
			return nil, err
		}
		for i := range plines {
			line := &plines[i]
			line.X = alignOffset(opts, line.Width())
			line.Y = y
			line.Height = height
			line.Baseline = m.Ascent
			y += height
		}
		lines = append(lines, plines...)
	}

	textedit.Logger().Debug("shape: layout",
		"bytes", len(text),
		"paragraphs", len(paragraphs),
		"lines", len(lines),
		"maxWidth", opts.MaxWidth,
		"wrap", opts.Wrap)

	return textedit.NewTextLayout(text, lines, l.layoutOpts...)
}

func alignOffset(opts LayoutOptions, width float64) float64 {
	if opts.MaxWidth <= 0 {
		return 0
	}
	switch opts.Alignment {
	case AlignCenter:
		return math.Max(0, (opts.MaxWidth-width)/2)
	case AlignRight:
		return math.Max(0, opts.MaxWidth-width)
	default:
		return 0
	}
}

// layoutParagraph shapes and wraps one paragraph. Line boxes are filled in
// by the caller.
func (l *Layouter) layoutParagraph(text string, para segment.Span, face Face, opts LayoutOptions) ([]textedit.Line, error) {
	if para.Len() == 0 {
		return []textedit.Line{{Start: para.Start, End: para.Start}}, nil
	}

	ptext := text[para.Start:para.End]
	runs := bidiRuns(ptext, opts.Direction)

	var clusters []cluster
	for ri, r := range runs {
		rc, err := l.shapeRun(ptext[r.start:r.end], r.direction(), face)
		if err != nil {
			return nil, &ShapeError{Start: para.Start + r.start, End: para.Start + r.end, Err: err}
		}
		for _, c := range rc {
			c.start += r.start
			c.end += r.start
			c.run = ri
			c.space = isSpaceCluster(ptext[c.start:c.end])
			clusters = append(clusters, c)
		}
	}

	ends := wrapClusters(clusters, breakKinds(ptext, clusters), opts.MaxWidth, opts.Wrap)
	if len(ends) > 1 {
		textedit.Logger().Debug("shape: paragraph wrapped",
			"start", para.Start, "lines", len(ends), "maxWidth", opts.MaxWidth, "mode", opts.Wrap)
	}
	lines := make([]textedit.Line, 0, len(ends))
	first := 0
	for _, end := range ends {
		lines = append(lines, buildLine(clusters[first:end], runs, para.Start))
		first = end
	}
	return lines, nil
}

// shapeRun shapes a single-direction run and returns its clusters in
// logical order, relative to the run.
func (l *Layouter) shapeRun(text string, dir textedit.Direction, face Face) ([]cluster, error) {
	shape := func() ([]Glyph, error) {
		glyphs, err := l.shaper.Shape(Input{Text: text, Direction: dir, Face: face})
		if err != nil {
			return nil, err
		}
		textedit.Logger().Debug("shape: run shaped", "bytes", len(text), "glyphs", len(glyphs), "direction", dir)
		return glyphs, nil
	}

	var glyphs []Glyph
	var err error
	if fk, ok := faceKey(face); ok && l.runs != nil {
		glyphs, err = l.runs.GetOrCompute(runKey{text: text, dir: dir, face: fk}, shape)
	} else {
		glyphs, err = shape()
	}
	if err != nil {
		return nil, err
	}
	return glyphClusters(text, glyphs)
}

// faceKey returns the cache identity of face, or false when face cannot
// be used as a map key.
func faceKey(face Face) (any, bool) {
	if ff, ok := face.(*FontFace); ok {
		return fontFaceKey{source: ff.source.id, size: math.Float64bits(ff.size)}, true
	}
	if !reflect.TypeOf(face).Comparable() {
		return nil, false
	}
	return face, true
}

// glyphClusters groups glyphs by cluster and orders the clusters
// logically. Bytes before the first cluster join it; cluster offsets that
// are out of range or inside a UTF-8 sequence join the previous cluster.
func glyphClusters(text string, glyphs []Glyph) ([]cluster, error) {
	if len(glyphs) == 0 {
		return nil, ErrNoGlyphs
	}

	widths := make(map[int]float64, len(glyphs))
	for _, g := range glyphs {
		widths[g.Cluster] += g.XAdvance
	}
	starts := make([]int, 0, len(widths))
	for s := range widths {
		starts = append(starts, s)
	}
	sort.Ints(starts)

	clusters := make([]cluster, 0, len(starts))
	for _, s := range starts {
		if len(clusters) == 0 {
			clusters = append(clusters, cluster{start: 0, width: widths[s]})
			continue
		}
		if s <= 0 || s >= len(text) || !utf8.RuneStart(text[s]) {
			clusters[len(clusters)-1].width += widths[s]
			continue
		}
		clusters = append(clusters, cluster{start: s, width: widths[s]})
	}
	for i := range clusters {
		if i+1 < len(clusters) {
			clusters[i].end = clusters[i+1].start
		} else {
			clusters[i].end = len(text)
		}
	}
	return clusters, nil
}

// buildLine turns a logical slice of clusters into a line with runs in
// visual order. Offsets are made absolute by adding base.
func buildLine(clusters []cluster, runs []bidiRun, base int) textedit.Line {
	line := textedit.Line{
		Start: base + clusters[0].start,
		End:   base + clusters[len(clusters)-1].end,
	}

	type piece struct {
		run      int
		clusters []cluster
	}
	var pieces []piece
	first := 0
	for i := 1; i <= len(clusters); i++ {
		if i == len(clusters) || clusters[i].run != clusters[first].run {
			pieces = append(pieces, piece{run: clusters[first].run, clusters: clusters[first:i]})
			first = i
		}
	}

	levels := make([]int, len(pieces))
	for i, p := range pieces {
		levels[i] = runs[p.run].level
	}

	for _, idx := range visualOrder(levels) {
		p := pieces[idx]
		dir := runs[p.run].direction()

		var total float64
		for _, c := range p.clusters {
			total += c.width
		}

		sr := textedit.ShapedRun{
			Start:     base + p.clusters[0].start,
			End:       base + p.clusters[len(p.clusters)-1].end,
			Direction: dir,
			Width:     total,
			Clusters:  make([]textedit.Cluster, 0, len(p.clusters)),
		}
		x := 0.0
		if dir.IsRTL() {
			x = total
		}
		for _, c := range p.clusters {
			if dir.IsRTL() {
				x -= c.width
			}
			sr.Clusters = append(sr.Clusters, textedit.Cluster{Start: base + c.start, X: x, Width: c.width})
			if !dir.IsRTL() {
				x += c.width
			}
		}
		line.Runs = append(line.Runs, sr)
	}
	return line
}
