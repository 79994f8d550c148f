package textedit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/textedit"
	"github.com/gogpu/textedit/shape"
)

const family = "👨‍👩‍👧‍👦"

// fixedLayouter shapes with 10px cells and an ffi ligature; faces are 20px
// tall.
var fixedLayouter = shape.NewLayouter(shape.WithShaper(shape.NewFixedShaper(10, "ffi")))

func layoutFixed(t require.TestingT, text string, maxWidth float64) *textedit.TextLayout {
	opts := shape.DefaultLayoutOptions()
	opts.MaxWidth = maxWidth
	layout, err := fixedLayouter.Layout(text, shape.NewFixedFace(20), opts)
	require.NoError(t, err)
	return layout
}

func layoutGoRegular(t *testing.T, text string) *textedit.TextLayout {
	t.Helper()

	source, err := shape.NewFontSource(goregular.TTF)
	require.NoError(t, err)
	layout, err := shape.LayoutText(text, source.Face(16), shape.DefaultLayoutOptions())
	require.NoError(t, err)
	return layout
}

func TestScenario_HitOrigin(t *testing.T) {
	for name, layout := range map[string]*textedit.TextLayout{
		"fixed":     layoutFixed(t, "Hello, World!", 0),
		"goregular": layoutGoRegular(t, "Hello, World!"),
	} {
		t.Run(name, func(t *testing.T) {
			require.Equal(t, 1, layout.LineCount())
			hit, ok := layout.HitTest(textedit.Pt(0, 0), textedit.Clamp)
			require.True(t, ok)
			assert.Equal(t, 0, hit.Offset)
		})
	}
}

func TestScenario_EmojiSnaps(t *testing.T) {
	text := "Hello " + family + " World"

	for name, layout := range map[string]*textedit.TextLayout{
		"fixed":     layoutFixed(t, text, 0),
		"goregular": layoutGoRegular(t, text),
	} {
		t.Run(name, func(t *testing.T) {
			left, ok := layout.OffsetToPosition(6)
			require.True(t, ok)
			right, ok := layout.OffsetToPosition(31)
			require.True(t, ok)
			require.Greater(t, right.X, left.X)

			for i := 0; i <= 10; i++ {
				x := left.X + (right.X-left.X)*float64(i)/10
				hit, ok := layout.HitTest(textedit.Pt(x, left.Y+1), textedit.Clamp)
				require.True(t, ok)
				assert.Contains(t, []int{6, 31}, hit.Offset, "x=%f", x)
			}
		})
	}
}

func TestScenario_SelectLine(t *testing.T) {
	text := "Line 1\nLine 2\nLine 3"
	layout := layoutFixed(t, text, 0)

	sel, ok := layout.SelectLineAt(10)
	require.True(t, ok)
	assert.Equal(t, textedit.Range{Start: 7, End: 13}, sel.Range())
	assert.Equal(t, "Line 2", sel.Text(text))
}

func TestScenario_SelectWord(t *testing.T) {
	text := "The quick brown fox"
	layout := layoutFixed(t, text, 0)

	sel, ok := layout.SelectWordAt(10)
	require.True(t, ok)
	assert.Equal(t, textedit.Range{Start: 10, End: 15}, sel.Range())
	assert.Equal(t, "brown", sel.Text(text))
}

func TestScenario_WrappedSelectionRects(t *testing.T) {
	text := "The quick brown fox jumps over the lazy dog and keeps running"
	layout := layoutFixed(t, text, 350)
	require.Equal(t, 2, layout.LineCount())

	rects := layout.SelectionRects(textedit.NewSelection(10, 50))
	require.Len(t, rects, 2)
	for i, r := range rects {
		line, ok := layout.Line(i)
		require.True(t, ok)
		assert.Equal(t, i, r.Line)
		assert.Greater(t, r.Width, 0.0)
		assert.Equal(t, line.Height, r.Height)
		assert.Equal(t, 20.0, r.Height)
	}
}

func TestScenario_MixedDirectionRange(t *testing.T) {
	text := "Hello مرحبا World"
	layout := layoutFixed(t, text, 0)

	sel := textedit.NewSelection(0, 10)
	assert.Equal(t, textedit.Range{Start: 0, End: 10}, sel.Range())
	assert.Equal(t, "Hello مر", sel.Text(text))

	rects := layout.SelectionRects(sel)
	require.Len(t, rects, 1)
	assert.Greater(t, rects[0].Width, 0.0)

	line, _ := layout.Line(0)
	assert.GreaterOrEqual(t, len(line.Runs), 3, "Latin, Arabic and Latin runs")
}
