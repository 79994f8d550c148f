// Package shape turns text into the shaped line model consumed by
// package textedit.
//
// It loads fonts (golang.org/x/image/font/opentype), shapes runs with a
// HarfBuzz port (github.com/go-text/typesetting), resolves bidirectional
// embedding levels (golang.org/x/text/unicode/bidi), wraps paragraphs at
// UAX #14 opportunities and builds line boxes from font metrics.
//
// Quick start:
//
//	source, err := shape.NewFontSource(goregular.TTF)
//	if err != nil {
//	    return err
//	}
//	opts := shape.DefaultLayoutOptions()
//	opts.MaxWidth = 320
//	layout, err := shape.LayoutText("Hello, World!", source.Face(16), opts)
//
// A Layouter memoizes shaped runs in a sharded LRU cache and is safe for
// concurrent use.
package shape
