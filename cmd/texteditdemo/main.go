// Command texteditdemo lays out text with a real font and prints the
// geometry an editor would query: hit tests, caret rectangles, word, line
// and paragraph selections and selection highlights.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/textedit"
	"github.com/gogpu/textedit/shape"
)

func main() {
	var (
		text     = flag.String("text", "Hello, World! The quick brown fox jumps over the lazy dog.\nSecond paragraph with office ligatures.", "text to lay out")
		width    = flag.Float64("width", 240, "wrap width (0 disables wrapping)")
		size     = flag.Float64("size", 16, "font size")
		fontPath = flag.String("font", "", "TTF/OTF font file (default: Go Regular)")
		x        = flag.Float64("x", 40, "hit-test x")
		y        = flag.Float64("y", 10, "hit-test y")
		from     = flag.Int("from", 10, "selection anchor")
		to       = flag.Int("to", 50, "selection active end")
		debug    = flag.Bool("debug", false, "enable debug logging")
	)
	flag.Parse()

	if *debug {
		textedit.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	source, err := loadFont(*fontPath)
	if err != nil {
		log.Fatalf("Failed to load font: %v", err)
	}

	opts := shape.DefaultLayoutOptions()
	opts.MaxWidth = *width

	layout, err := shape.LayoutText(*text, source.Face(*size), opts)
	if err != nil {
		log.Fatalf("Failed to lay out text: %v", err)
	}

	printLines(layout)
	printHit(layout, textedit.Pt(*x, *y))
	printSelection(layout, layout.SnapSelection(textedit.NewSelection(*from, *to)))
}

func loadFont(path string) (*shape.FontSource, error) {
	if path == "" {
		return shape.NewFontSource(goregular.TTF)
	}
	return shape.NewFontSourceFromFile(path)
}

func printLines(layout *textedit.TextLayout) {
	fmt.Printf("%d lines, %.1f x %.1f\n", layout.LineCount(), layout.Width(), layout.Height())
	for i, line := range layout.Lines() {
		fmt.Printf("  line %d [%d,%d) y=%.1f h=%.1f w=%.1f %q\n",
			i, line.Start, line.End, line.Y, line.Height, line.Width(), layout.Text()[line.Start:line.End])
		for _, run := range line.Runs {
			fmt.Printf("    run [%d,%d) %v x=%.1f w=%.1f clusters=%d\n",
				run.Start, run.End, run.Direction, run.Left(), run.Width, len(run.Clusters))
		}
	}
}

func printHit(layout *textedit.TextLayout, p textedit.Point) {
	hit, ok := layout.HitTest(p, textedit.Clamp)
	if !ok {
		fmt.Println("hit: none")
		return
	}
	fmt.Printf("hit (%.1f, %.1f): offset=%d affinity=%v line=%d\n", p.X, p.Y, hit.Offset, hit.Affinity, hit.Line)

	if r, ok := layout.CursorRect(hit.CursorPosition()); ok {
		fmt.Printf("caret: (%.1f, %.1f)-(%.1f, %.1f)\n", r.MinX, r.MinY, r.MaxX, r.MaxY)
	}

	down := layout.MoveDown(hit.Offset, textedit.Column{})
	fmt.Printf("down: offset=%d column=%.1f\n", down.Offset, down.Column.X)
	fmt.Printf("word: left=%d right=%d\n", layout.MoveLeftWord(hit.Offset), layout.MoveRightWord(hit.Offset))
	fmt.Printf("line: start=%d end=%d\n", layout.MoveLineStart(hit.Offset), layout.MoveLineEnd(hit.Offset))

	for _, unit := range []struct {
		name string
		pick func(int) (textedit.Selection, bool)
	}{
		{"word", layout.SelectWordAt},
		{"line", layout.SelectLineAt},
		{"paragraph", layout.SelectParagraphAt},
	} {
		if sel, ok := unit.pick(hit.Offset); ok {
			fmt.Printf("select %s: %v %q\n", unit.name, sel.Range(), sel.Text(layout.Text()))
		}
	}
}

func printSelection(layout *textedit.TextLayout, sel textedit.Selection) {
	fmt.Printf("selection %v forward=%v %q\n", sel.Range(), sel.IsForward(), sel.Text(layout.Text()))
	for _, r := range layout.SelectionRects(sel) {
		fmt.Printf("  line %d: x=%.1f y=%.1f w=%.1f h=%.1f\n", r.Line, r.X, r.Y, r.Width, r.Height)
	}
}
