package textedit

import (
	"testing"
)

func TestHitTest_LTR(t *testing.T) {
	l := monoLayout(t, "Hello\nWorld!")

	tests := []struct {
		name string
		p    Point
		want HitTestResult
	}{
		{"origin", Pt(0, 0), HitTestResult{Offset: 0, Affinity: Downstream, Line: 0}},
		{"left half", Pt(12, 5), HitTestResult{Offset: 1, Affinity: Downstream, Line: 0}},
		{"right half", Pt(17, 5), HitTestResult{Offset: 2, Affinity: Upstream, Line: 0}},
		{"cluster midpoint", Pt(15, 5), HitTestResult{Offset: 2, Affinity: Upstream, Line: 0}},
		{"past line end", Pt(200, 5), HitTestResult{Offset: 5, Affinity: Upstream, Line: 0}},
		{"left of line", Pt(-30, 25), HitTestResult{Offset: 6, Affinity: Downstream, Line: 1}},
		{"second line", Pt(31, 25), HitTestResult{Offset: 9, Affinity: Downstream, Line: 1}},
		{"above text", Pt(22, -50), HitTestResult{Offset: 2, Affinity: Downstream, Line: 0}},
		{"below text", Pt(22, 500), HitTestResult{Offset: 8, Affinity: Downstream, Line: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := l.HitTest(tt.p, Clamp)
			if !ok || got != tt.want {
				t.Errorf("HitTest(%v, Clamp) = %+v, %v; want %+v", tt.p, got, ok, tt.want)
			}
		})
	}
}

func TestHitTest_Strict(t *testing.T) {
	l := monoLayout(t, "Hello\nWorld!")

	misses := []Point{
		Pt(10, -1),
		Pt(10, 40),
		Pt(-1, 5),
		Pt(51, 5),
		Pt(61, 25),
	}
	for _, p := range misses {
		if got, ok := l.HitTest(p, Strict); ok {
			t.Errorf("HitTest(%v, Strict) = %+v, want no hit", p, got)
		}
	}

	got, ok := l.HitTest(Pt(12, 25), Strict)
	if !ok || got.Offset != 7 || got.Line != 1 {
		t.Errorf("HitTest(12,25, Strict) = %+v, %v; want offset 7 on line 1", got, ok)
	}
	got, ok = l.HitTest(Pt(50, 5), Strict)
	if !ok || got.Offset != 5 {
		t.Errorf("HitTest at right edge, Strict = %+v, %v; want offset 5", got, ok)
	}
}

func TestHitTest_EmptyText(t *testing.T) {
	l := mustLayout(t, "", nil)

	got, ok := l.HitTest(Pt(40, 40), Clamp)
	if !ok || got != (HitTestResult{}) {
		t.Errorf("HitTest(Clamp) on empty text = %+v, %v; want offset 0", got, ok)
	}
	if _, ok := l.HitTest(Pt(0, 0), Strict); ok {
		t.Error("HitTest(Strict) on empty text ok, want no hit")
	}
}

func TestHitTest_EmptyLine(t *testing.T) {
	l := monoLayout(t, "ab\n\ncd")

	got, ok := l.HitTest(Pt(30, 25), Clamp)
	if !ok || got.Offset != 3 || got.Line != 1 {
		t.Errorf("HitTest on empty line = %+v, %v; want offset 3 on line 1", got, ok)
	}
}

func TestHitTest_RTL(t *testing.T) {
	// Clusters from the right: א [20,30), ב [10,20), ג [0,10).
	l := rtlLayout(t, "אבג")

	tests := []struct {
		x    float64
		want HitTestResult
	}{
		{27, HitTestResult{Offset: 0, Affinity: Downstream}},
		{22, HitTestResult{Offset: 2, Affinity: Upstream}},
		{17, HitTestResult{Offset: 2, Affinity: Downstream}},
		{3, HitTestResult{Offset: 6, Affinity: Upstream}},
		{-10, HitTestResult{Offset: 6, Affinity: Upstream}},
		{50, HitTestResult{Offset: 0, Affinity: Downstream}},
	}
	for _, tt := range tests {
		got, ok := l.HitTest(Pt(tt.x, 5), Clamp)
		if !ok || got != tt.want {
			t.Errorf("HitTest(x=%f) = %+v, %v; want %+v", tt.x, got, ok, tt.want)
		}
	}
}

func TestHitTest_Grapheme(t *testing.T) {
	text := "Hello " + family + " World"
	l := monoLayout(t, text)

	// The emoji is one 10px cluster at [60,70).
	for _, x := range []float64{60, 61, 64.9, 65, 69.9} {
		got, _ := l.HitTest(Pt(x, 5), Clamp)
		if got.Offset != 6 && got.Offset != 31 {
			t.Errorf("HitTest(x=%f) = %d, want 6 or 31", x, got.Offset)
		}
	}
}

func TestHitTest_Ligature(t *testing.T) {
	text := "office"
	run := ShapedRun{Start: 0, End: 6, Width: 60, Clusters: []Cluster{
		{Start: 0, X: 0, Width: 10},
		{Start: 1, X: 10, Width: 30},
		{Start: 4, X: 40, Width: 10},
		{Start: 5, X: 50, Width: 10},
	}}
	l := mustLayout(t, text, []Line{monoLine(0, 0, 6, run)})

	tests := []struct {
		x    float64
		want int
	}{
		{11, 1},
		{24, 1},
		{25, 4},
		{39, 4},
	}
	for _, tt := range tests {
		got, _ := l.HitTest(Pt(tt.x, 5), Clamp)
		if got.Offset != tt.want {
			t.Errorf("HitTest(x=%f) = %d, want %d", tt.x, got.Offset, tt.want)
		}
	}

	pos, _ := l.OffsetToPosition(3)
	if pos.X != 10 {
		t.Errorf("OffsetToPosition(3).X = %f, want ligature leading edge 10", pos.X)
	}
}

func TestHitTest_MixedRuns(t *testing.T) {
	text := "abאב"
	l := mustLayout(t, text, []Line{monoLine(0, 0, len(text),
		monoRun(text, 0, 2, DirectionLTR),
		monoRun(text, 2, len(text), DirectionRTL),
	)})

	tests := []struct {
		x    float64
		want int
	}{
		{5, 1},
		{18, 2},
		{22, 6},
		{38, 2},
		{45, 2},
	}
	for _, tt := range tests {
		got, _ := l.HitTest(Pt(tt.x, 5), Clamp)
		if got.Offset != tt.want {
			t.Errorf("HitTest(x=%f) = %d, want %d", tt.x, got.Offset, tt.want)
		}
	}
}

func TestHitTestResult_CursorPosition(t *testing.T) {
	r := HitTestResult{Offset: 4, Affinity: Upstream, Line: 2}
	if cp := r.CursorPosition(); cp != (CursorPosition{Offset: 4, Affinity: Upstream}) {
		t.Errorf("CursorPosition() = %+v", cp)
	}
}
