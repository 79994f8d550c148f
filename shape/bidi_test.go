package shape

import (
	"slices"
	"testing"

	"github.com/gogpu/textedit"
)

func TestVisualOrder(t *testing.T) {
	tests := []struct {
		name   string
		levels []int
		want   []int
	}{
		{"empty", nil, []int{}},
		{"all ltr", []int{0, 0, 0}, []int{0, 1, 2}},
		{"single rtl", []int{1}, []int{0}},
		{"rtl inside ltr", []int{0, 1, 1, 0}, []int{0, 2, 1, 3}},
		{"ltr inside rtl", []int{1, 2, 2, 1}, []int{3, 1, 2, 0}},
		{"all rtl", []int{1, 1, 1}, []int{2, 1, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := visualOrder(tt.levels)
			if !slices.Equal(got, tt.want) {
				t.Errorf("visualOrder(%v) = %v, want %v", tt.levels, got, tt.want)
			}
		})
	}
}

func TestBidiRuns_SingleDirection(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		base  textedit.Direction
		level int
	}{
		{"latin ltr", "Hello", textedit.DirectionLTR, 0},
		{"hebrew ltr base", "שלום", textedit.DirectionLTR, 1},
		{"hebrew rtl base", "שלום", textedit.DirectionRTL, 1},
		{"latin rtl base", "Hello", textedit.DirectionRTL, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runs := bidiRuns(tt.text, tt.base)
			if len(runs) != 1 {
				t.Fatalf("bidiRuns(%q) = %+v, want one run", tt.text, runs)
			}
			want := bidiRun{start: 0, end: len(tt.text), level: tt.level}
			if runs[0] != want {
				t.Errorf("bidiRuns(%q) = %+v, want %+v", tt.text, runs[0], want)
			}
		})
	}

	if runs := bidiRuns("", textedit.DirectionLTR); runs != nil {
		t.Errorf("bidiRuns(\"\") = %+v, want nil", runs)
	}
}

func TestBidiRuns_Mixed(t *testing.T) {
	text := "abc שלום"
	runs := bidiRuns(text, textedit.DirectionLTR)
	if len(runs) < 2 {
		t.Fatalf("bidiRuns(%q) = %+v, want at least two runs", text, runs)
	}

	// Runs tile the paragraph in logical order.
	if runs[0].start != 0 || runs[len(runs)-1].end != len(text) {
		t.Errorf("runs do not cover the text: %+v", runs)
	}
	for i := 1; i < len(runs); i++ {
		if runs[i].start != runs[i-1].end {
			t.Errorf("run %d starts at %d, previous ends at %d", i, runs[i].start, runs[i-1].end)
		}
		if runs[i].level == runs[i-1].level {
			t.Errorf("runs %d and %d share level %d", i-1, i, runs[i].level)
		}
	}

	if runs[0].direction() != textedit.DirectionLTR {
		t.Errorf("first run direction = %v, want LTR", runs[0].direction())
	}
	last := runs[len(runs)-1]
	if last.direction() != textedit.DirectionRTL {
		t.Errorf("last run direction = %v, want RTL", last.direction())
	}
	if last.start < len("abc") {
		t.Errorf("RTL run starts at %d, inside the Latin word", last.start)
	}
}
