package shape

import (
	"testing"
)

func TestWrapModeString(t *testing.T) {
	tests := []struct {
		mode WrapMode
		want string
	}{
		{WrapWordChar, "WordChar"},
		{WrapNone, "None"},
		{WrapWord, "Word"},
		{WrapChar, "Char"},
		{WrapMode(99), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.mode.String(); got != tt.want {
			t.Errorf("WrapMode(%d).String() = %q, want %q", tt.mode, got, tt.want)
		}
	}
}

// lineTexts lays text out with 10px cells and returns each line's text.
func lineTexts(t *testing.T, text string, maxWidth float64, mode WrapMode) []string {
	t.Helper()

	opts := DefaultLayoutOptions()
	opts.MaxWidth = maxWidth
	opts.Wrap = mode
	layout, err := NewLayouter(WithShaper(NewFixedShaper(10))).Layout(text, NewFixedFace(20), opts)
	if err != nil {
		t.Fatalf("Layout(%q): %v", text, err)
	}
	var out []string
	for _, line := range layout.Lines() {
		out = append(out, text[line.Start:line.End])
	}
	return out
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		maxWidth float64
		mode     WrapMode
		want     []string
	}{
		{"fits", "Hello", 100, WrapWordChar, []string{"Hello"}},
		{"no max width", "The quick brown fox", 0, WrapWordChar, []string{"The quick brown fox"}},
		{"wrap none", "The quick brown fox", 100, WrapNone, []string{"The quick brown fox"}},
		{"word", "The quick brown fox", 100, WrapWordChar, []string{"The quick ", "brown fox"}},
		{"trailing space hangs", "aaaa bbbb", 40, WrapWordChar, []string{"aaaa ", "bbbb"}},
		{"long word falls back to char", "abcdefghijklmno", 100, WrapWordChar, []string{"abcdefghij", "klmno"}},
		{"long word overflows in word mode", "abcdefghijklmno", 100, WrapWord, []string{"abcdefghijklmno"}},
		{"char", "hello world", 45, WrapChar, []string{"hell", "o wo", "rld"}},
		{"narrower than a cluster", "ab", 5, WrapWordChar, []string{"a", "b"}},
		{"mandatory break inside paragraph", "a\u2028b", 0, WrapWordChar, []string{"a\u2028", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := lineTexts(t, tt.text, tt.maxWidth, tt.mode)
			if len(got) != len(tt.want) {
				t.Fatalf("lines = %q, want %q", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("line %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestWrapClusters_Empty(t *testing.T) {
	if ends := wrapClusters(nil, nil, 100, WrapWordChar); ends != nil {
		t.Errorf("wrapClusters(nil) = %v, want nil", ends)
	}
}

func TestIsSpaceCluster(t *testing.T) {
	tests := []struct {
		s    string
		want bool
	}{
		{"", false},
		{" ", true},
		{"\t ", true},
		{"\u3000", true},
		{"a", false},
		{" a", false},
	}
	for _, tt := range tests {
		if got := isSpaceCluster(tt.s); got != tt.want {
			t.Errorf("isSpaceCluster(%q) = %v, want %v", tt.s, got, tt.want)
		}
	}
}
