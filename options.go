package textedit

// DefaultCaretWidth is the caret width used by CursorRect unless
// WithCaretWidth overrides it.
const DefaultCaretWidth = 1.0

// Option configures a TextLayout during creation.
//
// Example:
//
//	layout, err := textedit.NewTextLayout(text, lines, textedit.WithCaretWidth(2))
type Option func(*config)

// config holds optional TextLayout configuration.
type config struct {
	caretWidth float64
}

func defaultConfig() config {
	return config{caretWidth: DefaultCaretWidth}
}

// WithCaretWidth sets the width of rectangles returned by CursorRect.
// Non-positive widths are ignored.
func WithCaretWidth(w float64) Option {
	return func(c *config) {
		if w > 0 {
			c.caretWidth = w
		}
	}
}
