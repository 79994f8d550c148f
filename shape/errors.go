package shape

import (
	"errors"
	"fmt"
)

// Sentinel errors for the shape package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("shape: empty font data")

	// ErrNilFace is returned when no face is given to a layout call.
	ErrNilFace = errors.New("shape: nil face")

	// ErrUnsupportedFace is returned when a shaper cannot use the face,
	// such as a GoTextShaper given a face without font data.
	ErrUnsupportedFace = errors.New("shape: face not supported by shaper")

	// ErrNoGlyphs is returned when a shaper produced no glyphs for a
	// non-empty run.
	ErrNoGlyphs = errors.New("shape: shaper produced no glyphs")
)

// ShapeError reports the run that failed to shape.
type ShapeError struct {
	Start, End int
	Err        error
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("shape: run [%d,%d): %v", e.Start, e.End, e.Err)
}

func (e *ShapeError) Unwrap() error {
	return e.Err
}
