package textedit

import (
	"errors"
	"fmt"
)

// Sentinel errors returned (wrapped in *LayoutError) by NewTextLayout.
var (
	// ErrLineCoverage is returned when lines do not partition the text:
	// a gap that is not a single paragraph separator, an overlap, a line
	// past the end of the text, or a first/last line that does not reach
	// the text edges.
	ErrLineCoverage = errors.New("textedit: lines do not cover the text")

	// ErrLineOrder is returned when line vertical extents overlap or are
	// not sorted top to bottom.
	ErrLineOrder = errors.New("textedit: lines are not ordered top to bottom")

	// ErrRunRange is returned when a run lies outside its line or overlaps
	// another run of the same line.
	ErrRunRange = errors.New("textedit: run outside its line")

	// ErrClusterMap is returned when a run's clusters are unsorted by offset,
	// do not start at the run start, start inside a UTF-8 sequence, or have
	// X values that do not follow the run direction.
	ErrClusterMap = errors.New("textedit: invalid cluster map")
)

// LayoutError reports which line (and run, or -1) violated a layout
// invariant.
type LayoutError struct {
	Line int
	Run  int
	Err  error
}

func (e *LayoutError) Error() string {
	if e.Run < 0 {
		return fmt.Sprintf("%v (line %d)", e.Err, e.Line)
	}
	return fmt.Sprintf("%v (line %d, run %d)", e.Err, e.Line, e.Run)
}

func (e *LayoutError) Unwrap() error {
	return e.Err
}
