package cellbox

import (
	"errors"
	"fmt"
)

// Sentinel errors for the cellbox package.
var (
	// ErrNilMeasurer is returned when a GlyphCell is constructed
	// without a metrics source.
	ErrNilMeasurer = errors.New("cellbox: nil measurer")

	// ErrInvalidFontSize is returned when a font size is zero or negative.
	ErrInvalidFontSize = errors.New("cellbox: font size must be positive")
)

// GeometryError reports a requested size or length too small to host the
// required parts. The message always carries the offending dimensions;
// nothing is silently clamped.
type GeometryError struct {
	// Op is the operation that failed ("NewLine", "Compose", ...).
	Op string

	// Detail describes the violation, including the offending dimensions.
	Detail string
}

func (e *GeometryError) Error() string {
	return "cellbox: " + e.Op + ": " + e.Detail
}

// geometryErrorf builds a GeometryError with a formatted detail message.
func geometryErrorf(op, format string, args ...any) *GeometryError {
	return &GeometryError{Op: op, Detail: fmt.Sprintf(format, args...)}
}

// CapHeightError reports a text line whose caps are not exactly one grid
// row tall. Line-height arithmetic for glyph-bearing lines assumes
// single-row caps; both heights are reported so the caller can tell
// which cap is wrong.
type CapHeightError struct {
	// LeadingHeight is the height of the leading cap in cells.
	LeadingHeight int

	// TrailingHeight is the height of the trailing cap in cells.
	TrailingHeight int
}

func (e *CapHeightError) Error() string {
	return fmt.Sprintf("cellbox: text line caps must be one cell tall, got leading height %d and trailing height %d",
		e.LeadingHeight, e.TrailingHeight)
}

// BoundsError reports a grid position outside the grid's dimensions.
// Composition is all-or-nothing: a single out-of-bounds placement aborts
// the whole box rather than emitting a partially valid result.
type BoundsError struct {
	// Pos is the offending position.
	Pos Position

	// Dims are the grid dimensions the position was checked against.
	Dims Dimensions
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("cellbox: position (row %d, col %d) outside grid of %d rows by %d cols",
		e.Pos.Row, e.Pos.Col, e.Dims.Rows, e.Dims.Cols)
}
