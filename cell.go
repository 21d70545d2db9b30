package cellbox

import "fmt"

// Measurer provides glyph cell metrics for a typeface configuration.
// Given a font name and size it returns the advance width of one glyph
// column and the line height, in surface units. Implementations must be
// pure: the same inputs always yield the same output.
//
// The metrics package provides a Library implementation backed by real
// font files; tests may supply a fixed-size stub.
type Measurer interface {
	CellSize(fontName string, fontSize float64) (width, height float64, err error)
}

// GlyphCell is the fixed surface size of one grid cell, derived from a
// typeface name and point size. The derived size is computed once at
// construction and is never independently settable, so it is always
// consistent with the (fontName, fontSize) pair.
//
// GlyphCell is an immutable value. Use WithFont to derive a cell for a
// different typeface configuration.
type GlyphCell struct {
	fontName string
	fontSize float64
	size     Size
}

// NewGlyphCell measures the cell size for the given typeface configuration.
// The measurer is consulted exactly once; the result is carried by value.
func NewGlyphCell(m Measurer, fontName string, fontSize float64) (GlyphCell, error) {
	if m == nil {
		return GlyphCell{}, ErrNilMeasurer
	}
	if fontSize <= 0 {
		return GlyphCell{}, fmt.Errorf("%w: %g", ErrInvalidFontSize, fontSize)
	}
	w, h, err := m.CellSize(fontName, fontSize)
	if err != nil {
		return GlyphCell{}, fmt.Errorf("cellbox: measure %q at %g: %w", fontName, fontSize, err)
	}
	return GlyphCell{fontName: fontName, fontSize: fontSize, size: Size{Width: w, Height: h}}, nil
}

// FixedGlyphCell creates a cell of a fixed surface size with no typeface
// attached. Useful for fixed-geometry grids and tests.
func FixedGlyphCell(size Size) GlyphCell {
	return GlyphCell{size: size}
}

// FontName returns the typeface name this cell was measured for.
// Empty for fixed-size cells.
func (c GlyphCell) FontName() string { return c.fontName }

// FontSize returns the point size this cell was measured for.
// Zero for fixed-size cells.
func (c GlyphCell) FontSize() float64 { return c.fontSize }

// Size returns the derived cell size in surface units.
func (c GlyphCell) Size() Size { return c.size }

// WithFont returns a cell measured for the given typeface configuration.
// If the name and size are unchanged the receiver is returned as-is and
// the measurer is not consulted.
func (c GlyphCell) WithFont(m Measurer, fontName string, fontSize float64) (GlyphCell, error) {
	if fontName == c.fontName && fontSize == c.fontSize {
		return c, nil
	}
	return NewGlyphCell(m, fontName, fontSize)
}
