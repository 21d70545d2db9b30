package render

import (
	"strings"

	"github.com/gogpu/cellbox"
)

// TextGrid is a character-cell overlay surface: a rows-by-cols rune
// buffer that boxes are rendered into and that prints as plain text.
// It implements Sink.
//
// TextGrid is mutable and not safe for concurrent use; give each
// goroutine its own surface.
type TextGrid struct {
	dims  cellbox.Dimensions
	cells [][]rune
}

// NewTextGrid creates a surface of the given dimensions filled with
// spaces.
func NewTextGrid(dims cellbox.Dimensions) *TextGrid {
	rows := max(dims.Rows, 0)
	cols := max(dims.Cols, 0)
	cells := make([][]rune, rows)
	for i := range cells {
		cells[i] = make([]rune, cols)
		for j := range cells[i] {
			cells[i][j] = ' '
		}
	}
	return &TextGrid{dims: cellbox.Dimensions{Rows: rows, Cols: cols}, cells: cells}
}

// Dims returns the surface dimensions.
func (t *TextGrid) Dims() cellbox.Dimensions {
	return t.dims
}

// Set writes a rune at the given position. Out-of-bounds writes are
// ignored; use Draw for validated rendering.
func (t *TextGrid) Set(p cellbox.Position, r rune) {
	if p.Row < 0 || p.Row >= t.dims.Rows || p.Col < 0 || p.Col >= t.dims.Cols {
		return
	}
	t.cells[p.Row][p.Col] = r
}

// Rune returns the rune at the given position, or space if out of bounds.
func (t *TextGrid) Rune(p cellbox.Position) rune {
	if p.Row < 0 || p.Row >= t.dims.Rows || p.Col < 0 || p.Col >= t.dims.Cols {
		return ' '
	}
	return t.cells[p.Row][p.Col]
}

// Draw implements Sink. Placements are applied in order, last write
// wins, so divider junctions replace the frame fill under them.
// A placement outside the surface is a BoundsError against the
// surface's own dimensions; nothing is drawn in that case.
func (t *TextGrid) Draw(_ cellbox.Grid, b cellbox.Box) error {
	for _, p := range b.Placements {
		if p.Pos.Row < 0 || p.Pos.Row >= t.dims.Rows || p.Pos.Col < 0 || p.Pos.Col >= t.dims.Cols {
			return &cellbox.BoundsError{Pos: p.Pos, Dims: t.dims}
		}
	}
	for _, p := range b.Placements {
		if p.Part.Rune == 0 {
			continue // no glyph representation
		}
		t.cells[p.Pos.Row][p.Pos.Col] = p.Part.Rune
	}
	return nil
}

// String returns the surface as newline-separated rows.
func (t *TextGrid) String() string {
	var sb strings.Builder
	for i, row := range t.cells {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(string(row))
	}
	return sb.String()
}
