package cellbox

import "math"

// GridType tags what a grid is used for. It affects only how external
// collaborators interpret the grid; core geometry is identical for both.
type GridType int

const (
	// CanvasGrid is a free-form drawing surface.
	CanvasGrid GridType = iota

	// InterfaceGrid holds UI chrome rather than user content.
	InterfaceGrid
)

// String returns the grid type name.
func (t GridType) String() string {
	switch t {
	case CanvasGrid:
		return "Canvas"
	case InterfaceGrid:
		return "Interface"
	default:
		return "Unknown"
	}
}

// Dimensions is a grid extent in whole cells.
// Zero dimensions represent an empty grid.
type Dimensions struct {
	Rows, Cols int
}

// IsEmpty reports whether the grid holds no cells.
func (d Dimensions) IsEmpty() bool {
	return d.Rows <= 0 || d.Cols <= 0
}

// Cells returns the total number of cells.
func (d Dimensions) Cells() int {
	if d.IsEmpty() {
		return 0
	}
	return d.Rows * d.Cols
}

// Position identifies one discrete grid cell. Positions are comparable:
// two positions are equal iff both components are equal.
type Position struct {
	Row, Col int
}

// Offset returns the position shifted by the given number of rows and
// columns.
func (p Position) Offset(rows, cols int) Position {
	return Position{Row: p.Row + rows, Col: p.Col + cols}
}

// Grid maps a glyph cell size and a row/column count onto a continuous
// drawing surface. It is a coordinate service, not a container: it owns
// no placements and no mutable state, so all queries are pure functions
// of its three value fields.
type Grid struct {
	// Cell supplies the surface size of one grid cell.
	Cell GlyphCell

	// Dims is the grid extent in cells.
	Dims Dimensions

	// Type tags how collaborators interpret the grid.
	Type GridType
}

// NewGrid creates a grid over cells of the given size.
// Fails if the cell size is not strictly positive or if either dimension
// is negative.
func NewGrid(cell GlyphCell, dims Dimensions, typ GridType) (Grid, error) {
	if !cell.Size().IsPositive() {
		return Grid{}, geometryErrorf("NewGrid", "cell size %gx%g must be positive",
			cell.Size().Width, cell.Size().Height)
	}
	if dims.Rows < 0 || dims.Cols < 0 {
		return Grid{}, geometryErrorf("NewGrid", "dimensions %dx%d must be non-negative",
			dims.Rows, dims.Cols)
	}
	return Grid{Cell: cell, Dims: dims, Type: typ}, nil
}

// CellRect returns the surface rectangle occupied by the given cell.
// Pure and total: out-of-bounds positions still map to a rectangle.
// Callers that need visibility must check Contains separately.
func (g Grid) CellRect(p Position) Rect {
	s := g.Cell.Size()
	origin := Point{X: float64(p.Col) * s.Width, Y: float64(p.Row) * s.Height}
	return RectAt(origin, s)
}

// PositionAt returns the grid cell containing the given surface point.
// Total: points outside the rendered area map to out-of-bounds positions,
// which Contains will reject.
func (g Grid) PositionAt(pt Point) Position {
	s := g.Cell.Size()
	if !s.IsPositive() {
		return Position{}
	}
	return Position{
		Row: int(math.Floor(pt.Y / s.Height)),
		Col: int(math.Floor(pt.X / s.Width)),
	}
}

// Contains reports whether the position lies within the grid dimensions.
func (g Grid) Contains(p Position) bool {
	return p.Row >= 0 && p.Row < g.Dims.Rows && p.Col >= 0 && p.Col < g.Dims.Cols
}

// Bounds returns the surface rectangle covered by the whole grid.
func (g Grid) Bounds() Rect {
	s := g.Cell.Size()
	return RectAt(Point{}, Size{
		Width:  float64(g.Dims.Cols) * s.Width,
		Height: float64(g.Dims.Rows) * s.Height,
	})
}
