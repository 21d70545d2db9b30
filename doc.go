// Package cellbox provides grid geometry and box composition for
// character-cell display surfaces.
//
// # Overview
//
// cellbox models a drawing surface as a uniform grid of glyph-sized cells
// and composes structured box diagrams out of small box-drawing parts placed on that grid. It is the geometry
// and validation core of a diagram overlay: it decides where every part
// goes and whether the result is internally consistent, and it never
// draws anything itself.
//
// # Quick Start
//
//	import "github.com/gogpu/cellbox"
//
//	// A grid of 24 rows by 80 columns of 8x16 cells.
//	cell := cellbox.FixedGlyphCell(cellbox.Sz(8, 16))
//	grid, _ := cellbox.NewGrid(cell, cellbox.Dimensions{Rows: 24, Cols: 80}, cellbox.CanvasGrid)
//
//	// Compose a 10x40 box with a divider under the top row.
//	box, err := cellbox.Compose(grid, cellbox.Position{Row: 2, Col: 4},
//	    cellbox.Dimensions{Rows: 10, Cols: 40},
//	    cellbox.WithStyle(cellbox.StyleRounded),
//	    cellbox.WithRowDivider(2),
//	)
//	if err != nil {
//	    // size too small, or the box does not fit the grid
//	}
//	for _, p := range box.Placements {
//	    // hand (p.Pos, p.Part) to a rendering sink
//	}
//
// # Architecture
//
// The module is organized into:
//   - Root package: Grid, GlyphCell, Part, Line, Compose (pure value types)
//   - metrics: font measurement backends producing glyph cell sizes
//   - render: sinks consuming composed placements (text overlay, raster)
//   - cache: sharded memo cache backing cell-size lookups
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Surface origin (0,0) at top-left, X increases right, Y increases down
//   - Grid rows increase downward, columns increase rightward
//   - Cell (row, col) covers the surface rectangle
//     [col*w, (col+1)*w) x [row*h, (row+1)*h)
//
// # Concurrency
//
// Every exported type in this package is an immutable value. All geometry
// queries and compositions are pure functions of their inputs, so
// concurrent callers need no coordination.
package cellbox

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
