package cellbox

// Box is the result of a composition: the footprint it was requested
// with and the ordered placements describing exactly what to render
// where. The composer performs no drawing; placements are the sole
// handoff to any rendering sink.
//
// Placements are ordered frame first (top, bottom, left, right), then
// dividers. Dividers deliberately revisit frame positions so their
// junction caps land on the frame; sinks must treat later placements at
// the same position as authoritative.
type Box struct {
	// Origin is the top-left cell of the box on the grid.
	Origin Position

	// Size is the box footprint in cells (not the grid total).
	Size Dimensions

	// Style is the glyph family the parts were drawn from.
	Style LineStyle

	// Placements is the ordered render list.
	Placements []Placement
}

// Bounds returns the surface rectangle the box covers on the grid.
func (b Box) Bounds(g Grid) Rect {
	if len(b.Placements) == 0 {
		return Rect{}
	}
	r := g.CellRect(b.Placements[0].Pos)
	for _, p := range b.Placements[1:] {
		r = r.Union(g.CellRect(p.Pos))
	}
	return r
}

// Compose assembles a rectangular box anchored at origin with the given
// footprint, validated against the grid.
//
// The frame is built from four lines: top and bottom carry the corner
// caps, the side lines contribute only their interior cells so every
// corner is emitted exactly once. Optional interior dividers join the
// frame with tee caps and cross where they intersect.
//
// Fails with a GeometryError if the footprint is smaller than 2x2 cells
// (a box needs two corners per edge) or if a divider index is not
// strictly interior. Fails with a BoundsError if any placement falls
// outside the grid; the whole composition is abandoned rather than
// clipped, so callers can reposition or abort.
func Compose(g Grid, origin Position, size Dimensions, opts ...ComposeOption) (Box, error) {
	cfg := defaultComposeConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if size.Rows < 2 || size.Cols < 2 {
		return Box{}, geometryErrorf("Compose", "box footprint %d rows by %d cols is below the 2x2 minimum",
			size.Rows, size.Cols)
	}
	for _, r := range cfg.rowDividers {
		if r < 1 || r > size.Rows-2 {
			return Box{}, geometryErrorf("Compose", "row divider %d is not interior to a %d-row box",
				r, size.Rows)
		}
	}
	for _, c := range cfg.colDividers {
		if c < 1 || c > size.Cols-2 {
			return Box{}, geometryErrorf("Compose", "col divider %d is not interior to a %d-col box",
				c, size.Cols)
		}
	}

	style := cfg.style
	placements := make([]Placement, 0, 2*(size.Rows+size.Cols))

	frame := [...]struct {
		leading, fill, trailing Shape
		length                  int
		orientation             Orientation
		at                      Position
		interior                bool
	}{
		{ShapeCornerTopLeft, ShapeHorizontal, ShapeCornerTopRight,
			size.Cols, Horizontal, origin, false},
		{ShapeCornerBottomLeft, ShapeHorizontal, ShapeCornerBottomRight,
			size.Cols, Horizontal, origin.Offset(size.Rows-1, 0), false},
		{ShapeCornerTopLeft, ShapeVertical, ShapeCornerBottomLeft,
			size.Rows, Vertical, origin, true},
		{ShapeCornerTopRight, ShapeVertical, ShapeCornerBottomRight,
			size.Rows, Vertical, origin.Offset(0, size.Cols-1), true},
	}
	for _, f := range frame {
		line, err := NewLine(PartFor(f.leading, style), PartFor(f.fill, style),
			PartFor(f.trailing, style), f.length, f.orientation, GraphicKind)
		if err != nil {
			return Box{}, err
		}
		run := line.Run(f.at)
		if f.interior {
			// Corners already emitted by the horizontal lines.
			run = run[1 : len(run)-1]
		}
		placements = append(placements, run...)
	}

	// Absolute rows holding a horizontal divider, for cross detection.
	dividerRows := make(map[int]bool, len(cfg.rowDividers))

	for _, r := range cfg.rowDividers {
		line, err := NewLine(PartFor(ShapeTeeLeft, style), PartFor(ShapeHorizontal, style),
			PartFor(ShapeTeeRight, style), size.Cols, Horizontal, GraphicKind)
		if err != nil {
			return Box{}, err
		}
		placements = append(placements, line.Run(origin.Offset(r, 0))...)
		dividerRows[origin.Row+r] = true
	}

	for _, c := range cfg.colDividers {
		line, err := NewLine(PartFor(ShapeTeeTop, style), PartFor(ShapeVertical, style),
			PartFor(ShapeTeeBottom, style), size.Rows, Vertical, GraphicKind)
		if err != nil {
			return Box{}, err
		}
		run := line.Run(origin.Offset(0, c))
		for i, p := range run {
			if dividerRows[p.Pos.Row] {
				run[i].Part = PartFor(ShapeCross, style)
			}
		}
		placements = append(placements, run...)
	}

	// Bounds are validated against every cell a part covers, and the
	// first violation aborts the whole composition.
	for _, p := range placements {
		for dr := 0; dr < p.Part.Height; dr++ {
			for dc := 0; dc < p.Part.Width; dc++ {
				cell := p.Pos.Offset(dr, dc)
				if !g.Contains(cell) {
					return Box{}, &BoundsError{Pos: cell, Dims: g.Dims}
				}
			}
		}
	}

	Logger().Debug("composed box",
		"origin_row", origin.Row, "origin_col", origin.Col,
		"rows", size.Rows, "cols", size.Cols,
		"style", style.String(), "placements", len(placements))

	return Box{Origin: origin, Size: size, Style: style, Placements: placements}, nil
}
