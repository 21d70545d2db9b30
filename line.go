package cellbox

// Orientation of a line run.
type Orientation int

const (
	// Horizontal runs advance along columns, left to right.
	Horizontal Orientation = iota

	// Vertical runs advance along rows, top to bottom.
	Vertical
)

// String returns the orientation name.
func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "Horizontal"
	case Vertical:
		return "Vertical"
	default:
		return "Unknown"
	}
}

// LineKind distinguishes glyph-bearing lines from purely graphical ones.
type LineKind int

const (
	// GraphicKind lines are block or vector graphics. Caps of any
	// height are allowed.
	GraphicKind LineKind = iota

	// TextKind lines carry glyphs. Both caps must be exactly one grid
	// row tall so the rendered line height stays unambiguous.
	TextKind
)

// String returns the line kind name.
func (k LineKind) String() string {
	switch k {
	case GraphicKind:
		return "Graphic"
	case TextKind:
		return "Text"
	default:
		return "Unknown"
	}
}

// Placement pairs a grid position with the part to render there. A slice
// of placements is the sole handoff between composition and drawing.
type Placement struct {
	Pos  Position
	Part Part
}

// Line is one straight run of box parts: a leading cap, a repeated fill
// part, and a trailing cap. A validated Line is an immutable value; the
// only way to obtain one is through NewLine, so every Line satisfies the
// structural invariants below.
type Line struct {
	leading     Part
	fill        Part
	trailing    Part
	length      int
	orientation Orientation
	kind        LineKind
}

// NewLine composes a run of the given length in cells.
//
// Validation, all at construction:
//   - every part needs a non-empty footprint (a zero-height cap has no
//     rect to render; this fails rather than clamping);
//   - length must leave room for both caps;
//   - the span between the caps must be a whole number of fill parts;
//   - for TextKind, both caps must be exactly one row tall
//     (CapHeightError otherwise).
func NewLine(leading, fill, trailing Part, length int, o Orientation, kind LineKind) (Line, error) {
	for _, p := range [...]struct {
		role string
		part Part
	}{{"leading cap", leading}, {"fill", fill}, {"trailing cap", trailing}} {
		if p.part.Width < 1 || p.part.Height < 1 {
			return Line{}, geometryErrorf("NewLine", "%s %s has empty footprint %dx%d cells",
				p.role, p.part.Shape, p.part.Width, p.part.Height)
		}
	}
	if kind == TextKind && (leading.Height != 1 || trailing.Height != 1) {
		return Line{}, &CapHeightError{
			LeadingHeight:  leading.Height,
			TrailingHeight: trailing.Height,
		}
	}
	capExtent := extentAlong(leading, o) + extentAlong(trailing, o)
	if length < capExtent {
		return Line{}, geometryErrorf("NewLine", "length %d cells cannot host caps of combined extent %d cells",
			length, capExtent)
	}
	if span := length - capExtent; span%extentAlong(fill, o) != 0 {
		return Line{}, geometryErrorf("NewLine", "span %d cells is not a whole number of %d-cell fill parts",
			span, extentAlong(fill, o))
	}
	return Line{
		leading:     leading,
		fill:        fill,
		trailing:    trailing,
		length:      length,
		orientation: o,
		kind:        kind,
	}, nil
}

// NewRule is a convenience constructor for an open-ended graphic run:
// half-line caps on both ends with a matching fill.
func NewRule(style LineStyle, length int, o Orientation) (Line, error) {
	if o == Vertical {
		return NewLine(PartFor(ShapeCapDown, style), PartFor(ShapeVertical, style),
			PartFor(ShapeCapUp, style), length, o, GraphicKind)
	}
	return NewLine(PartFor(ShapeCapRight, style), PartFor(ShapeHorizontal, style),
		PartFor(ShapeCapLeft, style), length, o, GraphicKind)
}

// Leading returns the leading cap part.
func (l Line) Leading() Part { return l.leading }

// Trailing returns the trailing cap part.
func (l Line) Trailing() Part { return l.trailing }

// Fill returns the repeated fill part.
func (l Line) Fill() Part { return l.fill }

// Length returns the run length in cells along the line's axis.
func (l Line) Length() int { return l.length }

// Orientation returns the line's axis.
func (l Line) Orientation() Orientation { return l.orientation }

// Kind returns the line kind.
func (l Line) Kind() LineKind { return l.kind }

// Run emits the ordered placements for the line anchored at origin:
// the leading cap first, then the fill repeated across the span, then
// the trailing cap. One algorithm serves both orientations; the only
// difference is which axis each part's extent advances. Deterministic
// and side-effect-free.
func (l Line) Run(origin Position) []Placement {
	capExtent := extentAlong(l.leading, l.orientation) + extentAlong(l.trailing, l.orientation)
	fillCount := (l.length - capExtent) / extentAlong(l.fill, l.orientation)

	out := make([]Placement, 0, fillCount+2)
	pos := origin

	emit := func(p Part) {
		out = append(out, Placement{Pos: pos, Part: p})
		pos = advance(pos, p, l.orientation)
	}

	emit(l.leading)
	for i := 0; i < fillCount; i++ {
		emit(l.fill)
	}
	emit(l.trailing)
	return out
}

// extentAlong returns a part's footprint along the run axis.
func extentAlong(p Part, o Orientation) int {
	if o == Vertical {
		return p.Height
	}
	return p.Width
}

// advance steps a position past a part along the run axis.
func advance(pos Position, p Part, o Orientation) Position {
	if o == Vertical {
		return pos.Offset(p.Height, 0)
	}
	return pos.Offset(0, p.Width)
}
