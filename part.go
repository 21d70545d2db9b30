package cellbox

// Shape discriminates the drawable box part variants. The set is closed:
// every shape's geometry is a pure attribute lookup, so parts carry no
// behavior of their own.
type Shape int

const (
	// ShapeHorizontal is a straight horizontal segment (─).
	ShapeHorizontal Shape = iota

	// ShapeVertical is a straight vertical segment (│).
	ShapeVertical

	// ShapeCornerTopLeft is the top-left box corner (┌).
	ShapeCornerTopLeft

	// ShapeCornerTopRight is the top-right box corner (┐).
	ShapeCornerTopRight

	// ShapeCornerBottomLeft is the bottom-left box corner (└).
	ShapeCornerBottomLeft

	// ShapeCornerBottomRight is the bottom-right box corner (┘).
	ShapeCornerBottomRight

	// ShapeTeeLeft joins a divider to the left frame edge (├).
	ShapeTeeLeft

	// ShapeTeeRight joins a divider to the right frame edge (┤).
	ShapeTeeRight

	// ShapeTeeTop joins a divider to the top frame edge (┬).
	ShapeTeeTop

	// ShapeTeeBottom joins a divider to the bottom frame edge (┴).
	ShapeTeeBottom

	// ShapeCross joins two crossing dividers (┼).
	ShapeCross

	// ShapeCapLeft is a half-line stub pointing left (╴),
	// the trailing cap of an open horizontal run.
	ShapeCapLeft

	// ShapeCapRight is a half-line stub pointing right (╶),
	// the leading cap of an open horizontal run.
	ShapeCapRight

	// ShapeCapUp is a half-line stub pointing up (╵),
	// the trailing cap of an open vertical run.
	ShapeCapUp

	// ShapeCapDown is a half-line stub pointing down (╷),
	// the leading cap of an open vertical run.
	ShapeCapDown
)

// String returns the shape name.
func (s Shape) String() string {
	switch s {
	case ShapeHorizontal:
		return "Horizontal"
	case ShapeVertical:
		return "Vertical"
	case ShapeCornerTopLeft:
		return "CornerTopLeft"
	case ShapeCornerTopRight:
		return "CornerTopRight"
	case ShapeCornerBottomLeft:
		return "CornerBottomLeft"
	case ShapeCornerBottomRight:
		return "CornerBottomRight"
	case ShapeTeeLeft:
		return "TeeLeft"
	case ShapeTeeRight:
		return "TeeRight"
	case ShapeTeeTop:
		return "TeeTop"
	case ShapeTeeBottom:
		return "TeeBottom"
	case ShapeCross:
		return "Cross"
	case ShapeCapLeft:
		return "CapLeft"
	case ShapeCapRight:
		return "CapRight"
	case ShapeCapUp:
		return "CapUp"
	case ShapeCapDown:
		return "CapDown"
	default:
		return "Unknown"
	}
}

// Arms reports which cell edges the shape's strokes reach. Rendering
// sinks use this to draw a shape as line segments from the cell center
// to the listed edges, so glyph tables and vector output stay in sync.
func (s Shape) Arms() (up, down, left, right bool) {
	switch s {
	case ShapeHorizontal:
		return false, false, true, true
	case ShapeVertical:
		return true, true, false, false
	case ShapeCornerTopLeft:
		return false, true, false, true
	case ShapeCornerTopRight:
		return false, true, true, false
	case ShapeCornerBottomLeft:
		return true, false, false, true
	case ShapeCornerBottomRight:
		return true, false, true, false
	case ShapeTeeLeft:
		return true, true, false, true
	case ShapeTeeRight:
		return true, true, true, false
	case ShapeTeeTop:
		return false, true, true, true
	case ShapeTeeBottom:
		return true, false, true, true
	case ShapeCross:
		return true, true, true, true
	case ShapeCapLeft:
		return false, false, true, false
	case ShapeCapRight:
		return false, false, false, true
	case ShapeCapUp:
		return true, false, false, false
	case ShapeCapDown:
		return false, true, false, false
	default:
		return false, false, false, false
	}
}

// LineStyle selects the glyph family used for a composed box.
type LineStyle int

const (
	// StyleLight uses light box-drawing glyphs (┌─┐).
	StyleLight LineStyle = iota

	// StyleHeavy uses heavy box-drawing glyphs (┏━┓).
	StyleHeavy

	// StyleDouble uses double-line glyphs (╔═╗).
	StyleDouble

	// StyleRounded uses light glyphs with rounded corners (╭─╮).
	StyleRounded

	// StyleASCII uses plain ASCII (+-|) for surfaces without
	// box-drawing glyph coverage.
	StyleASCII
)

// String returns the style name.
func (s LineStyle) String() string {
	switch s {
	case StyleLight:
		return "Light"
	case StyleHeavy:
		return "Heavy"
	case StyleDouble:
		return "Double"
	case StyleRounded:
		return "Rounded"
	case StyleASCII:
		return "ASCII"
	default:
		return "Unknown"
	}
}

// Part is one drawable box fragment: a shape with a fixed cell footprint
// and the rune a text sink renders for it. Parts are immutable values
// and freely copyable.
type Part struct {
	// Shape is the variant discriminator.
	Shape Shape

	// Width is the footprint width in grid columns.
	Width int

	// Height is the footprint height in grid rows.
	Height int

	// Rune is the glyph a character-cell sink renders. Zero means the
	// part has no glyph representation and text sinks skip it.
	Rune rune
}

// NewPart creates a part with an explicit footprint and glyph.
// Most callers want PartFor, which yields the standard one-cell catalog
// parts; NewPart exists for custom multi-cell fragments.
func NewPart(shape Shape, width, height int, r rune) Part {
	return Part{Shape: shape, Width: width, Height: height, Rune: r}
}

// PartFor returns the standard one-cell part for a shape in a style.
func PartFor(shape Shape, style LineStyle) Part {
	return Part{Shape: shape, Width: 1, Height: 1, Rune: partRune(shape, style)}
}

// lightRunes is the base glyph table; other styles override entries.
var lightRunes = map[Shape]rune{
	ShapeHorizontal:        '─',
	ShapeVertical:          '│',
	ShapeCornerTopLeft:     '┌',
	ShapeCornerTopRight:    '┐',
	ShapeCornerBottomLeft:  '└',
	ShapeCornerBottomRight: '┘',
	ShapeTeeLeft:           '├',
	ShapeTeeRight:          '┤',
	ShapeTeeTop:            '┬',
	ShapeTeeBottom:         '┴',
	ShapeCross:             '┼',
	ShapeCapLeft:           '╴',
	ShapeCapRight:          '╶',
	ShapeCapUp:             '╵',
	ShapeCapDown:           '╷',
}

var heavyRunes = map[Shape]rune{
	ShapeHorizontal:        '━',
	ShapeVertical:          '┃',
	ShapeCornerTopLeft:     '┏',
	ShapeCornerTopRight:    '┓',
	ShapeCornerBottomLeft:  '┗',
	ShapeCornerBottomRight: '┛',
	ShapeTeeLeft:           '┣',
	ShapeTeeRight:          '┫',
	ShapeTeeTop:            '┳',
	ShapeTeeBottom:         '┻',
	ShapeCross:             '╋',
	ShapeCapLeft:           '╸',
	ShapeCapRight:          '╺',
	ShapeCapUp:             '╹',
	ShapeCapDown:           '╻',
}

// doubleRunes has no half-line stubs in Unicode; caps fall back to full
// segments.
var doubleRunes = map[Shape]rune{
	ShapeHorizontal:        '═',
	ShapeVertical:          '║',
	ShapeCornerTopLeft:     '╔',
	ShapeCornerTopRight:    '╗',
	ShapeCornerBottomLeft:  '╚',
	ShapeCornerBottomRight: '╝',
	ShapeTeeLeft:           '╠',
	ShapeTeeRight:          '╣',
	ShapeTeeTop:            '╦',
	ShapeTeeBottom:         '╩',
	ShapeCross:             '╬',
	ShapeCapLeft:           '═',
	ShapeCapRight:          '═',
	ShapeCapUp:             '║',
	ShapeCapDown:           '║',
}

// roundedRunes overrides only the corners; everything else is light.
var roundedRunes = map[Shape]rune{
	ShapeCornerTopLeft:     '╭',
	ShapeCornerTopRight:    '╮',
	ShapeCornerBottomLeft:  '╰',
	ShapeCornerBottomRight: '╯',
}

var asciiRunes = map[Shape]rune{
	ShapeHorizontal:        '-',
	ShapeVertical:          '|',
	ShapeCornerTopLeft:     '+',
	ShapeCornerTopRight:    '+',
	ShapeCornerBottomLeft:  '+',
	ShapeCornerBottomRight: '+',
	ShapeTeeLeft:           '+',
	ShapeTeeRight:          '+',
	ShapeTeeTop:            '+',
	ShapeTeeBottom:         '+',
	ShapeCross:             '+',
	ShapeCapLeft:           '-',
	ShapeCapRight:          '-',
	ShapeCapUp:             '|',
	ShapeCapDown:           '|',
}

// partRune looks up the glyph for a shape in a style, falling back to
// the light table for styles that only override a subset.
func partRune(shape Shape, style LineStyle) rune {
	var table map[Shape]rune
	switch style {
	case StyleHeavy:
		table = heavyRunes
	case StyleDouble:
		table = doubleRunes
	case StyleRounded:
		table = roundedRunes
	case StyleASCII:
		table = asciiRunes
	default:
		table = lightRunes
	}
	if r, ok := table[shape]; ok {
		return r
	}
	return lightRunes[shape]
}
