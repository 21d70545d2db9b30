package cellbox

import "testing"

func TestPartForRunes(t *testing.T) {
	tests := []struct {
		name  string
		shape Shape
		style LineStyle
		want  rune
	}{
		{"light corner", ShapeCornerTopLeft, StyleLight, '┌'},
		{"light horizontal", ShapeHorizontal, StyleLight, '─'},
		{"light cross", ShapeCross, StyleLight, '┼'},
		{"heavy corner", ShapeCornerTopLeft, StyleHeavy, '┏'},
		{"heavy cap", ShapeCapLeft, StyleHeavy, '╸'},
		{"double corner", ShapeCornerBottomRight, StyleDouble, '╝'},
		{"double cap falls back to segment", ShapeCapUp, StyleDouble, '║'},
		{"rounded corner", ShapeCornerTopLeft, StyleRounded, '╭'},
		{"rounded fill inherits light", ShapeHorizontal, StyleRounded, '─'},
		{"rounded tee inherits light", ShapeTeeLeft, StyleRounded, '├'},
		{"ascii corner", ShapeCornerTopLeft, StyleASCII, '+'},
		{"ascii vertical", ShapeVertical, StyleASCII, '|'},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := PartFor(tt.shape, tt.style)
			if p.Rune != tt.want {
				t.Errorf("PartFor(%v, %v).Rune = %q, want %q", tt.shape, tt.style, p.Rune, tt.want)
			}
			if p.Width != 1 || p.Height != 1 {
				t.Errorf("PartFor(%v, %v) footprint = %dx%d, want 1x1", tt.shape, tt.style, p.Width, p.Height)
			}
		})
	}
}

func TestShapeArms(t *testing.T) {
	tests := []struct {
		shape                 Shape
		up, down, left, right bool
	}{
		{ShapeHorizontal, false, false, true, true},
		{ShapeVertical, true, true, false, false},
		{ShapeCornerTopLeft, false, true, false, true},
		{ShapeCornerBottomRight, true, false, true, false},
		{ShapeTeeLeft, true, true, false, true},
		{ShapeTeeTop, false, true, true, true},
		{ShapeCross, true, true, true, true},
		{ShapeCapLeft, false, false, true, false},
		{ShapeCapDown, false, true, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.shape.String(), func(t *testing.T) {
			up, down, left, right := tt.shape.Arms()
			if up != tt.up || down != tt.down || left != tt.left || right != tt.right {
				t.Errorf("%v.Arms() = (%v %v %v %v), want (%v %v %v %v)",
					tt.shape, up, down, left, right, tt.up, tt.down, tt.left, tt.right)
			}
		})
	}
}

func TestArmsMatchGlyphConnectivity(t *testing.T) {
	// Every cataloged shape must reach at least one edge; otherwise it
	// would render as an empty cell in the raster sink.
	shapes := []Shape{
		ShapeHorizontal, ShapeVertical,
		ShapeCornerTopLeft, ShapeCornerTopRight, ShapeCornerBottomLeft, ShapeCornerBottomRight,
		ShapeTeeLeft, ShapeTeeRight, ShapeTeeTop, ShapeTeeBottom, ShapeCross,
		ShapeCapLeft, ShapeCapRight, ShapeCapUp, ShapeCapDown,
	}
	for _, s := range shapes {
		up, down, left, right := s.Arms()
		if !up && !down && !left && !right {
			t.Errorf("%v has no arms", s)
		}
		if PartFor(s, StyleLight).Rune == 0 {
			t.Errorf("%v has no light glyph", s)
		}
	}
}

func TestStyleString(t *testing.T) {
	styles := map[LineStyle]string{
		StyleLight:   "Light",
		StyleHeavy:   "Heavy",
		StyleDouble:  "Double",
		StyleRounded: "Rounded",
		StyleASCII:   "ASCII",
	}
	for s, want := range styles {
		if s.String() != want {
			t.Errorf("LineStyle(%d).String() = %q, want %q", int(s), s.String(), want)
		}
	}
}
