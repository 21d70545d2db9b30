package cellbox

import (
	"errors"
	"strings"
	"testing"
)

func TestNewLineRun(t *testing.T) {
	// cap, fill, fill, fill, cap across five cells.
	line, err := NewLine(
		PartFor(ShapeCapRight, StyleLight),
		PartFor(ShapeHorizontal, StyleLight),
		PartFor(ShapeCapLeft, StyleLight),
		5, Horizontal, GraphicKind,
	)
	if err != nil {
		t.Fatalf("NewLine failed: %v", err)
	}

	run := line.Run(Position{Row: 0, Col: 0})
	if len(run) != 5 {
		t.Fatalf("run length = %d, want 5", len(run))
	}
	wantShapes := []Shape{ShapeCapRight, ShapeHorizontal, ShapeHorizontal, ShapeHorizontal, ShapeCapLeft}
	for i, p := range run {
		if p.Pos != (Position{Row: 0, Col: i}) {
			t.Errorf("run[%d].Pos = %+v, want col %d", i, p.Pos, i)
		}
		if p.Part.Shape != wantShapes[i] {
			t.Errorf("run[%d].Shape = %v, want %v", i, p.Part.Shape, wantShapes[i])
		}
	}
}

func TestRunVerticalTransposition(t *testing.T) {
	// The same algorithm serves both axes: a vertical run advances rows
	// exactly as a horizontal run advances columns.
	h, err := NewLine(PartFor(ShapeCornerTopLeft, StyleLight), PartFor(ShapeHorizontal, StyleLight),
		PartFor(ShapeCornerTopRight, StyleLight), 4, Horizontal, GraphicKind)
	if err != nil {
		t.Fatalf("horizontal NewLine failed: %v", err)
	}
	v, err := NewLine(PartFor(ShapeCornerTopLeft, StyleLight), PartFor(ShapeVertical, StyleLight),
		PartFor(ShapeCornerBottomLeft, StyleLight), 4, Vertical, GraphicKind)
	if err != nil {
		t.Fatalf("vertical NewLine failed: %v", err)
	}

	origin := Position{Row: 2, Col: 3}
	hr := h.Run(origin)
	vr := v.Run(origin)
	if len(hr) != len(vr) {
		t.Fatalf("run lengths differ: %d vs %d", len(hr), len(vr))
	}
	for i := range hr {
		hOff := hr[i].Pos.Col - origin.Col
		vOff := vr[i].Pos.Row - origin.Row
		if hOff != vOff {
			t.Errorf("offset %d: horizontal %d vs vertical %d", i, hOff, vOff)
		}
		if hr[i].Pos.Row != origin.Row || vr[i].Pos.Col != origin.Col {
			t.Errorf("offset %d strayed off axis: %+v / %+v", i, hr[i].Pos, vr[i].Pos)
		}
	}
}

func TestRunDeterministic(t *testing.T) {
	line, err := NewRule(StyleLight, 7, Horizontal)
	if err != nil {
		t.Fatalf("NewRule failed: %v", err)
	}
	a := line.Run(Position{Row: 1, Col: 1})
	b := line.Run(Position{Row: 1, Col: 1})
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("runs differ at %d: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestNewLineTooShort(t *testing.T) {
	// length 1 cannot host two one-cell caps.
	_, err := NewLine(PartFor(ShapeCapRight, StyleLight), PartFor(ShapeHorizontal, StyleLight),
		PartFor(ShapeCapLeft, StyleLight), 1, Horizontal, GraphicKind)
	var geomErr *GeometryError
	if !errors.As(err, &geomErr) {
		t.Fatalf("error = %v, want GeometryError", err)
	}
	if !strings.Contains(geomErr.Error(), "1") || !strings.Contains(geomErr.Error(), "2") {
		t.Errorf("error %q does not name the offending dimensions", geomErr.Error())
	}
}

func TestNewLineTextCapHeight(t *testing.T) {
	tall := NewPart(ShapeVertical, 1, 2, '│')
	short := PartFor(ShapeVertical, StyleLight)

	_, err := NewLine(tall, PartFor(ShapeHorizontal, StyleLight), short, 6, Horizontal, TextKind)
	var capErr *CapHeightError
	if !errors.As(err, &capErr) {
		t.Fatalf("error = %v, want CapHeightError", err)
	}
	if capErr.LeadingHeight != 2 || capErr.TrailingHeight != 1 {
		t.Errorf("CapHeightError heights = (%d, %d), want (2, 1)", capErr.LeadingHeight, capErr.TrailingHeight)
	}
	// Both heights must appear in the message so the caller can tell
	// which cap is wrong.
	msg := capErr.Error()
	if !strings.Contains(msg, "2") || !strings.Contains(msg, "1") {
		t.Errorf("error %q does not mention both cap heights", msg)
	}

	// Graphic lines are exempt from the cap height rule.
	if _, err := NewLine(tall, PartFor(ShapeHorizontal, StyleLight), short, 6, Horizontal, GraphicKind); err != nil {
		t.Errorf("graphic line rejected tall cap: %v", err)
	}
}

func TestNewLineZeroFootprint(t *testing.T) {
	zero := NewPart(ShapeCapLeft, 1, 0, '╴')
	_, err := NewLine(zero, PartFor(ShapeHorizontal, StyleLight), PartFor(ShapeCapLeft, StyleLight),
		5, Horizontal, GraphicKind)
	var geomErr *GeometryError
	if !errors.As(err, &geomErr) {
		t.Fatalf("zero-height cap error = %v, want GeometryError", err)
	}

	// Also rejected for graphic lines and in the fill role.
	_, err = NewLine(PartFor(ShapeCapRight, StyleLight), NewPart(ShapeHorizontal, 0, 1, '─'),
		PartFor(ShapeCapLeft, StyleLight), 5, Horizontal, GraphicKind)
	if !errors.As(err, &geomErr) {
		t.Fatalf("zero-width fill error = %v, want GeometryError", err)
	}
}

func TestNewLineIndivisibleSpan(t *testing.T) {
	wideFill := NewPart(ShapeHorizontal, 2, 1, '─')
	// span of 3 cells cannot be tiled by 2-cell fills.
	_, err := NewLine(PartFor(ShapeCapRight, StyleLight), wideFill, PartFor(ShapeCapLeft, StyleLight),
		5, Horizontal, GraphicKind)
	var geomErr *GeometryError
	if !errors.As(err, &geomErr) {
		t.Fatalf("error = %v, want GeometryError", err)
	}

	// span of 4 tiles cleanly: cap at 0, fills at 1 and 3, cap at 5.
	line, err := NewLine(PartFor(ShapeCapRight, StyleLight), wideFill, PartFor(ShapeCapLeft, StyleLight),
		6, Horizontal, GraphicKind)
	if err != nil {
		t.Fatalf("NewLine failed: %v", err)
	}
	run := line.Run(Position{})
	wantCols := []int{0, 1, 3, 5}
	if len(run) != len(wantCols) {
		t.Fatalf("run length = %d, want %d", len(run), len(wantCols))
	}
	for i, p := range run {
		if p.Pos.Col != wantCols[i] {
			t.Errorf("run[%d].Col = %d, want %d", i, p.Pos.Col, wantCols[i])
		}
	}
}

func TestLineAccessors(t *testing.T) {
	line, err := NewRule(StyleHeavy, 3, Vertical)
	if err != nil {
		t.Fatalf("NewRule failed: %v", err)
	}
	if line.Length() != 3 || line.Orientation() != Vertical || line.Kind() != GraphicKind {
		t.Errorf("accessors = (%d, %v, %v)", line.Length(), line.Orientation(), line.Kind())
	}
	if line.Leading().Shape != ShapeCapDown || line.Trailing().Shape != ShapeCapUp {
		t.Errorf("vertical rule caps = %v, %v", line.Leading().Shape, line.Trailing().Shape)
	}
	if line.Fill().Shape != ShapeVertical {
		t.Errorf("vertical rule fill = %v", line.Fill().Shape)
	}
}
