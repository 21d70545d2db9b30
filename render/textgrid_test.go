package render

import (
	"errors"
	"strings"
	"testing"

	"github.com/gogpu/cellbox"
)

func composeOn(t *testing.T, dims cellbox.Dimensions, origin cellbox.Position, size cellbox.Dimensions, opts ...cellbox.ComposeOption) (cellbox.Grid, cellbox.Box) {
	t.Helper()
	grid, err := cellbox.NewGrid(cellbox.FixedGlyphCell(cellbox.Sz(8, 16)), dims, cellbox.CanvasGrid)
	if err != nil {
		t.Fatalf("NewGrid failed: %v", err)
	}
	box, err := cellbox.Compose(grid, origin, size, opts...)
	if err != nil {
		t.Fatalf("Compose failed: %v", err)
	}
	return grid, box
}

func TestTextGridMinimumBox(t *testing.T) {
	dims := cellbox.Dimensions{Rows: 4, Cols: 4}
	grid, box := composeOn(t, dims, cellbox.Position{Row: 1, Col: 1}, cellbox.Dimensions{Rows: 2, Cols: 2})

	tg := NewTextGrid(dims)
	if err := tg.Draw(grid, box); err != nil {
		t.Fatalf("Draw failed: %v", err)
	}

	want := strings.Join([]string{
		"    ",
		" ┌┐ ",
		" └┘ ",
		"    ",
	}, "\n")
	if got := tg.String(); got != want {
		t.Errorf("surface:\n%s\nwant:\n%s", got, want)
	}
}

func TestTextGridFullDiagram(t *testing.T) {
	dims := cellbox.Dimensions{Rows: 5, Cols: 7}
	grid, box := composeOn(t, dims, cellbox.Position{}, cellbox.Dimensions{Rows: 5, Cols: 7},
		cellbox.WithRowDivider(2), cellbox.WithColDivider(3))

	tg := NewTextGrid(dims)
	if err := tg.Draw(grid, box); err != nil {
		t.Fatalf("Draw failed: %v", err)
	}

	want := strings.Join([]string{
		"┌──┬──┐",
		"│  │  │",
		"├──┼──┤",
		"│  │  │",
		"└──┴──┘",
	}, "\n")
	if got := tg.String(); got != want {
		t.Errorf("surface:\n%s\nwant:\n%s", got, want)
	}
}

func TestTextGridRoundedStyle(t *testing.T) {
	dims := cellbox.Dimensions{Rows: 3, Cols: 4}
	grid, box := composeOn(t, dims, cellbox.Position{}, cellbox.Dimensions{Rows: 3, Cols: 4},
		cellbox.WithStyle(cellbox.StyleRounded))

	tg := NewTextGrid(dims)
	if err := tg.Draw(grid, box); err != nil {
		t.Fatalf("Draw failed: %v", err)
	}

	want := strings.Join([]string{
		"╭──╮",
		"│  │",
		"╰──╯",
	}, "\n")
	if got := tg.String(); got != want {
		t.Errorf("surface:\n%s\nwant:\n%s", got, want)
	}
}

func TestTextGridOutOfSurface(t *testing.T) {
	// The box fits its grid but not the smaller surface.
	grid, box := composeOn(t, cellbox.Dimensions{Rows: 10, Cols: 10},
		cellbox.Position{Row: 2, Col: 2}, cellbox.Dimensions{Rows: 4, Cols: 4})

	tg := NewTextGrid(cellbox.Dimensions{Rows: 3, Cols: 3})
	err := tg.Draw(grid, box)
	var boundsErr *cellbox.BoundsError
	if !errors.As(err, &boundsErr) {
		t.Fatalf("error = %v, want BoundsError", err)
	}
	// Nothing may be partially drawn.
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			if r := tg.Rune(cellbox.Position{Row: row, Col: col}); r != ' ' {
				t.Fatalf("partial draw at (%d,%d): %q", row, col, r)
			}
		}
	}
}

func TestTextGridSetGet(t *testing.T) {
	tg := NewTextGrid(cellbox.Dimensions{Rows: 2, Cols: 2})
	tg.Set(cellbox.Position{Row: 1, Col: 1}, 'x')
	if tg.Rune(cellbox.Position{Row: 1, Col: 1}) != 'x' {
		t.Error("Set/Rune round trip failed")
	}

	// Out-of-bounds access is a no-op, not a panic.
	tg.Set(cellbox.Position{Row: 5, Col: 5}, 'x')
	if tg.Rune(cellbox.Position{Row: 5, Col: 5}) != ' ' {
		t.Error("out-of-bounds Rune should read as space")
	}
}
