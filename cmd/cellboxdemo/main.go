// Command cellboxdemo composes a box diagram and emits it as text and PNG.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/gogpu/cellbox"
	"github.com/gogpu/cellbox/metrics"
	"github.com/gogpu/cellbox/render"
)

func main() {
	var (
		rows     = flag.Int("rows", 12, "box height in cells")
		cols     = flag.Int("cols", 40, "box width in cells")
		style    = flag.String("style", "light", "line style: light, heavy, double, rounded, ascii")
		fontSize = flag.Float64("size", 14, "font size in points")
		output   = flag.String("output", "demo.png", "output PNG file")
	)
	flag.Parse()

	src, err := metrics.GoMono()
	if err != nil {
		log.Fatalf("Failed to load Go Mono: %v", err)
	}
	lib := metrics.NewLibrary()
	lib.Register("gomono", src)

	cell, err := cellbox.NewGlyphCell(lib, "gomono", *fontSize)
	if err != nil {
		log.Fatalf("Failed to measure cell: %v", err)
	}

	dims := cellbox.Dimensions{Rows: *rows + 4, Cols: *cols + 8}
	grid, err := cellbox.NewGrid(cell, dims, cellbox.CanvasGrid)
	if err != nil {
		log.Fatalf("Failed to create grid: %v", err)
	}

	box, err := cellbox.Compose(grid,
		cellbox.Position{Row: 2, Col: 4},
		cellbox.Dimensions{Rows: *rows, Cols: *cols},
		cellbox.WithStyle(parseStyle(*style)),
		cellbox.WithRowDivider(2),
		cellbox.WithColDivider(*cols/2),
	)
	if err != nil {
		log.Fatalf("Failed to compose box: %v", err)
	}

	// Text overlay to stdout.
	tg := render.NewTextGrid(dims)
	if err := tg.Draw(grid, box); err != nil {
		log.Fatalf("Failed to render text: %v", err)
	}
	fmt.Println(tg)

	// Raster output to PNG.
	rr := render.NewRenderer(grid)
	if err := rr.Draw(grid, box); err != nil {
		log.Fatalf("Failed to render raster: %v", err)
	}
	if err := rr.SavePNG(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	s := cell.Size()
	log.Printf("Demo saved to %s (cell %.1fx%.1f)\n", *output, s.Width, s.Height)
}

func parseStyle(s string) cellbox.LineStyle {
	switch s {
	case "heavy":
		return cellbox.StyleHeavy
	case "double":
		return cellbox.StyleDouble
	case "rounded":
		return cellbox.StyleRounded
	case "ascii":
		return cellbox.StyleASCII
	default:
		return cellbox.StyleLight
	}
}
