package render

import (
	"image"
	"math"

	"github.com/gogpu/gg"

	"github.com/gogpu/cellbox"
)

// Renderer is a raster sink that strokes box parts onto a gg drawing
// context. Each part is drawn as line segments from its cell center to
// the edges its shape reaches (Shape.Arms), so vector output always
// agrees with the glyph tables.
//
// Style affects stroke weight: StyleHeavy strokes double weight. The
// light/double distinction is a glyph-level property; raster output
// renders both at standard weight.
//
// Renderer wraps a mutable drawing context and is not safe for
// concurrent use.
type Renderer struct {
	dc        *gg.Context
	lineWidth float64
}

// RendererOption configures a Renderer.
type RendererOption func(*rendererConfig)

type rendererConfig struct {
	lineWidth float64
	bg        [3]float64
	fg        [3]float64
}

func defaultRendererConfig() rendererConfig {
	return rendererConfig{
		lineWidth: 0, // derived from cell height when zero
		bg:        [3]float64{1, 1, 1},
		fg:        [3]float64{0, 0, 0},
	}
}

// WithLineWidth sets the stroke width in surface units.
// When unset, the width is one tenth of the cell height.
func WithLineWidth(w float64) RendererOption {
	return func(c *rendererConfig) {
		c.lineWidth = w
	}
}

// WithForeground sets the stroke color.
func WithForeground(r, g, b float64) RendererOption {
	return func(c *rendererConfig) {
		c.fg = [3]float64{r, g, b}
	}
}

// WithBackground sets the surface clear color.
func WithBackground(r, g, b float64) RendererOption {
	return func(c *rendererConfig) {
		c.bg = [3]float64{r, g, b}
	}
}

// NewRenderer creates a raster sink sized to the grid's surface bounds.
func NewRenderer(g cellbox.Grid, opts ...RendererOption) *Renderer {
	cfg := defaultRendererConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	bounds := g.Bounds()
	dc := gg.NewContext(int(math.Ceil(bounds.Width())), int(math.Ceil(bounds.Height())))
	dc.SetRGB(cfg.bg[0], cfg.bg[1], cfg.bg[2])
	dc.DrawRectangle(0, 0, bounds.Width(), bounds.Height())
	_ = dc.Fill()

	lw := cfg.lineWidth
	if lw <= 0 {
		lw = g.Cell.Size().Height / 10
	}

	dc.SetRGB(cfg.fg[0], cfg.fg[1], cfg.fg[2])
	return &Renderer{dc: dc, lineWidth: lw}
}

// Draw implements Sink.
func (r *Renderer) Draw(g cellbox.Grid, b cellbox.Box) error {
	for _, p := range b.Placements {
		rect := g.CellRect(p.Pos)
		if p.Part.Width > 1 || p.Part.Height > 1 {
			far := g.CellRect(p.Pos.Offset(p.Part.Height-1, p.Part.Width-1))
			rect = rect.Union(far)
		}

		lw := r.lineWidth
		if b.Style == cellbox.StyleHeavy {
			lw *= 2
		}
		r.dc.SetLineWidth(lw)

		c := rect.Center()
		up, down, left, right := p.Part.Shape.Arms()
		if up {
			r.dc.DrawLine(c.X, c.Y, c.X, rect.Min.Y)
		}
		if down {
			r.dc.DrawLine(c.X, c.Y, c.X, rect.Max.Y)
		}
		if left {
			r.dc.DrawLine(c.X, c.Y, rect.Min.X, c.Y)
		}
		if right {
			r.dc.DrawLine(c.X, c.Y, rect.Max.X, c.Y)
		}
		if err := r.dc.Stroke(); err != nil {
			return err
		}
	}
	return nil
}

// Image returns the rendered surface.
func (r *Renderer) Image() image.Image {
	return r.dc.Image()
}

// SavePNG writes the rendered surface to a PNG file.
func (r *Renderer) SavePNG(path string) error {
	return r.dc.SavePNG(path)
}
