package metrics

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// ximageBackend implements Backend using golang.org/x/image/font/opentype.
type ximageBackend struct{}

// Parse implements Backend.Parse.
func (ximageBackend) Parse(data []byte) (Parsed, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("metrics: failed to parse font: %w", err)
	}
	return &ximageParsed{font: f}, nil
}

// ximageParsed implements Parsed on top of sfnt.Font.
type ximageParsed struct {
	font *opentype.Font
}

// Name implements Parsed.Name.
func (f *ximageParsed) Name() string {
	if name, err := f.font.Name(nil, sfnt.NameIDFamily); err == nil && name != "" {
		return name
	}
	return ""
}

// Advance implements Parsed.Advance.
func (f *ximageParsed) Advance(r rune, size float64) (float64, error) {
	var buf sfnt.Buffer

	gid, err := f.font.GlyphIndex(&buf, r)
	if err != nil {
		return 0, fmt.Errorf("metrics: glyph index for %q: %w", r, err)
	}
	if gid == 0 {
		return 0, &NoGlyphError{Rune: r}
	}

	adv, err := f.font.GlyphAdvance(&buf, gid, floatToFixed(size), font.HintingFull)
	if err != nil {
		return 0, fmt.Errorf("metrics: glyph advance for %q: %w", r, err)
	}
	return fixedToFloat(adv), nil
}

// LineHeight implements Parsed.LineHeight.
func (f *ximageParsed) LineHeight(size float64) float64 {
	var buf sfnt.Buffer

	m, err := f.font.Metrics(&buf, floatToFixed(size), font.HintingFull)
	if err != nil {
		return 0
	}
	return fixedToFloat(m.Height)
}

// floatToFixed converts a float64 size to fixed.Int26_6.
// The fixed-point representation uses 6 fractional bits, so we multiply by 64.
func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

// fixedToFloat converts a fixed.Int26_6 value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
