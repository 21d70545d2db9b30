package metrics

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
)

// gotextBackend implements Backend using go-text/typesetting's HarfBuzz
// shaping. Advances measured through shaping honor OpenType features the
// sfnt tables alone do not, so this backend can disagree slightly with
// "ximage" on fonts with contextual metrics. For monospace faces the
// two agree.
type gotextBackend struct{}

// Parse implements Backend.Parse.
func (gotextBackend) Parse(data []byte) (Parsed, error) {
	// ParseTTF returns a *Face which embeds the thread-safe *Font.
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("metrics: failed to parse font: %w", err)
	}
	return &gotextParsed{font: face.Font}, nil
}

// gotextParsed implements Parsed on top of a go-text font.Font.
// font.Font is read-only and safe for concurrent use; font.Face and
// HarfbuzzShaper are not, so faces are created per call and shapers are
// pooled.
type gotextParsed struct {
	font *font.Font

	shaperPool sync.Pool
}

// Name implements Parsed.Name. Name extraction is the parser's job in
// the "ximage" backend; go-text does not expose it here, so this
// backend reports no name.
func (f *gotextParsed) Name() string {
	return ""
}

// Advance implements Parsed.Advance.
func (f *gotextParsed) Advance(r rune, size float64) (float64, error) {
	out := f.shape(r, size)
	if len(out.Glyphs) == 0 || out.Glyphs[0].GlyphID == 0 {
		return 0, &NoGlyphError{Rune: r}
	}
	return fixedToFloat(out.Advance), nil
}

// LineHeight implements Parsed.LineHeight.
// Descent in shaping output is typically negative (below the baseline),
// so the line height is ascent - descent + gap.
func (f *gotextParsed) LineHeight(size float64) float64 {
	out := f.shape(' ', size)
	b := out.LineBounds
	return fixedToFloat(b.Ascent - b.Descent + b.Gap)
}

// shape runs a single rune through the HarfBuzz shaper at the given size.
func (f *gotextParsed) shape(r rune, size float64) shaping.Output {
	runes := []rune{r}
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      font.NewFace(f.font),
		Size:      floatToFixed(size),
		Script:    language.LookupScript(r),
		Language:  language.NewLanguage("en"),
	}

	shaper, ok := f.shaperPool.Get().(*shaping.HarfbuzzShaper)
	if !ok {
		shaper = &shaping.HarfbuzzShaper{}
	}
	out := shaper.Shape(input)
	f.shaperPool.Put(shaper)
	return out
}
