package metrics

import (
	"errors"
	"fmt"
)

// Sentinel errors for the metrics package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("metrics: empty font data")

	// ErrInvalidSize is returned when a font size is zero or negative.
	ErrInvalidSize = errors.New("metrics: font size must be positive")
)

// UnknownBackendError is returned when a source requests a backend that
// was never registered.
type UnknownBackendError struct {
	Name string
}

func (e *UnknownBackendError) Error() string {
	return fmt.Sprintf("metrics: unknown backend %q", e.Name)
}

// UnknownFontError is returned by a Library when no source is registered
// under the requested font name.
type UnknownFontError struct {
	Font string
}

func (e *UnknownFontError) Error() string {
	return fmt.Sprintf("metrics: no font registered as %q", e.Font)
}

// NoGlyphError is returned when a font has no glyph for the reference rune.
type NoGlyphError struct {
	Rune rune
}

func (e *NoGlyphError) Error() string {
	return fmt.Sprintf("metrics: font has no glyph for %q", e.Rune)
}
