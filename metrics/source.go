package metrics

import (
	"fmt"
	"os"

	"golang.org/x/image/font/gofont/gomono"
)

// Source represents a loaded font file ready for cell measurement.
// One Source serves every point size; measurement is a pure function of
// the size, so a Source is safe for concurrent use.
type Source struct {
	parsed Parsed
	name   string
	config sourceConfig
}

// NewSource creates a Source from font data (TTF or OTF).
// The data is fully parsed up front; the slice can be reused after this
// call.
func NewSource(data []byte, opts ...SourceOption) (*Source, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	config := defaultSourceConfig()
	for _, opt := range opts {
		opt(&config)
	}

	backend := getBackend(config.backendName)
	if backend == nil {
		return nil, &UnknownBackendError{Name: config.backendName}
	}

	parsed, err := backend.Parse(data)
	if err != nil {
		return nil, err
	}

	return &Source{
		parsed: parsed,
		name:   parsed.Name(),
		config: config,
	}, nil
}

// NewSourceFromFile loads a Source from a font file path.
func NewSourceFromFile(path string, opts ...SourceOption) (*Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("metrics: failed to read font file: %w", err)
	}
	return NewSource(data, opts...)
}

// GoMono returns a Source for the embedded Go Mono typeface.
// It needs no files on disk, which makes it the default face for demos
// and tests.
func GoMono(opts ...SourceOption) (*Source, error) {
	return NewSource(gomono.TTF, opts...)
}

// Name returns the font family name, or empty if the backend does not
// expose one.
func (s *Source) Name() string {
	return s.name
}

// CellSize measures the glyph cell for the given point size: the advance
// width of the reference rune and the font's line height, in surface
// units. Deterministic for a given (source, size).
func (s *Source) CellSize(size float64) (width, height float64, err error) {
	if size <= 0 {
		return 0, 0, fmt.Errorf("%w: %g", ErrInvalidSize, size)
	}
	w, err := s.parsed.Advance(s.config.referenceRune, size)
	if err != nil {
		return 0, 0, err
	}
	h := s.parsed.LineHeight(size)
	if w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("metrics: degenerate cell %gx%g for size %g", w, h, size)
	}
	return w, h, nil
}
