package metrics

import (
	"math"
	"sort"
	"sync"

	"github.com/gogpu/cellbox"
	"github.com/gogpu/cellbox/cache"
)

// sizeKey keys the cell-size memo by the (font name, font size) pair.
type sizeKey struct {
	font string
	size float64
}

// cellSize is a memoized measurement result.
type cellSize struct {
	w, h float64
}

// Library maps font names to sources and measures glyph cells through
// them. It implements cellbox.Measurer.
//
// Measured cell sizes are memoized per (font name, font size) pair.
// The memo is refreshed only by explicit Register calls, never
// implicitly, so repeated lookups are stable and cheap.
//
// Library is safe for concurrent use.
type Library struct {
	mu      sync.RWMutex
	sources map[string]*Source

	sizes *cache.Cache[sizeKey, cellSize]
}

// NewLibrary creates an empty font library.
func NewLibrary() *Library {
	return &Library{
		sources: make(map[string]*Source),
		sizes: cache.New[sizeKey, cellSize](0, func(k sizeKey) uint64 {
			return cache.StringHasher(k.font) ^ math.Float64bits(k.size)
		}),
	}
}

// Register adds a source under the given font name, replacing any
// previous registration. The cell-size memo is dropped so stale
// measurements for a replaced font cannot survive.
func (l *Library) Register(name string, src *Source) {
	l.mu.Lock()
	l.sources[name] = src
	l.mu.Unlock()

	l.sizes.Clear()
	cellbox.Logger().Info("registered font", "name", name, "family", src.Name())
}

// RegisterData parses font data and registers it under the given name.
func (l *Library) RegisterData(name string, data []byte, opts ...SourceOption) error {
	src, err := NewSource(data, opts...)
	if err != nil {
		return err
	}
	l.Register(name, src)
	return nil
}

// Fonts returns the registered font names in sorted order.
func (l *Library) Fonts() []string {
	l.mu.RLock()
	names := make([]string, 0, len(l.sources))
	for name := range l.sources {
		names = append(names, name)
	}
	l.mu.RUnlock()

	sort.Strings(names)
	return names
}

// CellSize implements cellbox.Measurer. It returns the memoized cell
// size for the pair, measuring through the registered source on a miss.
func (l *Library) CellSize(fontName string, fontSize float64) (width, height float64, err error) {
	l.mu.RLock()
	src, ok := l.sources[fontName]
	l.mu.RUnlock()
	if !ok {
		return 0, 0, &UnknownFontError{Font: fontName}
	}

	key := sizeKey{font: fontName, size: fontSize}
	if c, ok := l.sizes.Get(key); ok {
		return c.w, c.h, nil
	}

	w, h, err := src.CellSize(fontSize)
	if err != nil {
		return 0, 0, err
	}
	l.sizes.Set(key, cellSize{w: w, h: h})
	cellbox.Logger().Debug("measured cell", "font", fontName, "size", fontSize, "w", w, "h", h)
	return w, h, nil
}
