// Package metrics measures glyph cells for cellbox grids.
//
// A Source wraps one font file and reports, for a given point size, the
// advance width of one glyph column and the line height. Those two
// numbers are the cell size every cellbox Grid is built from.
//
// Parsing and measurement go through a pluggable Backend. Two backends
// are registered by default: "ximage", built on
// golang.org/x/image/font/opentype, and "gotext", built on
// github.com/go-text/typesetting's HarfBuzz shaping. The default is
// "ximage"; select per source with WithBackend.
//
// A Library aggregates named sources and implements cellbox.Measurer,
// memoizing measured cell sizes per (font name, font size) pair. The
// memo is refreshed only when a font is explicitly re-registered.
package metrics
