package metrics

import (
	"unicode"

	"golang.org/x/text/width"
)

// RuneCells reports how many grid cells a rune occupies on a
// character-cell surface: 0 for control characters and combining marks,
// 2 for East Asian wide and fullwidth runes, 1 for everything else.
//
// This is a boundary helper for hosts that overlay diagrams onto text;
// cellbox itself never lays text out.
func RuneCells(r rune) int {
	if r == 0 || unicode.IsControl(r) {
		return 0
	}
	if unicode.Is(unicode.Mn, r) {
		return 0
	}
	switch width.LookupRune(r).Kind() {
	case width.EastAsianFullwidth, width.EastAsianWide:
		return 2
	default:
		return 1
	}
}

// StringCells sums RuneCells over a string.
func StringCells(s string) int {
	n := 0
	for _, r := range s {
		n += RuneCells(r)
	}
	return n
}
