// Package render provides rendering sinks for composed cellbox
// placements.
//
// The composition core hands sinks an ordered list of (position, part)
// pairs and nothing else. Two sinks are included: TextGrid, a rune
// overlay surface for terminal-like hosts, and Renderer, a raster sink
// that strokes parts onto a gg drawing context. Later placements at the
// same position win in both sinks, matching the composer's divider
// emission order.
package render
