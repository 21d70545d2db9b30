package render

import "github.com/gogpu/cellbox"

// Sink consumes a composed box. Implementations decide what a placement
// looks like; the composer has already validated the geometry.
type Sink interface {
	// Draw renders every placement of the box. Placements must be
	// applied in order: later placements at the same position are
	// authoritative.
	Draw(g cellbox.Grid, b cellbox.Box) error
}
